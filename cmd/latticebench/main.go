// Copyright ©2013 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The latticebench program times LU, Cholesky and square Solve on a
// randomly generated matrix of the requested size. It exists to give the
// factorizations in the dense package a rough feel for their scaling; it
// is not a substitute for the package benchmarks.
package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/dense-go/lattice/dense"
)

func main() {
	n := flag.Int("n", 256, "matrix side length")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if *n <= 0 {
		log.Fatal().Int("n", *n).Msg("matrix size must be positive")
	}

	rng := rand.New(rand.NewSource(*seed))
	a := randomMatrix(rng, *n, *n)
	spd := randomSPD(rng, *n)
	b := randomMatrix(rng, *n, 1)

	log.Info().Int("n", *n).Msg("starting benchmark run")

	timeOp(log, "LU", func() error {
		_, err := dense.FactorizeLU(a)
		return err
	})

	timeOp(log, "Cholesky", func() error {
		_, ok := dense.FactorizeCholesky(spd)
		if !ok {
			return dense.ErrNotSPD
		}
		return nil
	})

	timeOp(log, "Solve", func() error {
		_, err := dense.Solve(a, b)
		return err
	})
}

func timeOp(log zerolog.Logger, name string, op func() error) {
	start := time.Now()
	err := op()
	elapsed := time.Since(start)
	ev := log.Info().Str("op", name).Dur("elapsed", elapsed)
	if err != nil {
		ev = log.Warn().Str("op", name).Dur("elapsed", elapsed).Err(err)
	}
	ev.Msg("operation complete")
}

func randomMatrix(rng *rand.Rand, r, c int) *dense.Matrix {
	m := dense.NewMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, rng.NormFloat64())
		}
	}
	return m
}

// randomSPD builds a symmetric positive-definite matrix AᵀA + nI, which is
// SPD for any A with full column rank (guaranteed generically by random
// Gaussian entries) and the added diagonal shift.
func randomSPD(rng *rand.Rand, n int) *dense.Matrix {
	a := randomMatrix(rng, n, n)
	spd := dense.NewMatrix(n, n)
	dense.Mul(spd, 1, a, true, a, false, 0)
	for i := 0; i < n; i++ {
		spd.Set(i, i, spd.At(i, i)+float64(n))
	}
	return spd
}
