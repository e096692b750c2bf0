package persistence_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/field"
	"github.com/katalvlaran/lvtopo/persistence"
	"github.com/katalvlaran/lvtopo/stream"
)

func ExampleEngine_ComputeIntervals() {
	s := stream.NewExplicit()
	_ = s.AddSimplex(0, 0)
	_ = s.AddSimplex(0, 1)
	_ = s.AddSimplex(0, 2)
	_ = s.AddSimplex(1, 0, 1)
	_ = s.AddSimplex(1, 1, 2)
	_ = s.AddSimplex(1, 0, 2)
	_ = s.AddSimplex(2, 0, 1, 2)
	_ = s.Finalize()

	e := persistence.New[stream.Simplex, int64](field.MustModular(3), stream.CompareSimplices)
	bc, err := e.ComputeIntervals(s, persistence.AbsoluteHomology)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(bc.Canonical())
	fmt.Println(bc.Infinite().BettiSequence())
	// Output:
	// map[0:[[0, 1) [0, 1) [0, infinity)] 1:[[1, 2)]]
	// [1]
}

func ExampleParseConfig() {
	cfg, err := persistence.ParseConfig([]byte("algorithm: phrow\npolicy: absolute-cohomology\nmax_dimension: 3\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cfg.Algorithm, cfg.Policy, cfg.Field, cfg.MinDimension, cfg.MaxDimension)
	// Output:
	// phrow absolute-cohomology gf2 0 3
}
