package persistence_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/field"
	"github.com/katalvlaran/lvtopo/persistence"
	"github.com/katalvlaran/lvtopo/stream"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := persistence.ParseConfig(nil)
	require.NoError(t, err)
	require.Equal(t, persistence.DefaultConfig(), cfg)
	p, err := cfg.ResolvedPolicy()
	require.NoError(t, err)
	require.Equal(t, persistence.AbsoluteHomology, p)
}

func TestParseConfig_Full(t *testing.T) {
	cfg, err := persistence.ParseConfig([]byte(`
min_dimension: 1
max_dimension: 3
algorithm: phrow
policy: relative-cohomology
field: modular
modulus: 7
verify: true
`))
	require.NoError(t, err)
	require.Equal(t, persistence.Config{
		MinDimension: 1,
		MaxDimension: 3,
		Algorithm:    persistence.AlgorithmPHRow,
		Policy:       "relative-cohomology",
		Field:        persistence.FieldModular,
		Modulus:      7,
		Verify:       true,
	}, cfg)
}

func TestParseConfig_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":        "colour: blue\n",
		"bad yaml":           "min_dimension: [\n",
		"negative dimension": "min_dimension: -1\n",
		"inverted window":    "min_dimension: 3\nmax_dimension: 1\n",
		"unknown algorithm":  "algorithm: magic\n",
		"unknown policy":     "policy: sideways\n",
		"phcol cohomology":   "algorithm: phcol\npolicy: absolute-cohomology\n",
		"phrow homology":     "algorithm: phrow\npolicy: absolute-homology\n",
		"pcoh relative":      "algorithm: pcoh\npolicy: relative-homology\n",
		"classical relative": "algorithm: classical\npolicy: relative-cohomology\n",
		"unknown field":      "field: octonions\n",
		"non-prime modulus":  "field: modular\nmodulus: 9\n",
		"missing modulus":    "field: modular\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := persistence.ParseConfig([]byte(doc))
			require.ErrorIs(t, err, persistence.ErrInvalidConfig)
		})
	}

	_, err := persistence.ParseConfig([]byte("field: modular\nmodulus: 9\n"))
	require.ErrorIs(t, err, field.ErrNotPrime)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persistence.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: pcoh\nfield: rational\n"), 0o600))
	cfg, err := persistence.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, persistence.AlgorithmPCoh, cfg.Algorithm)

	_, err = persistence.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCompute_EveryAlgorithmAndField(t *testing.T) {
	s := filledTriangle(t)
	want := filledTriangleBarcode()
	for _, doc := range []string{
		"algorithm: classical\n",
		"algorithm: pcoh\nfield: rational\n",
		"algorithm: phcol\nfield: modular\nmodulus: 2\nverify: true\n",
		"algorithm: phrow\npolicy: absolute-cohomology\nfield: modular\nmodulus: 65537\nverify: true\n",
	} {
		cfg, err := persistence.ParseConfig([]byte(doc))
		require.NoError(t, err, doc)
		got, err := persistence.Compute(cfg, s, stream.CompareSimplices)
		require.NoError(t, err, doc)
		requireSameBarcode(t, want, got)
	}

	cfg, err := persistence.ParseConfig([]byte("algorithm: phcol\npolicy: relative-homology\nmin_dimension: 1\n"))
	require.NoError(t, err)
	got, err := persistence.Compute(cfg, s, stream.CompareSimplices)
	require.NoError(t, err)
	require.Equal(t, []int{1}, got.Dimensions())
	require.Len(t, got.Intervals(1), 2)
}

func TestCompute_AbsolutePoliciesShareClassicalAndPCoh(t *testing.T) {
	s := filledTriangle(t)
	for _, doc := range []string{
		"algorithm: classical\npolicy: absolute-cohomology\n",
		"algorithm: pcoh\npolicy: absolute-cohomology\n",
		"algorithm: pcoh\npolicy: absolute-homology\n",
	} {
		cfg, err := persistence.ParseConfig([]byte(doc))
		require.NoError(t, err, doc)
		got, err := persistence.Compute(cfg, s, stream.CompareSimplices)
		require.NoError(t, err, doc)
		requireSameBarcode(t, filledTriangleBarcode(), got)
	}
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	e := persistence.New[stream.Simplex, bool](field.Boolean{}, stream.CompareSimplices)
	cfg := persistence.DefaultConfig()
	cfg.Algorithm = "phrow"
	_, err := persistence.Run(e, filledTriangle(t), cfg)
	require.ErrorIs(t, err, persistence.ErrInvalidConfig)

	cfg = persistence.DefaultConfig()
	cfg.Policy = "sideways"
	_, err = persistence.Run(e, filledTriangle(t), cfg)
	require.ErrorIs(t, err, persistence.ErrInvalidConfig)
}
