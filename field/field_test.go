package field_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/katalvlaran/lvtopo/field"
	"github.com/stretchr/testify/require"
)

// checkAxioms exercises the field axioms over every pair of the given samples.
func checkAxioms[F any](t *testing.T, f field.Field[F], samples []F) {
	t.Helper()
	for _, a := range samples {
		require.True(t, f.Equal(a, f.Add(a, f.Zero())), "%s: a+0", f)
		require.True(t, f.Equal(a, f.Multiply(a, f.One())), "%s: a*1", f)
		require.True(t, f.IsZero(f.Add(a, f.Negate(a))), "%s: a-a", f)
		if !f.IsZero(a) {
			require.True(t, f.Equal(f.One(), f.Multiply(a, f.Invert(a))), "%s: a*a^-1", f)
		}
		for _, b := range samples {
			require.True(t, f.Equal(f.Add(a, b), f.Add(b, a)), "%s: commutative add", f)
			require.True(t, f.Equal(f.Multiply(a, b), f.Multiply(b, a)), "%s: commutative mul", f)
			require.True(t, f.Equal(f.Subtract(a, b), f.Add(a, f.Negate(b))), "%s: subtract", f)
			if !f.IsZero(b) {
				require.True(t, f.Equal(f.Divide(a, b), f.Multiply(a, f.Invert(b))), "%s: divide", f)
			}
			for _, c := range samples {
				lhs := f.Multiply(a, f.Add(b, c))
				rhs := f.Add(f.Multiply(a, b), f.Multiply(a, c))
				require.True(t, f.Equal(lhs, rhs), "%s: distributive", f)
			}
		}
	}
}

func TestBoolean_Axioms(t *testing.T) {
	checkAxioms[bool](t, field.Boolean{}, []bool{false, true})
}

func TestModular_Axioms(t *testing.T) {
	for _, p := range []int64{2, 3, 5, 7, 11} {
		f := field.MustModular(p)
		samples := make([]int64, 0, p)
		var a int64
		for a = 0; a < p; a++ {
			samples = append(samples, a)
		}
		checkAxioms[int64](t, f, samples)
	}
}

func TestModular_LargePrimeUsesEuclid(t *testing.T) {
	f := field.MustModular(field.MaxModulus) // 2^31-1 is a Mersenne prime
	a := int64(123456789)
	require.Equal(t, int64(1), f.Multiply(a, f.Invert(a)))
	require.Equal(t, f.Modulus()-1, f.ValueOf(-1))
}

func TestRational_Axioms(t *testing.T) {
	samples := []*big.Rat{big.NewRat(0, 1), big.NewRat(1, 1), big.NewRat(-3, 4), big.NewRat(7, 5)}
	checkAxioms[*big.Rat](t, field.Rational{}, samples)
}

func TestRational_DoesNotMutateOperands(t *testing.T) {
	f := field.Rational{}
	a, b := big.NewRat(1, 2), big.NewRat(1, 3)
	_ = f.Add(a, b)
	_ = f.Multiply(a, b)
	_ = f.Divide(a, b)
	require.Equal(t, 0, a.Cmp(big.NewRat(1, 2)))
	require.Equal(t, 0, b.Cmp(big.NewRat(1, 3)))
	require.True(t, f.IsZero(nil))
}

func TestNewModular_RejectsBadModulus(t *testing.T) {
	for _, p := range []int64{4, 9, 15, 91, 65537 * 3} {
		_, err := field.NewModular(p)
		require.ErrorIs(t, err, field.ErrNotPrime, "p=%d", p)
	}
	for _, p := range []int64{-7, 0, 1, field.MaxModulus + 2} {
		_, err := field.NewModular(p)
		require.ErrorIs(t, err, field.ErrModulusRange, "p=%d", p)
	}
}

func TestValueOf_Normalizes(t *testing.T) {
	f := field.MustModular(5)
	require.Equal(t, int64(4), f.ValueOf(-1))
	require.Equal(t, int64(2), f.ValueOf(12))
	require.True(t, field.Boolean{}.ValueOf(-1))
	require.False(t, field.Boolean{}.ValueOf(2))
	require.Equal(t, 0, field.Rational{}.ValueOf(-1).Cmp(big.NewRat(-1, 1)))
}

// recoverError runs fn and returns the recovered panic value as an error.
func recoverError(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			err = errors.New("non-error panic value")
			return
		}
		err = e
	}()
	fn()

	return nil
}

func TestInvertZero_Panics(t *testing.T) {
	cases := map[string]func(){
		"boolean invert":  func() { field.Boolean{}.Invert(false) },
		"boolean divide":  func() { field.Boolean{}.Divide(true, false) },
		"modular invert":  func() { field.MustModular(7).Invert(14) },
		"modular divide":  func() { field.MustModular(7).Divide(1, 0) },
		"rational invert": func() { field.Rational{}.Invert(new(big.Rat)) },
		"rational divide": func() { field.Rational{}.Divide(big.NewRat(1, 1), nil) },
	}
	for name, fn := range cases {
		err := recoverError(fn)
		require.ErrorIs(t, err, field.ErrDivisionByZero, name)
	}
}

func TestPowerAndSum(t *testing.T) {
	f := field.MustModular(7)
	require.Equal(t, int64(1), field.Power[int64](f, 3, 6)) // Fermat
	require.Equal(t, int64(5), field.Power[int64](f, 3, -1))
	require.Equal(t, int64(1), field.Power[int64](f, 4, 0))
	require.Equal(t, int64(3), field.Sum[int64](f, 5, 5, 0))
	require.Equal(t, 0, field.Power[*big.Rat](field.Rational{}, big.NewRat(2, 3), 2).Cmp(big.NewRat(4, 9)))
}
