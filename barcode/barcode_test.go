package barcode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtopo/barcode"
)

func TestInterval_Shapes(t *testing.T) {
	f := barcode.Finite(1, 4)
	require.True(t, f.Contains(1))
	require.True(t, f.Contains(3))
	require.False(t, f.Contains(4))
	require.False(t, f.IsInfinite())
	l, ok := f.Length()
	require.True(t, ok)
	require.Equal(t, 3, l)
	require.Equal(t, "[1, 4)", f.String())

	r := barcode.RightInfinite(2)
	require.True(t, r.IsRightInfinite())
	require.True(t, r.Contains(1000))
	require.False(t, r.Contains(1))
	_, ok = r.Length()
	require.False(t, ok)
	_, ok = r.End()
	require.False(t, ok)
	require.Equal(t, "[2, infinity)", r.String())

	left := barcode.LeftInfinite(3)
	require.True(t, left.IsLeftInfinite())
	require.True(t, left.Contains(-50))
	require.False(t, left.Contains(3))
	_, ok = left.Start()
	require.False(t, ok)
	require.Equal(t, "(-infinity, 3)", left.String())

	require.True(t, barcode.Finite(2, 2).IsDegenerate())
	require.False(t, barcode.Finite(2, 2).Contains(2))
	require.Equal(t, "[0.5, 1.25)", barcode.Finite(0.5, 1.25).String())
}

func TestInterval_Compare(t *testing.T) {
	ordered := []barcode.Interval[int]{
		barcode.LeftInfinite(1),
		barcode.LeftInfinite(5),
		barcode.Finite(0, 1),
		barcode.Finite(0, 2),
		barcode.RightInfinite(0),
		barcode.Finite(1, 2),
	}
	for i := range ordered {
		require.Zero(t, ordered[i].Compare(ordered[i]))
		for j := i + 1; j < len(ordered); j++ {
			require.Negative(t, ordered[i].Compare(ordered[j]), "%v < %v", ordered[i], ordered[j])
			require.Positive(t, ordered[j].Compare(ordered[i]))
		}
	}
	require.True(t, barcode.Finite(0, 1).Equal(barcode.Finite(0, 1)))
	require.False(t, barcode.RightInfinite(0).Equal(barcode.Finite(0, 0)))
}

func sample() *barcode.Annotated[int, string] {
	a := barcode.NewAnnotated[int, string]()
	a.AddInterval(0, 0, 1, "b")
	a.AddRightInfiniteInterval(0, 0, "a")
	a.AddInterval(1, 1, 2, "ab+bc")
	a.AddInterval(1, 3, 3, "zero")
	a.AddLeftInfiniteInterval(2, 4, "abc")

	return a
}

func TestAnnotated_Accessors(t *testing.T) {
	a := sample()
	require.Equal(t, []int{0, 1, 2}, a.Dimensions())
	require.Equal(t, 5, a.Len())
	require.Equal(t, []string{"b", "a"}, a.Generators(0))
	require.Equal(t, []barcode.Interval[int]{barcode.Finite(0, 1), barcode.RightInfinite(0)}, a.Intervals(0))
	require.Empty(t, a.Intervals(7))

	// copies, not views
	ivs := a.Intervals(0)
	ivs[0] = barcode.Finite(9, 10)
	require.Equal(t, barcode.Finite(0, 1), a.Intervals(0)[0])
}

func TestAnnotated_Filters(t *testing.T) {
	a := sample()

	inf := a.Infinite()
	require.Equal(t, 2, inf.Len())
	require.Equal(t, []string{"a"}, inf.Generators(0))
	require.Equal(t, []string{"abc"}, inf.Generators(2))

	low := a.FilterByMaxDimension(1)
	require.Equal(t, []int{0, 1}, low.Dimensions())

	pos := a.FilterPositiveMeasure()
	require.Equal(t, 4, pos.Len())
	require.Equal(t, []string{"ab+bc"}, pos.Generators(1))
}

func TestAnnotated_Betti(t *testing.T) {
	a := sample()
	require.Equal(t, map[int]int{0: 2, 2: 1}, a.BettiNumbersAt(0))
	require.Equal(t, map[int]int{0: 1, 1: 1, 2: 1}, a.BettiNumbersAt(1))
	require.Equal(t, map[int]int{0: 1}, a.BettiNumbersAt(4))
	require.Equal(t, []int{2, 2, 1}, a.BettiSequence())
	require.Equal(t, []int{1, 0, 1}, a.Infinite().BettiSequence())
	require.Nil(t, barcode.NewAnnotated[int, string]().BettiSequence())
}

func TestAnnotated_UnionAndForget(t *testing.T) {
	a := sample()
	b := barcode.NewAnnotated[int, string]()
	b.AddInterval(0, 5, 6, "x")
	u := a.Union(b)
	require.Equal(t, 6, u.Len())
	require.Equal(t, []string{"b", "a", "x"}, u.Generators(0))
	require.Equal(t, 5, a.Len())

	c := u.Forget()
	require.Equal(t, 6, c.Len())
	require.Equal(t, "Dimension: 0\n[0, 1)\n[0, infinity)\n[5, 6)\nDimension: 1\n[1, 2)\n[3, 3)\nDimension: 2\n(-infinity, 4)\n", c.String())
}

func TestAnnotated_String(t *testing.T) {
	a := barcode.NewAnnotated[int, string]()
	a.AddInterval(1, 1, 2, "ab+bc")
	require.Equal(t, "Dimension: 1\n[1, 2): ab+bc\n", a.String())
}

func TestCollection_EqualIgnoresOrder(t *testing.T) {
	x := barcode.NewCollection[int]()
	x.AddInterval(0, 0, 1)
	x.AddRightInfiniteInterval(0, 0)
	x.AddInterval(0, 0, 1)

	y := barcode.NewCollection[int]()
	y.AddRightInfiniteInterval(0, 0)
	y.AddInterval(0, 0, 1)
	y.AddInterval(0, 0, 1)

	require.True(t, x.Equal(y))
	require.Empty(t, cmp.Diff(x.Canonical(), y.Canonical()))

	y.AddInterval(1, 1, 2)
	require.False(t, x.Equal(y))
	require.NotEmpty(t, cmp.Diff(x.Canonical(), y.Canonical()))

	z := barcode.NewCollection[int]()
	z.AddInterval(0, 0, 1)
	z.AddRightInfiniteInterval(0, 0)
	z.AddRightInfiniteInterval(0, 0)
	require.False(t, x.Equal(z))
}

func TestCollection_NeverMerges(t *testing.T) {
	c := barcode.NewCollection[int]()
	c.AddInterval(0, 0, 2)
	c.AddInterval(0, 2, 4)
	c.AddInterval(0, 1, 3)
	require.Len(t, c.Intervals(0), 3)
	require.Equal(t, map[int]int{0: 2}, c.BettiNumbersAt(2))
	require.Equal(t, 3, c.Union(barcode.NewCollection[int]()).Len())
	require.Equal(t, 3, c.FilterPositiveMeasure().Len())
	require.Zero(t, c.Infinite().Len())
	require.Equal(t, []int{0}, c.FilterByMaxDimension(0).Dimensions())
	require.Equal(t, []int{3}, c.BettiSequence())
}
