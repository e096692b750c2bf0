package barcode_test

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/barcode"
)

func ExampleCollection() {
	c := barcode.NewCollection[int]()
	c.AddInterval(0, 0, 1)
	c.AddInterval(0, 0, 1)
	c.AddRightInfiniteInterval(0, 0)
	c.AddInterval(1, 1, 2)

	fmt.Print(c)
	fmt.Println(c.BettiNumbersAt(1), c.Infinite().BettiSequence())
	// Output:
	// Dimension: 0
	// [0, 1)
	// [0, 1)
	// [0, infinity)
	// Dimension: 1
	// [1, 2)
	// map[0:1 1:1] [1]
}
