// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/chain"
	"github.com/katalvlaran/lvtopo/field"
)

// FromColumns represents a family of chains as a matrix: column j is
// columns[cols[j]] expressed in the basis rows, entry (i, j) is the
// coefficient of rows[i]. A column missing from the map is zero.
//
// Errors:
//   - ErrUnknownBasis when a chain has a term outside rows.
//
// Complexity: Time O(len(rows)*len(cols) + total terms), Space O(len(rows)*len(cols)).
func FromColumns[U comparable, F any](f field.Field[F], rows, cols []U, columns map[U]*chain.Sum[U, F]) (*Dense[F], error) {
	out, err := NewDense(f, len(rows), len(cols))
	if err != nil {
		return nil, err
	}
	pos := make(map[U]int, len(rows))
	for i, u := range rows {
		pos[u] = i
	}
	for j, u := range cols {
		sum, ok := columns[u]
		if !ok || sum == nil {
			continue
		}
		sum.Range(func(v U, c F) bool {
			i, known := pos[v]
			if !known {
				err = fmt.Errorf("FromColumns: term %v of column %v: %w", v, u, ErrUnknownBasis)
				return false
			}
			out.data[i*out.c+j] = c

			return true
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
