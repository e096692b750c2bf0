// Package chain implements sparse formal sums (chains) over a coefficient
// field and the chain module that lifts field arithmetic to them.
//
// A Sum[U, F] is a sparse vector indexed by basis elements U with
// coefficients in F. It never stores a zero coefficient: every operation that
// could produce one deletes the term instead, so Len and IsEmpty are exact.
//
// The Module[U, F] pairs sums with a field.Field[F]. Its Accumulate method,
// target += scalar·source in place, is the single inner loop of every
// persistence reduction in this repository; it costs O(|source|).
//
//	m := chain.NewModule[string, bool](field.Boolean{})
//	d := m.FromBoundary([]int{1, -1}, []string{"a", "b"})
//	m.Accumulate(d, m.Singleton("a", true), true) // d = b
//
// Sums are not safe for concurrent mutation; the Module itself is stateless.
package chain
