// Package typeof classifies values of a dynamic, prototype-based runtime and
// decides whether they are empty.
//
// Values are modeled as a sum type: every kind is its own Go type
// implementing Value, and kind tests are done by decoding into the concrete
// type. Composites own slots and delegate lookups along a prototype chain,
// and a Wrapper forwards everything to its target through caller-supplied
// handlers.
//
// The predicates are total: none of them fail or panic for any value,
// including nil.
package typeof
