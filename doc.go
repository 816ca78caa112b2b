// Package funcz provides typed function composition, partial application and
// closed tagged unions for Go.
//
// # Overview
//
// funcz builds programs out of small functions. Data always flows left to
// right: Compose2(f, g)(x) is g(f(x)), and a pipeline reads in the order its
// steps run.
//
// Structural contracts are enforced in one of two places:
//
//   - At compile time, wherever generics can express them. Compose2 through
//     Compose6, the Bind helpers, Not/And/Or/Xor and Match2 through Match4
//     cannot be called with the wrong arity or mismatched types.
//   - At construction time, for the heterogeneous forms. Compose, Invoke,
//     BindAt, NewUnion, NewVisitor and NewTransformer check every step and
//     handler up front and return a *ContractError before any user code
//     runs.
//
// # Composition
//
//	double := func(n int) int { return n * 2 }
//	show := func(n int) string { return strconv.Itoa(n) }
//
//	f := funcz.Compose2(double, show)
//	f(21) // "42"
//
// The dynamic form accepts any callables and returns a checked pipeline:
//
//	c, err := funcz.Compose(strconv.Atoi, double, show)
//	if err != nil {
//	    // a step did not fit its neighbour
//	}
//	out, err := c.Call("21") // "42", nil
//
// A step returning (value, error) stops the pipeline on a non-nil error,
// which is returned unmodified.
//
// # Variants
//
// A Union declares a closed set of alternative types. A Variant holds one
// value of one alternative at a time:
//
//	u := funcz.MustUnion(funcz.TypeOf[int](), funcz.TypeOf[string]())
//	v := funcz.MustNew(u, 3)
//
//	vis, err := funcz.NewVisitor[string](u,
//	    func(n int) string { return "int" },
//	    func(s string) string { return "string" },
//	)
//	kind, _ := vis.Visit(v) // "int"
//
// NewVisitor rejects a handler set that misses an alternative, handles one
// twice or mixes result types. Once built, a Visitor never fails on a
// variant of its union.
//
// # Pipelines
//
// Pipeline is a named, observable composition of same-typed stages with
// metrics (metricz), spans (tracez) and stage events (hookz). Use it when a
// composition needs to be inspected or modified at runtime.
//
// # Subpackages
//
//   - seq: slice combinators with the collection as the last argument
//   - fwd: deferred forms of the seq combinators for use in pipelines
//   - fwd/flip: the same with the last argument bound instead
//   - testing: mocks and assertions for code built on funcz
package funcz

// Name identifies pipelines and their stages. It appears in
// PipelineError.Path and in every observability signal.
type Name = string
