// Package bail provides early-exit traversal over slices, built on
// wrap.Result. A callback decides per element whether to continue or to
// bail out, and the first bail halts the whole traversal.
//
// Highlights:
// - Step: two-variant outcome of one callback invocation
// - Bailer: mints Continue/Bail steps for the enclosing traversal
// - Fold: iterative left fold; bail yields Err, exhaustion yields Ok(acc)
// - Map: one-to-one mapping; bail yields Err, otherwise Ok of the mapped
//   slice with input order and length preserved
//
// The continue/bail decision is carried in the Step sum type returned by the
// callback, so a signal from one traversal cannot be confused with another,
// nested or not. Iteration is a plain loop; input size never grows the call
// stack.
package bail
