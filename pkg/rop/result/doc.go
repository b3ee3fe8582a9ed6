// Package result provides Result[V, E], a container that holds either a
// success value of type V or a failure error of type E.
//
// Exactly one variant is populated and it never changes. Neither channel
// accepts nil: Success(nil) and Failure(nil) panic with rop.ErrNilPayload.
//
// Highlights:
// - Success/Failure/Of/FromPair: construct a Result
// - Map/FlatMap: transform the success channel
// - MapError/FlatMapError: transform the failure channel
// - RecoverWith/Recover and the type-guarded RecoverWithAs/RecoverAs
// - Fold/Transform: eliminate a Result into any other type
// - OrElse/OrElseGet/OrElseWith: extract the value with a fallback
// - OnSuccess/OnFailure: side-effect hooks
// - All/Iterator: the success value as a sequence of at most one element
//
// Function arguments are only checked for nil, and only called, on the
// variant that uses them. Map on a Failure with a nil function is a no-op;
// RecoverWith on a Success with a nil function is a no-op.
package result
