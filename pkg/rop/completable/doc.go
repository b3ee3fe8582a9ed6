// Package completable provides Completable[E], the outcome of an operation
// that either completes without a value or fails with an error of type E.
//
// It carries the failure-side algebra of result.Result: Fold, Transform,
// RecoverWith (plain, predicate-guarded and type-guarded) and the
// OnSuccess/OnFailure hooks. There is no value channel to map over.
//
// The zero Completable is a Success.
package completable
