package completable

import "github.com/ib-77/ropresult/pkg/rop"

// RecoverWithAs calls f when the error of a Failure is an F at runtime.
// Anything else is returned unchanged.
func RecoverWithAs[F, E any](c Completable[E], f func(F) Completable[E]) Completable[E] {
	if !c.isFailed {
		return c
	}
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	if matched, ok := any(c.err).(F); ok {
		return f(matched)
	}
	return c
}

// Fold calls onSuccess or onFailure; only the one for the active variant must
// be non-nil.
func Fold[E, U any](c Completable[E], onSuccess func() U, onFailure func(E) U) U {
	if !c.isFailed {
		if onSuccess == nil {
			panic(rop.NilArgument("onSuccess"))
		}
		return onSuccess()
	}
	if onFailure == nil {
		panic(rop.NilArgument("onFailure"))
	}
	return onFailure(c.err)
}

func Transform[E, U any](c Completable[E], f func(Completable[E]) U) U {
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	return f(c)
}
