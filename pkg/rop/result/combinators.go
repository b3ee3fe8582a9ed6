package result

import "github.com/ib-77/ropresult/pkg/rop"

// FlatMap returns f(value) for a Success. A Failure is carried over to the
// new value type and f is not called or checked.
func FlatMap[V, U, E any](r Result[V, E], f func(V) Result[U, E]) Result[U, E] {
	if !r.isSuccess {
		return Result[U, E]{err: r.err}
	}
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	return f(r.value)
}

// Map returns Success(f(value)) for a Success and the re-typed Failure
// otherwise.
func Map[V, U, E any](r Result[V, E], f func(V) U) Result[U, E] {
	return FlatMap(r, func(v V) Result[U, E] {
		if f == nil {
			panic(rop.NilArgument("f"))
		}
		return Success[U, E](f(v))
	})
}

// FlatMapError returns f(err) for a Failure, which may be a Success. A
// Success is carried over to the new error type.
func FlatMapError[V, E, F any](r Result[V, E], f func(E) Result[V, F]) Result[V, F] {
	if r.isSuccess {
		return Result[V, F]{value: r.value, isSuccess: true}
	}
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	return f(r.err)
}

func MapError[V, E, F any](r Result[V, E], f func(E) F) Result[V, F] {
	return FlatMapError(r, func(e E) Result[V, F] {
		if f == nil {
			panic(rop.NilArgument("f"))
		}
		return Failure[V, F](f(e))
	})
}

// RecoverWithAs calls f when the error of a Failure is an F at runtime. The
// check is a type assertion on the error itself, wrapped errors are not
// unwrapped. Any other Failure, and every Success, is returned unchanged.
func RecoverWithAs[F, V, E any](r Result[V, E], f func(F) Result[V, E]) Result[V, E] {
	if r.isSuccess {
		return r
	}
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	if matched, ok := any(r.err).(F); ok {
		return f(matched)
	}
	return r
}

// RecoverAs is RecoverWithAs for a plain value. Failures whose error is not
// an F are returned unchanged without looking at f.
func RecoverAs[F, V, E any](r Result[V, E], f func(F) V) Result[V, E] {
	return RecoverWithAs(r, func(e F) Result[V, E] {
		if f == nil {
			panic(rop.NilArgument("f"))
		}
		return Success[V, E](f(e))
	})
}

// InstanceOf is a guard for RecoverWithIf/RecoverIf matching errors whose
// dynamic type is F.
func InstanceOf[F, E any]() func(E) bool {
	return func(e E) bool {
		_, ok := any(e).(F)
		return ok
	}
}

// Fold calls exactly one of onSuccess and onFailure. Only the function of the
// active variant must be non-nil.
func Fold[V, E, U any](r Result[V, E], onSuccess func(V) U, onFailure func(E) U) U {
	if r.isSuccess {
		if onSuccess == nil {
			panic(rop.NilArgument("onSuccess"))
		}
		return onSuccess(r.value)
	}
	if onFailure == nil {
		panic(rop.NilArgument("onFailure"))
	}
	return onFailure(r.err)
}

// Transform applies f to the Result itself.
func Transform[V, E, U any](r Result[V, E], f func(Result[V, E]) U) U {
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	return f(r)
}
