package result

import (
	"fmt"
	"reflect"

	"github.com/ib-77/ropresult/pkg/rop"
)

// Result is either a Success holding a value or a Failure holding an error.
// The zero Result is not a valid value; use the factories.
type Result[V, E any] struct {
	value     V
	err       E
	isSuccess bool
}

var _ rop.WithValue[int, error] = Result[int, error]{}

// Success panics with rop.ErrNilPayload if value is nil.
func Success[V, E any](value V) Result[V, E] {
	rop.RequirePayload(value, "value")
	return Result[V, E]{
		value:     value,
		isSuccess: true,
	}
}

// Failure panics with rop.ErrNilPayload if err is nil.
func Failure[V, E any](err E) Result[V, E] {
	rop.RequirePayload(err, "error")
	return Result[V, E]{
		err:       err,
		isSuccess: false,
	}
}

// Of calls s and captures its outcome. A returned error or a panic becomes
// the Failure payload; a nil value with a nil error becomes a Failure
// wrapping rop.ErrNilPayload.
func Of[V any](s rop.Supplier[V]) (r Result[V, error]) {
	if s == nil {
		panic(rop.NilArgument("s"))
	}

	defer func() {
		if p := recover(); p != nil {
			r = Failure[V](rop.Capture(p))
		}
	}()

	v, err := s.Get()
	if err != nil {
		return Failure[V](err)
	}
	return Success[V, error](v)
}

// FromPair converts a conventional (value, error) return.
func FromPair[V any](value V, err error) Result[V, error] {
	return Of(func() (V, error) { return value, err })
}

func (r Result[V, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[V, E]) IsFailure() bool {
	return !r.isSuccess
}

// UnsafeGet returns the value, or panics with rop.ErrWrongVariant on a Failure.
func (r Result[V, E]) UnsafeGet() V {
	if !r.isSuccess {
		panic(rop.WrongVariant("UnsafeGet", rop.FailureVariant))
	}
	return r.value
}

// UnsafeGetError returns the error, or panics with rop.ErrWrongVariant on a
// Success.
func (r Result[V, E]) UnsafeGetError() E {
	if r.isSuccess {
		panic(rop.WrongVariant("UnsafeGetError", rop.SuccessVariant))
	}
	return r.err
}

// RecoverWith replaces a Failure with f(err). A Success is returned as is and
// f is not checked.
func (r Result[V, E]) RecoverWith(f func(E) Result[V, E]) Result[V, E] {
	if r.isSuccess {
		return r
	}
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	return f(r.err)
}

// RecoverWithIf is RecoverWith applied only when guard(err) holds. A
// mismatching Failure is returned unchanged.
func (r Result[V, E]) RecoverWithIf(guard func(E) bool, f func(E) Result[V, E]) Result[V, E] {
	if r.isSuccess {
		return r
	}
	if guard == nil {
		panic(rop.NilArgument("guard"))
	}
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	if guard(r.err) {
		return f(r.err)
	}
	return r
}

// Recover turns a Failure into Success(f(err)).
func (r Result[V, E]) Recover(f func(E) V) Result[V, E] {
	if r.isSuccess {
		return r
	}
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	return r.RecoverWith(func(e E) Result[V, E] {
		return Success[V, E](f(e))
	})
}

// RecoverIf is Recover limited to errors accepted by guard. f is only
// required once guard has matched.
func (r Result[V, E]) RecoverIf(guard func(E) bool, f func(E) V) Result[V, E] {
	return r.RecoverWithIf(guard, func(e E) Result[V, E] {
		if f == nil {
			panic(rop.NilArgument("f"))
		}
		return Success[V, E](f(e))
	})
}

// OrElse returns the value of a Success, other otherwise.
func (r Result[V, E]) OrElse(other V) V {
	if r.isSuccess {
		return r.value
	}
	if rop.IsNil(other) {
		panic(rop.NilArgument("other"))
	}
	return other
}

func (r Result[V, E]) OrElseGet(s func() V) V {
	if r.isSuccess {
		return r.value
	}
	if s == nil {
		panic(rop.NilArgument("s"))
	}
	return s()
}

// OrElseWith derives the fallback from the error.
func (r Result[V, E]) OrElseWith(f func(E) V) V {
	if r.isSuccess {
		return r.value
	}
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	return f(r.err)
}

// OnSuccess calls c with the value of a Success. Failures skip it.
func (r Result[V, E]) OnSuccess(c func(V)) Result[V, E] {
	if r.isSuccess {
		if c == nil {
			panic(rop.NilArgument("c"))
		}
		c(r.value)
	}
	return r
}

// OnFailure calls c with the error of a Failure. Successes skip it.
func (r Result[V, E]) OnFailure(c func(E)) Result[V, E] {
	if !r.isSuccess {
		if c == nil {
			panic(rop.NilArgument("c"))
		}
		c(r.err)
	}
	return r
}

// Equal compares variants and then payloads by deep equality.
//
// The container is also comparable with == when V and E are, but == compares
// pointer and interface payloads by identity: two Failure(errors.New("x"))
// values are Equal and share a Hash while == reports false. Use Equal and Hash
// when payloads such as errors need value semantics, for example as map keys.
func (r Result[V, E]) Equal(other Result[V, E]) bool {
	if r.isSuccess != other.isSuccess {
		return false
	}
	if r.isSuccess {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.err, other.err)
}

// Hash is consistent with Equal.
func (r Result[V, E]) Hash() uint64 {
	if r.isSuccess {
		return rop.Hash(rop.VariantOf(r), r.value)
	}
	return rop.Hash(rop.VariantOf(r), r.err)
}

func (r Result[V, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success[value=%v]", r.value)
	}
	return fmt.Sprintf("Failure[error=%v]", r.err)
}
