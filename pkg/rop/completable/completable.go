package completable

import (
	"fmt"
	"reflect"

	"github.com/ib-77/ropresult/pkg/rop"
)

type Completable[E any] struct {
	err      E
	isFailed bool
}

var _ rop.WithError[error] = Completable[error]{}

func Success[E any]() Completable[E] {
	return Completable[E]{}
}

// Failure panics with rop.ErrNilPayload if err is nil.
func Failure[E any](err E) Completable[E] {
	rop.RequirePayload(err, "error")
	return Completable[E]{err: err, isFailed: true}
}

// Of runs a and captures its outcome. A returned error or a panic becomes the
// Failure payload.
func Of(a rop.Action) (c Completable[error]) {
	if a == nil {
		panic(rop.NilArgument("a"))
	}

	defer func() {
		if p := recover(); p != nil {
			c = Failure(rop.Capture(p))
		}
	}()

	return FromError(a.Run())
}

// FromError is a Success for a nil err and a Failure otherwise.
func FromError(err error) Completable[error] {
	if err != nil {
		return Failure(err)
	}
	return Success[error]()
}

func (c Completable[E]) IsSuccess() bool {
	return !c.isFailed
}

func (c Completable[E]) IsFailure() bool {
	return c.isFailed
}

// UnsafeGetError returns the error, or panics with rop.ErrWrongVariant on a
// Success.
func (c Completable[E]) UnsafeGetError() E {
	if !c.isFailed {
		panic(rop.WrongVariant("UnsafeGetError", rop.SuccessVariant))
	}
	return c.err
}

// RecoverWith replaces a Failure with f(err). A Success is returned as is and
// f is not checked.
func (c Completable[E]) RecoverWith(f func(E) Completable[E]) Completable[E] {
	if !c.isFailed {
		return c
	}
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	return f(c.err)
}

// RecoverWithIf is RecoverWith applied only when guard(err) holds.
func (c Completable[E]) RecoverWithIf(guard func(E) bool, f func(E) Completable[E]) Completable[E] {
	if !c.isFailed {
		return c
	}
	if guard == nil {
		panic(rop.NilArgument("guard"))
	}
	if f == nil {
		panic(rop.NilArgument("f"))
	}
	if guard(c.err) {
		return f(c.err)
	}
	return c
}

func (c Completable[E]) OnSuccess(a func()) Completable[E] {
	if !c.isFailed {
		if a == nil {
			panic(rop.NilArgument("a"))
		}
		a()
	}
	return c
}

func (c Completable[E]) OnFailure(cb func(E)) Completable[E] {
	if c.isFailed {
		if cb == nil {
			panic(rop.NilArgument("c"))
		}
		cb(c.err)
	}
	return c
}

// Equal compares variants and then errors by deep equality. == on the
// container compares an error interface by identity, so value-equal errors
// built separately are Equal but not ==.
func (c Completable[E]) Equal(other Completable[E]) bool {
	if c.isFailed != other.isFailed {
		return false
	}
	return !c.isFailed || reflect.DeepEqual(c.err, other.err)
}

func (c Completable[E]) Hash() uint64 {
	if c.isFailed {
		return rop.Hash(rop.VariantOf(c), c.err)
	}
	return rop.Hash(rop.VariantOf(c), nil)
}

func (c Completable[E]) String() string {
	if c.isFailed {
		return fmt.Sprintf("Failure[error=%v]", c.err)
	}
	return "Success[]"
}
