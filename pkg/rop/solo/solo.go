package solo

import (
	"errors"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/result"
)

func Validate[T any](input T,
	validate func(in T) (isValid bool, errMsg string)) result.Result[T, error] {
	return AndValidate(result.Success[T, error](input), validate)
}

func AndValidate[T any](input result.Result[T, error],
	validate func(in T) (valid bool, errMsg string)) result.Result[T, error] {

	return result.FlatMap(input, func(in T) result.Result[T, error] {
		if isValid, errMsg := validate(in); !isValid {
			return result.Failure[T](errors.New(errMsg))
		}
		return input
	})
}

// ValidateAll runs every check on the value of input and joins the errors of
// the failing ones. With breakOnError it stops at the first failing check.
func ValidateAll[T any](
	input result.Result[T, error],
	breakOnError bool, // exit on first error
	checks ...func(in T) error) result.Result[T, error] {

	if input.IsFailure() || len(checks) == 0 {
		return input
	}

	value := input.UnsafeGet()
	var errs []error
	for _, check := range checks {
		err := check(value)
		if rop.IsNil(err) {
			continue
		}

		errs = append(errs, rop.GetErrors(err)...)
		if breakOnError {
			break
		}
	}

	if len(errs) == 0 {
		return input
	}
	return result.Failure[T](errors.Join(errs...))
}

func Try[In, Out any](input result.Result[In, error],
	onTryExecute func(r In) (Out, error)) result.Result[Out, error] {

	return result.FlatMap(input, func(in In) result.Result[Out, error] {
		out, err := onTryExecute(in)
		return result.FromPair(out, err)
	})
}

func FailOnError[T any](input result.Result[T, error],
	maybeErr func(in T) error) result.Result[T, error] {

	return result.FlatMap(input, func(in T) result.Result[T, error] {
		if err := maybeErr(in); err != nil {
			return result.Failure[T](err)
		}
		return input
	})
}
