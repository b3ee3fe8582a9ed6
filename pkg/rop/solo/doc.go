// Package solo contains railway helpers for results whose failure channel is
// a plain Go error, result.Result[T, error]. They cover the common steps of
// a validation pipeline that the generic result package leaves to callers.
//
// Highlights:
// - Validate/AndValidate: apply validation producing failure on invalid input
// - ValidateAll: run several checks and join their errors
// - Try: call a function (Out, error) and convert error to failure
// - FailOnError: keep the value unless a check returns an error
package solo
