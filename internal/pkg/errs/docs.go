// Package errs provides the generic error kinds shared across the logistics
// application.
//
// The package includes:
//   - ValueIsRequiredError: a mandatory argument or dependency is missing
//   - ValueIsInvalidError: a value is present but malformed
//   - ObjectNotFoundError: a lookup by identifier matched nothing
//
// Each kind follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel, so callers
//     classify failures with errors.Is
//
// Domain specific failures (invalid deliveries, invalid freight) live next to
// the models that raise them and follow the same shape.
package errs
