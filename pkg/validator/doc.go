// Package validator sanitizes and checks raw form submissions.
//
// A Validator takes one raw submitted Value, cleans it and returns either a
// safe normalized value or null. Failures never surface as Go errors: they are
// appended to the Field being validated as ValidationError values carrying a
// code, the message template, its parameters and the formatted message.
// Configuration problems are the only errors a validator returns, and they are
// reported from constructors, setters and Bind.
//
// # Validators
//
//   - Length       code point length bounds (minlength/maxlength)
//   - Pattern      regular expression, bare or delimited with flags
//   - Email        one address or a comma separated list
//   - URL          configurable URL grammar, host/port allow-lists, DNS check
//   - Phone        digits and plus sign only
//   - Password     length and character class strength rules
//   - SafeString   plain text without markup or control characters
//
// Each validator owns a Catalog of message templates indexed by Code.
// Templates use positional placeholders: {0} is the field display name, {1}
// and later are validator parameters. WithMessages overrides templates per
// validator without touching the defaults.
//
// # Binding
//
// Bind reconciles settings shared with the field (min/max length, pattern,
// multiple). The first configured value wins: an unset field receives the
// validator's value, an unset validator adopts the field's. Two different
// values fail with ErrConflictingConfig. Binding twice is harmless.
//
// # Registry
//
// Fields refer to validators through Ref values: Named("email") is resolved
// from a Registry at bind time, Instance(v) uses a configured validator as is.
//
//	reg := validator.DefaultRegistry()
//	_ = reg.SetMessages(validator.NameEmail, map[validator.Code]string{
//	    validator.EmailInvalid: "Please check the address in '{0}'.",
//	})
//	v, err := reg.Resolve(validator.NameEmail)
//
// # Error Handling
//
// ValidationErrors implements error, so a pipeline can hand the collected
// failures back to callers. ExtractValidationErrors and IsValidationError work
// through wrapped errors.
package validator
