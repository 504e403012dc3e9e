// Package sanitizer provides the stateless string helpers used by the form
// validators: trimming, code point aware length and truncation, control
// character removal, phone character filtering, list splitting and repeated
// percent-decoding.
//
// Helpers never return errors. They always fall back to a safe result, usually
// the input itself or an empty string. The higher-order Apply and Compose
// helpers build sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveSpaces,
//	    sanitizer.KeepPhoneChars,
//	)
//
//	phone := clean(" +420 777-123 ") // "+420777123"
//
// There is no global state, so every helper is safe for concurrent use.
package sanitizer
