// Package formkit is server side sanitization and validation for HTML form
// fields.
//
// The building blocks live under pkg:
//
//   - validator: the Validator contract, error catalogs, the registry and the
//     length, pattern, email, url, phone, password and safe_string validators.
//   - field: field kinds with their HTML properties, binding and the validate
//     pipeline.
//   - messages: message overrides loaded from YAML or JSON files.
//   - config: FORMKIT_* environment settings.
//   - httpserver: the validation HTTP API.
//
// The formcheck command under cmd wires them into a CLI and a server.
package formkit
