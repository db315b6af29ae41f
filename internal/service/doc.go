// Package service implements the business logic for ConectaVagas.
//
// Two services cover the whole domain:
//
//   - AuthService: company registration, login, and bearer-token
//     verification. Passwords are bcrypt-hashed and never leave the
//     service in plaintext. Unknown-email and wrong-password logins
//     fail with the same error so accounts cannot be enumerated.
//   - JobService: job publishing (validation + ownership stamping),
//     retrieval, conjunctive filtered listing with pagination, and
//     owner-only deletion.
//
// Services depend on repository interfaces declared in this package,
// so tests can substitute in-memory implementations. Errors returned
// to handlers are either the sentinels in errors.go or a
// *ValidationError carrying field-level detail.
package service
