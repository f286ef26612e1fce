// Package validator provides a small validation abstraction for request and
// domain structs.
//
// Business code should depend on the Validator interface so validation can be
// shared and tested consistently. Record services use FirstViolation, which
// stops at the first failing field in declaration order, while request
// handling uses Validate to report every failing field at once.
package validator
