// Package jwt issues and verifies the bearer tokens guarding the HTTP API.
//
// Tokens are HS512-signed, carry the acting user's id as both the subject and
// a typed claim, and are stored on the request context once verified so
// handlers can stamp CreatedBy and UpdatedBy.
package jwt
