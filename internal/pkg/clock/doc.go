// Package clock provides the time source used for audit timestamps.
//
// Services depend on the Clocker interface instead of calling time.Now()
// directly, so tests can assert exactly when (and whether) the current time
// was read.
package clock
