package config

import (
	"io"
	"time"
)

// Config defines a set of methods for retrieving configuration values of
// various types. Missing keys yield the zero value of the requested type.
type Config interface {
	io.Closer

	// GetBool retrieves the value associated with key as a bool.
	GetBool(key string) bool

	// GetString retrieves the value associated with key as a string.
	GetString(key string) string

	// GetInt retrieves the value associated with key as an int.
	GetInt(key string) int

	// GetInt32 retrieves the value associated with key as an int32.
	GetInt32(key string) int32

	// GetFloat64 retrieves the value associated with key as a float64.
	GetFloat64(key string) float64

	// GetSecond retrieves the value associated with key as a number of seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value associated with key as a number of minutes.
	GetMinute(key string) time.Duration

	// GetBinary retrieves the value associated with key decoded from base64.
	GetBinary(key string) []byte

	// GetArray retrieves the value associated with key as a slice of strings.
	// The value is stored with format <element1>,<element2>,...
	// Elements are trimmed and empty elements are dropped.
	GetArray(key string) []string
}
