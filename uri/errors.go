/*
Copyright 2026 Kvasir Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package uri

import "fmt"

// ParseError is the error type returned by parsing functions in this package.
// It contains a descriptive message and wraps the specific underlying error,
// which callers can recover with errors.As: one of *InvalidHostError,
// *InvalidPortError or *UnknownSchemeError.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URI parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a new ParseError, wrapping the original error.
// It returns nil if the input error is nil.
func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Err: err}
}

// InvalidHostError reports a host component whose bracket literal was opened
// but never properly closed, e.g. "[::1" with no terminating "]". It is
// detected by a single post-check after the authority has been split, so the
// Host field carries the full text that was taken as the host.
type InvalidHostError struct {
	Host string
}

// Error formats the error message with the offending host text.
func (e *InvalidHostError) Error() string {
	return fmt.Sprintf("invalid host %q", e.Host)
}

// InvalidPortError reports a port substring that is non-empty but not
// parseable as a non-negative integer. The Port field carries the offending
// text exactly as it appeared after the port delimiter.
type InvalidPortError struct {
	Port string
}

// Error formats the error message with the offending port text.
func (e *InvalidPortError) Error() string {
	return fmt.Sprintf("invalid port number %q", e.Port)
}

// UnknownSchemeError reports a scheme name that is not present in the
// Registry consulted by Parse. Lookup is case-sensitive; a registry holding
// "http" does not recognize "HTTP".
type UnknownSchemeError struct {
	Name string
}

// Error formats the error message with the unrecognized scheme name.
func (e *UnknownSchemeError) Error() string {
	return fmt.Sprintf("unknown scheme %q", e.Name)
}
