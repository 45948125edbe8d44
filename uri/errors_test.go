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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"errors"
	"testing"
)

// TestErrorMessages tests the Error() formatting of the typed errors and
// the ParseError wrapper.
func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "invalid host",
			err:      &InvalidHostError{Host: "[::1"},
			expected: `invalid host "[::1"`,
		},
		{
			name:     "invalid port",
			err:      &InvalidPortError{Port: "abc"},
			expected: `invalid port number "abc"`,
		},
		{
			name:     "unknown scheme",
			err:      &UnknownSchemeError{Name: "gopher"},
			expected: `unknown scheme "gopher"`,
		},
		{
			name:     "parse error wrapper",
			err:      newParseError(&InvalidPortError{Port: "abc"}),
			expected: `URI parse error: invalid port number "abc"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// TestNewParseError tests the wrapper constructor: nil passes through, and
// the wrapped error stays reachable through Unwrap.
func TestNewParseError(t *testing.T) {
	if newParseError(nil) != nil {
		t.Error("newParseError(nil) is not nil")
	}

	inner := &InvalidHostError{Host: "[abc"}
	wrapped := newParseError(inner)
	if !errors.Is(wrapped, inner) {
		t.Error("errors.Is does not reach the wrapped error")
	}
	var hostErr *InvalidHostError
	if !errors.As(wrapped, &hostErr) || hostErr.Host != "[abc" {
		t.Errorf("errors.As through ParseError = %v, want host \"[abc\"", hostErr)
	}
	if wrapped.Unwrap() != inner {
		t.Error("Unwrap() did not return the wrapped error")
	}
}
