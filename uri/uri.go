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

// Package uri provides types and functions for decomposing and recomposing
// Uniform Resource Identifiers according to the generic syntax of RFC 3986.
//
// The package offers three main types:
//   - Uri: a full URI, split into scheme, optional authority, path, optional
//     query and optional fragment.
//   - Authority: the userinfo@host:port component of a hierarchical URI.
//   - Scheme: a single-value wrapper around a scheme name, obtained from a
//     Registry of recognized schemes.
//
// Key features include:
//   - Delimiter-driven splitting of a URI string into its components, with
//     IPv6/IPvFuture bracket literals handled in the authority.
//   - Exact recomposition: Parse followed by String returns the input for
//     every string already in canonical form.
//   - Strict preservation of the absent-vs-empty distinction for userinfo,
//     query and fragment.
//   - Support for JSON marshalling and unmarshalling.
//
// The package deliberately does not percent-decode, resolve relative
// references, or normalize case and dot-segments; components are carried
// byte-for-byte as written.
package uri

import (
	"encoding/json"
	"strings"
)

// Uri represents a full URI, decomposed per RFC 3986, Section 3.
// It is an immutable value type; two Uri values compare equal with ==
// exactly when all of their components (including presence flags) match.
//
// The authority is present if and only if the original string contained
// "//" immediately after the scheme colon, so "file:///p" carries an
// authority with an empty host while "file:/p" carries none.
type Uri struct {
	scheme       Scheme
	authority    Authority
	hasAuthority bool
	path         string
	query        string
	hasQuery     bool
	fragment     string
	hasFragment  bool
}

// Parse parses and validates a string as a URI, looking the scheme name up
// in the DefaultRegistry. See (*Registry).Parse for the full contract.
func Parse(s string) (Uri, error) {
	return DefaultRegistry.Parse(s)
}

// MustParse is like Parse but panics on error. It is intended for URI
// literals in tests and variable initializers.
func MustParse(s string) Uri {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Scheme returns the scheme component of the URI. It is always present.
func (u Uri) Scheme() Scheme {
	return u.scheme
}

// Authority returns the authority component of the URI and a boolean
// indicating whether it was present. The leading "//" is not included.
// A present authority may still have an empty host, as in "file:///p".
func (u Uri) Authority() (Authority, bool) {
	return u.authority, u.hasAuthority
}

// Path returns the path component of the URI. A path is always present,
// though it may be an empty string.
func (u Uri) Path() string {
	return u.path
}

// Query returns the query component of the URI (the part after "?", without
// the "?") and a boolean indicating whether it was present. A zero-length
// query component parses as absent.
func (u Uri) Query() (string, bool) {
	return u.query, u.hasQuery
}

// Fragment returns the fragment component of the URI (the part after "#",
// without the "#") and a boolean indicating whether it was present. A
// zero-length fragment component parses as absent.
func (u Uri) Fragment() (string, bool) {
	return u.fragment, u.hasFragment
}

// Hierarchical reports whether the URI carries an authority component,
// i.e. whether its scheme-specific part began with "//".
func (u Uri) Hierarchical() bool {
	return u.hasAuthority
}

// String recomposes the URI into its canonical string form. For every Uri
// produced by Parse, re-parsing the result of String yields an equal value.
func (u Uri) String() string {
	var b strings.Builder
	b.WriteString(u.scheme.Name())
	b.WriteByte(':')
	if !u.hasAuthority {
		// Non-hierarchical form: everything after the colon is the path.
		b.WriteString(u.path)
		return b.String()
	}
	b.WriteString("//")
	b.WriteString(u.authority.String())
	b.WriteString(u.path)
	if u.hasQuery {
		b.WriteByte('?')
		b.WriteString(u.query)
	}
	if u.hasFragment {
		b.WriteByte('#')
		b.WriteString(u.fragment)
	}
	return b.String()
}

// MarshalJSON implements the json.Marshaler interface, encoding the Uri as
// a JSON string in its canonical form.
func (u Uri) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a JSON
// string into a Uri, performing full validation in the process.
func (u *Uri) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
