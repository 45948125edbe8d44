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

import (
	"strconv"
	"strings"
)

// Authority represents the userinfo@host:port component of a hierarchical
// URI, per RFC 3986, Section 3.2. It is an immutable value type with
// structural equality: two Authority values compare equal with == exactly
// when their components and presence flags match.
//
// The host is either a bracketed IP literal ("[...]", used for IPv6 and
// IPvFuture), an IPv4 dotted-decimal string, or a registered name, and may
// be the empty string (the canonical form of an empty authority, as in
// "file:///path"). Userinfo distinguishes absent from empty: an authority
// beginning with "@" has an empty userinfo, one without "@" has none.
type Authority struct {
	userinfo    string
	hasUserinfo bool
	host        string
	port        int
	hasPort     bool
}

// NewAuthority creates an Authority with the given host, no userinfo and
// no port. Use WithUserinfo and WithPort to build richer values.
func NewAuthority(host string) Authority {
	return Authority{host: host}
}

// WithUserinfo returns a copy of the Authority with the given userinfo.
func (a Authority) WithUserinfo(userinfo string) Authority {
	a.userinfo = userinfo
	a.hasUserinfo = true
	return a
}

// WithPort returns a copy of the Authority with the given port.
func (a Authority) WithPort(port int) Authority {
	a.port = port
	a.hasPort = true
	return a
}

// Userinfo returns the userinfo component and a boolean indicating whether
// it was present. A present userinfo may be the empty string.
func (a Authority) Userinfo() (string, bool) {
	return a.userinfo, a.hasUserinfo
}

// Host returns the host component. Bracketed IP literals keep their
// brackets. The host may be the empty string.
func (a Authority) Host() string {
	return a.host
}

// Port returns the port and a boolean indicating whether a ":port" suffix
// was present.
func (a Authority) Port() (int, bool) {
	return a.port, a.hasPort
}

// ParseAuthority parses an authority string into its userinfo, host and
// port components. The input must be the substring strictly between "//"
// and the next "/", "?", "#" or end of string; it must not itself contain
// those delimiters.
//
// Errors are *InvalidPortError for a non-numeric port substring and
// *InvalidHostError for a bracket literal opened but never closed, both
// wrapped in a *ParseError.
func ParseAuthority(s string) (Authority, error) {
	a, err := splitAuthority(s)
	if err != nil {
		return Authority{}, newParseError(err)
	}
	return a, nil
}

// splitAuthority deconstructs an authority string. The split order is fixed:
// userinfo first (everything before the first "@"), then host, then port.
func splitAuthority(authority string) (Authority, error) {
	var a Authority

	hostport := authority
	if at := strings.Index(authority, "@"); at != -1 {
		// An authority-leading "@" yields an empty userinfo, not an
		// absent one.
		a.userinfo = authority[:at]
		a.hasUserinfo = true
		hostport = authority[at+1:]
	}

	var portText string
	var hasPortText bool
	if strings.HasPrefix(hostport, "[") {
		end := strings.Index(hostport, "]")
		if end == -1 || end == len(hostport)-1 {
			// No closing bracket, or nothing after it: the whole
			// remainder is the host. The unterminated case is caught
			// by the post-check below, not here.
			a.host = hostport
		} else {
			a.host = hostport[:end+1]
			rest := hostport[end+1:]
			if rest[0] != ':' {
				return Authority{}, &InvalidPortError{Port: rest}
			}
			portText = rest[1:]
			hasPortText = true
		}
	} else if colon := strings.Index(hostport, ":"); colon != -1 {
		a.host = hostport[:colon]
		portText = hostport[colon+1:]
		hasPortText = true
	} else {
		a.host = hostport
	}

	// An empty port substring ("host:") is absent, not an error.
	if hasPortText && portText != "" {
		port, err := strconv.ParseUint(portText, 10, 32)
		if err != nil {
			return Authority{}, &InvalidPortError{Port: portText}
		}
		a.port = int(port)
		a.hasPort = true
	}

	if strings.HasPrefix(a.host, "[") && !strings.HasSuffix(a.host, "]") {
		return Authority{}, &InvalidHostError{Host: a.host}
	}
	return a, nil
}

// String recomposes the authority as "userinfo@host:port", with the
// "userinfo@" and ":port" parts each omitted independently when absent.
// It is the exact inverse of ParseAuthority for every value ParseAuthority
// produces; hand-built values with delimiters inside components are
// rendered as-is, without escaping.
func (a Authority) String() string {
	var b strings.Builder
	if a.hasUserinfo {
		b.WriteString(a.userinfo)
		b.WriteByte('@')
	}
	b.WriteString(a.host)
	if a.hasPort {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(a.port))
	}
	return b.String()
}
