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

import "strings"

const (
	// authorityPrefixLength is the length of the string "//".
	authorityPrefixLength = 2
)

// Parse parses and validates a string as a URI, resolving the scheme name
// against this registry. On success it returns an immutable Uri value; on
// failure it returns a *ParseError wrapping one of *UnknownSchemeError,
// *InvalidHostError or *InvalidPortError.
//
// Parsing is purely delimiter-driven and preserves component text
// byte-for-byte: nothing is percent-decoded, case-folded or resolved.
func (r *Registry) Parse(s string) (Uri, error) {
	u, err := r.parseUri(s)
	if err != nil {
		return Uri{}, newParseError(err)
	}
	return u, nil
}

// parseUri performs the top-level split of a URI string.
//
// The split order matters: the scheme colon is found first, then the "//"
// check decides between the hierarchical and non-hierarchical forms, then
// the authority is delimited before path, query and fragment are cut from
// what remains. Several of these boundaries are ambiguous without the ones
// before them (an IPv6 ":" vs. the port ":", a path "/" vs. the authority
// terminator), which is why each step operates only on the tail left over
// by the previous one.
func (r *Registry) parseUri(s string) (Uri, error) {
	var u Uri

	schemeName := s
	rest := ""
	if colon := strings.Index(s, ":"); colon != -1 {
		schemeName = s[:colon]
		rest = s[colon+1:]
	}
	scheme, err := r.Lookup(schemeName)
	if err != nil {
		return Uri{}, err
	}
	u.scheme = scheme

	if !strings.HasPrefix(rest, "//") {
		// Non-hierarchical form ("urn:a:b", "mailto:a@b", "file:/p"):
		// the whole remainder is the path. No query/fragment splitting
		// happens here; any "?" or "#" stays embedded in the path.
		u.path = rest
		return u, nil
	}

	authorityText := rest[authorityPrefixLength:]
	pathAndRest := ""
	if i := strings.IndexAny(authorityText, "/?#"); i != -1 {
		pathAndRest = authorityText[i:]
		authorityText = authorityText[:i]
	}
	authority, err := splitAuthority(authorityText)
	if err != nil {
		return Uri{}, err
	}
	u.authority = authority
	u.hasAuthority = true

	if q := strings.Index(pathAndRest, "?"); q != -1 {
		u.path = pathAndRest[:q]
		query, fragment, hasFragment := cutFragment(pathAndRest[q+1:])
		u.setQuery(query)
		if hasFragment {
			u.setFragment(fragment)
		}
	} else {
		path, fragment, hasFragment := cutFragment(pathAndRest)
		u.path = path
		if hasFragment {
			u.setFragment(fragment)
		}
	}
	return u, nil
}

// cutFragment splits a component tail at the first "#".
func cutFragment(s string) (before, fragment string, found bool) {
	if i := strings.Index(s, "#"); i != -1 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// setQuery records a parsed query, normalizing the empty string to absent.
func (u *Uri) setQuery(query string) {
	if query == "" {
		return
	}
	u.query = query
	u.hasQuery = true
}

// setFragment records a parsed fragment, normalizing the empty string to
// absent.
func (u *Uri) setFragment(fragment string) {
	if fragment == "" {
		return
	}
	u.fragment = fragment
	u.hasFragment = true
}
