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
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// ASCIIHost returns the host in the ASCII form usable for DNS resolution.
// A registered name is normalized to Unicode Normalization Form C and then
// converted with IDNA ToASCII, so "münchen.example" becomes
// "xn--mnchen-3ya.example". Bracketed IP literals, IPv4 addresses, plain
// ASCII names and the empty host pass through unchanged.
//
// Per RFC 3490, the NFC step must precede the IDNA conversion; composed and
// decomposed spellings of the same name map to the same ASCII label.
func (a Authority) ASCIIHost() (string, error) {
	host := a.host
	if host == "" || strings.HasPrefix(host, "[") {
		return host, nil
	}
	ascii, err := idna.ToASCII(norm.NFC.String(host))
	if err != nil {
		return "", err
	}
	return ascii, nil
}
