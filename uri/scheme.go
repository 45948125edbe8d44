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

import "sync"

// Scheme is an immutable single-value wrapper around a URI scheme name,
// e.g. "https" or "urn". The name is carried with the case it was registered
// under, and two Scheme values compare equal only when their names match
// exactly. RFC 3986 treats scheme names as case-insensitive; callers that
// need case-insensitive matching must lowercase before lookup, the registry
// does not normalize.
type Scheme struct {
	name string
}

// Name returns the scheme name as registered.
func (s Scheme) Name() string {
	return s.name
}

// String returns the scheme name. It implements fmt.Stringer.
func (s Scheme) String() string {
	return s.name
}

// Registry is a lookup table mapping recognized scheme names to Scheme
// values. The URI parser consults a Registry for its scheme-lookup step; a
// name missing from the registry is a parse failure, never a silent default.
//
// A Registry is safe for concurrent use: registration takes a write lock,
// lookups take a read lock.
type Registry struct {
	mu      sync.RWMutex
	schemes map[string]Scheme
}

// NewRegistry creates a Registry recognizing the given scheme names.
func NewRegistry(names ...string) *Registry {
	r := &Registry{schemes: make(map[string]Scheme, len(names))}
	for _, name := range names {
		r.schemes[name] = Scheme{name: name}
	}
	return r
}

// Register adds a scheme name to the registry and returns its Scheme value.
// Registering a name that is already present is a no-op returning the
// existing value.
func (r *Registry) Register(name string) Scheme {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.schemes[name]; ok {
		return s
	}
	s := Scheme{name: name}
	r.schemes[name] = s
	return s
}

// Lookup resolves a scheme name to its Scheme value. It returns an
// *UnknownSchemeError if the name has not been registered.
func (r *Registry) Lookup(name string) (Scheme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemes[name]
	if !ok {
		return Scheme{}, &UnknownSchemeError{Name: name}
	}
	return s, nil
}

// DefaultRegistry holds the scheme names recognized by the package-level
// Parse function. It is pre-populated with common IANA-registered schemes
// in their lowercase form and may be extended with Register.
var DefaultRegistry = NewRegistry(
	"http",
	"https",
	"file",
	"ftp",
	"urn",
	"mailto",
	"ws",
	"wss",
	"tel",
	"data",
)

// LookupScheme resolves a scheme name against the DefaultRegistry.
func LookupScheme(name string) (Scheme, error) {
	return DefaultRegistry.Lookup(name)
}
