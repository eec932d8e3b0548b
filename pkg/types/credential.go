// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"net/http"
	"sort"
)

// Credential maps session cookie names to values. It is resolved once per
// run and attached to every outbound request.
type Credential map[string]string

// Apply adds each cookie to req in sorted name order.
func (c Credential) Apply(req *http.Request) {
	for _, name := range c.Names() {
		req.AddCookie(&http.Cookie{Name: name, Value: c[name]})
	}
}

// Names returns the cookie names in sorted order.
func (c Credential) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
