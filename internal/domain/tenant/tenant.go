// Package tenant carries the request-scoped workshop identity.
//
// Every store operation takes the tenant explicitly; there is no ambient
// "current workshop" state anywhere in the service.
package tenant

import "strings"

type Tenant struct {
	OficinaID string
	UserID    string
	Role      string
}

// Valid reports whether the tenant identifies a workshop.
func (t Tenant) Valid() bool {
	return strings.TrimSpace(t.OficinaID) != ""
}
