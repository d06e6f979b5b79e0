// Package auth implements bearer-token authentication for the server:
// HS256 JWT validation, the Principal claim model handed to the
// authorization layer, and request-context plumbing.
package auth

// Claim is a single typed fact about a principal. A principal may carry
// several claims of the same type.
type Claim struct {
	Type  string
	Value string
}

// Principal is the authenticated identity of a caller: a stable subject
// plus an ordered claim multimap. It is built once per request by the
// authentication middleware and treated as read-only afterwards.
type Principal struct {
	Subject string
	Claims  []Claim
}

// Values returns the values of every claim with the given type, in claim
// order. It returns nil when the principal has no such claim.
func (p *Principal) Values(claimType string) []string {
	var values []string
	for _, c := range p.Claims {
		if c.Type == claimType {
			values = append(values, c.Value)
		}
	}
	return values
}
