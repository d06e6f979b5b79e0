// Package authz evaluates permission requirements against an authenticated
// principal's claim set.
//
// The upstream identity provider may emit permission grants in either of
// two encodings: a single claim whose value joins every permission with
// commas, or one claim per permission. The evaluator accepts both.
package authz

import (
	"strings"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/server/auth"
)

// Requirement is a single required permission string, e.g. "write:secrets".
// Requirements are created at route-registration time and live for the
// process lifetime.
type Requirement struct {
	permission string
}

// NewRequirement builds a requirement for the given permission.
func NewRequirement(permission string) Requirement {
	return Requirement{permission: permission}
}

// Permission returns the required permission string.
func (r Requirement) Permission() string {
	return r.permission
}

// Evaluator decides whether a principal holds a required permission.
// It is stateless and safe for concurrent use.
type Evaluator struct {
	claimType string
}

// NewEvaluator returns an evaluator reading grants from the standard
// permissions claim type.
func NewEvaluator() *Evaluator {
	return &Evaluator{claimType: common.PermissionsClaimType}
}

// Evaluate reports whether the principal holds the required permission.
//
// Every claim of the permissions type is split on ",", each token is
// trimmed of surrounding whitespace, empty tokens are dropped, and the
// requirement must match a token exactly (case-sensitive, no wildcards).
// A missing claim or no matching token is an ordinary negative result, not
// an error; the surrounding HTTP layer turns it into a 403. A nil
// principal or empty requirement is a caller bug and yields
// common.ErrInvalidArgument.
func (e *Evaluator) Evaluate(p *auth.Principal, req Requirement) (bool, error) {
	if p == nil || req.permission == "" {
		return false, common.ErrInvalidArgument
	}

	for _, value := range p.Values(e.claimType) {
		for _, token := range strings.Split(value, ",") {
			if strings.TrimSpace(token) == req.permission {
				return true, nil
			}
		}
	}

	return false, nil
}
