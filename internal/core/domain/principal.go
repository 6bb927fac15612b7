package domain

import "context"

// Principal is the authenticated caller bound to a single request. It is
// derived from a User on every request and never persisted.
type Principal struct {
	ID        string
	Username  string
	Email     string
	Role      Role
	Authority string
}

// NewPrincipal builds the request principal for u. The password hash is not copied.
func NewPrincipal(u *User) *Principal {
	return &Principal{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Authority: u.Role.Authority(),
	}
}

// HasRole reports whether p holds any of roles.
func (p *Principal) HasRole(roles ...Role) bool {
	if p == nil {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

type principalContextKey struct{}

// ContextWithPrincipal returns a copy of ctx carrying p.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the principal bound to ctx, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(*Principal)
	return p, ok && p != nil
}
