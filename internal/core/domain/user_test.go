package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{
		"USER":    RoleUser,
		"coach":   RoleCoach,
		" Admin ": RoleAdmin,
	} {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseRole("SUPERUSER")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRole_Authority(t *testing.T) {
	assert.Equal(t, "ROLE_USER", RoleUser.Authority())
	assert.Equal(t, "ROLE_COACH", RoleCoach.Authority())
	assert.Equal(t, "ROLE_ADMIN", RoleAdmin.Authority())
	assert.Empty(t, Role("GUEST").Authority())
}

func TestNewPrincipal_OmitsPasswordHash(t *testing.T) {
	u := &User{ID: "u1", Username: "alice", Email: "alice@x.com", PasswordHash: "$2a$10$abc", Role: RoleCoach}
	p := NewPrincipal(u)

	assert.Equal(t, &Principal{ID: "u1", Username: "alice", Email: "alice@x.com", Role: RoleCoach, Authority: "ROLE_COACH"}, p)
	assert.Equal(t, UserSummary{ID: "u1", Username: "alice", Email: "alice@x.com", Role: RoleCoach}, u.Summary())
}

func TestPrincipal_HasRole(t *testing.T) {
	var anonymous *Principal
	assert.False(t, anonymous.HasRole(RoleUser, RoleAdmin))

	p := &Principal{Role: RoleCoach}
	assert.True(t, p.HasRole(RoleAdmin, RoleCoach))
	assert.False(t, p.HasRole(RoleAdmin))
}

func TestPrincipalContext(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)

	_, ok = PrincipalFromContext(ContextWithPrincipal(context.Background(), nil))
	assert.False(t, ok)

	want := &Principal{ID: "u1"}
	got, ok := PrincipalFromContext(ContextWithPrincipal(context.Background(), want))
	require.True(t, ok)
	assert.Same(t, want, got)
}
