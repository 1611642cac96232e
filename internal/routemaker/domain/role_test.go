package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/stretchr/testify/require"
)

func TestRoleMeets(t *testing.T) {
	tests := []struct {
		role domain.Role
		min  domain.Role
		want bool
	}{
		{domain.RoleOwner, domain.RoleAdmin, true},
		{domain.RoleAdmin, domain.RoleAdmin, true},
		{domain.RoleMember, domain.RoleAdmin, false},
		{domain.RoleMember, domain.RoleMember, true},
		{domain.RoleAdmin, domain.RoleOwner, false},
		{domain.Role("superuser"), domain.RoleMember, false},
		{domain.Role(""), domain.RoleMember, false},
		{domain.RoleOwner, domain.Role("bogus"), false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.role.Meets(tt.min), "%q meets %q", tt.role, tt.min)
	}
}

func TestParseRole(t *testing.T) {
	r, err := domain.ParseRole(" Admin ")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, r)

	_, err = domain.ParseRole("root")
	require.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestInvitationIsOverdue(t *testing.T) {
	now := time.Now()
	inv := domain.Invitation{Status: domain.InvitationPending, ExpiresAt: now.Add(-time.Second)}
	require.True(t, inv.IsOverdue(now))

	inv.Status = domain.InvitationRevoked
	require.False(t, inv.IsOverdue(now))

	inv = domain.Invitation{Status: domain.InvitationPending, ExpiresAt: now.Add(time.Hour)}
	require.False(t, inv.IsOverdue(now))
}

func TestTechnicianFilterNormalize(t *testing.T) {
	f := domain.TechnicianFilter{Sort: "drop table", Page: -2, PageSize: 5000}.Normalize()
	require.Equal(t, domain.SortTechnicianUpdatedAt, f.Sort)
	require.True(t, f.Descending)
	require.Equal(t, 1, f.Page)
	require.Equal(t, domain.MaxPageSize, f.PageSize)

	f = domain.TechnicianFilter{Sort: domain.SortTechnicianFullName, Page: 3, PageSize: 10}.Normalize()
	require.False(t, f.Descending)
	require.Equal(t, 20, f.Offset())
}

func TestNewPage(t *testing.T) {
	p := domain.NewPage([]int{1, 2}, 41, 1, 20)
	require.Equal(t, 3, p.TotalPages)

	p = domain.NewPage[int](nil, 0, 1, 20)
	require.Equal(t, 0, p.TotalPages)
}
