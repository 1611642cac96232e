package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/stretchr/testify/require"
)

func TestTechnicianCreateDefaults(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	org := f.createOrg(t, alice, "Acme")

	tech, err := f.technicians.Create(ctx, alice, org.ID, domain.TechnicianInput{
		FullName:       "  Terry Tech ",
		EmploymentType: domain.EmploymentEmployee,
		Email:          ptr("  "),
	})
	require.NoError(t, err)
	require.Equal(t, "Terry Tech", tech.FullName)
	require.Equal(t, domain.CostHourly, tech.CostBasis)
	require.Equal(t, domain.DefaultTechnicianColor, tech.ColorHex)
	require.True(t, tech.Active)
	require.Nil(t, tech.Email)
	require.Equal(t, alice.UserID, tech.CreatedBy)

	colored, err := f.technicians.Create(ctx, alice, org.ID, domain.TechnicianInput{
		FullName:       "Casey",
		EmploymentType: domain.EmploymentContractor,
		ColorHex:       "#3b82f6",
		CostBasis:      domain.CostPerStop,
		CostAmount:     12.5,
		Active:         ptr(false),
	})
	require.NoError(t, err)
	require.Equal(t, "#3B82F6", colored.ColorHex)
	require.False(t, colored.Active)

	for name, in := range map[string]domain.TechnicianInput{
		"short name":     {FullName: "A", EmploymentType: domain.EmploymentEmployee},
		"bad employment": {FullName: "Alex", EmploymentType: "intern"},
		"bad color":      {FullName: "Alex", EmploymentType: domain.EmploymentEmployee, ColorHex: "red"},
		"negative cost":  {FullName: "Alex", EmploymentType: domain.EmploymentEmployee, CostAmount: -1},
		"bad email":      {FullName: "Alex", EmploymentType: domain.EmploymentEmployee, Email: ptr("nope")},
		"bad cost basis": {FullName: "Alex", EmploymentType: domain.EmploymentEmployee, CostBasis: "daily"},
	} {
		_, err := f.technicians.Create(ctx, alice, org.ID, in)
		require.ErrorIs(t, err, ErrValidation, name)
	}

	_, err = f.technicians.Create(ctx, mallory, org.ID, domain.TechnicianInput{FullName: "Mal", EmploymentType: domain.EmploymentEmployee})
	require.ErrorIs(t, err, ErrNotAMember)
}

func TestTechnicianListFilters(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	org := f.createOrg(t, alice, "Acme")
	f.join(t, alice, org.ID, carol, domain.RoleMember)

	for i := range 25 {
		kind := domain.EmploymentEmployee
		if i%5 == 0 {
			kind = domain.EmploymentContractor
		}
		_, err := f.technicians.Create(ctx, carol, org.ID, domain.TechnicianInput{
			FullName:       fmt.Sprintf("Tech %02d", i),
			EmploymentType: kind,
			CostAmount:     float64(i),
		})
		require.NoError(t, err)
	}

	t.Run("default page", func(t *testing.T) {
		page, err := f.technicians.List(ctx, carol, org.ID, domain.TechnicianFilter{})
		require.NoError(t, err)
		require.Equal(t, 25, page.Count)
		require.Equal(t, 1, page.Page)
		require.Equal(t, domain.DefaultPageSize, page.PageSize)
		require.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Items, domain.DefaultPageSize)
	})

	t.Run("second page sorted by name", func(t *testing.T) {
		page, err := f.technicians.List(ctx, carol, org.ID, domain.TechnicianFilter{
			Sort:     domain.SortTechnicianFullName,
			Page:     2,
			PageSize: 10,
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 10)
		require.Equal(t, "Tech 10", page.Items[0].FullName)
		require.Equal(t, 3, page.TotalPages)
	})

	t.Run("employment filter and search", func(t *testing.T) {
		contractor := domain.EmploymentContractor
		page, err := f.technicians.List(ctx, carol, org.ID, domain.TechnicianFilter{EmploymentType: &contractor})
		require.NoError(t, err)
		require.Equal(t, 5, page.Count)

		page, err = f.technicians.List(ctx, carol, org.ID, domain.TechnicianFilter{Search: "tech 2"})
		require.NoError(t, err)
		require.Equal(t, 5, page.Count)

		page, err = f.technicians.List(ctx, carol, org.ID, domain.TechnicianFilter{Search: "100%"})
		require.NoError(t, err)
		require.Zero(t, page.Count)
		require.NotNil(t, page.Items)
	})

	t.Run("cost descending", func(t *testing.T) {
		page, err := f.technicians.List(ctx, carol, org.ID, domain.TechnicianFilter{
			Sort:       domain.SortTechnicianCost,
			Descending: true,
			PageSize:   1,
		})
		require.NoError(t, err)
		require.Equal(t, "Tech 24", page.Items[0].FullName)
	})

	t.Run("outsiders", func(t *testing.T) {
		_, err := f.technicians.List(ctx, mallory, org.ID, domain.TechnicianFilter{})
		require.ErrorIs(t, err, ErrNotAMember)
	})
}

func TestTechnicianUpdateAndDelete(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	org := f.createOrg(t, alice, "Acme")
	f.join(t, alice, org.ID, carol, domain.RoleMember)

	tech, err := f.technicians.Create(ctx, alice, org.ID, domain.TechnicianInput{
		FullName:       "Terry",
		EmploymentType: domain.EmploymentEmployee,
		Email:          ptr("terry@example.com"),
	})
	require.NoError(t, err)

	got, err := f.technicians.Update(ctx, carol, tech.ID, domain.TechnicianPatch{
		ColorHex: ptr("#ef4444"),
		Email:    ptr(""),
		Active:   ptr(false),
	})
	require.NoError(t, err)
	require.Equal(t, "#EF4444", got.ColorHex)
	require.Nil(t, got.Email)
	require.False(t, got.Active)
	require.Equal(t, org.ID, got.OrganizationID)

	stored, err := f.technicians.Get(ctx, alice, tech.ID)
	require.NoError(t, err)
	require.Nil(t, stored.Email)
	require.Equal(t, alice.UserID, stored.CreatedBy)

	_, err = f.technicians.Update(ctx, carol, tech.ID, domain.TechnicianPatch{FullName: ptr("X")})
	require.ErrorIs(t, err, ErrValidation)
	_, err = f.technicians.Update(ctx, mallory, tech.ID, domain.TechnicianPatch{Active: ptr(true)})
	require.ErrorIs(t, err, ErrNotAMember)

	require.ErrorIs(t, f.technicians.Delete(ctx, mallory, tech.ID), ErrNotAMember)
	require.NoError(t, f.technicians.Delete(ctx, carol, tech.ID))
	_, err = f.technicians.Get(ctx, carol, tech.ID)
	require.ErrorIs(t, err, ErrTechnicianNotFound)
}
