package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
	"github.com/aussiebroadwan/routemaker/pkg/idx"
	"github.com/aussiebroadwan/routemaker/pkg/slogx"
)

// TechnicianService is the tenant gateway for technicians. Any member may
// manage them.
type TechnicianService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *TechnicianService) List(ctx context.Context, actor domain.Identity, orgID string, f domain.TechnicianFilter) (domain.Page[domain.Technician], error) {
	if _, err := resolveRole(ctx, s.Store, actor.UserID, orgID); err != nil {
		return domain.Page[domain.Technician]{}, err
	}

	f = f.Normalize()
	items, total, err := s.Store.Technicians().ListTechnicians(ctx, orgID, f)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list technicians", slog.Any("error", err))
		return domain.Page[domain.Technician]{}, err
	}
	if items == nil {
		items = []domain.Technician{}
	}
	return domain.NewPage(items, total, f.Page, f.PageSize), nil
}

func (s *TechnicianService) Get(ctx context.Context, actor domain.Identity, id string) (domain.Technician, error) {
	t, err := s.load(ctx, s.Store, id)
	if err != nil {
		return domain.Technician{}, err
	}
	if _, err := resolveRole(ctx, s.Store, actor.UserID, t.OrganizationID); err != nil {
		return domain.Technician{}, err
	}
	return t, nil
}

func normalizeColor(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}

func (s *TechnicianService) Create(ctx context.Context, actor domain.Identity, orgID string, in domain.TechnicianInput) (domain.Technician, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = blankToNil(in.Email)
	in.ColorHex = normalizeColor(in.ColorHex)
	if err := validateStruct(in); err != nil {
		return domain.Technician{}, err
	}
	if _, err := resolveRole(ctx, s.Store, actor.UserID, orgID); err != nil {
		return domain.Technician{}, err
	}

	now := nowFrom(s.Now)
	t := domain.Technician{
		ID:             idx.New().String(),
		OrganizationID: orgID,
		FullName:       in.FullName,
		EmploymentType: in.EmploymentType,
		Email:          in.Email,
		Phone:          blankToNil(in.Phone),
		AddressLine1:   blankToNil(in.AddressLine1),
		AddressLine2:   blankToNil(in.AddressLine2),
		City:           blankToNil(in.City),
		State:          blankToNil(in.State),
		PostalCode:     blankToNil(in.PostalCode),
		CostBasis:      in.CostBasis,
		CostAmount:     in.CostAmount,
		ColorHex:       in.ColorHex,
		Active:         true,
		Notes:          blankToNil(in.Notes),
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if t.CostBasis == "" {
		t.CostBasis = domain.CostHourly
	}
	if t.ColorHex == "" {
		t.ColorHex = domain.DefaultTechnicianColor
	}
	if in.Active != nil {
		t.Active = *in.Active
	}

	if err := s.Store.Technicians().CreateTechnician(ctx, t); err != nil {
		slogx.FromContext(ctx).Error("failed to create technician", slog.Any("error", err))
		return domain.Technician{}, err
	}

	slogx.FromContext(ctx).Info("technician created",
		slog.String("technician_id", t.ID),
		slog.String("organization_id", orgID),
	)
	return t, nil
}

// Update applies patch. The owning organization never changes.
func (s *TechnicianService) Update(ctx context.Context, actor domain.Identity, id string, patch domain.TechnicianPatch) (domain.Technician, error) {
	patch.FullName = trimmed(patch.FullName)
	if patch.ColorHex != nil {
		c := normalizeColor(*patch.ColorHex)
		patch.ColorHex = &c
	}
	patch.Email = trimmed(patch.Email)

	// An empty email clears it and is not an address to validate.
	check := patch
	if check.Email != nil && *check.Email == "" {
		check.Email = nil
	}
	if err := validateStruct(check); err != nil {
		return domain.Technician{}, err
	}

	var t domain.Technician
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if t, err = s.load(ctx, tx, id); err != nil {
			return err
		}
		if _, err := resolveRole(ctx, tx, actor.UserID, t.OrganizationID); err != nil {
			return err
		}

		applyTechnicianPatch(&t, patch)
		t.UpdatedAt = nowFrom(s.Now)
		return tx.Technicians().UpdateTechnician(ctx, t)
	})
	if err != nil {
		return domain.Technician{}, err
	}
	return t, nil
}

func applyTechnicianPatch(t *domain.Technician, p domain.TechnicianPatch) {
	if p.FullName != nil {
		t.FullName = *p.FullName
	}
	if p.EmploymentType != nil {
		t.EmploymentType = *p.EmploymentType
	}
	if p.Email != nil {
		t.Email = blankToNil(p.Email)
	}
	if p.Phone != nil {
		t.Phone = blankToNil(p.Phone)
	}
	if p.AddressLine1 != nil {
		t.AddressLine1 = blankToNil(p.AddressLine1)
	}
	if p.AddressLine2 != nil {
		t.AddressLine2 = blankToNil(p.AddressLine2)
	}
	if p.City != nil {
		t.City = blankToNil(p.City)
	}
	if p.State != nil {
		t.State = blankToNil(p.State)
	}
	if p.PostalCode != nil {
		t.PostalCode = blankToNil(p.PostalCode)
	}
	if p.CostBasis != nil {
		t.CostBasis = *p.CostBasis
	}
	if p.CostAmount != nil {
		t.CostAmount = *p.CostAmount
	}
	if p.ColorHex != nil {
		t.ColorHex = *p.ColorHex
	}
	if p.Active != nil {
		t.Active = *p.Active
	}
	if p.Notes != nil {
		t.Notes = blankToNil(p.Notes)
	}
}

func (s *TechnicianService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	t, err := s.load(ctx, s.Store, id)
	if err != nil {
		return err
	}
	if _, err := resolveRole(ctx, s.Store, actor.UserID, t.OrganizationID); err != nil {
		return err
	}
	if err := s.Store.Technicians().DeleteTechnician(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTechnicianNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("technician deleted", slog.String("technician_id", id))
	return nil
}

func (s *TechnicianService) load(ctx context.Context, st store.Store, id string) (domain.Technician, error) {
	t, err := st.Technicians().GetTechnicianByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Technician{}, ErrTechnicianNotFound
	}
	return t, err
}
