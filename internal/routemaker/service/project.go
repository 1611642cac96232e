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

// ProjectService is the tenant gateway for projects. Members read and
// write; deleting takes an admin.
type ProjectService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *ProjectService) List(ctx context.Context, actor domain.Identity, orgID string) ([]domain.Project, error) {
	if _, err := resolveRole(ctx, s.Store, actor.UserID, orgID); err != nil {
		return nil, err
	}
	return s.Store.Projects().ListProjects(ctx, orgID)
}

func (s *ProjectService) Get(ctx context.Context, actor domain.Identity, id string) (domain.Project, error) {
	p, err := s.load(ctx, s.Store, id)
	if err != nil {
		return domain.Project{}, err
	}
	if _, err := resolveRole(ctx, s.Store, actor.UserID, p.OrganizationID); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (s *ProjectService) Create(ctx context.Context, actor domain.Identity, orgID string, in domain.ProjectInput) (domain.Project, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return domain.Project{}, err
	}
	if _, err := resolveRole(ctx, s.Store, actor.UserID, orgID); err != nil {
		return domain.Project{}, err
	}

	now := nowFrom(s.Now)
	p := domain.Project{
		ID:             idx.New().String(),
		OrganizationID: orgID,
		Name:           in.Name,
		Description:    blankToNil(in.Description),
		CreatedBy:      actor.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Store.Projects().CreateProject(ctx, p); err != nil {
		slogx.FromContext(ctx).Error("failed to create project", slog.Any("error", err))
		return domain.Project{}, err
	}

	slogx.FromContext(ctx).Info("project created",
		slog.String("project_id", p.ID),
		slog.String("organization_id", orgID),
	)
	return p, nil
}

func (s *ProjectService) Update(ctx context.Context, actor domain.Identity, id string, patch domain.ProjectPatch) (domain.Project, error) {
	patch.Name = trimmed(patch.Name)
	if err := validateStruct(patch); err != nil {
		return domain.Project{}, err
	}

	var p domain.Project
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if p, err = s.load(ctx, tx, id); err != nil {
			return err
		}
		if _, err := resolveRole(ctx, tx, actor.UserID, p.OrganizationID); err != nil {
			return err
		}

		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = blankToNil(patch.Description)
		}
		p.UpdatedAt = nowFrom(s.Now)
		return tx.Projects().UpdateProject(ctx, p)
	})
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func (s *ProjectService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	p, err := s.load(ctx, s.Store, id)
	if err != nil {
		return err
	}
	if _, err := requireRole(ctx, s.Store, actor.UserID, p.OrganizationID, domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.Store.Projects().DeleteProject(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("project deleted", slog.String("project_id", id))
	return nil
}

func (s *ProjectService) load(ctx context.Context, st store.Store, id string) (domain.Project, error) {
	p, err := st.Projects().GetProjectByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Project{}, ErrProjectNotFound
	}
	return p, err
}
