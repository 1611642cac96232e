package http

import (
	"github.com/aussiebroadwan/routemaker/internal/routemaker/domain"
	"github.com/aussiebroadwan/routemaker/pkg/routesdk"
)

func toOrganization(o domain.Organization) routesdk.Organization {
	settings := o.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return routesdk.Organization{
		ID:        o.ID,
		Name:      o.Name,
		Slug:      o.Slug,
		LogoURL:   o.LogoURL,
		Settings:  settings,
		CreatedBy: o.CreatedBy,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func toOrganizationSummaries(in []domain.OrganizationSummary) []routesdk.OrganizationSummary {
	out := make([]routesdk.OrganizationSummary, 0, len(in))
	for _, o := range in {
		out = append(out, routesdk.OrganizationSummary{
			ID:      o.ID,
			Name:    o.Name,
			Slug:    o.Slug,
			LogoURL: o.LogoURL,
			Role:    o.Role.String(),
		})
	}
	return out
}

func toMember(m domain.Member) routesdk.Member {
	return routesdk.Member{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		UserID:         m.UserID,
		Role:           m.Role.String(),
		Email:          m.Email,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		AvatarURL:      m.AvatarURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toMembers(in []domain.Member) []routesdk.Member {
	out := make([]routesdk.Member, 0, len(in))
	for _, m := range in {
		out = append(out, toMember(m))
	}
	return out
}

func toInvitation(i domain.Invitation) routesdk.Invitation {
	return routesdk.Invitation{
		ID:             i.ID,
		OrganizationID: i.OrganizationID,
		Email:          i.Email,
		Role:           i.Role.String(),
		Status:         string(i.Status),
		InvitedBy:      i.InvitedBy,
		ExpiresAt:      i.ExpiresAt,
		AcceptedAt:     i.AcceptedAt,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func toInvitations(in []domain.Invitation) []routesdk.Invitation {
	out := make([]routesdk.Invitation, 0, len(in))
	for _, i := range in {
		out = append(out, toInvitation(i))
	}
	return out
}

// toInvitationDetails leaves out the token and the inviter.
func toInvitationDetails(d domain.InvitationDetails) routesdk.InvitationDetails {
	return routesdk.InvitationDetails{
		ID:        d.ID,
		Email:     d.Email,
		Role:      d.Role.String(),
		Status:    string(d.Status),
		ExpiresAt: d.ExpiresAt,
		Organization: routesdk.InvitationOrganization{
			ID:      d.OrganizationID,
			Name:    d.OrganizationName,
			LogoURL: d.OrganizationLogoURL,
		},
	}
}

func toProfile(p domain.Profile) routesdk.Profile {
	return routesdk.Profile{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toPublicProfile(p domain.PublicProfile) routesdk.PublicProfile {
	return routesdk.PublicProfile{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		AvatarURL: p.AvatarURL,
		Bio:       p.Bio,
	}
}

func toProject(p domain.Project) routesdk.Project {
	return routesdk.Project{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		Description:    p.Description,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProjects(in []domain.Project) []routesdk.Project {
	out := make([]routesdk.Project, 0, len(in))
	for _, p := range in {
		out = append(out, toProject(p))
	}
	return out
}

func toLocation(l domain.Location) routesdk.Location {
	return routesdk.Location{
		ID:             l.ID,
		OrganizationID: l.OrganizationID,
		Name:           l.Name,
		Type:           string(l.Type),
		AddressLine1:   l.AddressLine1,
		AddressLine2:   l.AddressLine2,
		City:           l.City,
		State:          l.State,
		PostalCode:     l.PostalCode,
		Country:        l.Country,
		Latitude:       l.Latitude,
		Longitude:      l.Longitude,
		Notes:          l.Notes,
		IsActive:       l.IsActive,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toLocations(in []domain.Location) []routesdk.Location {
	out := make([]routesdk.Location, 0, len(in))
	for _, l := range in {
		out = append(out, toLocation(l))
	}
	return out
}

func locationInput(f routesdk.LocationFields) domain.LocationInput {
	return domain.LocationInput{
		Name:         f.Name,
		Type:         domain.LocationType(f.Type),
		AddressLine1: f.AddressLine1,
		AddressLine2: f.AddressLine2,
		City:         f.City,
		State:        f.State,
		PostalCode:   f.PostalCode,
		Country:      f.Country,
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		Notes:        f.Notes,
		IsActive:     f.IsActive,
	}
}

func locationFields(in domain.LocationInput) routesdk.LocationFields {
	return routesdk.LocationFields{
		Name:         in.Name,
		Type:         string(in.Type),
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		City:         in.City,
		State:        in.State,
		PostalCode:   in.PostalCode,
		Country:      in.Country,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Notes:        in.Notes,
		IsActive:     in.IsActive,
	}
}

func locationPatch(req routesdk.UpdateLocationRequest) domain.LocationPatch {
	p := domain.LocationPatch{
		Name:         req.Name,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Notes:        req.Notes,
		IsActive:     req.IsActive,
	}
	if req.Type != nil {
		t := domain.LocationType(*req.Type)
		p.Type = &t
	}
	return p
}

func toImportResult(res domain.ImportResult) routesdk.ImportResult {
	out := routesdk.ImportResult{
		Success: res.Success,
		Failed:  res.Failed,
		Errors:  make([]routesdk.ImportRowError, 0, len(res.Errors)),
	}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, routesdk.ImportRowError{Row: e.Row, Error: e.Error, Data: locationFields(e.Data)})
	}
	return out
}

func toGeocodeBulkResult(res domain.GeocodeBulkResult) routesdk.GeocodeBulkResult {
	out := routesdk.GeocodeBulkResult{
		Success: res.Success,
		Failed:  res.Failed,
		Errors:  make([]routesdk.GeocodeItemError, 0, len(res.Errors)),
	}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, routesdk.GeocodeItemError{ID: e.ID, Error: e.Error})
	}
	return out
}

func toTechnician(t domain.Technician) routesdk.Technician {
	return routesdk.Technician{
		ID:             t.ID,
		OrganizationID: t.OrganizationID,
		FullName:       t.FullName,
		EmploymentType: string(t.EmploymentType),
		Email:          t.Email,
		Phone:          t.Phone,
		AddressLine1:   t.AddressLine1,
		AddressLine2:   t.AddressLine2,
		City:           t.City,
		State:          t.State,
		PostalCode:     t.PostalCode,
		CostBasis:      string(t.CostBasis),
		CostAmount:     t.CostAmount,
		ColorHex:       t.ColorHex,
		Active:         t.Active,
		Notes:          t.Notes,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toTechnicianList(p domain.Page[domain.Technician]) routesdk.TechnicianList {
	data := make([]routesdk.Technician, 0, len(p.Items))
	for _, t := range p.Items {
		data = append(data, toTechnician(t))
	}
	return routesdk.TechnicianList{
		Data:       data,
		Count:      p.Count,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}

func technicianInput(req routesdk.CreateTechnicianRequest) domain.TechnicianInput {
	return domain.TechnicianInput{
		FullName:       req.FullName,
		EmploymentType: domain.EmploymentType(req.EmploymentType),
		Email:          req.Email,
		Phone:          req.Phone,
		AddressLine1:   req.AddressLine1,
		AddressLine2:   req.AddressLine2,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
		CostBasis:      domain.CostBasis(req.CostBasis),
		CostAmount:     req.CostAmount,
		ColorHex:       req.ColorHex,
		Active:         req.Active,
		Notes:          req.Notes,
	}
}

func technicianPatch(req routesdk.UpdateTechnicianRequest) domain.TechnicianPatch {
	p := domain.TechnicianPatch{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		CostAmount:   req.CostAmount,
		ColorHex:     req.ColorHex,
		Active:       req.Active,
		Notes:        req.Notes,
	}
	if req.EmploymentType != nil {
		e := domain.EmploymentType(*req.EmploymentType)
		p.EmploymentType = &e
	}
	if req.CostBasis != nil {
		c := domain.CostBasis(*req.CostBasis)
		p.CostBasis = &c
	}
	return p
}
