package service

import (
	"condo-portal/internal/model"
	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/postgres"

	"gorm.io/gorm"
)

// Membership is the resolved identity every tenant-scoped operation starts
// from: who the caller is, which community they belong to, and their role.
// It is always derived from the caller's own profile row, never from
// client-supplied community ids.
type Membership struct {
	UserID      uint64
	CommunityID uint64
	Role        string
}

func (m *Membership) IsAdmin() bool { return m.Role == model.RoleAdmin }

type TenantResolver struct {
	users *postgres.UserRepository
}

func NewTenantResolver(db *gorm.DB) *TenantResolver {
	return &TenantResolver{users: &postgres.UserRepository{DB: db}}
}

// Resolve looks up the caller's community membership. noCommunityTag is the
// tag to emit when the profile has no effective community (two historical
// variants exist; the call site picks one). A profile that has not been
// approved resolves as having no community.
func (t *TenantResolver) Resolve(callerID uint64, noCommunityTag pkg.Tag) (*Membership, error) {
	if callerID == 0 {
		return nil, pkg.TagUnauthorized
	}
	u, err := t.users.FindByID(callerID)
	if err != nil {
		return nil, pkg.TagFetchingProfile
	}
	if u.CommunityID == nil || u.Status != model.StatusApproved {
		return nil, noCommunityTag
	}
	return &Membership{UserID: u.ID, CommunityID: *u.CommunityID, Role: u.Role}, nil
}
