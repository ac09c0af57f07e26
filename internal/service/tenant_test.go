package service

import (
	"testing"

	"condo-portal/internal/model"
	"condo-portal/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantResolver(t *testing.T) {
	db := newTestDB(t)
	comm := seedCommunity(t, db, "blk-1")
	resolver := NewTenantResolver(db)

	t.Run("no caller", func(t *testing.T) {
		_, err := resolver.Resolve(0, pkg.TagNoCommunity)
		assert.ErrorIs(t, err, pkg.TagUnauthorized)
	})

	t.Run("unknown profile", func(t *testing.T) {
		_, err := resolver.Resolve(9999, pkg.TagNoCommunity)
		assert.ErrorIs(t, err, pkg.TagFetchingProfile)
	})

	t.Run("pending profile resolves as no community", func(t *testing.T) {
		u := seedUser(t, db, comm.ID, model.RoleResident, model.StatusPending)
		_, err := resolver.Resolve(u.ID, pkg.TagUserHasNoCommunity)
		assert.ErrorIs(t, err, pkg.TagUserHasNoCommunity)

		// the tag is chosen by the call site
		_, err = resolver.Resolve(u.ID, pkg.TagNoCommunity)
		assert.ErrorIs(t, err, pkg.TagNoCommunity)
	})

	t.Run("profile without community", func(t *testing.T) {
		u := &model.User{Email: "nocomm@example.com", PasswordHash: "x", Name: "N", Role: model.RoleResident, Status: model.StatusApproved}
		require.NoError(t, db.Create(u).Error)
		_, err := resolver.Resolve(u.ID, pkg.TagNoCommunity)
		assert.ErrorIs(t, err, pkg.TagNoCommunity)
	})

	t.Run("approved member", func(t *testing.T) {
		u := seedUser(t, db, comm.ID, model.RoleAdmin, model.StatusApproved)
		m, err := resolver.Resolve(u.ID, pkg.TagNoCommunity)
		require.NoError(t, err)
		assert.Equal(t, u.ID, m.UserID)
		assert.Equal(t, comm.ID, m.CommunityID)
		assert.True(t, m.IsAdmin())
	})
}
