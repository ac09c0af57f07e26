package service

import (
	"testing"

	"condo-portal/internal/model"
	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration(ref string) RegisterInput {
	return RegisterInput{
		Email:       "anna@example.com",
		Password:    "s3cret-pass",
		Name:        "Anna",
		Flat:        "3B",
		AddressRef:  ref,
		AddressLine: "12 Elm Street",
		City:        "Lisbon",
		PostalCode:  "1000-001",
	}
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	t.Run("first registration creates the community", func(t *testing.T) {
		require.NoError(t, svc.Register(validRegistration("elm-12")))

		var u model.User
		require.NoError(t, db.First(&u, "email = ?", "anna@example.com").Error)
		assert.Equal(t, model.RoleResident, u.Role)
		assert.Equal(t, model.StatusPending, u.Status)
		require.NotNil(t, u.CommunityID)

		var c model.Community
		require.NoError(t, db.First(&c, *u.CommunityID).Error)
		assert.Equal(t, "elm-12", c.AddressRef)
	})

	t.Run("second registration joins the existing community", func(t *testing.T) {
		in := validRegistration("elm-12")
		in.Email = "bruno@example.com"
		require.NoError(t, svc.Register(in))

		var count int64
		db.Model(&model.Community{}).Where("address_ref = ?", "elm-12").Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("name and flat are sanitized", func(t *testing.T) {
		in := validRegistration("elm-13")
		in.Email = "carla@example.com"
		in.Name = "  <b>Carla</b> "
		require.NoError(t, svc.Register(in))

		var u model.User
		require.NoError(t, db.First(&u, "email = ?", "carla@example.com").Error)
		assert.Equal(t, "Carla", u.Name)
	})

	t.Run("missing fields", func(t *testing.T) {
		in := validRegistration("elm-14")
		in.Password = ""
		assert.Error(t, svc.Register(in))
	})
}

func TestLoginAndRefresh(t *testing.T) {
	db := newTestDB(t)
	newTestRedis(t)
	svc := NewAuthService(db)
	require.NoError(t, svc.Register(validRegistration("elm-12")))

	t.Run("valid credentials yield a pinned session", func(t *testing.T) {
		pair, err := svc.Login("anna@example.com", "s3cret-pass")
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)

		claims, err := pkg.ParseAccess(pair.AccessToken)
		require.NoError(t, err)

		sessions := &redis.SessionRepository{}
		stored, err := sessions.GetUserToken(claims.UserID)
		require.NoError(t, err)
		assert.Equal(t, pair.AccessToken, stored)

		// a second login replaces the pinned token
		pair2, err := svc.Login("anna@example.com", "s3cret-pass")
		require.NoError(t, err)
		stored, err = sessions.GetUserToken(claims.UserID)
		require.NoError(t, err)
		assert.Equal(t, pair2.AccessToken, stored)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("anna@example.com", "nope")
		assert.Error(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("ghost@example.com", "s3cret-pass")
		assert.Error(t, err)
	})

	t.Run("refresh issues a new pair", func(t *testing.T) {
		pair, err := svc.Login("anna@example.com", "s3cret-pass")
		require.NoError(t, err)

		fresh, err := svc.Refresh(pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, fresh.AccessToken)

		_, err = svc.Refresh("not-a-token")
		assert.Error(t, err)
	})

	t.Run("logout drops the session", func(t *testing.T) {
		pair, err := svc.Login("anna@example.com", "s3cret-pass")
		require.NoError(t, err)
		claims, err := pkg.ParseAccess(pair.AccessToken)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(claims.UserID))
		sessions := &redis.SessionRepository{}
		_, err = sessions.GetUserToken(claims.UserID)
		assert.Error(t, err)
	})
}
