package service

import (
	"context"
	"strings"
	"testing"

	"condo-portal/internal/model"
	"condo-portal/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorryCreate(t *testing.T) {
	db := newTestDB(t)
	comm := seedCommunity(t, db, "blk-1")
	resident := seedUser(t, db, comm.ID, model.RoleResident, model.StatusApproved)
	svc := NewWorryService(db, NewTenantResolver(db), noSignal(), testLogger())
	ctx := context.Background()

	t.Run("resident creates without a role check", func(t *testing.T) {
		err := svc.Create(ctx, resident.ID, WorryInput{Title: strptr("Leaky faucet in 3B")})
		require.NoError(t, err)
		var w model.Worry
		require.NoError(t, db.First(&w).Error)
		assert.Equal(t, comm.ID, w.CommunityID)
		assert.Equal(t, resident.ID, w.AuthorID)
		assert.Empty(t, w.Content)
	})

	t.Run("title bounds", func(t *testing.T) {
		long := strings.Repeat("a", 121)
		err := svc.Create(ctx, resident.ID, WorryInput{Title: &long})
		assert.ErrorIs(t, err, pkg.TagTitleTooLong)

		ok := strings.Repeat("a", 120)
		assert.NoError(t, svc.Create(ctx, resident.ID, WorryInput{Title: &ok}))
	})

	t.Run("content bounds", func(t *testing.T) {
		long := strings.Repeat("b", 1201)
		err := svc.Create(ctx, resident.ID, WorryInput{Title: strptr("t"), Content: &long})
		assert.ErrorIs(t, err, pkg.TagContentTooLong)

		ok := strings.Repeat("b", 1200)
		assert.NoError(t, svc.Create(ctx, resident.ID, WorryInput{Title: strptr("t"), Content: &ok}))
	})

	t.Run("markup stripped from content", func(t *testing.T) {
		in := WorryInput{Title: strptr("Noise"), Content: strptr("<b>Loud</b> music")}
		require.NoError(t, svc.Create(ctx, resident.ID, in))
		var w model.Worry
		require.NoError(t, db.First(&w, "title = ?", "Noise").Error)
		assert.Equal(t, "Loud music", w.Content)
	})

	t.Run("pending caller rejected", func(t *testing.T) {
		pending := seedUser(t, db, comm.ID, model.RoleResident, model.StatusPending)
		err := svc.Create(ctx, pending.ID, WorryInput{Title: strptr("t")})
		assert.ErrorIs(t, err, pkg.TagUserHasNoCommunity)
	})
}

func TestWorryDelete(t *testing.T) {
	db := newTestDB(t)
	commA := seedCommunity(t, db, "blk-a")
	commB := seedCommunity(t, db, "blk-b")
	adminA := seedUser(t, db, commA.ID, model.RoleAdmin, model.StatusApproved)
	adminB := seedUser(t, db, commB.ID, model.RoleAdmin, model.StatusApproved)
	author := seedUser(t, db, commA.ID, model.RoleResident, model.StatusApproved)
	svc := NewWorryService(db, NewTenantResolver(db), noSignal(), testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, author.ID, WorryInput{Title: strptr("Broken gate")}))
	var w model.Worry
	require.NoError(t, db.First(&w).Error)

	t.Run("author cannot delete their own", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, author.ID, w.ID), pkg.TagForbidden)
	})

	t.Run("cross-tenant admin rejected", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, adminB.ID, w.ID), pkg.TagUnauthorizedCommunity)
	})

	t.Run("same-tenant admin deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, adminA.ID, w.ID))
		var n int64
		db.Model(&model.Worry{}).Count(&n)
		assert.Zero(t, n)
	})
}

func TestWorryList(t *testing.T) {
	db := newTestDB(t)
	comm := seedCommunity(t, db, "blk-1")
	author := seedUser(t, db, comm.ID, model.RoleResident, model.StatusApproved)
	other := seedUser(t, db, comm.ID, model.RoleResident, model.StatusApproved)
	svc := NewWorryService(db, NewTenantResolver(db), noSignal(), testLogger())
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		require.NoError(t, svc.Create(ctx, author.ID, WorryInput{Title: strptr(title)}))
	}

	t.Run("newest first by default", func(t *testing.T) {
		rows, total := svc.List(author.ID, 1, 10, "")
		assert.EqualValues(t, 3, total)
		require.Len(t, rows, 3)
		assert.Equal(t, "third", rows[0].Title)
	})

	t.Run("like counts come from worry likes only", func(t *testing.T) {
		var w model.Worry
		require.NoError(t, db.First(&w, "title = ?", "first").Error)
		require.NoError(t, db.Create(&model.WorryLike{WorryID: w.ID, UserID: other.ID}).Error)
		// a notice like that happens to share the numeric id must not count
		require.NoError(t, db.Create(&model.NoticeLike{NoticeID: w.ID, UserID: other.ID}).Error)

		rows, _ := svc.List(author.ID, 1, 10, "oldest")
		require.NotEmpty(t, rows)
		assert.EqualValues(t, 1, rows[0].LikesCount)
	})

	t.Run("no community yields empty", func(t *testing.T) {
		pending := seedUser(t, db, comm.ID, model.RoleResident, model.StatusPending)
		rows, total := svc.List(pending.ID, 1, 10, "")
		assert.Empty(t, rows)
		assert.Zero(t, total)
	})
}
