package service

import (
	"fmt"
	"testing"
	"time"

	"condo-portal/internal/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newTestDB opens a unique in-memory database per test so tests cannot
// contaminate each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Community{},
		&model.User{},
		&model.Notice{},
		&model.Meeting{},
		&model.Worry{},
		&model.NoticeLike{},
		&model.WorryLike{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedCommunity(t *testing.T, db *gorm.DB, ref string) *model.Community {
	t.Helper()
	c := &model.Community{Name: "Community " + ref, AddressRef: ref}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed community: %v", err)
	}
	return c
}

func seedUser(t *testing.T, db *gorm.DB, communityID uint64, role, status string) *model.User {
	t.Helper()
	u := &model.User{
		Email:        fmt.Sprintf("u%d@example.com", time.Now().UnixNano()),
		PasswordHash: "x",
		Name:         "Test User",
		Role:         role,
		Status:       status,
		CommunityID:  &communityID,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func testLogger() *zap.Logger { return zap.NewNop() }

// noSignal is an invalidator with no producer; Notify is a no-op.
func noSignal() *ListInvalidator { return NewListInvalidator(nil, testLogger()) }
