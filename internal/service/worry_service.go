package service

import (
	"context"

	"condo-portal/internal/model"
	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/postgres"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type WorryService struct {
	repo       *postgres.WorryRepository
	tenant     *TenantResolver
	invalidate *ListInvalidator
	log        *zap.Logger
}

func NewWorryService(db *gorm.DB, tenant *TenantResolver, invalidate *ListInvalidator, log *zap.Logger) *WorryService {
	return &WorryService{
		repo:       &postgres.WorryRepository{DB: db},
		tenant:     tenant,
		invalidate: invalidate,
		log:        log,
	}
}

type WorryInput struct {
	Title   *string
	Content *string // optional
}

// Create files a worry for the caller's community. Any approved resident may
// create one; there is no role check here.
func (s *WorryService) Create(ctx context.Context, callerID uint64, in WorryInput) error {
	if in.Title == nil {
		return pkg.TagInvalidTitle
	}
	title := pkg.SanitizeText(*in.Title)
	if err := pkg.ValidateTitle(title, pkg.WorryTitleMax); err != nil {
		return err
	}
	content := ""
	if in.Content != nil {
		content = pkg.SanitizeText(*in.Content)
		if err := pkg.ValidateContent(content, pkg.WorryContentMax, false); err != nil {
			return err
		}
	}

	m, err := s.tenant.Resolve(callerID, pkg.TagUserHasNoCommunity)
	if err != nil {
		return err
	}

	w := &model.Worry{
		CommunityID: m.CommunityID,
		AuthorID:    m.UserID,
		Title:       title,
		Content:     content,
	}
	if err := s.repo.Create(w); err != nil {
		s.log.Error("worry insert failed", zap.Error(err))
		return pkg.TagInsertFailed
	}
	s.invalidate.Notify(ctx, "worries", m.CommunityID)
	return nil
}

// Delete removes a worry. Admin only; residents cannot delete their own.
func (s *WorryService) Delete(ctx context.Context, callerID, worryID uint64) error {
	m, err := s.tenant.Resolve(callerID, pkg.TagUserHasNoCommunity)
	if err != nil {
		return err
	}
	if !m.IsAdmin() {
		return pkg.TagForbidden
	}

	affected, err := s.repo.Delete(worryID, m.CommunityID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.TagUnauthorizedCommunity
	}
	s.invalidate.Notify(ctx, "worries", m.CommunityID)
	return nil
}

// List pages the community's worries with like counts. Fail-open.
func (s *WorryService) List(callerID uint64, page, size int, sort string) ([]postgres.WorryRow, int64) {
	m, err := s.tenant.Resolve(callerID, pkg.TagUserHasNoCommunity)
	if err != nil {
		return []postgres.WorryRow{}, 0
	}

	page, size = normalizePage(page, size)
	rows, total, err := s.repo.List(m.CommunityID, (page-1)*size, size, sort != "oldest")
	if err != nil {
		s.log.Warn("worry list failed", zap.Uint64("community_id", m.CommunityID), zap.Error(err))
		return []postgres.WorryRow{}, 0
	}
	if rows == nil {
		rows = []postgres.WorryRow{}
	}
	return rows, total
}
