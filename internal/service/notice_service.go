package service

import (
	"context"

	"condo-portal/internal/model"
	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/postgres"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type NoticeService struct {
	repo       *postgres.NoticeRepository
	tenant     *TenantResolver
	invalidate *ListInvalidator
	log        *zap.Logger
}

func NewNoticeService(db *gorm.DB, tenant *TenantResolver, invalidate *ListInvalidator, log *zap.Logger) *NoticeService {
	return &NoticeService{
		repo:       &postgres.NoticeRepository{DB: db},
		tenant:     tenant,
		invalidate: invalidate,
		log:        log,
	}
}

// NoticeInput carries the raw form fields. nil means the field was absent or
// not a string in the submitted payload.
type NoticeInput struct {
	Title    *string
	Content  *string
	Category *string
}

func (in NoticeInput) clean() (title, content, category string, err error) {
	if in.Title == nil {
		return "", "", "", pkg.TagInvalidTitle
	}
	if in.Content == nil {
		return "", "", "", pkg.TagInvalidContent
	}
	if in.Category == nil {
		return "", "", "", pkg.TagInvalidCategory
	}
	title = pkg.SanitizeText(*in.Title)
	if err = pkg.ValidateTitle(title, pkg.NoticeTitleMax); err != nil {
		return
	}
	content = pkg.SanitizeText(*in.Content)
	if err = pkg.ValidateContent(content, 0, true); err != nil {
		return
	}
	category = *in.Category
	err = pkg.ValidateCategory(category)
	return
}

// Create inserts a notice for the caller's community. Admin only.
func (s *NoticeService) Create(ctx context.Context, callerID uint64, in NoticeInput) error {
	title, content, category, err := in.clean()
	if err != nil {
		return err
	}
	m, err := s.tenant.Resolve(callerID, pkg.TagNoCommunity)
	if err != nil {
		return err
	}
	if !m.IsAdmin() {
		return pkg.TagForbidden
	}

	n := &model.Notice{
		CommunityID: m.CommunityID,
		AuthorID:    m.UserID,
		Title:       title,
		Content:     content,
		Category:    category,
	}
	if err := s.repo.Create(n); err != nil {
		s.log.Error("notice insert failed", zap.Error(err))
		return pkg.TagDBInsertFailed
	}
	s.invalidate.Notify(ctx, "notices", m.CommunityID)
	return nil
}

// Update rewrites a notice under the caller's community filter. Storage
// errors propagate raw; a zero-row result means the target is not reachable
// from this tenant.
func (s *NoticeService) Update(ctx context.Context, callerID, noticeID uint64, in NoticeInput) error {
	title, content, category, err := in.clean()
	if err != nil {
		return err
	}
	m, err := s.tenant.Resolve(callerID, pkg.TagNoCommunity)
	if err != nil {
		return err
	}
	if !m.IsAdmin() {
		return pkg.TagForbidden
	}

	affected, err := s.repo.Update(noticeID, m.CommunityID, map[string]any{
		"title":    title,
		"content":  content,
		"category": category,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.TagUnauthorizedCommunity
	}
	s.invalidate.Notify(ctx, "notices", m.CommunityID)
	return nil
}

func (s *NoticeService) Delete(ctx context.Context, callerID, noticeID uint64) error {
	m, err := s.tenant.Resolve(callerID, pkg.TagNoCommunity)
	if err != nil {
		return err
	}
	if !m.IsAdmin() {
		return pkg.TagForbidden
	}

	affected, err := s.repo.Delete(noticeID, m.CommunityID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.TagUnauthorizedCommunity
	}
	s.invalidate.Notify(ctx, "notices", m.CommunityID)
	return nil
}

// List pages the caller's community notices. Read paths fail open: callers
// without a community and storage errors both yield an empty result, never
// an error.
func (s *NoticeService) List(callerID uint64, page, size int, category, sort string, withHasLiked bool) ([]postgres.NoticeRow, int64) {
	m, err := s.tenant.Resolve(callerID, pkg.TagNoCommunity)
	if err != nil {
		return []postgres.NoticeRow{}, 0
	}

	page, size = normalizePage(page, size)
	viewer := uint64(0)
	if withHasLiked {
		viewer = m.UserID
	}
	rows, total, err := s.repo.List(m.CommunityID, category, viewer, (page-1)*size, size, sort != "oldest")
	if err != nil {
		s.log.Warn("notice list failed", zap.Uint64("community_id", m.CommunityID), zap.Error(err))
		return []postgres.NoticeRow{}, 0
	}
	if rows == nil {
		rows = []postgres.NoticeRow{}
	}
	return rows, total
}

func normalizePage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	return page, size
}
