package service

import (
	"context"
	"errors"
	"time"

	"condo-portal/internal/model"
	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/postgres"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type MeetingService struct {
	repo       *postgres.MeetingRepository
	tenant     *TenantResolver
	invalidate *ListInvalidator
	log        *zap.Logger
	now        func() time.Time
}

func NewMeetingService(db *gorm.DB, tenant *TenantResolver, invalidate *ListInvalidator, log *zap.Logger) *MeetingService {
	return &MeetingService{
		repo:       &postgres.MeetingRepository{DB: db},
		tenant:     tenant,
		invalidate: invalidate,
		log:        log,
		now:        time.Now,
	}
}

type MeetingInput struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Duration    *string
}

// clean validates the raw form in field order; the first violation wins. The
// date and time combine into one instant which must be strictly in the
// future when requireFuture is set (creation only).
func (s *MeetingService) clean(in MeetingInput, requireFuture bool) (title, description string, startsAt time.Time, duration string, err error) {
	if in.Title == nil {
		err = pkg.TagInvalidTitle
		return
	}
	if in.Description == nil {
		err = pkg.TagInvalidDescription
		return
	}
	if in.Date == nil {
		err = pkg.TagMissingDate
		return
	}
	if in.Time == nil {
		err = pkg.TagMissingTime
		return
	}
	if in.Duration == nil {
		err = pkg.TagInvalidDuration
		return
	}

	title = pkg.SanitizeText(*in.Title)
	if err = pkg.ValidateTitle(title, pkg.MeetingTitleMax); err != nil {
		return
	}
	description = pkg.SanitizeText(*in.Description)
	if description == "" {
		err = pkg.TagInvalidDescription
		return
	}
	if err = pkg.ValidateDate(*in.Date); err != nil {
		return
	}
	if err = pkg.ValidateTime(*in.Time); err != nil {
		return
	}
	duration = *in.Duration
	if err = pkg.ValidateDuration(duration); err != nil {
		return
	}

	now := s.now()
	startsAt, err = pkg.CombineDateTime(*in.Date, *in.Time, now)
	if err != nil && !requireFuture && errors.Is(err, pkg.TagMeetingInPast) {
		// Past instants are only rejected at creation; updates may keep an
		// already-started meeting's time.
		startsAt, err = time.ParseInLocation("2006-01-02 15:04", *in.Date+" "+*in.Time, now.Location())
		if err != nil {
			err = pkg.TagInvalidDate
		}
	}
	return
}

func (s *MeetingService) Create(ctx context.Context, callerID uint64, in MeetingInput) error {
	title, description, startsAt, duration, err := s.clean(in, true)
	if err != nil {
		return err
	}
	m, err := s.tenant.Resolve(callerID, pkg.TagUserHasNoCommunity)
	if err != nil {
		return err
	}
	if !m.IsAdmin() {
		return pkg.TagForbidden
	}

	meeting := &model.Meeting{
		CommunityID: m.CommunityID,
		AuthorID:    m.UserID,
		Title:       title,
		Description: description,
		StartsAt:    startsAt,
		Duration:    duration,
	}
	if err := s.repo.Create(meeting); err != nil {
		s.log.Error("meeting insert failed", zap.Error(err))
		return pkg.TagDBInsertFailed
	}
	s.invalidate.Notify(ctx, "meetings", m.CommunityID)
	return nil
}

func (s *MeetingService) Update(ctx context.Context, callerID, meetingID uint64, in MeetingInput) error {
	title, description, startsAt, duration, err := s.clean(in, false)
	if err != nil {
		return err
	}
	m, err := s.tenant.Resolve(callerID, pkg.TagUserHasNoCommunity)
	if err != nil {
		return err
	}
	if !m.IsAdmin() {
		return pkg.TagForbidden
	}

	affected, err := s.repo.Update(meetingID, m.CommunityID, map[string]any{
		"title":       title,
		"description": description,
		"starts_at":   startsAt,
		"duration":    duration,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.TagUnauthorizedCommunity
	}
	s.invalidate.Notify(ctx, "meetings", m.CommunityID)
	return nil
}

func (s *MeetingService) Delete(ctx context.Context, callerID, meetingID uint64) error {
	m, err := s.tenant.Resolve(callerID, pkg.TagUserHasNoCommunity)
	if err != nil {
		return err
	}
	if !m.IsAdmin() {
		return pkg.TagForbidden
	}

	affected, err := s.repo.Delete(meetingID, m.CommunityID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.TagUnauthorizedCommunity
	}
	s.invalidate.Notify(ctx, "meetings", m.CommunityID)
	return nil
}

// List pages upcoming meetings soonest-first. Fail-open like every read path.
func (s *MeetingService) List(callerID uint64, page, size int) ([]model.Meeting, int64) {
	m, err := s.tenant.Resolve(callerID, pkg.TagUserHasNoCommunity)
	if err != nil {
		return []model.Meeting{}, 0
	}

	page, size = normalizePage(page, size)
	rows, total, err := s.repo.List(m.CommunityID, (page-1)*size, size)
	if err != nil {
		s.log.Warn("meeting list failed", zap.Uint64("community_id", m.CommunityID), zap.Error(err))
		return []model.Meeting{}, 0
	}
	if rows == nil {
		rows = []model.Meeting{}
	}
	return rows, total
}
