package service

import (
	"context"

	"condo-portal/internal/model"
	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/postgres"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResidentService moderates signups: pending profiles get approved or
// rejected, approved residents can be removed along with their worries.
// Status never returns to pending.
type ResidentService struct {
	users       *postgres.UserRepository
	worries     *postgres.WorryRepository
	communities *postgres.CommunityRepository
	tenant      *TenantResolver
	invalidate  *ListInvalidator
	mail        pkg.SMTPConfig
	log         *zap.Logger
}

func NewResidentService(db *gorm.DB, tenant *TenantResolver, invalidate *ListInvalidator, mail pkg.SMTPConfig, log *zap.Logger) *ResidentService {
	return &ResidentService{
		users:       &postgres.UserRepository{DB: db},
		worries:     &postgres.WorryRepository{DB: db},
		communities: &postgres.CommunityRepository{DB: db},
		tenant:      tenant,
		invalidate:  invalidate,
		mail:        mail,
		log:         log,
	}
}

// authorize resolves the caller and requires the admin role.
func (s *ResidentService) authorize(callerID uint64) (*Membership, error) {
	m, err := s.tenant.Resolve(callerID, pkg.TagNoCommunity)
	if err != nil {
		return nil, err
	}
	if !m.IsAdmin() {
		return nil, pkg.TagForbidden
	}
	return m, nil
}

// target loads the moderated profile and checks it lives in the caller's
// community. Cross-tenant targets are indistinguishable from missing ones.
func (s *ResidentService) target(m *Membership, targetID uint64) (*model.User, error) {
	u, err := s.users.FindByID(targetID)
	if err != nil {
		return nil, pkg.TagUnauthorizedUser
	}
	if u.CommunityID == nil || *u.CommunityID != m.CommunityID {
		return nil, pkg.TagUnauthorizedUser
	}
	return u, nil
}

// Approve transitions a pending profile to approved and mails the resident.
func (s *ResidentService) Approve(ctx context.Context, callerID, targetID uint64) error {
	m, err := s.authorize(callerID)
	if err != nil {
		return err
	}
	u, err := s.target(m, targetID)
	if err != nil {
		return err
	}

	affected, err := s.users.UpdateStatus(u.ID, m.CommunityID, model.StatusApproved)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.TagUnauthorizedUser
	}

	s.notifyByMail(u, true, m.CommunityID)
	s.invalidate.Notify(ctx, "residents", m.CommunityID)
	return nil
}

// Reject deletes a pending profile and mails the applicant.
func (s *ResidentService) Reject(ctx context.Context, callerID, targetID uint64) error {
	m, err := s.authorize(callerID)
	if err != nil {
		return err
	}
	u, err := s.target(m, targetID)
	if err != nil {
		return err
	}

	affected, err := s.users.DeleteInCommunity(u.ID, m.CommunityID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.TagUnauthorizedUser
	}

	s.notifyByMail(u, false, m.CommunityID)
	s.invalidate.Notify(ctx, "residents", m.CommunityID)
	return nil
}

// Remove deletes an approved resident. The resident's worries go first so no
// orphans are left behind; the two deletes are deliberately not wrapped in a
// transaction, so a crash in between leaves the worries gone and the profile
// present (valid, incomplete, retryable).
func (s *ResidentService) Remove(ctx context.Context, callerID, targetID uint64) error {
	m, err := s.authorize(callerID)
	if err != nil {
		return err
	}
	u, err := s.target(m, targetID)
	if err != nil {
		return err
	}

	if err := s.worries.DeleteByAuthor(u.ID, m.CommunityID); err != nil {
		return err
	}
	affected, err := s.users.DeleteInCommunity(u.ID, m.CommunityID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return pkg.TagUnauthorizedUser
	}

	s.invalidate.Notify(ctx, "residents", m.CommunityID)
	return nil
}

// List pages the community's profiles for the moderation view. Fail-open
// like every read path.
func (s *ResidentService) List(callerID uint64, page, size int, status, sort string) ([]model.User, int64) {
	m, err := s.tenant.Resolve(callerID, pkg.TagNoCommunity)
	if err != nil {
		return []model.User{}, 0
	}

	page, size = normalizePage(page, size)
	rows, total, err := s.users.ListByCommunity(m.CommunityID, status, (page-1)*size, size, sort != "oldest")
	if err != nil {
		s.log.Warn("resident list failed", zap.Uint64("community_id", m.CommunityID), zap.Error(err))
		return []model.User{}, 0
	}
	if rows == nil {
		rows = []model.User{}
	}
	return rows, total
}

func (s *ResidentService) notifyByMail(u *model.User, approved bool, communityID uint64) {
	if s.mail.Host == "" {
		return
	}
	var subject, body string
	if approved {
		name := ""
		if c, err := s.communities.FindByID(communityID); err == nil {
			name = c.Name
		}
		subject = "Registration approved"
		body = pkg.ApprovalHTML(u.Name, name)
	} else {
		subject = "Registration update"
		body = pkg.RejectionHTML(u.Name)
	}
	if err := pkg.SendEmail(s.mail, u.Email, subject, body); err != nil {
		s.log.Warn("moderation mail failed", zap.String("to", u.Email), zap.Error(err))
	}
}
