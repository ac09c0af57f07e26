package service

import (
	"context"
	"time"

	"condo-portal/internal/pkg"
	"condo-portal/internal/repository/postgres"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MeetingReaper deletes meetings whose computed end time has passed. It scans
// across communities: this is a maintenance job running with the service's
// own database credentials, never on behalf of a caller. Everything here is
// best-effort; errors are logged and swallowed.
type MeetingReaper struct {
	repo     *postgres.MeetingRepository
	interval time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func NewMeetingReaper(db *gorm.DB, interval time.Duration, log *zap.Logger) *MeetingReaper {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &MeetingReaper{
		repo:     &postgres.MeetingRepository{DB: db},
		interval: interval,
		now:      time.Now,
		log:      log,
	}
}

// ReapPastMeetings runs one sweep. A meeting ends at start + duration label;
// labels that fail to parse are skipped rather than deleted.
func (r *MeetingReaper) ReapPastMeetings(ctx context.Context) {
	meetings, err := r.repo.ListAll(ctx)
	if err != nil {
		r.log.Warn("reaper: list meetings failed", zap.Error(err))
		return
	}

	now := r.now()
	for _, m := range meetings {
		hours, ok := pkg.DurationHours(m.Duration)
		if !ok {
			r.log.Warn("reaper: unknown duration label",
				zap.Uint64("meeting_id", m.ID), zap.String("duration", m.Duration))
			continue
		}
		end := m.StartsAt.Add(time.Duration(hours * float64(time.Hour)))
		if end.Before(now) {
			if err := r.repo.DeleteByID(ctx, m.ID); err != nil {
				r.log.Warn("reaper: delete failed", zap.Uint64("meeting_id", m.ID), zap.Error(err))
			}
		}
	}
}

// Run sweeps on a ticker until the context is cancelled.
func (r *MeetingReaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.ReapPastMeetings(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.ReapPastMeetings(ctx)
		}
	}
}
