package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/agencydesk/internal/error_values"
	"github.com/limbo/agencydesk/internal/repository"
	"github.com/limbo/agencydesk/pkg/entity"
	log "github.com/sirupsen/logrus"
)

// StatsService tracks productive-day streaks.
type StatsService struct {
	stats        repository.StatsRepositoryI
	achievements repository.AchievementsRepositoryI
}

func NewStatsService(stats repository.StatsRepositoryI, achievements repository.AchievementsRepositoryI) *StatsService {
	if stats == nil || achievements == nil {
		log.Fatal("provided nil repository to stats service")
	}
	return &StatsService{
		stats:        stats,
		achievements: achievements,
	}
}

func (ss *StatsService) GetStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	stats, err := ss.stats.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			return &entity.UserStats{UserID: uid}, nil
		}
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return stats, nil
}

func (ss *StatsService) MarkProductiveDay(ctx context.Context, uid uuid.UUID, date string) (*entity.UserStats, error) {
	day, err := ParseDay(date)
	if err != nil {
		return nil, err
	}
	stats, _, err := ss.markProductiveDay(ctx, uid, day)
	return stats, err
}

// markProductiveDay advances the streak and unlocks streak milestones.
// Milestone write failures are logged and skipped.
func (ss *StatsService) markProductiveDay(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.UserStats, []*entity.Achievement, error) {
	stats, err := ss.stats.Update(ctx, uid, func(current entity.UserStats) (entity.UserStats, bool) {
		return AdvanceStreak(current, day)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("updating streak error: %w", err)
	}
	unlocked := make([]*entity.Achievement, 0)
	for _, m := range reached(streakMilestones, stats.CurrentStreak) {
		a, err := award(ctx, ss.achievements, uid, m.Type, day, map[string]any{"streak": m.Threshold})
		if err != nil {
			log.WithFields(log.Fields{
				"uid":   uid.String(),
				"type":  m.Type,
				"error": err.Error(),
			}).Warn("streak milestone not stored")
			continue
		}
		if a != nil {
			unlocked = append(unlocked, a)
		}
	}
	return stats, unlocked, nil
}

// award inserts achievement unless it is already unlocked. Returns nil achievement on duplicates.
func award(ctx context.Context, repo repository.AchievementsRepositoryI, uid uuid.UUID, t entity.AchievementType,
	day time.Time, metadata map[string]any) (*entity.Achievement, error) {
	a := &entity.Achievement{
		UserID:   uid,
		Type:     t,
		Date:     day,
		Metadata: metadata,
	}
	created, err := repo.InsertIfAbsent(ctx, a)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, nil
	}
	badgesAwarded.WithLabelValues(string(t)).Inc()
	return a, nil
}
