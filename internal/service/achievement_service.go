package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/agencydesk/internal/repository"
	"github.com/limbo/agencydesk/pkg/entity"
	log "github.com/sirupsen/logrus"
)

type AchievementService struct {
	blocks       repository.BlocksRepositoryI
	achievements repository.AchievementsRepositoryI
	streaks      *StatsService
}

func NewAchievementService(blocks repository.BlocksRepositoryI, achievements repository.AchievementsRepositoryI,
	streaks *StatsService) *AchievementService {
	if blocks == nil || achievements == nil || streaks == nil {
		log.Fatal("provided nil dependency to achievement service")
	}
	return &AchievementService{
		blocks:       blocks,
		achievements: achievements,
		streaks:      streaks,
	}
}

func (as *AchievementService) CheckDayAchievements(ctx context.Context, uid uuid.UUID, date string) (*DayAchievements, error) {
	day, err := ParseDay(date)
	if err != nil {
		return nil, err
	}
	return as.checkDay(ctx, uid, day)
}

func (as *AchievementService) checkDay(ctx context.Context, uid uuid.UUID, day time.Time) (*DayAchievements, error) {
	logger := log.WithFields(log.Fields{
		"uid":  uid.String(),
		"date": day.Format(DayLayout),
	})
	blocks, err := as.blocks.ListByUserAndDate(ctx, uid, day)
	if err != nil {
		return nil, errors.New("blocks repository error: " + err.Error())
	}
	total, completed := countCountable(blocks)
	result := &DayAchievements{NewBadges: make([]*entity.Achievement, 0)}
	unlock := func(t entity.AchievementType, metadata map[string]any) {
		a, err := award(ctx, as.achievements, uid, t, day, metadata)
		if err != nil {
			logger.WithField("type", t).WithError(err).Warn("achievement not stored")
			return
		}
		if a != nil {
			result.NewBadges = append(result.NewBadges, a)
		}
	}

	dayMetadata := map[string]any{"completed": completed, "total": total}
	if isProductive(total, completed) {
		unlock(entity.AchievementProductiveDay, dayMetadata)
		stats, streakBadges, err := as.streaks.markProductiveDay(ctx, uid, day)
		if err != nil {
			logger.WithError(err).Warn("streak not updated, badges may be delayed")
		} else {
			result.Stats = stats
			result.NewBadges = append(result.NewBadges, streakBadges...)
		}
	}
	if total > 0 && completed == total {
		unlock(entity.AchievementPerfectDay, dayMetadata)
	}

	if result.Stats == nil {
		result.Stats, err = as.streaks.GetStats(ctx, uid)
		if err != nil {
			return nil, err
		}
	}
	for _, m := range reached(blockMilestones, result.Stats.TotalBlocksCompleted) {
		unlock(m.Type, map[string]any{"blocks": m.Threshold})
	}
	return result, nil
}

func (as *AchievementService) ListAchievements(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Achievement, error) {
	list, err := as.achievements.ListByUser(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	return list, nil
}

// countCountable counts non-shadow blocks and how many of them are completed.
func countCountable(blocks []*entity.CapacityBlock) (total, completed int) {
	for _, b := range blocks {
		if b.IsShadow {
			continue
		}
		total++
		if b.Completed {
			completed++
		}
	}
	return total, completed
}

// isProductive reports completed/total >= 0.8. A day without blocks is never productive.
func isProductive(total, completed int) bool {
	return total > 0 && completed*5 >= total*4
}
