package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/limbo/agencydesk/internal/repository"
	"github.com/limbo/agencydesk/pkg/entity"
	log "github.com/sirupsen/logrus"
)

// DigestService sends every user with a linked chat a short summary of the day.
type DigestService struct {
	users  repository.UsersRepositoryI
	stats  *StatsService
	blocks repository.BlocksRepositoryI
	sender Sender
}

func NewDigestService(users repository.UsersRepositoryI, stats *StatsService, blocks repository.BlocksRepositoryI, sender Sender) *DigestService {
	if users == nil || stats == nil || blocks == nil || sender == nil {
		log.Fatal("provided nil dependency to digest service")
	}
	return &DigestService{
		users:  users,
		stats:  stats,
		blocks: blocks,
		sender: sender,
	}
}

// SendDaily delivers the digest for day. Per-user failures are logged and skipped,
// the returned count covers successful sends only.
func (ds *DigestService) SendDaily(ctx context.Context, day time.Time) (int, error) {
	day = Day(day)
	users, err := ds.users.ListWithTelegram(ctx)
	if err != nil {
		return 0, errors.New("users repository error: " + err.Error())
	}
	sent := 0
	for _, u := range users {
		if err = ctx.Err(); err != nil {
			return sent, err
		}
		if u.TelegramChatID == nil {
			continue
		}
		logger := log.WithFields(log.Fields{"uid": u.ID.String(), "chat_id": *u.TelegramChatID})
		text, err := ds.compose(ctx, u, day)
		if err != nil {
			digestMessages.WithLabelValues("failed").Inc()
			logger.WithError(err).Warn("digest not composed")
			continue
		}
		if err = ds.sender.Send(ctx, *u.TelegramChatID, text); err != nil {
			digestMessages.WithLabelValues("failed").Inc()
			logger.WithError(err).Warn("digest not delivered")
			continue
		}
		digestMessages.WithLabelValues("sent").Inc()
		sent++
	}
	return sent, nil
}

func (ds *DigestService) compose(ctx context.Context, u *entity.User, day time.Time) (string, error) {
	stats, err := ds.stats.GetStats(ctx, u.ID)
	if err != nil {
		return "", err
	}
	blocks, err := ds.blocks.ListByUserAndDate(ctx, u.ID, day)
	if err != nil {
		return "", err
	}
	return FormatDigest(u.Name, day, stats, blocks), nil
}

// FormatDigest renders the message text. Shadow blocks are listed but not counted.
func FormatDigest(name string, day time.Time, stats *entity.UserStats, blocks []*entity.CapacityBlock) string {
	total, completed := countCountable(blocks)
	var hours float64
	for _, b := range blocks {
		if !b.IsShadow {
			hours += b.Hours
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Good morning, %s! Plan for %s\n", name, day.Format(DayLayout))
	if len(blocks) == 0 {
		sb.WriteString("No capacity blocks scheduled yet.\n")
	} else {
		fmt.Fprintf(&sb, "Blocks: %d/%d done, %.1fh planned\n", completed, total, hours)
		for _, b := range blocks {
			mark := "[ ]"
			if b.Completed {
				mark = "[x]"
			}
			if b.IsShadow {
				mark = "[~]"
			}
			fmt.Fprintf(&sb, "%s %s\n", mark, b.Title)
		}
	}
	fmt.Fprintf(&sb, "Streak: %d (best %d)", stats.CurrentStreak, stats.LongestStreak)
	return sb.String()
}
