package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/agencydesk/internal/error_values"
	"github.com/limbo/agencydesk/pkg/entity"
)

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(conn PgConnection) *StatsRepository {
	return &StatsRepository{
		conn: conn,
	}
}

func (sr *StatsRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	stats := entity.UserStats{UserID: uid}
	row := sr.conn.QueryRow(ctx, `SELECT current_streak, longest_streak, last_productive_day, total_productive_days, total_blocks_completed, updated_at FROM user_stats WHERE user_id = $1;`, uid)
	err := row.Scan(&stats.CurrentStreak, &stats.LongestStreak, &stats.LastProductiveDay,
		&stats.TotalProductiveDays, &stats.TotalBlocksCompleted, &stats.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatsNotFound
		}
		return nil, errors.New("getting user stats error: " + err.Error())
	}
	return &stats, nil
}

func (sr *StatsRepository) Update(ctx context.Context, uid uuid.UUID, mutate StatsMutation) (*entity.UserStats, error) {
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning stats transaction error: " + err.Error())
	}
	stats, err := sr.updateInTx(ctx, tx, uid, mutate)
	if err != nil {
		tx.Rollback(ctx)
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing stats transaction error: " + err.Error())
	}
	return stats, nil
}

func (sr *StatsRepository) updateInTx(ctx context.Context, tx pgx.Tx, uid uuid.UUID, mutate StatsMutation) (*entity.UserStats, error) {
	_, err := tx.Exec(ctx, `INSERT INTO user_stats (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`, uid)
	if err != nil {
		return nil, mapStatsWriteError(err)
	}
	current := entity.UserStats{UserID: uid}
	row := tx.QueryRow(ctx, `SELECT current_streak, longest_streak, last_productive_day, total_productive_days, total_blocks_completed, updated_at FROM user_stats WHERE user_id = $1 FOR UPDATE;`, uid)
	err = row.Scan(&current.CurrentStreak, &current.LongestStreak, &current.LastProductiveDay,
		&current.TotalProductiveDays, &current.TotalBlocksCompleted, &current.UpdatedAt)
	if err != nil {
		return nil, errors.New("locking user stats error: " + err.Error())
	}
	next, changed := mutate(current)
	if !changed {
		return &current, nil
	}
	next.UserID = uid
	row = tx.QueryRow(ctx, `UPDATE user_stats SET current_streak = $1, longest_streak = $2, last_productive_day = $3, total_productive_days = $4, updated_at = NOW() WHERE user_id = $5 RETURNING updated_at;`,
		next.CurrentStreak, next.LongestStreak, next.LastProductiveDay, next.TotalProductiveDays, uid)
	if err = row.Scan(&next.UpdatedAt); err != nil {
		return nil, errors.New("updating user stats error: " + err.Error())
	}
	return &next, nil
}

func (sr *StatsRepository) AddCompletedBlocks(ctx context.Context, uid uuid.UUID, delta int) (int, error) {
	var total int
	row := sr.conn.QueryRow(ctx, `INSERT INTO user_stats (user_id, total_blocks_completed) VALUES ($1, GREATEST($2, 0))
		ON CONFLICT (user_id) DO UPDATE SET total_blocks_completed = GREATEST(user_stats.total_blocks_completed + $2, 0), updated_at = NOW()
		RETURNING total_blocks_completed;`, uid, delta)
	if err := row.Scan(&total); err != nil {
		return 0, mapStatsWriteError(err)
	}
	return total, nil
}

func mapStatsWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		// FK violation
		case "23503":
			return errorvalues.ErrUserNotFound
		}
	}
	return errors.New("writing user stats error: " + err.Error())
}
