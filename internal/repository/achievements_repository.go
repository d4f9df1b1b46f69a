package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/agencydesk/internal/error_values"
	"github.com/limbo/agencydesk/pkg/entity"
)

const dateLayout = "2006-01-02"

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepo(conn PgConnection) *AchievementsRepository {
	return &AchievementsRepository{
		conn: conn,
	}
}

// ScopeKey is the uniqueness key of an achievement next to (user, type):
// the date for day-scoped badges, empty for one-time milestones.
func ScopeKey(t entity.AchievementType, date time.Time) string {
	if t.DayScoped() {
		return date.Format(dateLayout)
	}
	return ""
}

func (ar *AchievementsRepository) InsertIfAbsent(ctx context.Context, a *entity.Achievement) (bool, error) {
	if a == nil {
		return false, errors.New("achievement is nil")
	}
	var metadata []byte
	if len(a.Metadata) > 0 {
		var err error
		metadata, err = sonic.Marshal(a.Metadata)
		if err != nil {
			return false, errors.New("marshalling achievement metadata error: " + err.Error())
		}
	}
	row := ar.conn.QueryRow(ctx, `INSERT INTO achievements (user_id, type, achievement_date, scope_key, metadata) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, type, scope_key) DO NOTHING RETURNING id, created_at;`,
		a.UserID, string(a.Type), a.Date, ScopeKey(a.Type, a.Date), metadata)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return false, errorvalues.ErrUserNotFound
		}
		return false, errors.New("inserting achievement error: " + err.Error())
	}
	return true, nil
}

func (ar *AchievementsRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Achievement, error) {
	rows, err := ar.conn.Query(ctx, `SELECT id, type, achievement_date, metadata, created_at FROM achievements
		WHERE user_id = $1 ORDER BY achievement_date DESC, created_at DESC LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("listing achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Achievement, 0)
	for rows.Next() {
		a := entity.Achievement{UserID: uid}
		var achievementType string
		var metadata []byte
		if err = rows.Scan(&a.ID, &achievementType, &a.Date, &metadata, &a.CreatedAt); err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		a.Type = entity.AchievementType(achievementType)
		if len(metadata) > 0 {
			if err = sonic.Unmarshal(metadata, &a.Metadata); err != nil {
				return nil, errors.New("unmarshalling achievement metadata error: " + err.Error())
			}
		}
		result = append(result, &a)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected achievement rows error: " + err.Error())
	}
	return result, nil
}
