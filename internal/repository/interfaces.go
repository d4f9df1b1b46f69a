package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/agencydesk/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
	// Links (or unlinks with nil) telegram chat for the daily digest
	SetTelegramChatID(ctx context.Context, uid uuid.UUID, chatID *int64) error
	// Lists users who linked a telegram chat
	ListWithTelegram(ctx context.Context) ([]*entity.User, error)
}

// StatsMutation receives the locked stats row and returns the next state.
// Returning false skips the write.
type StatsMutation func(current entity.UserStats) (entity.UserStats, bool)

type StatsRepositoryI interface {
	// Returns stats row or ErrStatsNotFound
	Get(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Creates the row if needed, locks it and applies mutate in one transaction
	Update(ctx context.Context, uid uuid.UUID, mutate StatsMutation) (*entity.UserStats, error)
	// Atomically shifts total_blocks_completed by delta (never below zero), returns new total
	AddCompletedBlocks(ctx context.Context, uid uuid.UUID, delta int) (int, error)
}

type AchievementsRepositoryI interface {
	// Inserts achievement unless the same (user, type, scope) exists. Reports whether a row was created
	InsertIfAbsent(ctx context.Context, a *entity.Achievement) (bool, error)
	// Lists achievements of the user, newest first
	ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Achievement, error)
}

type BlocksRepositoryI interface {
	Create(ctx context.Context, block *entity.CapacityBlock) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CapacityBlock, error)
	// Provides all blocks (shadow included) of user for a day
	ListByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]*entity.CapacityBlock, error)
	// Sets completion flag. Reports false when the flag already had that value
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProjectsRepositoryI interface {
	Create(ctx context.Context, project *entity.Project) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	GetByPortalToken(ctx context.Context, token uuid.UUID) (*entity.Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Project, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
