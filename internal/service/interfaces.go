package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/agencydesk/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CreateBlockRequest struct {
	Date     string  `validate:"required,calendar_day"`
	Title    string  `validate:"required,max=200"`
	Hours    float64 `validate:"gte=0,lte=24"`
	IsShadow bool
}

type AddOnRequest struct {
	Name  string  `validate:"required,max=100"`
	Price float64 `validate:"gte=0"`
}

// PricingRequest is the user supplied pricing snapshot. Negative amounts are rejected here,
// ComputeFinalPrice itself tolerates them.
type PricingRequest struct {
	BasePrice     float64        `validate:"gte=0"`
	CustomPrice   *float64       `validate:"omitempty,gte=0"`
	AddOns        []AddOnRequest `validate:"dive"`
	Discount      float64        `validate:"gte=0"`
	DiscountType  string         `validate:"omitempty,oneof=percentage fixed"`
	IsHourlyQuote bool
	CustomHours   float64 `validate:"gte=0"`
	HourlyRate    float64 `validate:"gte=0"`
}

type CreateProjectRequest struct {
	Name       string `validate:"required,max=200"`
	ClientName string `validate:"max=200"`
	Status     string `validate:"omitempty,oneof=draft active completed archived"`
	Pricing    PricingRequest
}

// DayAchievements is the outcome of checking one calendar day.
type DayAchievements struct {
	NewBadges []*entity.Achievement `json:"newBadges"`
	Stats     *entity.UserStats     `json:"stats"`
}

type BlockCompletion struct {
	Block                *entity.CapacityBlock `json:"block"`
	Changed              bool                  `json:"changed"`
	TotalBlocksCompleted int                   `json:"totalBlocksCompleted"`
	NewBadges            []*entity.Achievement `json:"newBadges"`
}

type ProjectView struct {
	*entity.Project
	FinalPrice float64 `json:"finalPrice"`
}

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
	// Links chat for the daily digest. Nil chatID unlinks it
	LinkTelegram(ctx context.Context, id uuid.UUID, chatID *int64) error
}

type StatsServiceI interface {
	// Returns stats of user, zero stats when nothing was tracked yet
	GetStats(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Registers date (YYYY-MM-DD) as productive and advances the streak
	MarkProductiveDay(ctx context.Context, uid uuid.UUID, date string) (*entity.UserStats, error)
}

type AchievementServiceI interface {
	CheckDayAchievements(ctx context.Context, uid uuid.UUID, date string) (*DayAchievements, error)
	ListAchievements(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Achievement, error)
}

type BlocksServiceI interface {
	CreateBlock(ctx context.Context, uid uuid.UUID, req *CreateBlockRequest) (*entity.CapacityBlock, error)
	ListDay(ctx context.Context, uid uuid.UUID, date string) ([]*entity.CapacityBlock, error)
	// Flips completion of block, keeps the completed counter in sync and re-checks the day
	SetCompleted(ctx context.Context, uid, blockID uuid.UUID, completed bool) (*BlockCompletion, error)
	DeleteBlock(ctx context.Context, uid, blockID uuid.UUID) error
}

type ProjectsServiceI interface {
	CreateProject(ctx context.Context, uid uuid.UUID, req *CreateProjectRequest) (*ProjectView, error)
	GetProject(ctx context.Context, uid, projectID uuid.UUID) (*ProjectView, error)
	ListProjects(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*ProjectView, error)
	// Client facing read view, no ownership check
	GetPortalView(ctx context.Context, token uuid.UUID) (*entity.PortalView, error)
	Quote(req *PricingRequest) (float64, error)
}

// Sender delivers a text message to a chat.
type Sender interface {
	Send(ctx context.Context, chatID int64, text string) error
}

type DigestServiceI interface {
	SendDaily(ctx context.Context, day time.Time) (int, error)
}
