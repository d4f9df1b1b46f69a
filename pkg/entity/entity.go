package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID
	Name           string
	PasswordHash   string
	TelegramChatID *int64
}

type UserStats struct {
	UserID               uuid.UUID  `json:"uid"`
	CurrentStreak        int        `json:"currentStreak"`
	LongestStreak        int        `json:"longestStreak"`
	LastProductiveDay    *time.Time `json:"lastProductiveDay,omitempty"`
	TotalProductiveDays  int        `json:"totalProductiveDays"`
	TotalBlocksCompleted int        `json:"totalBlocksCompleted"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

type AchievementType string

const (
	AchievementProductiveDay AchievementType = "productive_day"
	AchievementPerfectDay    AchievementType = "perfect_day"
	AchievementStreak3       AchievementType = "streak_3"
	AchievementStreak7       AchievementType = "streak_7"
	AchievementStreak30      AchievementType = "streak_30"
	AchievementBlocks10      AchievementType = "blocks_10"
	AchievementBlocks50      AchievementType = "blocks_50"
	AchievementBlocks100     AchievementType = "blocks_100"
)

// DayScoped reports whether the badge can be earned once per calendar day
// rather than once per user.
func (t AchievementType) DayScoped() bool {
	return t == AchievementProductiveDay || t == AchievementPerfectDay
}

type Achievement struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"uid"`
	Type      AchievementType `json:"type"`
	Date      time.Time       `json:"date"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CapacityBlock struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	Hours     float64   `json:"hours"`
	Completed bool      `json:"completed"`
	IsShadow  bool      `json:"isShadow"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type AddOn struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type PricingSnapshot struct {
	BasePrice     float64      `json:"basePrice"`
	CustomPrice   *float64     `json:"customPrice,omitempty"`
	AddOns        []AddOn      `json:"addOns"`
	Discount      float64      `json:"discount"`
	DiscountType  DiscountType `json:"discountType"`
	IsHourlyQuote bool         `json:"isHourlyQuote"`
	CustomHours   float64      `json:"customHours"`
	HourlyRate    float64      `json:"hourlyRate"`
}

type Project struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"`
	ClientName  string    `json:"clientName"`
	Status      string    `json:"status"`
	PortalToken uuid.UUID `json:"portalToken"`
	PricingSnapshot
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PortalView struct {
	Name       string  `json:"name"`
	ClientName string  `json:"clientName"`
	Status     string  `json:"status"`
	AddOns     []AddOn `json:"addOns"`
	FinalPrice float64 `json:"finalPrice"`
}
