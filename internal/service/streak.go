package service

import (
	"time"

	"github.com/limbo/agencydesk/pkg/entity"
)

type milestone struct {
	Threshold int
	Type      entity.AchievementType
}

var (
	streakMilestones = []milestone{
		{3, entity.AchievementStreak3},
		{7, entity.AchievementStreak7},
		{30, entity.AchievementStreak30},
	}
	blockMilestones = []milestone{
		{10, entity.AchievementBlocks10},
		{50, entity.AchievementBlocks50},
		{100, entity.AchievementBlocks100},
	}
)

// AdvanceStreak returns the stats after day was marked productive.
// It reports false when day is already counted or precedes the last productive day.
func AdvanceStreak(current entity.UserStats, day time.Time) (entity.UserStats, bool) {
	day = Day(day)
	next := current
	if current.LastProductiveDay == nil {
		next.CurrentStreak = 1
	} else {
		last := Day(*current.LastProductiveDay)
		gap := daysBetween(last, day)
		switch {
		case gap <= 0:
			return current, false
		case gap == 1, bridgesWeekend(last, gap):
			next.CurrentStreak++
		default:
			next.CurrentStreak = 1
		}
	}
	next.TotalProductiveDays++
	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}
	next.LastProductiveDay = &day
	return next, true
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// bridgesWeekend reports whether every day strictly between last and last+gap is Saturday or Sunday.
func bridgesWeekend(last time.Time, gap int) bool {
	if gap < 2 || gap > 3 {
		return false
	}
	for i := 1; i < gap; i++ {
		switch last.AddDate(0, 0, i).Weekday() {
		case time.Saturday, time.Sunday:
		default:
			return false
		}
	}
	return true
}

// reached returns the milestones whose threshold is not above value.
func reached(milestones []milestone, value int) []milestone {
	result := make([]milestone, 0, len(milestones))
	for _, m := range milestones {
		if value >= m.Threshold {
			result = append(result, m)
		}
	}
	return result
}
