package transaction

import (
	"sort"
	"time"
)

// CalculateStreak conta os dias de calendário consecutivos com ao menos uma
// transação, terminando hoje ou ontem. Várias transações no mesmo dia contam
// como um único dia de sequência.
func CalculateStreak(transactions []*Transaction, today time.Time) int {
	if len(transactions) == 0 {
		return 0
	}

	seen := make(map[time.Time]bool, len(transactions))
	days := make([]time.Time, 0, len(transactions))
	for _, tx := range transactions {
		day := truncateDay(tx.Date)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}

	// Mais recente primeiro
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	todayDay := truncateDay(today)
	lastDay := days[0]
	if daysBetween(lastDay, todayDay) > 1 {
		return 0
	}

	streak := 0
	currentDay := lastDay
	for _, day := range days {
		diff := daysBetween(day, currentDay)
		switch {
		case diff == 0:
			streak++
			currentDay = currentDay.AddDate(0, 0, -1)
		case diff == 1:
			continue
		default:
			return streak
		}
	}

	return streak
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(older, newer time.Time) int {
	return int(newer.Sub(older).Hours() / 24)
}
