package utils

import (
	"fmt"
	"time"
)

// 印尼语短月份，用于超过一周的绝对日期展示
var shortMonths = []string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// TimeAgo renders a relative creation time. Buckets are half-open on the
// lower bound: exactly 60 s already reads as minutes.
func TimeAgo(createdAt time.Time) string {
	return timeAgoAt(createdAt, time.Now())
}

func timeAgoAt(createdAt, now time.Time) string {
	seconds := int(now.Sub(createdAt).Seconds())

	switch {
	case seconds < 60:
		return "Baru saja"
	case seconds < 3600:
		return fmt.Sprintf("%d menit lalu", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d jam lalu", seconds/3600)
	case seconds < 604800:
		return fmt.Sprintf("%d hari lalu", seconds/86400)
	}
	return fmt.Sprintf("%d %s", createdAt.Day(), shortMonths[createdAt.Month()-1])
}

// Countdown renders the remaining lifetime of an expiring sambat,
// always flooring to the largest whole unit that fits.
func Countdown(expiresAt time.Time) string {
	return countdownAt(expiresAt, time.Now())
}

func countdownAt(expiresAt, now time.Time) string {
	seconds := int(expiresAt.Sub(now).Seconds())

	switch {
	case seconds <= 0:
		return "Hangus!"
	case seconds < 60:
		return fmt.Sprintf("%d detik lagi", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%d menit lagi", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%d jam lagi", seconds/3600)
	}
	return fmt.Sprintf("%d hari lagi", seconds/86400)
}

// IsExpiringSoon reports whether the sambat burns out within the next hour.
// Permanent posts (nil expiry) are never expiring soon.
func IsExpiringSoon(expiresAt *time.Time) bool {
	return isExpiringSoonAt(expiresAt, time.Now())
}

func isExpiringSoonAt(expiresAt *time.Time, now time.Time) bool {
	if expiresAt == nil {
		return false
	}
	remaining := expiresAt.Sub(now)
	return remaining > 0 && remaining < time.Hour
}
