package model

import (
	"fmt"
	"time"
)

// User - пользователь Telegram мини-приложения.
// Balance копит выигранные очки, Tickets - доступные прокруты
type User struct {
	ID                   int64
	Username             string
	FirstName            string
	LastName             string
	Nickname             string
	IsAdmin              bool
	Balance              int
	Tickets              int
	LastFreeSpin         time.Time
	ReferredBy           *int64
	ReferralCount        int
	ReferralBonusTickets int
}

// CanSpin - есть ли у пользователя билет на прокрут
func (u *User) CanSpin() bool {
	return u.Tickets > 0
}

// CanGetFreeSpin - прошел ли интервал с последнего бесплатного прокрута
func (u *User) CanGetFreeSpin(interval time.Duration, now time.Time) bool {
	return now.Sub(u.LastFreeSpin) >= interval
}

// TimeUntilFreeSpin - оставшееся время до бесплатного прокрута в формате ЧЧ:ММ
func (u *User) TimeUntilFreeSpin(interval time.Duration, now time.Time) string {
	next := u.LastFreeSpin.Add(interval)
	if !now.Before(next) {
		return "00:00"
	}

	remaining := next.Sub(now)
	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60

	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// DisplayName - имя для таблицы лидеров: никнейм, затем username, затем имя из Telegram
func (u *User) DisplayName() string {
	switch {
	case u.Nickname != "":
		return u.Nickname
	case u.Username != "":
		return u.Username
	case u.FirstName != "":
		return u.FirstName
	default:
		return fmt.Sprintf("user_%d", u.ID)
	}
}
