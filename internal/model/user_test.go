package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanGetFreeSpin(t *testing.T) {
	now := time.Now()
	interval := 24 * time.Hour

	u := User{LastFreeSpin: now.Add(-23 * time.Hour)}
	assert.False(t, u.CanGetFreeSpin(interval, now))

	u.LastFreeSpin = now.Add(-24 * time.Hour)
	assert.True(t, u.CanGetFreeSpin(interval, now))

	u.LastFreeSpin = now.Add(-30 * time.Hour)
	assert.True(t, u.CanGetFreeSpin(interval, now))
}

func TestTimeUntilFreeSpin(t *testing.T) {
	now := time.Now()
	interval := 24 * time.Hour

	cases := []struct {
		name  string
		since time.Duration
		want  string
	}{
		{"only spun", 0, "24:00"},
		{"half passed", 12 * time.Hour, "12:00"},
		{"minutes pad", 23*time.Hour + 55*time.Minute, "00:05"},
		{"already due", 24 * time.Hour, "00:00"},
		{"long overdue", 48 * time.Hour, "00:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := User{LastFreeSpin: now.Add(-tc.since)}
			assert.Equal(t, tc.want, u.TimeUntilFreeSpin(interval, now))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "neo", (&User{Nickname: "neo", Username: "tg", FirstName: "Tom"}).DisplayName())
	assert.Equal(t, "tg", (&User{Username: "tg", FirstName: "Tom"}).DisplayName())
	assert.Equal(t, "Tom", (&User{FirstName: "Tom"}).DisplayName())
	assert.Equal(t, "user_99", (&User{ID: 99}).DisplayName())
}
