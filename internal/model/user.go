package model

import "time"

type User struct {
	ID            int64     `json:"id"`
	TelegramID    int64     `json:"telegram_id"`
	Username      *string   `json:"username"`
	Name          *string   `json:"name"`
	ProfilePhoto  *string   `json:"profile_photo"`
	ReferralCount int       `json:"referral_count"`
	CreatedAt     time.Time `json:"created_at"`
}
