package models

import "time"

type UserProgress struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	PlanID         int64     `json:"plan_id"`
	CompletedDays  []int64   `json:"completed_days"`
	CurrentDay     int       `json:"current_day"`
	UnlockedDays   []int64   `json:"unlocked_days"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
}
