package models

import "time"

// AdminUser is a back-office account. Deletion is guarded at the handler
// layer: an admin can never delete itself or the last remaining account.
type AdminUser struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	LoginCount   int       `json:"login_count" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
