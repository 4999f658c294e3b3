package models

import "time"

type User struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Username            string    `gorm:"uniqueIndex;not null" json:"username"`
	Email               *string   `json:"email,omitempty"`
	PasswordHash        string    `gorm:"not null" json:"-"`
	RecoveryUUID        *string   `gorm:"column:recovery_uuid;uniqueIndex" json:"-"`
	RecoverySecretHash  *string   `json:"-"`
	WeeklyReportEnabled bool      `gorm:"not null;default:true" json:"-"`
	TOTPSecret          *string   `gorm:"column:totp_secret" json:"-"`
	TOTPEnabled         bool      `gorm:"column:totp_enabled;not null;default:false" json:"totp_enabled"`
	TOTPBackupCodes     *string   `gorm:"column:totp_backup_codes" json:"-"`
	CreatedAt           time.Time `gorm:"not null" json:"created_at"`
}
