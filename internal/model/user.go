package model

import "time"

// User — учётная запись back-office пользователя.
type User struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:USER" json:"role"`

	// Опциональная привязка к клиенту банка (для роли CLIENT).
	ClientID *int64  `json:"clientId,omitempty"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// RefreshToken — выданный refresh-токен. Ротация: на каждый успешный refresh
// старый токен отзывается и выдаётся новый.
type RefreshToken struct {
	Token  string `gorm:"primaryKey;type:uuid"`
	UserID int64  `gorm:"not null;index"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
