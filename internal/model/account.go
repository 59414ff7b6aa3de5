package model

import "time"

// Типы счетов.
const (
	AccountTypeSavings = "EPARGNE"
	AccountTypeCurrent = "COURANT"
)

// Account — банковский счёт.
type Account struct {
	ID      int64   `gorm:"primaryKey" json:"id"`
	Number  string  `gorm:"uniqueIndex;not null" json:"numeroCompte"`
	Type    string  `gorm:"not null" json:"typeCompte"`
	Balance float64 `gorm:"not null;default:0" json:"solde"`
	Active  bool    `gorm:"not null;default:true" json:"actif"`

	ClientID int64   `gorm:"not null;index" json:"clientId"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// Имя владельца в ответах API; заполняется из предзагруженного Client.
	ClientFullName string `gorm:"-" json:"clientNomComplet,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"dateCreation"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}
