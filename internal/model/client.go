package model

import "time"

// Client — клиент банка. JSON-имена повторяют проводной контракт backend'а
// (французские), имена полей в Go — английские.
type Client struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	LastName    string `gorm:"not null" json:"nom"`
	FirstName   string `gorm:"not null" json:"prenom"`
	BirthDate   string `gorm:"not null" json:"dateNaissance"` // ISO date YYYY-MM-DD
	Sex         string `gorm:"not null" json:"sexe"`          // MASCULIN | FEMININ
	Address     string `json:"adresse,omitempty"`
	Phone       string `json:"telephone,omitempty"`
	Email       string `json:"courriel,omitempty"`
	Nationality string `json:"nationalite,omitempty"`

	Accounts []Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"comptes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

// FullName — представление для списков и выписок.
func (c Client) FullName() string {
	return c.LastName + " " + c.FirstName
}
