package model

import "time"

// Типы транзакций.
const (
	TransactionDeposit     = "DEPOT"
	TransactionWithdrawal  = "RETRAIT"
	TransactionTransferIn  = "VIREMENT_ENTRANT"
	TransactionTransferOut = "VIREMENT_SORTANT"
)

// Transaction — движение по счёту. BalanceBefore/After фиксируют баланс
// счёта на момент операции.
type Transaction struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"uniqueIndex;not null;type:uuid" json:"reference"`
	Type      string `gorm:"not null" json:"type"`

	Amount        float64 `gorm:"not null" json:"montant"`
	BalanceBefore float64 `gorm:"not null" json:"soldeAvant"`
	BalanceAfter  float64 `gorm:"not null" json:"soldeApres"`

	AccountID int64    `gorm:"not null;index" json:"-"`
	Account   *Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	// Номер счёта-контрагента для переводов.
	DestinationAccount string `json:"compteDestination,omitempty"`
	Description        string `json:"description,omitempty"`

	// Номер счёта в ответах API; заполняется сервисом, в БД не хранится.
	AccountNumber string `gorm:"-" json:"numeroCompte,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"dateTransaction"`
}
