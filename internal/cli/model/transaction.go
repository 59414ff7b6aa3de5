package model

// Transaction types matching the backend enum.
const (
	TransactionDeposit     = "DEPOT"
	TransactionWithdrawal  = "RETRAIT"
	TransactionTransferIn  = "VIREMENT_ENTRANT"
	TransactionTransferOut = "VIREMENT_SORTANT"
)

// TransactionRecord mirrors the backend transaction DTO.
type TransactionRecord struct {
	ID                 int64   `json:"id"`
	Type               string  `json:"type"`
	TypeLabel          string  `json:"typeLibelle,omitempty"`
	Amount             float64 `json:"montant"`
	Date               string  `json:"dateTransaction"` // ISO datetime
	Description        string  `json:"description,omitempty"`
	DestinationAccount string  `json:"compteDestination,omitempty"`
	BalanceBefore      float64 `json:"soldeAvant,omitempty"`
	BalanceAfter       float64 `json:"soldeApres,omitempty"`
	AccountNumber      string  `json:"numeroCompte,omitempty"`
}

// OperationRequest — payload для deposit/withdraw.
type OperationRequest struct {
	Amount      float64 `json:"montant"`
	Description string  `json:"description,omitempty"`
}

// TransferRequest — payload для перевода между счетами.
type TransferRequest struct {
	SourceAccount      string  `json:"compteSource"`
	DestinationAccount string  `json:"compteDestination"`
	Amount             float64 `json:"montant"`
	Description        string  `json:"description,omitempty"`
}
