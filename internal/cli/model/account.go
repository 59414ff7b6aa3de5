package model

// Account types matching the backend enum.
const (
	AccountTypeSavings = "EPARGNE"
	AccountTypeCurrent = "COURANT"
)

// AccountRecord mirrors the backend account DTO.
type AccountRecord struct {
	ID             int64   `json:"id"`
	Number         string  `json:"numeroCompte"`
	Type           string  `json:"typeCompte"`
	TypeLabel      string  `json:"typeCompteLibelle,omitempty"`
	CreatedAt      string  `json:"dateCreation,omitempty"` // ISO datetime
	Balance        float64 `json:"solde"`
	Active         bool    `json:"actif"`
	ClientID       int64   `json:"clientId,omitempty"`
	ClientFullName string  `json:"clientNomComplet,omitempty"`
}

// AccountRequest — payload для открытия счёта.
type AccountRequest struct {
	Type     string `json:"typeCompte"`
	ClientID int64  `json:"clientId"`
}
