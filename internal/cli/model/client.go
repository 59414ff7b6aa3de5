package model

// ClientRecord mirrors the backend client DTO. JSON field names follow the
// backend wire contract (French), Go names stay English.
type ClientRecord struct {
	ID           int64           `json:"id"`
	LastName     string          `json:"nom"`
	FirstName    string          `json:"prenom"`
	FullName     string          `json:"nomComplet,omitempty"`
	BirthDate    string          `json:"dateNaissance,omitempty"` // ISO date YYYY-MM-DD
	Sex          string          `json:"sexe,omitempty"`          // MASCULIN | FEMININ
	Address      string          `json:"adresse,omitempty"`
	Phone        string          `json:"telephone,omitempty"`
	Email        string          `json:"courriel,omitempty"`
	Nationality  string          `json:"nationalite,omitempty"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	AccountCount int             `json:"nombreComptes,omitempty"`
	Accounts     []AccountRecord `json:"comptes,omitempty"`
}

// ClientRequest — payload для создания/обновления клиента.
type ClientRequest struct {
	LastName    string `json:"nom"`
	FirstName   string `json:"prenom"`
	BirthDate   string `json:"dateNaissance"`
	Sex         string `json:"sexe"`
	Address     string `json:"adresse,omitempty"`
	Phone       string `json:"telephone,omitempty"`
	Email       string `json:"courriel,omitempty"`
	Nationality string `json:"nationalite,omitempty"`
}
