package auth

// Credentials is the persisted credential pair plus the profile fields that
// arrive with it. The zero value means "signed out".
//
// AccessToken and RefreshToken always travel together on login; a refresh
// response may rotate only the access token, in which case the stored refresh
// token must be kept as is.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Username     string `json:"username,omitempty"`
	Email        string `json:"email,omitempty"`
	Role         string `json:"role,omitempty"`
	ClientID     *int64 `json:"clientId,omitempty"`
}

// Empty reports whether no credential pair is stored.
func (c Credentials) Empty() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}
