package models

// TokenPair is returned by a successful login.
// swagger:model TokenPair
type TokenPair struct {
	// Short lived access token
	Access string `json:"access"`
	// Long lived refresh token
	Refresh string `json:"refresh"`
}
