package domain

import "time"

// TokenRecord é a linha persistida por conta na tabela meli_tokens. O valor
// persistido, quando existe, prevalece sobre o seed vindo do ambiente.
type TokenRecord struct {
	AccountName          string
	RefreshToken         string
	AccessToken          string
	AccessTokenExpiresAt *time.Time
	UpdatedAt            time.Time
}
