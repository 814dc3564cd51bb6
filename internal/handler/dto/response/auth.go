package response

import "bookmyvenue/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string            `json:"accessToken"`
	ExpiresIn   int64             `json:"expiresIn"`
	User        *queries.UserView `json:"user"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}
