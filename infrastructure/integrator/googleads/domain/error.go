package domain

import "fmt"

// ErrorResponse é o envelope padrão de erro da API REST do Google Ads
type ErrorResponse struct {
	Error *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google ads api error (%s): %s", e.Status, e.Message)
}
