package dto

import "time"

type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, details string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// ValidationResponse carries field-scoped validation errors so a client can
// highlight exactly what to fix.
type ValidationResponse struct {
	Ok     bool         `json:"ok"`
	Errors []FieldError `json:"errors"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AuthResponse struct {
	Ok          bool       `json:"ok"`
	AccessToken string     `json:"access_token"`
	User        GetUserDto `json:"user"`
}

type RefreshResponse struct {
	Ok          bool   `json:"ok"`
	AccessToken string `json:"access_token"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type FaviconResponse struct {
	Favicon string `json:"favicon"`
}
