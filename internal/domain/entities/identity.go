package entities

// Identity is the signed-in user as asserted by the hosted auth service.
// Sessions are owned externally; this backend only reads verified claims.
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}
