package models

// Listener is read-only inside this service. The admin surface that
// manages listeners lives elsewhere; we only look up the display name
// for gateway order metadata.
type Listener struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
