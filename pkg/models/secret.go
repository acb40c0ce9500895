package models

import "time"

// SetSecretRequest contains fields for storing or replacing a secret value.
type SetSecretRequest struct {
	KeyPath     string         `json:"key_path"`
	Value       string         `json:"value"`
	SecretType  string         `json:"secret_type,omitempty"`
	Description string         `json:"description,omitempty"`
	ExpiresAt   *time.Time     `json:"expires_at,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// SecretInfo describes a stored secret without exposing its value.
type SecretInfo struct {
	KeyPath        string     `json:"key_path"`
	SecretType     string     `json:"secret_type,omitempty"`
	Description    string     `json:"description,omitempty"`
	AccessCount    int        `json:"access_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
