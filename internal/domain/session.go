package domain

// ConnectionConfig holds the remote store endpoint and access key.
// The key is secret-bearing: never log it, always render it redacted.
type ConnectionConfig struct {
	URL     string `json:"url" yaml:"url" validate:"required,url"`
	AnonKey string `json:"anon_key" yaml:"anon_key" validate:"required"`
}

// Complete reports whether both endpoint and key are present.
func (c ConnectionConfig) Complete() bool {
	return c.URL != "" && c.AnonKey != ""
}

// Redacted returns a copy safe to render or log.
func (c ConnectionConfig) Redacted() ConnectionConfig {
	if c.AnonKey != "" {
		c.AnonKey = "***"
	}
	return c
}

// Session is the authenticated-user context returned by the auth
// provider. Token material is opaque to this system and only kept so
// it can be handed back to the provider (RLS header, refresh, logout).
type Session struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}
