package common

// Keys under which the bearer tokens are persisted in the local store.
// Fixed names, surviving restarts until explicit logout.
const (
	AccessTokenKey  = "prism_access_token"
	RefreshTokenKey = "prism_refresh_token"
)
