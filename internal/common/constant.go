// Package common holds identifiers shared by the API client, the stores and
// the CLI: local storage keys and request header names.
package common

// Keys of the local key-value store.
const (
	// StorageKeyToken holds the raw session token.
	StorageKeyToken = "token"
	// StorageKeyUser holds the JSON-serialised models.User.
	StorageKeyUser = "user"
	// StorageKeyFavorites holds the JSON array of favorite course ids.
	StorageKeyFavorites = "@favorites"
	// StorageKeySettings holds the JSON-serialised models.Settings.
	StorageKeySettings = "appSettings"
)

// HTTP headers set by the API client.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)
