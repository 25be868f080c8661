package siampay

import "time"

// Config holds everything needed to construct a client.
//
// The secret key authorizes operations against the main API endpoint; the
// public key authorizes operations against the vault (tokenization)
// endpoint. Either may be left empty when the corresponding operations are
// not used: a binding call that needs the missing key fails with a
// configuration error before any network attempt.
//
// Both keys are read once at construction time. The library takes no locks
// around them; replace the client rather than mutating a Config that is in
// use from multiple goroutines.
type Config struct {
	// SecretKey authorizes main-API operations (charges, customers, ...).
	SecretKey string

	// PublicKey authorizes vault operations (token creation).
	PublicKey string

	// APIEndpoint overrides the main API host. Defaults to the production
	// host when empty.
	APIEndpoint string

	// VaultEndpoint overrides the vault host. Defaults to the production
	// host when empty.
	VaultEndpoint string

	// UserAgent is appended to the library's own User-Agent product tokens.
	UserAgent string

	// Logger receives one informational and one debug record per request.
	Logger Logger

	// Debug includes credentials, payloads and headers in debug records.
	Debug bool

	// HTTPTimeout bounds each request. Zero means the library default.
	HTTPTimeout time.Duration
}
