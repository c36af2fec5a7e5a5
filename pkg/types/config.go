package types

import "time"

// HTTPConfig holds shared HTTP settings for packages that talk to NCBI.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with every request
	// (e.g. "citegraph/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the transport layer.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Delay is the minimum spacing between consecutive requests, per the
	// NCBI usage policy. Zero disables pacing.
	Delay time.Duration `json:"delay" yaml:"delay"`

	// Tool and Email identify the client to the NCBI id-converter and
	// eutils endpoints, as their usage guidelines request.
	Tool  string `json:"tool" yaml:"tool"`
	Email string `json:"email" yaml:"email"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// StoreConfig holds settings for the local SQLite cache.
type StoreConfig struct {
	// DBPath is the path of the SQLite database file.
	DBPath string `json:"db_path" yaml:"db_path"`
}
