// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "cardscan/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OCREngine identifies the recognition backend.
type OCREngine string

const (
	EngineTesseract OCREngine = "tesseract"
	EngineRemote    OCREngine = "remote"
)

// OCRConfig holds settings for the recognition stage.
type OCRConfig struct {
	HTTPConfig `yaml:",inline"`

	// Engine selects the recognition backend: tesseract or remote.
	Engine OCREngine `json:"engine" yaml:"engine"`

	// Language is the default recognizer language code (eng, hin, mar).
	Language string `json:"language" yaml:"language"`

	// RemoteURL is the endpoint of the remote recognition service.
	// Required when Engine is remote.
	RemoteURL string `json:"remote_url,omitempty" yaml:"remote_url,omitempty"`

	// MaxRetries is the number of retry attempts for remote calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// HistoryBackend identifies the snapshot persistence backend.
type HistoryBackend string

const (
	BackendFile   HistoryBackend = "file"
	BackendSQLite HistoryBackend = "sqlite"
)

// HistoryConfig holds settings for the scan history store.
type HistoryConfig struct {
	// Dir is the directory holding the persisted snapshot.
	Dir string `json:"dir" yaml:"dir"`

	// Backend selects the snapshot backend: file (JSON) or sqlite.
	Backend HistoryBackend `json:"backend" yaml:"backend"`
}

// ExportConfig holds settings for contact export.
type ExportConfig struct {
	// Dir is the directory export files are written to (default ".").
	Dir string `json:"dir" yaml:"dir"`
}
