package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-digest/0.1"). arXiv asks clients to identify themselves.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FeedConfig holds settings for the arXiv entry source.
type FeedConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the per-keyword result bound used when a topic does not
	// set its own (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// RateLimitDelay is the mandatory pause after every fetch call,
	// successful or not. arXiv ToS: at most one request per 3 s (default 3s).
	RateLimitDelay time.Duration `json:"rate_limit_delay" yaml:"rate_limit_delay"`
}

// WindowConfig describes the retention window for candidate records. The
// window ends at CutoverHour in the configured fixed-offset zone, not at the
// moment the pipeline runs.
type WindowConfig struct {
	// Days is the window length in days (default 1).
	Days int `json:"days" yaml:"days"`

	// CutoverHour is the daily boundary hour, 0-23 (default 9).
	CutoverHour int `json:"cutover_hour" yaml:"cutover_hour"`

	// UTCOffsetHours is the fixed offset of the boundary timezone from UTC
	// (default 9, i.e. KST).
	UTCOffsetHours int `json:"utc_offset_hours" yaml:"utc_offset_hours"`
}

// EnrichConfig holds settings for the optional summarization stage.
type EnrichConfig struct {
	// Enabled toggles per-record AI summaries.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Model is the AI model identifier (e.g. "gpt-4.1").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// MailConfig holds SMTP submission settings for digest delivery.
type MailConfig struct {
	// Host is the SMTP server hostname (default "smtp.gmail.com").
	Host string `json:"host" yaml:"host"`

	// Port is the SMTP submission port (default 587, STARTTLS).
	Port int `json:"port" yaml:"port"`

	// From is the sender address, also used as the login user.
	From string `json:"from" yaml:"from"`

	// Password is the SMTP login password.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// Recipients is the comma-separated recipient list.
	Recipients string `json:"recipients" yaml:"recipients"`
}

// DigestConfig groups all stage configurations for one run.
type DigestConfig struct {
	Feed   FeedConfig   `json:"feed" yaml:"feed"`
	Window WindowConfig `json:"window" yaml:"window"`
	Enrich EnrichConfig `json:"enrich" yaml:"enrich"`
	Mail   MailConfig   `json:"mail" yaml:"mail"`

	// ExcludeTerms are globally banned terms; a candidate whose title or
	// abstract contains any of them (case-insensitive) is dropped.
	ExcludeTerms []string `json:"exclude_terms" yaml:"exclude_terms"`

	// TitleLimit and AbstractLimit are the truncation bounds applied during
	// normalization (defaults 120 and 600).
	TitleLimit    int `json:"title_limit" yaml:"title_limit"`
	AbstractLimit int `json:"abstract_limit" yaml:"abstract_limit"`

	// ArchivePath is the SQLite file recording completed runs. Empty
	// disables archiving.
	ArchivePath string `json:"archive_path" yaml:"archive_path"`
}

// DefaultExcludeTerms are dropped from every topic regardless of
// configuration: secondary literature rather than new results.
var DefaultExcludeTerms = []string{"review", "survey", "comment on", "corrigendum"}
