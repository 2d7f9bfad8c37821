package main

import (
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-digest/internal/secrets"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultUserAgent   = "arxiv-digest/0.1"
	defaultRateLimit   = 3 * time.Second
	defaultMaxResults  = 20
	defaultWindowDays  = 1
	defaultCutoverHour = 9
	defaultUTCOffset   = 9
	defaultSMTPHost    = "smtp.gmail.com"
	defaultSMTPPort    = 587
	defaultArchive     = "arxiv-digest.db"
)

// buildConfig assembles the run configuration from the viper-loaded config
// file, environment, and secrets. Flag overrides are applied by the callers.
func buildConfig() types.DigestConfig {
	viper.SetDefault("feed.timeout", defaultTimeout)
	viper.SetDefault("feed.user_agent", defaultUserAgent)
	viper.SetDefault("feed.max_results", defaultMaxResults)
	viper.SetDefault("feed.rate_limit_delay", defaultRateLimit)
	viper.SetDefault("window.days", defaultWindowDays)
	viper.SetDefault("window.cutover_hour", defaultCutoverHour)
	viper.SetDefault("window.utc_offset_hours", defaultUTCOffset)
	viper.SetDefault("mail.host", defaultSMTPHost)
	viper.SetDefault("mail.port", defaultSMTPPort)
	viper.SetDefault("exclude_terms", types.DefaultExcludeTerms)
	viper.SetDefault("archive_path", defaultArchive)

	return types.DigestConfig{
		Feed: types.FeedConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("feed.timeout"),
				UserAgent: viper.GetString("feed.user_agent"),
			},
			MaxResults:     viper.GetInt("feed.max_results"),
			RateLimitDelay: viper.GetDuration("feed.rate_limit_delay"),
		},
		Window: types.WindowConfig{
			Days:           viper.GetInt("window.days"),
			CutoverHour:    viper.GetInt("window.cutover_hour"),
			UTCOffsetHours: viper.GetInt("window.utc_offset_hours"),
		},
		Enrich: types.EnrichConfig{
			Enabled: viper.GetBool("enrich.enabled"),
			Model:   viper.GetString("enrich.model"),
			APIKey:  secretDefault(secrets.KeyOpenAIAPIKey, viper.GetString("enrich.api_key")),
		},
		Mail: types.MailConfig{
			Host:       viper.GetString("mail.host"),
			Port:       viper.GetInt("mail.port"),
			From:       viper.GetString("mail.from"),
			Password:   secretDefault(secrets.KeySMTPPassword, viper.GetString("mail.password")),
			Recipients: viper.GetString("mail.recipients"),
		},
		ExcludeTerms:  viper.GetStringSlice("exclude_terms"),
		TitleLimit:    viper.GetInt("title_limit"),
		AbstractLimit: viper.GetInt("abstract_limit"),
		ArchivePath:   viper.GetString("archive_path"),
	}
}
