package config

// DefaultBaseURL is the production YouTube Data API v3 root.
const DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.CORSOrigins == nil {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if cfg.YouTube.BaseURL == "" {
		cfg.YouTube.BaseURL = DefaultBaseURL
	}
	if cfg.YouTube.TimeoutSeconds == 0 {
		cfg.YouTube.TimeoutSeconds = 20
	}
	if cfg.YouTube.RequestsPerSecond == 0 {
		cfg.YouTube.RequestsPerSecond = 10
	}
	if cfg.YouTube.PageSize == 0 {
		cfg.YouTube.PageSize = 50
	}
	// The Data API caps maxResults at 50
	if cfg.YouTube.PageSize > 50 {
		cfg.YouTube.PageSize = 50
	}
	if cfg.YouTube.MaxPages == 0 {
		cfg.YouTube.MaxPages = 5
	}
	if cfg.YouTube.CommentSampleSize == 0 {
		cfg.YouTube.CommentSampleSize = 2
	}
	if cfg.YouTube.ChannelBatchSize == 0 {
		cfg.YouTube.ChannelBatchSize = 10
	}
	if cfg.YouTube.ChannelPageSize == 0 {
		cfg.YouTube.ChannelPageSize = 50
	}
	if cfg.YouTube.ChannelPageSize > 50 {
		cfg.YouTube.ChannelPageSize = 50
	}
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = "/usr/local/var/erabu/data/cache.db"
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 15
	}
}
