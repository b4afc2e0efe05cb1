package upload

import "time"

// Config contains the tunables for the upload pipeline service.
type Config struct {
	// Directory downloaded media is spooled in to while an upload is
	// being processed.
	DownloadDir string `yaml:"download_dir" env:"UPLOAD_DOWNLOAD_DIR" env-default:"/var/lib/booru/uploads"`

	// Number of workers that drain the queued-submission backlog.
	// Caution should be taken to not increase this value too high, as
	// processing involves talking to external APIs which may impose
	// rate limits.
	Parallelism int `yaml:"parallelism" env:"UPLOAD_PARALLELISM" env-default:"2"`

	// A submission whose fingerprint is owned by an in-flight execution
	// is re-checked after this delay rather than duplicating work.
	RecheckDelaySeconds int `yaml:"recheck_delay_seconds" env:"UPLOAD_RECHECK_DELAY_SECONDS" env-default:"5"`

	// Ceiling on re-checks for a single submission, so a crashed owner
	// cannot strand waiters rescheduling forever.
	MaxRechecks int `yaml:"max_rechecks" env:"UPLOAD_MAX_RECHECKS" env-default:"60"`

	// A record stuck in 'processing' for longer than this is treated as
	// abandoned by a crashed execution and becomes eligible for restart.
	ProcessingTimeoutSeconds int `yaml:"processing_timeout_seconds" env:"UPLOAD_PROCESSING_TIMEOUT_SECONDS" env-default:"1800"`

	// Bound on each individual media download.
	DownloadTimeoutSeconds int `yaml:"download_timeout_seconds" env:"UPLOAD_DOWNLOAD_TIMEOUT_SECONDS" env-default:"30"`
}

func (config *Config) RecheckDelayDuration() time.Duration {
	return time.Duration(config.RecheckDelaySeconds) * time.Second
}

func (config *Config) ProcessingTimeoutDuration() time.Duration {
	return time.Duration(config.ProcessingTimeoutSeconds) * time.Second
}

func (config *Config) DownloadTimeoutDuration() time.Duration {
	return time.Duration(config.DownloadTimeoutSeconds) * time.Second
}
