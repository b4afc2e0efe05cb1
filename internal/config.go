package internal

import (
	"fmt"

	"github.com/Cyber-Creek/danbooru/internal/api"
	"github.com/Cyber-Creek/danbooru/internal/database"
	"github.com/Cyber-Creek/danbooru/internal/upload"
	"github.com/ilyakaznacheev/cleanenv"
)

// BooruConfig is the struct used to contain the various user config
// supplied by file, or manually inside the code.
type BooruConfig struct {
	Upload   upload.Config           `yaml:"upload"`
	Database database.DatabaseConfig `yaml:"database" env-required:"true"`
	Rest     api.RestConfig          `yaml:"api"`

	// Credentials for the origin services the source strategies talk to.
	// Submissions for a service whose credential is unset will fail at
	// the extraction stage rather than at startup.
	TwitterBearerToken string `yaml:"twitter_bearer_token" env:"TWITTER_BEARER_TOKEN"`
	PixivSessionCookie string `yaml:"pixiv_session_cookie" env:"PIXIV_SESSION_COOKIE"`
}

// LoadFromFile loads a configuration file formatted in YAML in to a
// BooruConfig struct, with environment variable overrides applied.
func (config *BooruConfig) LoadFromFile(configPath string) error {
	if err := cleanenv.ReadConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to load configuration from %s - %v", configPath, err.Error())
	}

	return nil
}
