// engine/internal/config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
		Bucket  string `yaml:"bucket"`
	} `yaml:"app"`

	HackerNews struct {
		MonthsBack        int `yaml:"months_back"`
		MaxRetries        int `yaml:"max_retries"`
		RetryDelaySeconds int `yaml:"retry_delay_seconds"`
		FetchPauseMillis  int `yaml:"fetch_pause_millis"`
	} `yaml:"hackernews"`

	Sources struct {
		Adzuna struct {
			Enabled        bool     `yaml:"enabled"`
			Country        string   `yaml:"country"`
			Keywords       []string `yaml:"keywords"`
			ResultsPerPage int      `yaml:"results_per_page"`
		} `yaml:"adzuna"`
		Muse struct {
			Enabled    bool     `yaml:"enabled"`
			Categories []string `yaml:"categories"`
			Pages      int      `yaml:"pages"`
		} `yaml:"muse"`
		Jooble struct {
			Enabled   bool     `yaml:"enabled"`
			Keywords  []string `yaml:"keywords"`
			Locations []string `yaml:"locations"`
			Limit     int      `yaml:"limit"`
		} `yaml:"jooble"`
	} `yaml:"sources"`

	Limits struct {
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		Burst          int     `yaml:"burst"`
	} `yaml:"limits"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// LoadDotEnv pulls a local .env into the process env so API keys can live
// next to the repo during development. Missing file is fine.
func LoadDotEnv() {
	_ = godotenv.Load()
}
