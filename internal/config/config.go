package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	InterfaceTUI     = "tui"
	InterfaceConsole = "console"
	InterfaceWatch   = "watch"
)

type Config struct {
	LogLevel          string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile           string  `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	Interface         string  `yaml:"interface" env:"INTERFACE" env-default:"tui"`
	Trainer           Trainer `yaml:"trainer"`
	TUI               TUI     `yaml:"tui"`
	Redis             Redis   `yaml:"redis"`
	SQLiteStoragePath string  `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH"`
	ReportPath        string  `yaml:"report-path" env:"REPORT_PATH"`
}

type Trainer struct {
	// Episodes stays a string so that a malformed value is reported by the
	// episode validation rather than by the config loader.
	Episodes        string  `yaml:"episodes" env:"TRAINER_EPISODES" env-default:"1000"`
	LearningRate    float64 `yaml:"learning-rate" env:"TRAINER_LEARNING_RATE" env-default:"0.5"`
	ExplorationRate float64 `yaml:"exploration-rate" env:"TRAINER_EXPLORATION_RATE" env-default:"0.1"`
	ReportEvery     int     `yaml:"report-every" env:"TRAINER_REPORT_EVERY" env-default:"10"`
}

type TUI struct {
	// ReplayDelay is the pause between moves of a replayed training game.
	ReplayDelay time.Duration `yaml:"replay-delay" env:"TUI_REPLAY_DELAY" env-default:"300ms"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
