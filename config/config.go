package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents an app config.
type Config struct {
	Telegram  Telegram
	Gateway   Gateway
	Bot       Bot
	KeepAlive KeepAlive
	Logger    Logger
}

// Telegram represents a telegram bot configuration.
type Telegram struct {
	BotToken      string `env:"BOT_TOKEN"`
	UpdatesType   string `env:"UPDATES_TYPE" env-default:"polling"`
	WebhookURL    string `env:"WEBHOOK_URL"`
	ServerAddress string `env:"SERVER_ADDRESS" env-default:":8443"`
}

// Gateway represents the spreadsheet webhook configuration.
type Gateway struct {
	ScriptURL string        `env:"SCRIPT_URL"`
	Token     string        `env:"TOKEN"`
	Timeout   time.Duration `env:"GATEWAY_TIMEOUT" env-default:"15s"`
}

// Bot represents conversation-level settings.
type Bot struct {
	OwnerID       int64         `env:"OWNER_ID"`
	Timezone      string        `env:"TIMEZONE" env-default:"Europe/Moscow"`
	SessionTTL    time.Duration `env:"SESSION_TTL" env-default:"30m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" env-default:"5m"`
}

// KeepAlive represents the health endpoint the hosting platform polls.
type KeepAlive struct {
	Port string `env:"PORT" env-default:"10000"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"EB_LOGGER_LOG_LEVEL" env-default:"debug"`
	LogFilename     string `env:"EB_LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"EB_LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

var (
	config Config
	once   sync.Once
)

// Get returns a new config.
func Get() *Config {
	once.Do(func() {
		err := cleanenv.ReadEnv(&config)
		if err != nil {
			log.Fatalf("read env: %v", err)
		}
	})

	return &config
}
