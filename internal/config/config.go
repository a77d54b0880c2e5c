package config

import (
	"errors"
	"fmt"
	"io/fs"
	"leavebot/pkg/workday"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the LINE channel, the HTTP
// server, the business-day calendar, notification delivery, the optional
// database and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// LINE contains the messaging channel credentials.
	LINE struct {
		// ChannelAccessToken authenticates reply and push calls. Required by serve.
		ChannelAccessToken string `env:"LINE_CHANNEL_ACCESS_TOKEN" yaml:"channelAccessToken"`
		// ChannelSecret verifies webhook signatures. Required by serve.
		ChannelSecret string `env:"LINE_CHANNEL_SECRET" yaml:"channelSecret"`
		// APIEndpoint overrides the messaging API base URL.
		APIEndpoint string `env:"LINE_API_ENDPOINT" yaml:"apiEndpoint"`
	} `yaml:"line"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Host is the interface the HTTP server binds to; empty means all interfaces
		Host string `env:"HTTP_HOST" yaml:"host"`
		// Port is the port the HTTP server listens on
		Port int `env:"PORT" env-default:"3000" yaml:"port"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// Pprof mounts the pprof handlers under /debug/pprof/
		Pprof bool `env:"HTTP_PPROF" env-default:"false" yaml:"pprof"`
		// CORSAllowedOrigins lists origins allowed to call the API from a browser
		CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"*" yaml:"corsAllowedOrigins"`
	} `yaml:"http"`

	// BaseURL is the public URL of this service. Defaults to http://localhost:<port>.
	BaseURL string `env:"BASE_URL" yaml:"baseURL"`

	// LIFF configures the leave request form.
	LIFF struct {
		// ID is the LIFF app identifier injected into the form.
		ID string `env:"LIFF_ID" yaml:"id"`
		// StaticDir serves the form from disk instead of the embedded copy.
		StaticDir string `env:"LIFF_STATIC_DIR" yaml:"staticDir"`
	} `yaml:"liff"`

	// Holidays configures the dates excluded from business-day counts.
	Holidays struct {
		// Dates is a list of YYYY-MM-DD dates.
		Dates []string `env:"HOLIDAYS" yaml:"dates"`
		// File points to a holiday file (one "YYYY-MM-DD [name]" per line).
		File string `env:"HOLIDAYS_FILE" yaml:"file"`
	} `yaml:"holidays"`

	// Keywords overrides the classifier trigger words.
	Keywords struct {
		Balance      string `env:"KEYWORD_BALANCE" env-default:"ยอดลา" yaml:"balance"`
		Leave        string `env:"KEYWORD_LEAVE" env-default:"ลา" yaml:"leave"`
		RequestLeave string `env:"KEYWORD_REQUEST_LEAVE" env-default:"ขอลา" yaml:"requestLeave"`
	} `yaml:"keywords"`

	// Notifier configures confirmation push delivery.
	Notifier struct {
		// MaxAttempts is the number of push attempts before giving up
		MaxAttempts int `env:"NOTIFIER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// InitialInterval is the delay before the first retry
		InitialInterval time.Duration `env:"NOTIFIER_INITIAL_INTERVAL" env-default:"500ms" yaml:"initialInterval"`
		// MaxInterval caps the delay between retries
		MaxInterval time.Duration `env:"NOTIFIER_MAX_INTERVAL" env-default:"5s" yaml:"maxInterval"`
	} `yaml:"notifier"`

	// Database contains all database connection related configurations
	Database struct {
		// Enabled turns on persistence of holidays and leave requests and queued delivery
		Enabled bool `env:"DATABASE_ENABLED" env-default:"false" yaml:"enabled"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"leavebot" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Worker configures the push job workers (database mode only).
	Worker struct {
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// ErrMissingCredentials is returned by Validate when the LINE channel
// credentials are not configured.
var ErrMissingCredentials = errors.New("missing LINE channel credentials")

// Load reads the dotenv file (if present), then the yaml config file (if
// present) and the environment, and returns a filled Config struct.
// Environment variables take precedence over the yaml file.
func Load(configPath, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load env file: %w", err)
		}
	}

	var cfg Config
	var err error
	if _, statErr := os.Stat(configPath); configPath != "" && statErr == nil {
		err = cleanenv.ReadConfig(configPath, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + strconv.Itoa(cfg.HTTP.Port)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &cfg, nil
}

// Validate checks settings the webhook server cannot start without.
func (c *Config) Validate() error {
	var missing []string
	if c.LINE.ChannelAccessToken == "" {
		missing = append(missing, "LINE_CHANNEL_ACCESS_TOKEN")
	}
	if c.LINE.ChannelSecret == "" {
		missing = append(missing, "LINE_CHANNEL_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}

	return nil
}

// Addr is the TCP address the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

// LoadHolidays returns the configured holidays: the Dates list followed by
// the entries of File.
func (c *Config) LoadHolidays() ([]workday.Holiday, error) {
	set, err := workday.ParseHolidaySet(c.Holidays.Dates)
	if err != nil {
		return nil, fmt.Errorf("could not parse HOLIDAYS: %w", err)
	}
	holidays := make([]workday.Holiday, 0, set.Len())
	for _, d := range set.Dates() {
		holidays = append(holidays, workday.Holiday{Date: d})
	}

	if c.Holidays.File != "" {
		fromFile, err := workday.LoadHolidayFile(c.Holidays.File)
		if err != nil {
			return nil, fmt.Errorf("could not load holidays file: %w", err)
		}
		holidays = append(holidays, fromFile...)
	}

	return holidays, nil
}
