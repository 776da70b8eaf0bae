package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	"github.com/Temutjin2k/ride-hail-admin/pkg/configparser"
)

// Flags
var (
	modeFlag = flag.String("mode", "", "application mode (admin-api | admin-console)")
)

// Errors
var (
	ErrModeNotProvided = errors.New("mode flag not provided")
	ErrUnknownMode     = errors.New("unknown mode")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode     types.ServiceMode
		LogLevel string `env:"LOG_LEVEL" envDefault:"INFO" validate:"oneof=DEBUG INFO WARN ERROR"`

		Database DatabaseConfig
		Services ServicesConfig
		AdminAPI AdminAPIConfig
		Console  ConsoleConfig
		Auth     Auth
		Tracing  TracingConfig
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" envDefault:"localhost"`
		Port     string `env:"DATABASE_PORT" envDefault:"5432"`
		User     string `env:"DATABASE_USER" envDefault:"ridehail_user"`
		Password string `env:"DATABASE_PASSWORD" envDefault:"ridehail_pass"`
		Database string `env:"DATABASE_DATABASE" envDefault:"ridehail_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" envDefault:"20" validate:"gte=1"`
		MinConns        int32         `env:"DATABASE_MINCONNS" envDefault:"2" validate:"gte=0"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" envDefault:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" envDefault:"5m"`
	}

	ServicesConfig struct {
		AdminAPI     string `env:"SERVICES_ADMIN_API" envDefault:"3004" validate:"numeric"`
		AdminConsole string `env:"SERVICES_ADMIN_CONSOLE" envDefault:"3006" validate:"numeric"`
	}

	// AdminAPIConfig drives the KPI and chart-series aggregation.
	AdminAPIConfig struct {
		Timezone string `env:"ADMIN_TIMEZONE" envDefault:"UTC" validate:"timezone"`
	}

	// ConsoleConfig holds the backend endpoints the console pages read from.
	// Paths are resolved against BackendURL.
	ConsoleConfig struct {
		BackendURL   string        `env:"CONSOLE_BACKEND_URL" envDefault:"http://localhost:3004" validate:"required,url"`
		GuestsAPI    string        `env:"CONSOLE_GUESTS_API" envDefault:"/administration/guests/api/" validate:"required"`
		UsersAPI     string        `env:"CONSOLE_USERS_API" envDefault:"/administration/users/api/" validate:"required"`
		KPIsAPI      string        `env:"CONSOLE_KPIS_API" envDefault:"/administration/api/kpis/" validate:"required"`
		ChartDataAPI string        `env:"CONSOLE_CHART_DATA_API" envDefault:"/administration/api/chart-data/" validate:"required"`
		FetchTimeout time.Duration `env:"CONSOLE_FETCH_TIMEOUT" envDefault:"0s"`
	}

	Auth struct {
		// Empty secret disables the admin gate.
		JWTSecret string `env:"AUTH_JWT_SECRET"`
		LoginURL  string `env:"AUTH_LOGIN_URL" envDefault:"/administration/login/"`
	}

	TracingConfig struct {
		Enabled  bool   `env:"TRACING_ENABLED" envDefault:"true"`
		Endpoint string `env:"TRACING_ENDPOINT" validate:"omitempty,url"`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	// Parsing flags
	if err := parseFlags(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	return cfg, nil
}

func parseFlags(cfg *Config) error {
	if modeFlag == nil || *modeFlag == "" {
		return ErrModeNotProvided
	}

	mode := types.ServiceMode(*modeFlag)
	switch mode {
	case types.AdminAPI, types.AdminConsole:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	cfg.Mode = mode

	return nil
}

func (c TracingConfig) IsEnabled() bool {
	return c.Enabled
}

func (c TracingConfig) GetEndpoint() string {
	return c.Endpoint
}

func (c DatabaseConfig) PoolLimits() (int32, int32, time.Duration, time.Duration) {
	return c.MaxConns, c.MinConns, c.MaxConnLifetime, c.MaxConnIdleTime
}
