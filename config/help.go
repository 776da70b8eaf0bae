package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
)

const HelpMessage = `
Ride-hail administration

Usage:
  admin -mode <admin-api|admin-console> [-config-path config.yaml]

Flags:
  -mode          admin-api      serve guests, users, KPI and chart JSON from PostgreSQL
                 admin-console  serve the administration pages
  -config-path   path to the YAML config file (default config.yaml)
  -help          show this message

Environment (YAML sections flatten to SECTION_KEY):
  LOG_LEVEL                 DEBUG | INFO | WARN | ERROR
  DATABASE_*                HOST, PORT, USER, PASSWORD, DATABASE, MAXCONNS, MINCONNS
  SERVICES_ADMIN_API        admin-api port (3004)
  SERVICES_ADMIN_CONSOLE    admin-console port (3006)
  ADMIN_TIMEZONE            zone used for "today" in KPIs (UTC)
  CONSOLE_BACKEND_URL       base URL of the admin-api
  CONSOLE_GUESTS_API        guests endpoint path
  CONSOLE_USERS_API         users endpoint path
  CONSOLE_KPIS_API          KPI endpoint path
  CONSOLE_CHART_DATA_API    chart-data endpoint path
  CONSOLE_FETCH_TIMEOUT     backend request timeout, 0 disables
  AUTH_JWT_SECRET           enables the ADMIN token gate when set
  AUTH_LOGIN_URL            console redirect for unauthenticated visitors
  TRACING_ENDPOINT          OTLP/HTTP endpoint, tracing is off when empty
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}

// PrintConfig prints the effective configuration with secrets masked.
func PrintConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "mode=%s log_level=%s\n", cfg.Mode, cfg.LogLevel)
	switch cfg.Mode {
	case types.AdminAPI:
		fmt.Fprintf(&b, "port=%s database=%s@%s:%s/%s password=%s timezone=%s\n",
			cfg.Services.AdminAPI,
			cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database,
			mask(cfg.Database.Password),
			cfg.AdminAPI.Timezone,
		)
	case types.AdminConsole:
		fmt.Fprintf(&b, "port=%s backend=%s guests=%s users=%s kpis=%s charts=%s timeout=%s\n",
			cfg.Services.AdminConsole,
			cfg.Console.BackendURL,
			cfg.Console.GuestsAPI, cfg.Console.UsersAPI, cfg.Console.KPIsAPI, cfg.Console.ChartDataAPI,
			cfg.Console.FetchTimeout,
		)
	}
	fmt.Fprintf(&b, "auth_gate=%t tracing=%t\n", cfg.Auth.JWTSecret != "", cfg.Tracing.Enabled && cfg.Tracing.Endpoint != "")

	fmt.Print(b.String())
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}
