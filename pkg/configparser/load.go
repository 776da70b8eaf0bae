package configparser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var ErrNoFilePath = errors.New("no file path provided")

// DotEnvFile is loaded before the YAML file when present.
var DotEnvFile = ".env"

// LoadAndParseYaml fills cfg from, in order of precedence: the process
// environment, an optional .env file, the YAML file and finally the
// envDefault tags. The result is validated with `validate` tags.
// A missing YAML or .env file is not an error.
func LoadAndParseYaml(filepath string, cfg any) error {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load %s: %w", DotEnvFile, err)
	}

	if err := LoadYamlFile(filepath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// LoadYamlFile reads a YAML file and exports its leaves as environment
// variables named after their path, upper-cased and joined with "_":
// console.backend_url becomes CONSOLE_BACKEND_URL. Variables that are
// already set win over the file. String values of the form
// ${VAR:-default} are resolved against the environment.
func LoadYamlFile(filepath string) error {
	if filepath == "" {
		return ErrNoFilePath
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(filepath), yaml.Parser()); err != nil {
		return fmt.Errorf("could not load YAML file: %w", err)
	}

	for path, raw := range k.All() {
		if raw == nil {
			continue
		}

		key := strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
		if os.Getenv(key) != "" {
			continue
		}

		if err := os.Setenv(key, envValue(raw)); err != nil {
			return fmt.Errorf("could not set env var %s: %w", key, err)
		}
	}

	return nil
}

// envValue renders a YAML leaf the way caarlos0/env parses it back. Lists
// are comma separated.
func envValue(raw any) string {
	switch v := raw.(type) {
	case string:
		return substitute(v)
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, envValue(item))
		}
		return strings.Join(items, ",")
	default:
		return fmt.Sprint(v)
	}
}

// substitute resolves ${VAR:-default}.
func substitute(value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	name, def, ok := strings.Cut(value[2:len(value)-1], ":-")
	if !ok {
		return value
	}
	if v := os.Getenv(strings.TrimSpace(name)); v != "" {
		return v
	}
	return strings.TrimSpace(def)
}
