// Package config parses the settings of the backend from flags and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

const (
	CommandServe    = "serve"
	CommandCheckEnv = "check-env"
)

// Config holds all settings. Every flag falls back to the environment
// variable in its env tag.
type Config struct {
	Port             string   `help:"Port to listen on." env:"PORT" default:"8080"`
	GinMode          string   `help:"Mode of the HTTP framework: debug, release or test." env:"GIN_MODE" default:"release"`
	LogFormat        string   `help:"Log format: human or json. Defaults to human in debug mode and json otherwise." env:"LOG_FORMAT"`
	LogFile          string   `help:"Additionally write logs to this file, rotated at 10 MB." env:"LOG_FILE" type:"path"`
	DataDir          string   `help:"Directory for the SQLite database." env:"DATA_DIR" default:"data" type:"path"`
	DBHost           string   `name:"db-host" help:"PostgreSQL host. SQLite is used if empty." env:"DB_HOST"`
	DBUser           string   `name:"db-user" help:"PostgreSQL user." env:"DB_USER"`
	DBPassword       string   `name:"db-password" help:"PostgreSQL password." env:"DB_PASSWORD"`
	DBName           string   `name:"db-name" help:"PostgreSQL database name." env:"DB_NAME"`
	CorsAllowOrigins string   `help:"Space separated list of origins allowed for CORS requests." env:"CORS_ALLOW_ORIGINS"`
	EnablePprof      bool     `help:"Serve pprof profiles under /debug/pprof." env:"ENABLE_PPROF"`
	APIURL           *url.URL `name:"api-url" help:"Public base URL of the API, used for links in responses." env:"API_URL" default:"http://localhost:8080"`

	Version kong.VersionFlag `help:"Print the version and exit."`

	Serve       struct{} `cmd:"" default:"1" help:"Run the HTTP API."`
	CheckEnvCmd struct{} `cmd:"" name:"check-env" help:"Report which settings are configured. Values are never printed."`
}

var (
	ErrGinMode   = errors.New("gin mode must be one of debug, release and test")
	ErrLogFormat = errors.New("log format must be human or json")
	ErrDBConfig  = errors.New("db-user and db-name must be set when db-host is set")
)

// Validate is called by kong after parsing.
func (c *Config) Validate() error {
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w, not '%s'", ErrGinMode, c.GinMode)
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		return fmt.Errorf("%w, not '%s'", ErrLogFormat, c.LogFormat)
	}

	if c.DBHost != "" && (c.DBUser == "" || c.DBName == "") {
		return ErrDBConfig
	}

	return nil
}

// LoadEnv loads environment files into the process environment. Without
// arguments, it loads .env from the working directory. Missing files are
// ignored and variables that are already set are not overwritten.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not load %s: %w", file, err)
		}
	}

	return nil
}

// Parse parses the arguments, without the program name, and returns the
// configuration and the selected command.
func Parse(args []string, version string, options ...kong.Option) (*Config, string, error) {
	var cfg Config

	options = append([]kong.Option{
		kong.Name("tracker"),
		kong.Description("Weekly time allocation backend"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	}, options...)

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, "", err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return nil, "", err
	}

	return &cfg, ctx.Command(), nil
}

// Postgres reports if a PostgreSQL database is configured.
func (c Config) Postgres() bool {
	return c.DBHost != ""
}

// Export sets the environment variables the router reads for settings
// given as flags.
func (c Config) Export() error {
	if c.CorsAllowOrigins != "" {
		if err := os.Setenv("CORS_ALLOW_ORIGINS", c.CorsAllowOrigins); err != nil {
			return err
		}
	}

	if c.EnablePprof {
		if err := os.Setenv("ENABLE_PPROF", "true"); err != nil {
			return err
		}
	}

	return nil
}

// keys are the environment variables reported by CheckEnv.
var keys = []string{
	"PORT",
	"GIN_MODE",
	"LOG_FORMAT",
	"LOG_FILE",
	"DATA_DIR",
	"DB_HOST",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"CORS_ALLOW_ORIGINS",
	"ENABLE_PPROF",
	"API_URL",
}

// CheckEnv writes which environment variables are set and which database
// is used. It never writes any values.
func (c Config) CheckEnv(w io.Writer) error {
	width := 0
	for _, key := range keys {
		width = max(width, len(key))
	}

	for _, key := range keys {
		state := "not set"
		if value, ok := os.LookupEnv(key); ok {
			state = "set"
			if strings.TrimSpace(value) == "" {
				state = "set, empty"
			}
		}

		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, key, state); err != nil {
			return err
		}
	}

	database := "sqlite"
	if c.Postgres() {
		database = "postgres"
	}

	_, err := fmt.Fprintf(w, "\ndatabase: %s\n", database)
	return err
}
