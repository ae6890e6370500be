package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string

	JWTSecret string
	TokenTTL  time.Duration

	// LedgerWorkers is the number of operator workers applying ledger
	// mutations. One worker serializes every write; raising it relies on
	// row locks for per-account serialization.
	LedgerWorkers int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A local .env overrides nothing that is already exported.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		JWTSecret:        "valuevault-dev-secret",
		TokenTTL:         time.Hour,
		LedgerWorkers:    1,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envJWTSecret := os.Getenv("JWT_SECRET")
	envTokenTTL := os.Getenv("TOKEN_TTL")
	envLedgerWorkers := os.Getenv("LEDGER_WORKERS")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envJWTSecret) != 0 {
		env.JWTSecret = envJWTSecret
	}

	if len(envTokenTTL) != 0 {
		ttl, err := time.ParseDuration(envTokenTTL)
		if err != nil {
			return nil, err
		}
		env.TokenTTL = ttl
	}

	if len(envLedgerWorkers) != 0 {
		workers, err := strconv.Atoi(envLedgerWorkers)
		if err != nil {
			return nil, err
		}
		if workers > 0 {
			env.LedgerWorkers = workers
		}
	}

	return &env, nil
}

// PostgresURL assembles the connection string for lib/pq and golang-migrate.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
