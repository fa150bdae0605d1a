package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	LogLevel    string
	SettingsDir string
	MonthLocale string

	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	OpenAIVisionModel string
	AITimeout         time.Duration
}

func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:              "9446",
		PostgresAddress:   "localhost",
		PostgresPort:      "5433",
		PostgresDB:        "postgres",
		PostgresUsername:  "postgres",
		PostgresPassword:  "testpassword",
		LogLevel:          "info",
		SettingsDir:       "./data/settings",
		MonthLocale:       "es_ES",
		OpenAIBaseURL:     "https://api.openai.com/v1",
		OpenAIModel:       "gpt-4o-mini",
		OpenAIVisionModel: "gpt-4o",
		AITimeout:         30 * time.Second,
	}

	setString(&env.Port, "PORT")
	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.LogLevel, "LOG_LEVEL")
	setString(&env.SettingsDir, "SETTINGS_DIR")
	setString(&env.MonthLocale, "MONTH_LOCALE")
	setString(&env.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&env.OpenAIBaseURL, "OPENAI_BASE_URL")
	setString(&env.OpenAIModel, "OPENAI_MODEL")
	setString(&env.OpenAIVisionModel, "OPENAI_VISION_MODEL")

	timeoutSeconds := int(env.AITimeout / time.Second)
	if err := setInt(&timeoutSeconds, "AI_TIMEOUT_SECONDS"); err != nil {
		return nil, err
	}
	env.AITimeout = time.Duration(timeoutSeconds) * time.Second

	return &env, nil
}

func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func setString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}

func setInt(target *int, key string) error {
	value := os.Getenv(key)
	if len(value) == 0 {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s must be an integer: %w", key, err)
	}
	*target = parsed
	return nil
}
