package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env              string `yaml:"env"`
	Port             int    `yaml:"port"`
	AssetsDir        string `yaml:"assetsDir"`
	SessionsDir      string `yaml:"sessionsDir"`
	PublicBaseURL    string `yaml:"publicBaseUrl"`
	JWTSecret        string `yaml:"jwtSecret"`
	RegistrationCode string `yaml:"registrationCode"`
	DatabaseDSN      string `yaml:"databaseDsn"`
	IdentityURL      string `yaml:"identityUrl"`
	IdentityKey      string `yaml:"identityKey"`
	LogJSON          bool   `yaml:"logJson"`
}

func Default() Config {
	return Config{
		Env:              "dev",
		Port:             5000,
		AssetsDir:        "./assets",
		SessionsDir:      "./sessions",
		JWTSecret:        "",
		RegistrationCode: "",
		DatabaseDSN:      "",
		IdentityURL:      "",
		LogJSON:          true,
	}
}

// EnvDefaults applies STADIUM_* environment overrides on top of Default.
func EnvDefaults() Config {
	return fromEnv(Default())
}

// FromFile layers a YAML config file over the env defaults. A missing file
// is not an error; a malformed one is.
func FromFile(path string) (Config, error) {
	c := EnvDefaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}

func fromEnv(c Config) Config {
	if v := os.Getenv("STADIUM_ENV"); v != "" {
		c.Env = v
	}
	if v := os.Getenv("STADIUM_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	if v := os.Getenv("STADIUM_ASSETS_DIR"); v != "" {
		c.AssetsDir = v
	}
	if v := os.Getenv("STADIUM_SESSIONS_DIR"); v != "" {
		c.SessionsDir = v
	}
	if v := os.Getenv("STADIUM_PUBLIC_BASE_URL"); v != "" {
		c.PublicBaseURL = v
	}
	if v := os.Getenv("STADIUM_JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("STADIUM_REGISTRATION_CODE"); v != "" {
		c.RegistrationCode = v
	}
	if v := os.Getenv("STADIUM_DATABASE_DSN"); v != "" {
		c.DatabaseDSN = v
	}
	if v := os.Getenv("STADIUM_IDENTITY_URL"); v != "" {
		c.IdentityURL = v
	}
	if v := os.Getenv("STADIUM_IDENTITY_KEY"); v != "" {
		c.IdentityKey = v
	}
	if v := os.Getenv("STADIUM_LOG_JSON"); v != "" {
		switch v {
		case "1", "true", "TRUE":
			c.LogJSON = true
		case "0", "false", "FALSE":
			c.LogJSON = false
		}
	}
	return c
}
