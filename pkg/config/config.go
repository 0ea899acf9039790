package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	AI       AIConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
}

// StorageConfig holds the Cloudflare R2 bucket credentials and the public
// CDN base under which uploaded objects are served.
type StorageConfig struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
	CDNBase   string
}

// AIConfig points at the external description generation endpoint.
type AIConfig struct {
	Endpoint string
	APIKey   string
}

// SecurityConfig carries the anti-forgery token embedded into admin pages.
// It is injected into the request pipeline at construction time rather than
// read ad hoc per call.
type SecurityConfig struct {
	CSRFToken string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Storage: StorageConfig{
			AccountID: getEnv("R2_ACCOUNT_ID", ""),
			AccessKey: getEnv("R2_ACCESS_KEY", ""),
			SecretKey: getEnv("R2_SECRET_KEY", ""),
			Bucket:    getEnv("R2_BUCKET_NAME", ""),
			CDNBase:   getEnv("CDN_BASE_URL", "https://cdn.condoadmin.dev"),
		},
		AI: AIConfig{
			Endpoint: getEnv("AI_ENDPOINT", ""),
			APIKey:   getEnv("AI_API_KEY", ""),
		},
		Security: SecurityConfig{
			CSRFToken: getEnv("CSRF_TOKEN", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// SlotLimit is one upload slot's constraints as declared in the slots file.
type SlotLimit struct {
	MaxSizeMB int64    `yaml:"max_size_mb"`
	Types     []string `yaml:"types"`
}

type slotFile struct {
	Slots map[string]SlotLimit `yaml:"slots"`
}

// LoadSlotLimits reads per-slot upload constraints from a YAML file. A
// missing file is not an error; built-in defaults apply.
func LoadSlotLimits(path string) (map[string]SlotLimit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not read slot config: %w", err)
	}

	var f slotFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse slot config: %w", err)
	}
	return f.Slots, nil
}
