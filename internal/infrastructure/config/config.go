package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"nelly_tech/internal/domain/entities"
	"nelly_tech/internal/domain/intake"
	"nelly_tech/pkg/logger"

	"github.com/google/uuid"
)

const (
	StoreBackendMemory    = "memory"
	StoreBackendDynamoDB  = "dynamodb"
	StoreBackendFirestore = "firestore"

	ImageStorageInline = "inline"
	ImageStorageMinio  = "minio"
	ImageStorageGCS    = "gcs"
)

// Config is the service configuration, read from the environment (and .env).
type Config struct {
	Port string

	StoreBackend       string
	QuoteRequestsTable string
	ProjectsTable      string
	FirestoreProjectID string
	StoreReadyTimeout  time.Duration
	AWS                AWSConfig

	ImageStorage string
	Minio        MinioConfig
	GCSBucket    string

	Auth AuthConfig

	SubmitInterval     time.Duration
	StatusTransitions  entities.TransitionPolicy
	WhatsAppNumber     string
	DisplayTimezone    string
	Location           *time.Location
	CORSAllowedOrigins []string

	Log logger.Config
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base of the URLs saved on projects; defaults to the endpoint.
	PublicURL string
}

// AWSConfig is used by the dynamodb backend. The credentials default to
// "local" so DynamoDB Local works without an AWS account.
type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	SessionToken     string
	DynamoDBEndpoint string
}

type AuthConfig struct {
	AdminUsersFile string
	JWTSecret      string
	JWTIssuer      string
	TokenTTL       time.Duration
}

// Load reads the configuration. Unset keys take their defaults; malformed
// values are errors.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getenvDefault("PORT", "8080"),
		StoreBackend:       strings.ToLower(getenvDefault("STORE_BACKEND", StoreBackendMemory)),
		QuoteRequestsTable: getenvDefault("QUOTE_REQUESTS_TABLE", entities.CollectionQuoteRequests),
		ProjectsTable:      getenvDefault("PROJECTS_TABLE", entities.CollectionProjects),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
		AWS: AWSConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			SessionToken:     os.Getenv("AWS_SESSION_TOKEN"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		ImageStorage: strings.ToLower(getenvDefault("IMAGE_STORAGE", ImageStorageInline)),
		Minio: MinioConfig{
			Endpoint:  os.Getenv("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getenvDefault("MINIO_BUCKET", "nelly-tech"),
			PublicURL: os.Getenv("MINIO_PUBLIC_URL"),
		},
		GCSBucket: os.Getenv("GCS_BUCKET"),
		Auth: AuthConfig{
			AdminUsersFile: getenvDefault("ADMIN_USERS_FILE", "config/admins.yaml"),
			JWTSecret:      os.Getenv("JWT_SECRET"),
			JWTIssuer:      getenvDefault("JWT_ISSUER", "nelly-tech"),
		},
		StatusTransitions:  entities.ParseTransitionPolicy(os.Getenv("STATUS_TRANSITIONS")),
		WhatsAppNumber:     getenvDefault("WHATSAPP_NUMBER", "5515991563363"),
		DisplayTimezone:    getenvDefault("DISPLAY_TIMEZONE", "America/Sao_Paulo"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Log: logger.Config{
			Level:  getenvDefault("LOG_LEVEL", "info"),
			Format: getenvDefault("LOG_FORMAT", "json"),
		},
	}

	var err error
	if cfg.StoreReadyTimeout, err = durationEnv("STORE_READY_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SubmitInterval, err = durationEnv("SUBMIT_INTERVAL", intake.DefaultSubmitInterval); err != nil {
		return nil, err
	}
	if cfg.Minio.UseSSL, err = boolEnv("MINIO_USE_SSL", false); err != nil {
		return nil, err
	}
	hours, err := intEnv("TOKEN_EXPIRE_HOURS", 24)
	if err != nil {
		return nil, err
	}
	cfg.Auth.TokenTTL = time.Duration(hours) * time.Hour

	switch cfg.StoreBackend {
	case StoreBackendMemory, StoreBackendDynamoDB:
	case StoreBackendFirestore:
		if cfg.FirestoreProjectID == "" {
			return nil, fmt.Errorf("FIRESTORE_PROJECT_ID is required for the firestore backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	switch cfg.ImageStorage {
	case ImageStorageInline:
	case ImageStorageMinio:
		if cfg.Minio.Endpoint == "" {
			return nil, fmt.Errorf("MINIO_ENDPOINT is required for minio image storage")
		}
	case ImageStorageGCS:
		if cfg.GCSBucket == "" {
			return nil, fmt.Errorf("GCS_BUCKET is required for gcs image storage")
		}
	default:
		return nil, fmt.Errorf("unknown IMAGE_STORAGE %q", cfg.ImageStorage)
	}

	if cfg.Location, err = time.LoadLocation(cfg.DisplayTimezone); err != nil {
		return nil, fmt.Errorf("invalid DISPLAY_TIMEZONE %q: %w", cfg.DisplayTimezone, err)
	}

	if cfg.Auth.JWTSecret == "" {
		// Tokens will not survive a restart.
		cfg.Auth.JWTSecret = uuid.NewString()
		log.Printf("[config] JWT_SECRET not set, using a random per-process secret")
	}
	return cfg, nil
}

// Tables maps collection names to DynamoDB table names.
func (c *Config) Tables() map[string]string {
	return map[string]string{
		entities.CollectionQuoteRequests: c.QuoteRequestsTable,
		entities.CollectionProjects:      c.ProjectsTable,
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: expected a positive duration such as 60s", key, v)
	}
	return d, nil
}

func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: expected a positive integer", key, v)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
