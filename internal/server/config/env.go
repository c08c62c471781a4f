package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func envString(dst *string) func(string) error {
	return func(v string) error { *dst = v; return nil }
}

func envInt(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err == nil {
			*dst = n
		}
		return err
	}
}

func envDuration(dst *time.Duration) func(string) error {
	return func(v string) error {
		d, err := time.ParseDuration(v)
		if err == nil {
			*dst = d
		}
		return err
	}
}

func envBindings(c *Config) map[string]func(string) error {
	return map[string]func(string) error{
		"GRPC_ADDRESS":             envString(&c.EndpointAddrGRPC),
		"DATABASE_DSN":             envString(&c.DatabaseDSN),
		"JWT_SECRET":               envString(&c.SecretKey),
		"STORAGE_PROVIDER":         envString(&c.StorageProvider),
		"S3_ROOT_USER":             envString(&c.S3RootUser),
		"S3_ROOT_PASSWORD":         envString(&c.S3RootPassword),
		"S3_BUCKET":                envString(&c.S3Bucket),
		"S3_REGION":                envString(&c.S3Region),
		"S3_BASE_ENDPOINT":         envString(&c.S3BaseEndpoint),
		"GCS_BUCKET":               envString(&c.GCSBucket),
		"GCS_CREDENTIALS_FILE":     envString(&c.GCSCredentialsFile),
		"UPLOAD_URL_EXPIRY":        envDuration(&c.UploadURLExpiry),
		"OPENAI_API_KEY":           envString(&c.OpenAIAPIKey),
		"OPENAI_BASE_URL":          envString(&c.OpenAIBaseURL),
		"OPENAI_MODEL":             envString(&c.ModelName),
		"OPENAI_MAX_TOKENS":        envInt(&c.MaxTokens),
		"AUDIT_CONCURRENCY":        envInt(&c.AuditConcurrency),
		"AUDIT_MAX_RETRIES":        envInt(&c.MaxRetries),
		"AUDIT_BACKOFF_BASE":       envDuration(&c.BackoffBase),
		"AUDIT_BACKOFF_MAX":        envDuration(&c.BackoffMax),
		"AUDIT_INVOCATION_TIMEOUT": envDuration(&c.InvocationTimeout),
		"AUDIT_RUN_CEILING":        envDuration(&c.RunCeiling),
		"AUDIT_MAX_DOCUMENT_MB":    envInt(&c.MaxDocumentMB),
		"REDIS_ADDRESS":            envString(&c.RedisAddr),
		"LOCK_TTL":                 envDuration(&c.LockTTL),
		"PUBSUB_PROJECT_ID":        envString(&c.PubSubProjectID),
		"PUBSUB_TOPIC":             envString(&c.PubSubTopic),
		"PUBSUB_CREDENTIALS_FILE":  envString(&c.PubSubCredentialsFile),
		"EXTRACTION_CACHE_DIR":     envString(&c.CacheDir),
		"STAGE_CATALOG_PATH":       envString(&c.StageCatalogPath),
		"LOG_BACKEND":              envString(&c.LogBackend),
		"LOG_LEVEL":                envString(&c.LogLevel),
	}
}

// parseEnv overlays values from the process environment. A .env file in
// the working directory is loaded first when present; variables already
// set in the environment take precedence over it.
//
// Malformed numeric or duration values panic, like malformed JSON does.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	for name, set := range envBindings(config) {
		v, ok := os.LookupEnv(name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if err := set(strings.TrimSpace(v)); err != nil {
			panic("config: " + name + ": " + err.Error())
		}
	}
}
