package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/flagx"
	"github.com/carlosftapiap/arcsapp-sub001/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "90s" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`
	SecretKey        string `json:"secret_key"`

	StorageProvider    string         `json:"storage_provider"`
	S3RootUser         string         `json:"s3_root_user"`
	S3RootPassword     string         `json:"s3_root_password"`
	S3Bucket           string         `json:"s3_bucket"`
	S3Region           string         `json:"s3_region"`
	S3BaseEndpoint     string         `json:"s3_base_endpoint"`
	GCSBucket          string         `json:"gcs_bucket"`
	GCSCredentialsFile string         `json:"gcs_credentials_file"`
	UploadURLExpiry    timex.Duration `json:"upload_url_expiry"`

	OpenAIAPIKey  string `json:"openai_api_key"`
	OpenAIBaseURL string `json:"openai_base_url"`
	ModelName     string `json:"model_name"`
	MaxTokens     int    `json:"max_tokens"`

	AuditConcurrency  int            `json:"audit_concurrency"`
	MaxRetries        *int           `json:"max_retries"`
	BackoffBase       timex.Duration `json:"backoff_base"`
	BackoffMax        timex.Duration `json:"backoff_max"`
	InvocationTimeout timex.Duration `json:"invocation_timeout"`
	RunCeiling        timex.Duration `json:"run_ceiling"`
	MaxDocumentMB     int            `json:"max_document_mb"`

	RedisAddr string         `json:"redis_addr"`
	LockTTL   timex.Duration `json:"lock_ttl"`

	PubSubProjectID       string `json:"pubsub_project_id"`
	PubSubTopic           string `json:"pubsub_topic"`
	PubSubCredentialsFile string `json:"pubsub_credentials_file"`

	CacheDir         string `json:"cache_dir"`
	StageCatalogPath string `json:"stage_catalog_path"`

	LogBackend string `json:"log_backend"`
	LogLevel   string `json:"log_level"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}

// parseJson overlays values from the JSON file named by -c or -config.
// Keys absent from the file leave the current value alone. max_retries is a
// pointer so that an explicit 0 can switch retries off.
//
// An unreadable file or invalid JSON panics: a misconfigured server should
// not start.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)

	setString(&config.StorageProvider, c.StorageProvider)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.GCSBucket, c.GCSBucket)
	setString(&config.GCSCredentialsFile, c.GCSCredentialsFile)
	setDuration(&config.UploadURLExpiry, c.UploadURLExpiry)

	setString(&config.OpenAIAPIKey, c.OpenAIAPIKey)
	setString(&config.OpenAIBaseURL, c.OpenAIBaseURL)
	setString(&config.ModelName, c.ModelName)
	setInt(&config.MaxTokens, c.MaxTokens)

	setInt(&config.AuditConcurrency, c.AuditConcurrency)
	if c.MaxRetries != nil {
		config.MaxRetries = *c.MaxRetries
	}
	setDuration(&config.BackoffBase, c.BackoffBase)
	setDuration(&config.BackoffMax, c.BackoffMax)
	setDuration(&config.InvocationTimeout, c.InvocationTimeout)
	setDuration(&config.RunCeiling, c.RunCeiling)
	setInt(&config.MaxDocumentMB, c.MaxDocumentMB)

	setString(&config.RedisAddr, c.RedisAddr)
	setDuration(&config.LockTTL, c.LockTTL)

	setString(&config.PubSubProjectID, c.PubSubProjectID)
	setString(&config.PubSubTopic, c.PubSubTopic)
	setString(&config.PubSubCredentialsFile, c.PubSubCredentialsFile)

	setString(&config.CacheDir, c.CacheDir)
	setString(&config.StageCatalogPath, c.StageCatalogPath)

	setString(&config.LogBackend, c.LogBackend)
	setString(&config.LogLevel, c.LogLevel)
}
