package config

import (
	"encoding/json"
	"os"

	"github.com/carlosftapiap/arcsapp-sub001/internal/flagx"
	"github.com/carlosftapiap/arcsapp-sub001/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	AuditTimeout       timex.Duration `json:"audit_timeout"`
}

// parseJson overlays Config with values loaded from the file named by -c or
// -config. Zero values in the file leave the current setting alone. Read or
// unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.AuditTimeout.Duration > 0 {
		cfg.AuditTimeout = jc.AuditTimeout.Duration
	}
}
