package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/coursecatalog/internal/flagx"
	"github.com/dmitrijs2005/coursecatalog/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding Config field untouched, hence the pointers.
type JsonConfig struct {
	APIBaseURL           *string         `json:"api_base_url"`
	DatabaseDSN          *string         `json:"database_dsn"`
	DataDir              *string         `json:"data_dir"`
	CourseListLimit      *int            `json:"course_list_limit"`
	TokenTTLMinutes      *int            `json:"token_ttl_minutes"`
	RequestTimeout       *timex.Duration `json:"request_timeout"`
	OnlineCheckInterval  *timex.Duration `json:"online_check_interval"`
	LogLevel             *string         `json:"log_level"`
	RejectExpiredSession *bool           `json:"reject_expired_session"`
}

// parseJson overlays cfg with the JSON file named by -c or -config. Without
// the flag nothing is loaded.
func parseJson(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return err
	}
	jc.apply(cfg)
	return nil
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.CourseListLimit != nil {
		cfg.CourseListLimit = *jc.CourseListLimit
	}
	if jc.TokenTTLMinutes != nil {
		cfg.TokenTTLMinutes = *jc.TokenTTLMinutes
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.RejectExpiredSession != nil {
		cfg.RejectExpiredSession = *jc.RejectExpiredSession
	}
}
