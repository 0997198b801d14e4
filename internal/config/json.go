package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		LogLevel       string `json:"log_level"`
		MaxInflateSize *int64 `json:"max_inflate_size"`
	} `json:"app,omitempty"`

	Adapter struct {
		Backend        string   `json:"backend"`
		BaseURL        string   `json:"base_url"`
		EnvelopeDir    string   `json:"envelope_dir"`
		RequestTimeout Duration `json:"request_timeout"`
		RetryCount     *int     `json:"retry_count"`
		RetryWaitTime  Duration `json:"retry_wait_time"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		OutputDir string `json:"output_dir"`
	} `json:"storage,omitempty"`

	Workers struct {
		Concurrency int `json:"concurrency"`
	} `json:"workers,omitempty"`
}

// parseJSON reads the JSON config file. The second result names the
// settings present in the file whose zero value must still override earlier
// layers.
func parseJSON(jsonFilePath string) (*StructuredConfig, []string, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var explicit []string
	var maxInflateSize int64
	if jsonCfg.App.MaxInflateSize != nil {
		maxInflateSize = *jsonCfg.App.MaxInflateSize
		explicit = append(explicit, "max-inflate-size")
	}
	var retryCount int
	if jsonCfg.Adapter.RetryCount != nil {
		retryCount = *jsonCfg.Adapter.RetryCount
		explicit = append(explicit, "retry-count")
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:       jsonCfg.App.LogLevel,
			MaxInflateSize: maxInflateSize,
		},
		Adapter: Adapter{
			Backend:        jsonCfg.Adapter.Backend,
			BaseURL:        jsonCfg.Adapter.BaseURL,
			EnvelopeDir:    jsonCfg.Adapter.EnvelopeDir,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			RetryCount:     retryCount,
			RetryWaitTime:  time.Duration(jsonCfg.Adapter.RetryWaitTime),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			OutputDir: jsonCfg.Storage.OutputDir,
		},
		Workers: Workers{
			Concurrency: jsonCfg.Workers.Concurrency,
		},
	}

	return cfg, explicit, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
