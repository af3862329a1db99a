package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	Logger struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"logger,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			DataDir string  `json:"data_dir"`
			QuotaMB float64 `json:"quota_mb"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		ProbeURL       string   `json:"probe_url"`
		RequestTimeout Duration `json:"request_timeout"`
		ProbeTimeout   Duration `json:"probe_timeout"`
		SaveData       bool     `json:"save_data"`
	} `json:"adapter,omitempty"`

	Workers struct {
		BatchSize       int      `json:"batch_size"`
		PersistInterval Duration `json:"persist_interval"`
	} `json:"workers,omitempty"`

	Priority struct {
		UpdateInterval     Duration `json:"update_interval"`
		MaxCalculationTime Duration `json:"max_calculation_time"`
		RecencyWeight      float64  `json:"recency_weight"`
		UserFacingWeight   float64  `json:"user_facing_weight"`
		CriticalWeight     float64  `json:"critical_weight"`
		RecencyHorizon     Duration `json:"recency_horizon"`
	} `json:"priority,omitempty"`

	Interval struct {
		BaseSyncInterval     Duration `json:"base"`
		MinSyncInterval      Duration `json:"min"`
		MaxSyncInterval      Duration `json:"max"`
		NetworkCheckInterval Duration `json:"network_check"`
		SlowNetworkThreshold float64  `json:"slow_threshold"`
		FastNetworkThreshold float64  `json:"fast_threshold"`
		HighLatencyThreshold Duration `json:"high_latency"`
		TrendThreshold       float64  `json:"trend_threshold"`
	} `json:"interval,omitempty"`

	Governor struct {
		WarningThreshold  float64  `json:"warning_threshold"`
		CriticalThreshold float64  `json:"critical_threshold"`
		ArchiveThreshold  float64  `json:"archive_threshold"`
		MonitorInterval   Duration `json:"monitor_interval"`
		CleanupInterval   Duration `json:"cleanup_interval"`
		ArchiveInterval   Duration `json:"archive_interval"`
		ArchiveMaxAge     Duration `json:"archive_max_age"`
		CompressMinSize   int64    `json:"compress_min_size"`
	} `json:"governor,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Logger: Logger{
			Level: j.Logger.Level,
			File:  j.Logger.File,
		},
		Storage: Storage{
			DB: DB{
				DSN: j.Storage.DB.DSN,
			},
			Files: Files{
				DataDir: j.Storage.Files.DataDir,
				QuotaMB: j.Storage.Files.QuotaMB,
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			ProbeURL:       j.Adapter.ProbeURL,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
			ProbeTimeout:   time.Duration(j.Adapter.ProbeTimeout),
			SaveData:       j.Adapter.SaveData,
		},
		Workers: Workers{
			BatchSize:       j.Workers.BatchSize,
			PersistInterval: time.Duration(j.Workers.PersistInterval),
		},
		Priority: Priority{
			UpdateInterval:     time.Duration(j.Priority.UpdateInterval),
			MaxCalculationTime: time.Duration(j.Priority.MaxCalculationTime),
			RecencyWeight:      j.Priority.RecencyWeight,
			UserFacingWeight:   j.Priority.UserFacingWeight,
			CriticalWeight:     j.Priority.CriticalWeight,
			RecencyHorizon:     time.Duration(j.Priority.RecencyHorizon),
		},
		Interval: Interval{
			BaseSyncInterval:     time.Duration(j.Interval.BaseSyncInterval),
			MinSyncInterval:      time.Duration(j.Interval.MinSyncInterval),
			MaxSyncInterval:      time.Duration(j.Interval.MaxSyncInterval),
			NetworkCheckInterval: time.Duration(j.Interval.NetworkCheckInterval),
			SlowNetworkThreshold: j.Interval.SlowNetworkThreshold,
			FastNetworkThreshold: j.Interval.FastNetworkThreshold,
			HighLatencyThreshold: time.Duration(j.Interval.HighLatencyThreshold),
			TrendThreshold:       j.Interval.TrendThreshold,
		},
		Governor: Governor{
			WarningThreshold:  j.Governor.WarningThreshold,
			CriticalThreshold: j.Governor.CriticalThreshold,
			ArchiveThreshold:  j.Governor.ArchiveThreshold,
			MonitorInterval:   time.Duration(j.Governor.MonitorInterval),
			CleanupInterval:   time.Duration(j.Governor.CleanupInterval),
			ArchiveInterval:   time.Duration(j.Governor.ArchiveInterval),
			ArchiveMaxAge:     time.Duration(j.Governor.ArchiveMaxAge),
			CompressMinSize:   j.Governor.CompressMinSize,
		},
	}

	return cfg, nil
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
