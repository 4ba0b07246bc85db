// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the optional JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version          string   `json:"version"`
		LogLevel         string   `json:"log_level"`
		PasswordHashCost int      `json:"password_hash_cost"`
		TokenMode        string   `json:"token_mode"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		SearchPageSize   int      `json:"search_page_size"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:          jsonCfg.App.Version,
			LogLevel:         jsonCfg.App.LogLevel,
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			TokenMode:        jsonCfg.App.TokenMode,
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			SearchPageSize:   jsonCfg.App.SearchPageSize,
		},
		Storage: Storage{
			DB: DB{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
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
