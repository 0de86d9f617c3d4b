// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		AccessTokenDuration  Duration `json:"access_token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		EmailTokenDuration   Duration `json:"email_token_duration"`
		PublicBaseURL        string   `json:"public_base_url"`
		Version              string   `json:"version"`
		LogLevel             string   `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		RateLimitRequests  int      `json:"rate_limit_requests"`
		RateLimitWindow    Duration `json:"rate_limit_window"`
		CORSAllowedOrigins []string `json:"cors_allowed_origins"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns"`
		} `json:"db,omitempty"`

		Files struct {
			AvatarDir string `json:"avatar_dir"`
		} `json:"files,omitempty"`

		S3 struct {
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Bucket    string `json:"bucket"`
			UseSSL    bool   `json:"use_ssl"`
			PublicURL string `json:"public_url"`
		} `json:"s3,omitempty"`
	} `json:"storage,omitempty"`
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

	app, srv, st := jsonCfg.App, jsonCfg.Server, jsonCfg.Storage
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:         app.TokenSignKey,
			TokenIssuer:          app.TokenIssuer,
			AccessTokenDuration:  time.Duration(app.AccessTokenDuration),
			RefreshTokenDuration: time.Duration(app.RefreshTokenDuration),
			EmailTokenDuration:   time.Duration(app.EmailTokenDuration),
			PublicBaseURL:        app.PublicBaseURL,
			Version:              app.Version,
			LogLevel:             app.LogLevel,
		},
		Server: Server{
			HTTPAddress:        srv.HTTPAddress,
			RequestTimeout:     time.Duration(srv.RequestTimeout),
			RateLimitRequests:  srv.RateLimitRequests,
			RateLimitWindow:    time.Duration(srv.RateLimitWindow),
			CORSAllowedOrigins: srv.CORSAllowedOrigins,
		},
		Storage: Storage{
			DB: DB{
				DSN:          st.DB.DSN,
				MaxOpenConns: st.DB.MaxOpenConns,
				MaxIdleConns: st.DB.MaxIdleConns,
			},
			Files: Files{AvatarDir: st.Files.AvatarDir},
			S3: S3{
				Endpoint:  st.S3.Endpoint,
				AccessKey: st.S3.AccessKey,
				SecretKey: st.S3.SecretKey,
				Bucket:    st.S3.Bucket,
				UseSSL:    st.S3.UseSSL,
				PublicURL: st.S3.PublicURL,
			},
		},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from JSON strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
