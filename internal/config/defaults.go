// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress          = "localhost:8000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultTokenIssuer          = "contacts-keeper"
	DefaultAccessTokenDuration  = 15 * time.Minute
	DefaultRefreshTokenDuration = 7 * 24 * time.Hour
	DefaultEmailTokenDuration   = 24 * time.Hour
	DefaultRateLimitRequests    = 10
	DefaultRateLimitWindow      = 10 * time.Second
	DefaultMaxOpenConns         = 10
	DefaultMaxIdleConns         = 5
	DefaultLogLevel             = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          DefaultTokenIssuer,
			AccessTokenDuration:  DefaultAccessTokenDuration,
			RefreshTokenDuration: DefaultRefreshTokenDuration,
			EmailTokenDuration:   DefaultEmailTokenDuration,
			PublicBaseURL:        "http://" + DefaultHTTPAddress,
			LogLevel:             DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:       DefaultHTTPAddress,
			RequestTimeout:    DefaultRequestTimeout,
			RateLimitRequests: DefaultRateLimitRequests,
			RateLimitWindow:   DefaultRateLimitWindow,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: DefaultMaxOpenConns,
				MaxIdleConns: DefaultMaxIdleConns,
			},
		},
	}
}
