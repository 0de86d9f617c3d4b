// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.AccessTokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0 || cfg.App.EmailTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimitRequests <= 0 || cfg.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("%w: rate limit must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	s3, files := cfg.Storage.S3, cfg.Storage.Files
	switch {
	case s3.Enabled() && files.AvatarDir != "":
		return fmt.Errorf("%w: configure either an avatar dir or an S3 endpoint, not both", ErrInvalidStorageConfigs)
	case s3.Enabled() && s3.Bucket == "":
		return fmt.Errorf("%w: S3 bucket is required", ErrInvalidStorageConfigs)
	case !s3.Enabled() && files.AvatarDir == "":
		return fmt.Errorf("%w: an avatar storage backend is required", ErrInvalidStorageConfigs)
	}

	return nil
}
