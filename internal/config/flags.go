// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line arguments into a [StructuredConfig].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-access-token-duration access token lifetime (e.g. "15m")
//	-refresh-token-duration refresh token lifetime (e.g. "168h")
//	-request-timeout request timeout (e.g. "30s")
//	-avatar-dir local avatar directory
//	-s3-endpoint S3-compatible endpoint for avatars
//	-s3-bucket avatar bucket name
//	-cors-origins comma separated allowed origins
//	-log-level zerolog level name
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("contacts-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var accessTokenDuration, refreshTokenDuration, requestTimeout time.Duration
	var avatarDir, s3Endpoint, s3Bucket string
	var corsOrigins, logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&accessTokenDuration, "access-token-duration", 0, "Access token lifetime (e.g., 15m)")
	fs.DurationVar(&refreshTokenDuration, "refresh-token-duration", 0, "Refresh token lifetime (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&avatarDir, "avatar-dir", "", "Local avatar directory")
	fs.StringVar(&s3Endpoint, "s3-endpoint", "", "S3-compatible endpoint for avatars")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "Avatar bucket name")
	fs.StringVar(&corsOrigins, "cors-origins", "", "Comma separated allowed CORS origins")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			AccessTokenDuration:  accessTokenDuration,
			RefreshTokenDuration: refreshTokenDuration,
			LogLevel:             logLevel,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{AvatarDir: avatarDir},
			S3:    S3{Endpoint: s3Endpoint, Bucket: s3Bucket},
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			CORSAllowedOrigins: splitList(corsOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// An unset address renders as the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a host:port string. The host must be "localhost" or an IP.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
