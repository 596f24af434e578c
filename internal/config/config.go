// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables (optionally seeded from a
// .env file), command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings shared by every binary.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend endpoint and the outbound timeouts used by
	// the console client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local database used to persist the session.
	Storage Storage `envPrefix:"STORAGE_"`

	// Stub holds the settings of the development backend.
	Stub Stub `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where the console client writes its log. Empty means a
	// "logs" file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the settings of the outbound backend connection.
type Adapter struct {
	// Endpoint is the backend URL every action is posted to
	// (e.g. "https://script.google.com/macros/s/<id>/exec").
	// Env: ADAPTER_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// ProxyURL is an optional CORS proxy prefix. When set, requests go to
	// ProxyURL+Endpoint.
	// Env: ADAPTER_PROXY_URL
	ProxyURL string `env:"PROXY_URL"`

	// RequestTimeout bounds a single outbound POST (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshTimeout bounds a silent credential refresh, independently of
	// the request that triggered it.
	// Env: ADAPTER_REFRESH_TIMEOUT
	RefreshTimeout time.Duration `env:"REFRESH_TIMEOUT"`
}

// Storage groups the configuration of the local storage backends.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path (e.g. "bathroompass.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Stub holds the settings of the development backend.
type Stub struct {
	// HTTPAddress is the "host:port" the stub listens on.
	// Env: STUB_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey signs the credentials issued by the stub.
	// Env: STUB_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued credentials.
	// Env: STUB_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued credential stays valid.
	// Env: STUB_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AllowedOrigins lists the browser origins allowed by CORS.
	// Env: STUB_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (last source wins for non-zero fields):
//  1. Environment variables (after loading .env when present)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
