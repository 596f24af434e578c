// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to the client view when the sources leave them unset.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultRefreshTimeout = 30 * time.Second
)

// ClientApp holds client-side process settings.
type ClientApp struct {
	// LogFile is the log destination of the console client.
	LogFile string
}

// ClientAdapter holds the settings used by the backend adapter.
type ClientAdapter struct {
	// Endpoint is the backend URL, without the proxy prefix.
	Endpoint string
	// ProxyURL is the optional CORS proxy prefix.
	ProxyURL string
	// RequestTimeout bounds a single outbound POST.
	RequestTimeout time.Duration
	// RefreshTimeout bounds a silent credential refresh.
	RefreshTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the console client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			Endpoint:       cfg.Adapter.Endpoint,
			ProxyURL:       cfg.Adapter.ProxyURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RefreshTimeout: cfg.Adapter.RefreshTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Adapter.RefreshTimeout == 0 {
		clientCfg.Adapter.RefreshTimeout = DefaultRefreshTimeout
	}

	return clientCfg
}
