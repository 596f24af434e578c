// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged [StructuredConfig]. Each binary validates its
// own view, so nothing is required at this level.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.Endpoint == "" {
		return fmt.Errorf("%w: empty endpoint", ErrInvalidAdapterConfigs)
	}
	if u, err := url.Parse(cfg.Adapter.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: endpoint must be an absolute URL", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.RefreshTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *StubConfig) validate() error {
	if cfg.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidStubConfigs)
	}
	if cfg.TokenDuration < 0 {
		return fmt.Errorf("%w: negative token duration", ErrInvalidStubConfigs)
	}

	return nil
}
