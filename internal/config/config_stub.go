// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied to the stub view when the sources leave them unset.
const (
	DefaultStubAddress       = "localhost:8080"
	DefaultStubTokenIssuer   = "bathroompass-stub"
	DefaultStubTokenDuration = time.Hour
)

// StubConfig is the configuration of the development backend.
type StubConfig struct {
	HTTPAddress    string
	TokenSignKey   string
	TokenIssuer    string
	TokenDuration  time.Duration
	AllowedOrigins []string
}

// GetStubConfig builds and validates the stub view of the merged structured
// configuration.
func GetStubConfig() (*StubConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := newStubConfig(cfg)
	return stubCfg, stubCfg.validate()
}

func newStubConfig(cfg *StructuredConfig) *StubConfig {
	stubCfg := &StubConfig{
		HTTPAddress:    cfg.Stub.HTTPAddress,
		TokenSignKey:   cfg.Stub.TokenSignKey,
		TokenIssuer:    cfg.Stub.TokenIssuer,
		TokenDuration:  cfg.Stub.TokenDuration,
		AllowedOrigins: cfg.Stub.AllowedOrigins,
	}

	if stubCfg.HTTPAddress == "" {
		stubCfg.HTTPAddress = DefaultStubAddress
	}
	if stubCfg.TokenIssuer == "" {
		stubCfg.TokenIssuer = DefaultStubTokenIssuer
	}
	if stubCfg.TokenDuration == 0 {
		stubCfg.TokenDuration = DefaultStubTokenDuration
	}
	if len(stubCfg.AllowedOrigins) == 0 {
		stubCfg.AllowedOrigins = []string{"http://localhost:*", "https://*"}
	}

	return stubCfg
}
