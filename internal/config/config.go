// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// vaultshare SDK. It aggregates all sub-configurations and is populated by
// merging values from environment variables on top of built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the authentication
	// token and the content padding block size.
	App App `envPrefix:"VAULTSHARE_APP_"`

	// Adapter holds network address and timeout settings for the vault
	// API transport.
	Adapter Adapter `envPrefix:"VAULTSHARE_ADAPTER_"`

	// Workers holds configuration for background jobs such as the
	// periodic share reconciliation.
	Workers Workers `envPrefix:"VAULTSHARE_WORKERS_"`
}

// App holds application-level configuration values.
type App struct {
	// Token is the bearer token attached to every authenticated request.
	// Can also be set at runtime through the adapter.
	// Env: VAULTSHARE_APP_TOKEN
	Token string `env:"TOKEN"`

	// PadBlockSize is the block size used when padding answer content
	// before encryption. Defaults to 64.
	// Env: VAULTSHARE_APP_PAD_BLOCK_SIZE
	PadBlockSize int `env:"PAD_BLOCK_SIZE"`
}

// Adapter holds network settings used by the vault API transport layer.
type Adapter struct {
	// HTTPAddress is the base URL of the vault API
	// (e.g. "https://api.vaultshare.example").
	// Env: VAULTSHARE_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: VAULTSHARE_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is how many times a request is retried on transient
	// failures (HTTP 5xx, 429, 408) before giving up.
	// Env: VAULTSHARE_ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Workers contains background job settings.
type Workers struct {
	// ShareInterval defines how often the background share job runs the
	// sharing reconciliation for its push form.
	// Env: VAULTSHARE_WORKERS_SHARE_INTERVAL
	ShareInterval time.Duration `env:"SHARE_INTERVAL"`
}

// defaults returns the built-in base configuration that environment values
// are merged on top of.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PadBlockSize: 64,
		},
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
			RetryCount:     3,
		},
		Workers: Workers{
			ShareInterval: 5 * time.Minute,
		},
	}
}
