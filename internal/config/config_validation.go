// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all SDK
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.PadBlockSize <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.ShareInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
