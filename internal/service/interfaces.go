// SPDX-License-Identifier: Apache-2.0

// Package service implements the core of the vaultshare SDK: mapping wire
// answer content to decrypted domain answers and back, the vault write
// transaction, and the sharing reconciliation that produces re-encrypted
// copies of answer content for eligible relations.
package service

import (
	"context"
	"time"

	"github.com/vaultshare/go-vaultshare/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// VaultService is the owner-side surface of the vault: reading, writing,
// and fetching files of the workspace's own answers.
type VaultService interface {
	// GetVaultAnswers fetches the latest answer content of the vault and
	// returns it decrypted. A single undecryptable entry does not abort
	// the read: its plaintext is left nil and the rest of the answers are
	// returned (per-entry isolation).
	GetVaultAnswers(ctx context.Context, vaultID string) ([]models.Answer, error)

	// SaveVaultAnswers encrypts every entry carrying a pending plaintext
	// (self-encryption against the workspace's own public key) and
	// submits the answers one at a time inside a remote lock bracket.
	// The lock is released exactly once on every exit path. Submissions
	// are not transactional against each other: a failure partway leaves
	// earlier answers of the batch persisted.
	SaveVaultAnswers(ctx context.Context, vaultID string, answers []models.Answer) error

	// DownloadVaultFile fetches and decrypts the bytes referenced by the
	// descriptor. Unlike bulk reads, a failure here propagates: a file
	// the caller explicitly requested must be retrievable or the caller
	// must know it failed.
	DownloadVaultFile(ctx context.Context, file models.FileDescriptor) ([]byte, error)
}

// SharingService drives the reconciliation that gives every answer content
// item of a push form a shareable (re-encrypted-for-relations) counterpart.
type SharingService interface {
	// ShareVault validates the push form's workflow, reconciles all
	// content items missing a shareable copy, and sends the share
	// notification. Returns the first error encountered.
	ShareVault(ctx context.Context, pushFormID string) error
}

// ShareJob is a background worker that periodically runs ShareVault for one
// push form, picking up items that appeared after the previous run.
type ShareJob interface {
	// Start launches the background goroutine. It reconciles every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, pushFormID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
