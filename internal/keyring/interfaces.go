// SPDX-License-Identifier: Apache-2.0

// Package keyring holds the in-memory registry of workspace key pairs: the
// source of truth for every encrypt and decrypt operation in the SDK.
//
// The registry is explicitly transient. It lives for the lifetime of one SDK
// instance, is never persisted, and requires no teardown beyond process
// exit.
package keyring

//go:generate mockgen -source=interfaces.go -destination=../mock/key_registry_mock.go -package=mock

import "github.com/vaultshare/go-vaultshare/models"

// Registry maps workspace identifiers to their current armored key pairs.
//
// Setting one half of a pair preserves the other half if already present
// (merge, not replace). Private keys are normalized (armor blank-line
// repair) on every write. Reads for an unknown workspace return an empty
// record rather than failing; callers must check for a present key before
// using it.
//
// Concurrent reads and writes are memory-safe, but there is no cross-call
// isolation: a decrypt racing a key write observes either the old or the
// new value (last-write-wins). Callers needing strict consistency must not
// mutate a workspace's keys while crypto calls for it are in flight.
type Registry interface {
	// SetKeys stores the non-empty halves of pair for workspaceID,
	// merging with any existing record.
	SetKeys(workspaceID string, pair models.WorkspaceKeyPair) error

	// SetPublicKey stores the armored public key for workspaceID.
	SetPublicKey(workspaceID, publicKey string) error

	// SetPrivateKey normalizes and stores the armored private key for
	// workspaceID.
	SetPrivateKey(workspaceID, privateKey string) error

	// Keys returns the key pair registered for workspaceID, or an empty
	// record if none is known. Returns ErrEmptyWorkspaceID for an empty id.
	Keys(workspaceID string) (models.WorkspaceKeyPair, error)

	// Clear removes the record for workspaceID.
	Clear(workspaceID string) error

	// ClearAll removes every record.
	ClearAll()
}
