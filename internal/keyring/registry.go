// SPDX-License-Identifier: Apache-2.0

package keyring

import (
	"sync"

	"github.com/vaultshare/go-vaultshare/internal/crypto"
	"github.com/vaultshare/go-vaultshare/models"
)

// registry is the private implementation of [Registry].
type registry struct {
	mu    sync.RWMutex
	pairs map[string]models.WorkspaceKeyPair
}

// NewRegistry constructs an empty [Registry].
func NewRegistry() Registry {
	return &registry{pairs: make(map[string]models.WorkspaceKeyPair)}
}

// SetKeys implements [Registry]. Empty halves of pair leave the stored
// counterpart untouched; the private half is normalized before storage.
func (r *registry) SetKeys(workspaceID string, pair models.WorkspaceKeyPair) error {
	if workspaceID == "" {
		return ErrEmptyWorkspaceID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.pairs[workspaceID]
	current.WorkspaceID = workspaceID
	if pair.PublicKey != "" {
		current.PublicKey = pair.PublicKey
	}
	if pair.PrivateKey != "" {
		current.PrivateKey = crypto.NormalizePrivateKeyArmor(pair.PrivateKey)
	}
	r.pairs[workspaceID] = current

	return nil
}

// SetPublicKey implements [Registry].
func (r *registry) SetPublicKey(workspaceID, publicKey string) error {
	return r.SetKeys(workspaceID, models.WorkspaceKeyPair{PublicKey: publicKey})
}

// SetPrivateKey implements [Registry].
func (r *registry) SetPrivateKey(workspaceID, privateKey string) error {
	return r.SetKeys(workspaceID, models.WorkspaceKeyPair{PrivateKey: privateKey})
}

// Keys implements [Registry].
func (r *registry) Keys(workspaceID string) (models.WorkspaceKeyPair, error) {
	if workspaceID == "" {
		return models.WorkspaceKeyPair{}, ErrEmptyWorkspaceID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pairs[workspaceID], nil
}

// Clear implements [Registry].
func (r *registry) Clear(workspaceID string) error {
	if workspaceID == "" {
		return ErrEmptyWorkspaceID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pairs, workspaceID)

	return nil
}

// ClearAll implements [Registry].
func (r *registry) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs = make(map[string]models.WorkspaceKeyPair)
}
