// SPDX-License-Identifier: Apache-2.0

package vaultshare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAddress(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestNew_DefaultsApplied(t *testing.T) {
	c, err := New(Config{Address: "vault.example.com"})
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestClient_KeyRegistrySurface(t *testing.T) {
	c, err := New(Config{Address: "vault.example.com"})
	require.NoError(t, err)

	require.NoError(t, c.SetWorkspaceKeys("ws-1", "PUB", "PRIV"))

	pair, err := c.WorkspaceKeys("ws-1")
	require.NoError(t, err)
	assert.Equal(t, "PUB", pair.PublicKey)
	assert.Equal(t, "PRIV", pair.PrivateKey)

	require.NoError(t, c.ClearWorkspaceKeys("ws-1"))
	pair, err = c.WorkspaceKeys("ws-1")
	require.NoError(t, err)
	assert.False(t, pair.HasPublic())

	require.NoError(t, c.SetWorkspacePublicKey("ws-2", "PUB-2"))
	c.ClearAllKeys()
	pair, err = c.WorkspaceKeys("ws-2")
	require.NoError(t, err)
	assert.False(t, pair.HasPublic())
}

func TestGenerateWorkspaceKey_ProducesArmoredPair(t *testing.T) {
	pub, priv, err := GenerateWorkspaceKey("bootstrap", "bootstrap@example.com")
	require.NoError(t, err)
	assert.True(t, strings.Contains(pub, "PGP PUBLIC KEY BLOCK"))
	assert.True(t, strings.Contains(priv, "PGP PRIVATE KEY BLOCK"))
}
