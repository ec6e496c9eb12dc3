// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"encoding/json"
	"fmt"

	pgp "github.com/ProtonMail/gopenpgp/v2/crypto"
)

// pipeline is the private implementation of [Pipeline] on top of the
// OpenPGP primitive.
type pipeline struct {
	keys KeyProvider
}

// NewPipeline constructs a [Pipeline] that resolves workspace private keys
// through the given provider.
func NewPipeline(keys KeyProvider) Pipeline {
	return &pipeline{keys: keys}
}

// EncryptFor implements [Pipeline]. The recipient keys are parsed
// individually; a failure on any one of them fails the whole call so a
// payload is never produced for a subset of the requested recipients.
func (p *pipeline) EncryptFor(recipientPublicKeys []string, value any, format PayloadFormat) (string, error) {
	if len(recipientPublicKeys) == 0 {
		return "", ErrNoRecipients
	}
	if value == nil {
		return "", ErrUndefinedPayload
	}

	var data []byte
	switch format {
	case PayloadText:
		b, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("serialize payload: %w", err)
		}
		data = b
	case PayloadBinary:
		b, ok := value.([]byte)
		if !ok {
			return "", fmt.Errorf("%w: binary payload must be a byte slice", ErrUndefinedPayload)
		}
		data = b
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	ring, err := recipientRing(recipientPublicKeys)
	if err != nil {
		return "", err
	}

	message, err := ring.Encrypt(pgp.NewPlainMessage(data), nil)
	if err != nil {
		return "", fmt.Errorf("encrypt payload: %w", err)
	}

	armored, err := message.GetArmored()
	if err != nil {
		return "", fmt.Errorf("armor ciphertext: %w", err)
	}
	return armored, nil
}

// DecryptForWorkspace implements [Pipeline]. It resolves the workspace's
// private key through the key provider and decrypts armored with it.
func (p *pipeline) DecryptForWorkspace(workspaceID, armored string, format PayloadFormat) (any, error) {
	if format != PayloadText && format != PayloadBinary {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
	if armored == "" {
		return nil, ErrEmptyMessage
	}

	pair, err := p.keys.Keys(workspaceID)
	if err != nil {
		return nil, err
	}
	if !pair.HasPrivate() {
		return nil, fmt.Errorf("%w: %s", ErrMissingPrivateKey, workspaceID)
	}

	key, err := pgp.NewKeyFromArmored(pair.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("parse workspace private key: %w", err)
	}
	ring, err := pgp.NewKeyRing(key)
	if err != nil {
		return nil, fmt.Errorf("build decryption keyring: %w", err)
	}

	message, err := pgp.NewPGPMessageFromArmored(armored)
	if err != nil {
		return nil, fmt.Errorf("parse ciphertext: %w", err)
	}

	plain, err := ring.Decrypt(message, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("decrypt message: %w", err)
	}

	data := plain.GetBinary()
	if format == PayloadBinary {
		return data, nil
	}

	// An empty plaintext is "no content", which callers must be able to
	// tell apart from a parse error.
	if len(data) == 0 {
		return nil, nil
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("parse decrypted payload: %w", err)
	}
	return value, nil
}

// recipientRing parses every armored public key and collects them into one
// encryption keyring.
func recipientRing(armoredKeys []string) (*pgp.KeyRing, error) {
	ring, err := pgp.NewKeyRing(nil)
	if err != nil {
		return nil, fmt.Errorf("build encryption keyring: %w", err)
	}

	for _, armored := range armoredKeys {
		key, err := pgp.NewKeyFromArmored(armored)
		if err != nil {
			return nil, fmt.Errorf("parse recipient public key: %w", err)
		}
		if err := ring.AddKey(key); err != nil {
			return nil, fmt.Errorf("add recipient key: %w", err)
		}
	}
	return ring, nil
}

// GenerateWorkspaceKey produces a fresh armored key pair for a workspace.
// The curve25519 key type keeps generation fast enough for interactive
// bootstrap flows.
func GenerateWorkspaceKey(name, email string) (publicKey, privateKey string, err error) {
	key, err := pgp.GenerateKey(name, email, "x25519", 0)
	if err != nil {
		return "", "", fmt.Errorf("generate key: %w", err)
	}

	privateKey, err = key.Armor()
	if err != nil {
		return "", "", fmt.Errorf("armor private key: %w", err)
	}
	publicKey, err = key.GetArmoredPublicKey()
	if err != nil {
		return "", "", fmt.Errorf("armor public key: %w", err)
	}
	return publicKey, privateKey, nil
}
