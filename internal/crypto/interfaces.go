// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the content codec and the encryption pipeline of
// the vaultshare SDK.
//
// The codec (codec.go) handles canonical serialization, random padding, and
// content-addressed hashing of answer values before encryption, plus armor
// normalization of private keys. The pipeline (pipeline.go) wraps the
// OpenPGP primitive to encrypt a value for one or many recipient public keys
// and to decrypt ciphertext with the local workspace's private key.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_pipeline_mock.go -package=mock

import "github.com/vaultshare/go-vaultshare/models"

// PayloadFormat selects how a value crosses the encryption boundary.
type PayloadFormat string

const (
	// PayloadText JSON-serializes the value before encryption and parses
	// the decrypted bytes back into a structured value.
	PayloadText PayloadFormat = "text"

	// PayloadBinary passes raw bytes through unchanged in both directions.
	PayloadBinary PayloadFormat = "binary"
)

// KeyProvider supplies the key material the pipeline encrypts and decrypts
// with. The SDK's key registry satisfies this interface.
type KeyProvider interface {
	// Keys returns the key pair registered for workspaceID. A record with
	// empty key fields (not an error) is returned for unknown workspaces.
	Keys(workspaceID string) (models.WorkspaceKeyPair, error)
}

// Pipeline encrypts values for a set of recipients and decrypts ciphertext
// for the owning workspace. Implementations never expose plaintext of a
// value they could not fully process.
type Pipeline interface {
	// EncryptFor encrypts value for every public key in recipientPublicKeys
	// and returns the armored ciphertext. Returns ErrNoRecipients for an
	// empty key list and ErrUndefinedPayload for a nil value. A parse
	// failure on any single recipient key fails the whole call: there is
	// no partial-recipient success.
	EncryptFor(recipientPublicKeys []string, value any, format PayloadFormat) (string, error)

	// DecryptForWorkspace decrypts armored ciphertext with the private key
	// registered for workspaceID. For PayloadText the plaintext is parsed
	// as JSON; an empty plaintext is returned as nil without parsing so
	// callers can tell "no content" from "parse error". For PayloadBinary
	// the raw bytes are returned. Returns ErrMissingPrivateKey,
	// ErrEmptyMessage, or ErrInvalidFormat on bad input.
	DecryptForWorkspace(workspaceID, armored string, format PayloadFormat) (any, error)
}
