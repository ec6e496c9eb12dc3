package crypto

import "errors"

var (
	// ErrNoRecipients is returned when encryption is requested with an
	// empty recipient public-key list.
	ErrNoRecipients = errors.New("no recipient public keys provided")

	// ErrUndefinedPayload is returned when encryption is requested for a
	// nil value.
	ErrUndefinedPayload = errors.New("undefined payload")

	// ErrEmptyMessage is returned when decryption is requested for an
	// empty ciphertext.
	ErrEmptyMessage = errors.New("empty message")

	// ErrInvalidFormat is returned when a payload format is neither text
	// nor binary.
	ErrInvalidFormat = errors.New("invalid payload format")

	// ErrMissingPrivateKey is returned when no private key is registered
	// for the workspace a decryption was requested for.
	ErrMissingPrivateKey = errors.New("no private key registered for workspace")
)
