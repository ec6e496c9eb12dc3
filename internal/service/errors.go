package service

import "errors"

var (
	// ErrMissingPublicKey is returned when a vault write is requested for
	// a workspace without a registered public key to self-encrypt with.
	ErrMissingPublicKey = errors.New("no public key registered for workspace")

	// ErrNoEligibleRecipients is returned when every relation of a push
	// form lacks a usable public key, so no shareable payload can be
	// produced.
	ErrNoEligibleRecipients = errors.New("no eligible recipients with a public key")

	// ErrInvalidPendingFile is returned when a file entry carries a
	// pending value that is not a [models.PendingFile].
	ErrInvalidPendingFile = errors.New("pending value of a file entry must be a PendingFile")
)
