// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// remote vault API.
//
// The primary abstraction is [VaultServerAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPVaultAdapter]) built on resty; transient failures
// (HTTP 5xx, 429, 408) are retried inside the adapter so the service layer
// sees them only as ordinary propagated errors.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrLockConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/vaultshare/go-vaultshare/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_server_adapter_mock.go -package=mock

// VaultServerAdapter defines transport-agnostic communication with the vault
// API. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Plaintext never crosses this interface: every content value passed in or
// out is armored ciphertext or an opaque file reference.
type VaultServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// requests and derives the workspace identifier from the token's
	// subject claim. Returns an error if the token cannot be parsed.
	SetToken(token string) error

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// WorkspaceID returns the workspace identifier derived from the
	// bearer token, or an empty string before SetToken succeeds.
	WorkspaceID() string

	// ListAnswerContents fetches one page of answer content records
	// matching filter. The returned page carries the server-side total
	// count of matching records, which drives the sharing loop's
	// termination condition.
	ListAnswerContents(ctx context.Context, filter models.AnswerContentFilter) (models.AnswerContentPage, error)

	// SaveAnswerContent submits one answer content record. The server
	// assigns identifiers to new entries and returns the stored record.
	SaveAnswerContent(ctx context.Context, record models.AnswerContentRecord) (models.AnswerContentRecord, error)

	// UpdateShareableAnswerContent submits the re-encrypted shareable
	// payload for the content item identified by contentUUID.
	UpdateShareableAnswerContent(ctx context.Context, contentUUID string, payload models.ShareablePayload) error

	// UploadFile stores an encrypted blob and returns its descriptor.
	// The bytes are expected to be armored ciphertext already.
	UploadFile(ctx context.Context, fileName, mimetype string, data []byte) (models.FileDescriptor, error)

	// DownloadFile fetches the encrypted bytes of a stored blob.
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)

	// LockAnswerPool acquires the remote mutual-exclusion lock for the
	// pool. Returns ErrLockConflict (wrapped) when another writer holds it.
	LockAnswerPool(ctx context.Context, poolID string) error

	// UnlockAnswerPool releases the remote lock for the pool.
	UnlockAnswerPool(ctx context.Context, poolID string) error

	// ListShareableRelations fetches the relations of the push form
	// filtered by status. Records are returned as-is, including ones
	// without a usable public key; filtering happens in the service layer.
	ListShareableRelations(ctx context.Context, pushFormID string, status models.RelationStatus) ([]models.RelationRecord, error)

	// ValidateWorkflow asks the server to validate the push form's
	// workflow state before sharing begins.
	ValidateWorkflow(ctx context.Context, pushFormID string) error

	// NotifyShare signals the server that sharing for the push form has
	// completed so recipients can be notified.
	NotifyShare(ctx context.Context, pushFormID string) error
}
