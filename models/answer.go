package models

import "time"

// ContentFormat defines how an answer content entry stores its value.
// The value determines which branch of the encryption pipeline applies.
type ContentFormat string

const (
	// FormatInline marks an entry whose ciphertext is embedded directly
	// in the record as an armored string.
	FormatInline ContentFormat = "inline"

	// FormatFile marks an entry that references an encrypted file stored
	// remotely. The record carries only the file descriptor; the bytes
	// are fetched and decrypted on demand.
	FormatFile ContentFormat = "file"
)

// AnswerContentEntry is one leaf value inside an answer content item.
//
// An entry read from the server carries ciphertext (or a file descriptor)
// that stays opaque until decrypted with the owning workspace's private
// key. The decrypted view lives in Plaintext; a replacement value that has
// not been persisted yet lives in PendingPlaintext.
type AnswerContentEntry struct {
	// UUID is the unique identifier of the entry, assigned server-side.
	UUID string `json:"uuid"`

	// ContentFormat is inline or file.
	ContentFormat ContentFormat `json:"content_format"`

	// ContentHash is the SHA-256 fingerprint of the (padded) plaintext,
	// computed before encryption. Used to detect tampering and changes.
	ContentHash string `json:"content_hash"`

	// ContentIsPadded reports whether the plaintext was padded before
	// encryption. Carried over unchanged when re-encrypting for sharing.
	ContentIsPadded bool `json:"content_is_padded"`

	// Content holds the armored ciphertext for inline entries. Empty for
	// file entries, which use File instead.
	Content string `json:"content,omitempty"`

	// File references the encrypted bytes of a file entry. Nil for
	// inline entries.
	File *FileDescriptor `json:"file,omitempty"`

	// ExpirationDate is an optional validity bound carried over
	// unchanged when the entry is re-encrypted for sharing.
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`

	// Plaintext is the transient decrypted view of Content. Nil means
	// "not decrypted" or "could not be decrypted" — distinct from an
	// empty string, which means "decrypted to nothing". Never sent to
	// the server.
	Plaintext any `json:"-"`

	// PendingPlaintext is a new value not yet persisted. Entries carrying
	// one are re-encrypted and submitted by SaveVaultAnswers; entries
	// without one pass through with their existing ciphertext unchanged.
	PendingPlaintext any `json:"-"`
}

// HasPending reports whether the entry carries a replacement value that
// still needs to be encrypted and persisted.
func (e *AnswerContentEntry) HasPending() bool {
	return e.PendingPlaintext != nil
}

// AnswerContentItem groups the entries belonging to one logical
// question/slot. Entry order carries no meaning.
type AnswerContentItem struct {
	// ItemID identifies the question/slot this item answers.
	ItemID string `json:"item_id"`

	// Entries are the leaf values of the item.
	Entries []AnswerContentEntry `json:"entries"`
}

// Answer is a versioned set of content items inside a vault (answer pool).
// Answers are mutated only through the vault write transaction and are
// never partially persisted outside of it.
type Answer struct {
	// UUID is the unique identifier of the answer.
	UUID string `json:"uuid"`

	// SourceID identifies where the answer originated.
	SourceID string `json:"source_id"`

	// PoolID is the vault (answer pool) the answer belongs to.
	PoolID string `json:"pool_id"`

	// ItemID identifies the template item the answer fills.
	ItemID string `json:"item_id"`

	// Version is the server-side revision counter.
	Version int `json:"version"`

	// Content is the set of content items under this answer.
	Content []AnswerContentItem `json:"content"`

	// MinExpirationDate is the earliest expiration across all entries,
	// if any entry carries one.
	MinExpirationDate *time.Time `json:"min_expiration_date,omitempty"`
}
