// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vaultshare/go-vaultshare/internal/crypto"
	"github.com/vaultshare/go-vaultshare/internal/logger"
	"github.com/vaultshare/go-vaultshare/models"
)

// fileUploader is the slice of the server adapter the mapper needs to push
// freshly encrypted file bytes during the save direction.
type fileUploader interface {
	UploadFile(ctx context.Context, fileName, mimetype string, data []byte) (models.FileDescriptor, error)
}

// answerContentMapper converts wire answer-content records into decrypted
// domain answers and back.
type answerContentMapper struct {
	pipeline  crypto.Pipeline
	blockSize int
	logger    *logger.Logger
}

func newAnswerContentMapper(pipeline crypto.Pipeline, blockSize int, log *logger.Logger) *answerContentMapper {
	if blockSize <= 0 {
		blockSize = crypto.DefaultPadBlockSize
	}
	return &answerContentMapper{pipeline: pipeline, blockSize: blockSize, logger: log}
}

// toAnswers decrypts records into domain answers for workspaceID.
//
// Every inline entry with content is decrypted and, when flagged, unpadded.
// A per-entry failure is logged and leaves that entry's plaintext nil
// instead of aborting the batch: one bad entry must not prevent reading the
// rest of the answer set. File entries pass through untouched (metadata
// only); their bytes are fetched lazily by DownloadVaultFile.
func (m *answerContentMapper) toAnswers(workspaceID string, records []models.AnswerContentRecord) []models.Answer {
	answers := make([]models.Answer, 0, len(records))

	for _, record := range records {
		answer := models.Answer{
			UUID:              record.UUID,
			SourceID:          record.SourceUUID,
			PoolID:            record.AnswerPoolUUID,
			ItemID:            record.ItemUUID,
			Version:           record.Version,
			MinExpirationDate: record.MinExpirationDate,
			Content:           make([]models.AnswerContentItem, 0, len(record.Content)),
		}

		for _, item := range record.Content {
			domainItem := models.AnswerContentItem{
				ItemID:  item.ItemUUID,
				Entries: make([]models.AnswerContentEntry, 0, len(item.Entries)),
			}
			for _, entry := range item.Entries {
				domainItem.Entries = append(domainItem.Entries, m.toEntry(workspaceID, entry))
			}
			answer.Content = append(answer.Content, domainItem)
		}

		answers = append(answers, answer)
	}

	return answers
}

func (m *answerContentMapper) toEntry(workspaceID string, record models.ContentEntryRecord) models.AnswerContentEntry {
	entry := models.AnswerContentEntry{
		UUID:            record.UUID,
		ContentFormat:   record.ContentFormat,
		ContentHash:     record.ContentHash,
		ContentIsPadded: record.ContentIsPadded,
		Content:         record.Content,
		File:            record.File,
		ExpirationDate:  record.ExpirationDate,
	}

	if record.ContentFormat != models.FormatInline || record.Content == "" {
		return entry
	}

	decrypted, err := m.pipeline.DecryptForWorkspace(workspaceID, record.Content, crypto.PayloadText)
	if err != nil {
		m.logger.Warn().Err(err).Str("entry", record.UUID).Msg("could not decrypt answer content entry")
		return entry
	}

	if record.ContentIsPadded && decrypted != nil {
		padded, ok := decrypted.(string)
		if !ok {
			m.logger.Warn().Str("entry", record.UUID).Msg("padded entry did not decrypt to a string")
			return entry
		}
		value, err := crypto.Unpad(padded)
		if err != nil {
			m.logger.Warn().Err(err).Str("entry", record.UUID).Msg("could not unpad answer content entry")
			return entry
		}
		entry.Plaintext = value
		return entry
	}

	entry.Plaintext = decrypted
	return entry
}

// toSaveRecord builds the wire record for answer, encrypting every entry
// that carries a pending plaintext against the workspace's own public key.
// Entries without a pending value pass through with their existing
// ciphertext and metadata unchanged, so nothing is needlessly re-encrypted.
func (m *answerContentMapper) toSaveRecord(ctx context.Context, answer models.Answer, ownerPublicKey string, uploader fileUploader) (models.AnswerContentRecord, error) {
	record := models.AnswerContentRecord{
		UUID:              answer.UUID,
		SourceUUID:        answer.SourceID,
		AnswerPoolUUID:    answer.PoolID,
		ItemUUID:          answer.ItemID,
		Version:           answer.Version,
		MinExpirationDate: answer.MinExpirationDate,
		Content:           make([]models.ContentItemRecord, 0, len(answer.Content)),
	}

	for _, item := range answer.Content {
		itemRecord := models.ContentItemRecord{
			ItemUUID: item.ItemID,
			Entries:  make([]models.ContentEntryRecord, 0, len(item.Entries)),
		}

		for _, entry := range item.Entries {
			if !entry.HasPending() {
				itemRecord.Entries = append(itemRecord.Entries, passthroughEntry(entry))
				continue
			}

			var (
				built models.ContentEntryRecord
				err   error
			)
			if entry.ContentFormat == models.FormatFile {
				built, err = m.encryptPendingFile(ctx, entry, ownerPublicKey, uploader)
			} else {
				built, err = m.encryptPendingInline(entry, ownerPublicKey)
			}
			if err != nil {
				return models.AnswerContentRecord{}, fmt.Errorf("encrypt entry %s: %w", entry.UUID, err)
			}
			itemRecord.Entries = append(itemRecord.Entries, built)
		}

		record.Content = append(record.Content, itemRecord)
	}

	return record, nil
}

// encryptPendingInline runs the fixed pipeline order for one inline value:
// serialize -> pad -> hash(padded) -> encrypt(padded).
func (m *answerContentMapper) encryptPendingInline(entry models.AnswerContentEntry, ownerPublicKey string) (models.ContentEntryRecord, error) {
	padded, err := crypto.Pad(entry.PendingPlaintext, m.blockSize)
	if err != nil {
		return models.ContentEntryRecord{}, err
	}

	ciphertext, err := m.pipeline.EncryptFor([]string{ownerPublicKey}, padded, crypto.PayloadText)
	if err != nil {
		return models.ContentEntryRecord{}, err
	}

	return models.ContentEntryRecord{
		UUID:            entryUUID(entry),
		ContentFormat:   models.FormatInline,
		ContentHash:     crypto.HashPadded(padded),
		ContentIsPadded: true,
		Content:         ciphertext,
		ExpirationDate:  entry.ExpirationDate,
	}, nil
}

// encryptPendingFile encrypts the pending bytes for the owner, uploads the
// blob, and produces a record referencing the new file descriptor.
func (m *answerContentMapper) encryptPendingFile(ctx context.Context, entry models.AnswerContentEntry, ownerPublicKey string, uploader fileUploader) (models.ContentEntryRecord, error) {
	pending, ok := entry.PendingPlaintext.(models.PendingFile)
	if !ok {
		return models.ContentEntryRecord{}, ErrInvalidPendingFile
	}

	armored, err := m.pipeline.EncryptFor([]string{ownerPublicKey}, pending.Data, crypto.PayloadBinary)
	if err != nil {
		return models.ContentEntryRecord{}, err
	}

	descriptor, err := uploader.UploadFile(ctx, pending.FileName, pending.FileMimetype, []byte(armored))
	if err != nil {
		return models.ContentEntryRecord{}, fmt.Errorf("upload file: %w", err)
	}

	return models.ContentEntryRecord{
		UUID:           entryUUID(entry),
		ContentFormat:  models.FormatFile,
		ContentHash:    crypto.HashBytes(pending.Data),
		File:           &descriptor,
		ExpirationDate: entry.ExpirationDate,
	}, nil
}

func passthroughEntry(entry models.AnswerContentEntry) models.ContentEntryRecord {
	return models.ContentEntryRecord{
		UUID:            entry.UUID,
		ContentFormat:   entry.ContentFormat,
		ContentHash:     entry.ContentHash,
		ContentIsPadded: entry.ContentIsPadded,
		Content:         entry.Content,
		File:            entry.File,
		ExpirationDate:  entry.ExpirationDate,
	}
}

func entryUUID(entry models.AnswerContentEntry) string {
	if entry.UUID != "" {
		return entry.UUID
	}
	return uuid.NewString()
}
