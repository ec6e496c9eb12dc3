// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vaultshare/go-vaultshare/internal/crypto"
	"github.com/vaultshare/go-vaultshare/internal/logger"
	"github.com/vaultshare/go-vaultshare/internal/mock"
	"github.com/vaultshare/go-vaultshare/models"
)

// ── toAnswers ──────────────────────────────────────────────────────────────

func TestMapper_ToEntry_PaddedContentIsUnpadded(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mock.NewMockPipeline(ctrl)
	m := newAnswerContentMapper(pipeline, 64, logger.Nop())

	// The decrypted plaintext of a padded entry is the padded hex string
	// itself; the mapper is responsible for unpadding it.
	padded, err := crypto.Pad(map[string]any{"iban": "DE89"}, 64)
	require.NoError(t, err)
	pipeline.EXPECT().DecryptForWorkspace("ws-1", "ARMORED", crypto.PayloadText).Return(padded, nil)

	entry := m.toEntry("ws-1", models.ContentEntryRecord{
		UUID:            "entry-1",
		ContentFormat:   models.FormatInline,
		ContentIsPadded: true,
		Content:         "ARMORED",
	})

	assert.Equal(t, map[string]any{"iban": "DE89"}, entry.Plaintext)
	assert.Equal(t, "ARMORED", entry.Content, "original ciphertext stays on the entry")
}

func TestMapper_ToEntry_UnpaddedContentUsedAsIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mock.NewMockPipeline(ctrl)
	m := newAnswerContentMapper(pipeline, 64, logger.Nop())

	pipeline.EXPECT().DecryptForWorkspace("ws-1", "ARMORED", crypto.PayloadText).Return("legacy value", nil)

	entry := m.toEntry("ws-1", models.ContentEntryRecord{
		UUID:          "entry-1",
		ContentFormat: models.FormatInline,
		Content:       "ARMORED",
	})

	assert.Equal(t, "legacy value", entry.Plaintext)
}

func TestMapper_ToEntry_FileEntryPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mock.NewMockPipeline(ctrl)
	m := newAnswerContentMapper(pipeline, 64, logger.Nop())

	descriptor := &models.FileDescriptor{FileID: "file-1", FileName: "scan.pdf"}
	entry := m.toEntry("ws-1", models.ContentEntryRecord{
		UUID:          "entry-1",
		ContentFormat: models.FormatFile,
		File:          descriptor,
	})

	assert.Nil(t, entry.Plaintext, "file bytes are fetched lazily, not during mapping")
	assert.Equal(t, descriptor, entry.File)
}

func TestMapper_ToEntry_BadUnpadLeavesPlaintextNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mock.NewMockPipeline(ctrl)
	m := newAnswerContentMapper(pipeline, 64, logger.Nop())

	pipeline.EXPECT().DecryptForWorkspace("ws-1", "ARMORED", crypto.PayloadText).Return("not-hex-at-all", nil)

	entry := m.toEntry("ws-1", models.ContentEntryRecord{
		UUID:            "entry-1",
		ContentFormat:   models.FormatInline,
		ContentIsPadded: true,
		Content:         "ARMORED",
	})

	assert.Nil(t, entry.Plaintext)
}

// ── toSaveRecord ───────────────────────────────────────────────────────────

func TestMapper_ToSaveRecord_InlinePipelineOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mock.NewMockPipeline(ctrl)
	server := mock.NewMockVaultServerAdapter(ctrl)
	m := newAnswerContentMapper(pipeline, 64, logger.Nop())

	var capturedPadded string
	pipeline.EXPECT().EncryptFor([]string{"OWNER-PUB"}, gomock.Any(), crypto.PayloadText).
		DoAndReturn(func(_ []string, value any, _ crypto.PayloadFormat) (string, error) {
			capturedPadded = value.(string)
			return "CIPHER", nil
		})

	answer := models.Answer{
		UUID: "answer-1",
		Content: []models.AnswerContentItem{{
			ItemID: "item-1",
			Entries: []models.AnswerContentEntry{{
				ContentFormat:    models.FormatInline,
				PendingPlaintext: "new secret",
			}},
		}},
	}

	record, err := m.toSaveRecord(context.Background(), answer, "OWNER-PUB", server)
	require.NoError(t, err)

	built := record.Content[0].Entries[0]
	assert.Equal(t, models.FormatInline, built.ContentFormat)
	assert.True(t, built.ContentIsPadded)
	assert.Equal(t, "CIPHER", built.Content)
	assert.NotEmpty(t, built.UUID, "new entries get a generated identifier")

	// The hash covers the padded form, and the padded form carries the
	// original value: serialize -> pad -> hash(padded) -> encrypt(padded).
	assert.Equal(t, crypto.HashPadded(capturedPadded), built.ContentHash)
	value, err := crypto.Unpad(capturedPadded)
	require.NoError(t, err)
	assert.Equal(t, "new secret", value)
}

func TestMapper_ToSaveRecord_FileEntryEncryptsAndUploads(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mock.NewMockPipeline(ctrl)
	server := mock.NewMockVaultServerAdapter(ctrl)
	m := newAnswerContentMapper(pipeline, 64, logger.Nop())

	data := []byte("pdf bytes")
	descriptor := models.FileDescriptor{FileID: "file-new", FileName: "scan.pdf", FileMimetype: "application/pdf"}

	gomock.InOrder(
		pipeline.EXPECT().EncryptFor([]string{"OWNER-PUB"}, data, crypto.PayloadBinary).Return("ARMORED-FILE", nil),
		server.EXPECT().UploadFile(gomock.Any(), "scan.pdf", "application/pdf", []byte("ARMORED-FILE")).Return(descriptor, nil),
	)

	answer := models.Answer{
		UUID: "answer-1",
		Content: []models.AnswerContentItem{{
			ItemID: "item-1",
			Entries: []models.AnswerContentEntry{{
				ContentFormat: models.FormatFile,
				PendingPlaintext: models.PendingFile{
					FileName:     "scan.pdf",
					FileMimetype: "application/pdf",
					Data:         data,
				},
			}},
		}},
	}

	record, err := m.toSaveRecord(context.Background(), answer, "OWNER-PUB", server)
	require.NoError(t, err)

	built := record.Content[0].Entries[0]
	assert.Equal(t, models.FormatFile, built.ContentFormat)
	require.NotNil(t, built.File)
	assert.Equal(t, "file-new", built.File.FileID)
	assert.Equal(t, crypto.HashBytes(data), built.ContentHash, "file hash covers the plaintext bytes")
	assert.Empty(t, built.Content, "file entries carry no inline ciphertext")
}

func TestMapper_ToSaveRecord_FileEntryWithWrongPendingType(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newAnswerContentMapper(mock.NewMockPipeline(ctrl), 64, logger.Nop())

	answer := models.Answer{
		Content: []models.AnswerContentItem{{
			Entries: []models.AnswerContentEntry{{
				ContentFormat:    models.FormatFile,
				PendingPlaintext: "not a pending file",
			}},
		}},
	}

	_, err := m.toSaveRecord(context.Background(), answer, "OWNER-PUB", mock.NewMockVaultServerAdapter(ctrl))
	assert.ErrorIs(t, err, ErrInvalidPendingFile)
}

func TestMapper_ToSaveRecord_EntriesWithoutPendingPassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newAnswerContentMapper(mock.NewMockPipeline(ctrl), 64, logger.Nop())

	answer := models.Answer{
		UUID: "answer-1",
		Content: []models.AnswerContentItem{{
			ItemID: "item-1",
			Entries: []models.AnswerContentEntry{{
				UUID:            "entry-1",
				ContentFormat:   models.FormatInline,
				ContentHash:     "existing-hash",
				ContentIsPadded: true,
				Content:         "EXISTING-CIPHER",
			}},
		}},
	}

	record, err := m.toSaveRecord(context.Background(), answer, "OWNER-PUB", mock.NewMockVaultServerAdapter(ctrl))
	require.NoError(t, err)

	built := record.Content[0].Entries[0]
	assert.Equal(t, "entry-1", built.UUID)
	assert.Equal(t, "existing-hash", built.ContentHash)
	assert.Equal(t, "EXISTING-CIPHER", built.Content, "no pending value means no re-encryption")
}
