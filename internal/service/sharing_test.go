// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vaultshare/go-vaultshare/internal/crypto"
	"github.com/vaultshare/go-vaultshare/internal/logger"
	"github.com/vaultshare/go-vaultshare/internal/mock"
	"github.com/vaultshare/go-vaultshare/models"
)

func newSharingServiceForTest(t *testing.T) (*mock.MockVaultServerAdapter, *mock.MockPipeline, SharingService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	server := mock.NewMockVaultServerAdapter(ctrl)
	pipeline := mock.NewMockPipeline(ctrl)
	return server, pipeline, NewSharingService(server, pipeline, logger.Nop())
}

func inlineRecord(uuid, entryUUID, ciphertext string) models.AnswerContentRecord {
	return models.AnswerContentRecord{
		UUID: uuid,
		Content: []models.ContentItemRecord{{
			ItemUUID: "item-1",
			Entries: []models.ContentEntryRecord{{
				UUID:            entryUUID,
				ContentFormat:   models.FormatInline,
				ContentHash:     "hash-" + entryUUID,
				ContentIsPadded: true,
				Content:         ciphertext,
			}},
		}},
	}
}

func activeRelations() []models.RelationRecord {
	return []models.RelationRecord{
		{UUID: "rel-1", Status: models.RelationActive, PublicKey: "REL-PUB-1"},
		{UUID: "rel-2", Status: models.RelationActive, PublicKey: "REL-PUB-2"},
	}
}

// ── ShareVault ─────────────────────────────────────────────────────────────

func TestShareVault_ReconcilesEveryQualifyingItemExactlyOnce(t *testing.T) {
	server, pipeline, svc := newSharingServiceForTest(t)
	ctx := context.Background()

	page := models.AnswerContentPage{
		Count: 2,
		Results: []models.AnswerContentRecord{
			inlineRecord("content-1", "entry-1", "CIPHER-1"),
			inlineRecord("content-2", "entry-2", "CIPHER-2"),
		},
	}

	server.EXPECT().ValidateWorkflow(ctx, "form-1").Return(nil)
	server.EXPECT().ListAnswerContents(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.AnswerContentFilter) (models.AnswerContentPage, error) {
			assert.Equal(t, "form-1", filter.InPushFormUUID)
			require.NotNil(t, filter.HasMissingShareable)
			assert.True(t, *filter.HasMissingShareable)
			return page, nil
		})
	server.EXPECT().ListShareableRelations(gomock.Any(), "form-1", models.RelationActive).
		Return(activeRelations(), nil).Times(2)
	server.EXPECT().WorkspaceID().Return("ws-1").Times(2)

	pipeline.EXPECT().DecryptForWorkspace("ws-1", gomock.Any(), crypto.PayloadText).
		Return("padded-hex", nil).Times(2)
	pipeline.EXPECT().EncryptFor([]string{"REL-PUB-1", "REL-PUB-2"}, "padded-hex", crypto.PayloadText).
		Return("SHARED-CIPHER", nil).Times(2)

	// Both qualifying items were in the first page and the observed total
	// is reached, so the loop terminates without another listing.
	server.EXPECT().UpdateShareableAnswerContent(gomock.Any(), "content-1", gomock.Any()).Return(nil)
	server.EXPECT().UpdateShareableAnswerContent(gomock.Any(), "content-2", gomock.Any()).Return(nil)
	server.EXPECT().NotifyShare(ctx, "form-1").Return(nil)

	require.NoError(t, svc.ShareVault(ctx, "form-1"))
}

func TestShareVault_RequeriesUntilObservedTotalIsProcessed(t *testing.T) {
	server, pipeline, svc := newSharingServiceForTest(t)
	ctx := context.Background()

	firstPage := models.AnswerContentPage{
		Count:   2,
		Results: []models.AnswerContentRecord{inlineRecord("content-1", "entry-1", "CIPHER-1")},
	}
	secondPage := models.AnswerContentPage{
		Count:   2,
		Results: []models.AnswerContentRecord{inlineRecord("content-2", "entry-2", "CIPHER-2")},
	}

	server.EXPECT().ValidateWorkflow(ctx, "form-1").Return(nil)
	gomock.InOrder(
		server.EXPECT().ListAnswerContents(ctx, gomock.Any()).Return(firstPage, nil),
		server.EXPECT().ListAnswerContents(ctx, gomock.Any()).Return(secondPage, nil),
	)
	server.EXPECT().ListShareableRelations(gomock.Any(), "form-1", models.RelationActive).
		Return(activeRelations(), nil).Times(2)
	server.EXPECT().WorkspaceID().Return("ws-1").Times(2)
	pipeline.EXPECT().DecryptForWorkspace("ws-1", gomock.Any(), crypto.PayloadText).
		Return("padded-hex", nil).Times(2)
	pipeline.EXPECT().EncryptFor(gomock.Any(), "padded-hex", crypto.PayloadText).
		Return("SHARED-CIPHER", nil).Times(2)
	server.EXPECT().UpdateShareableAnswerContent(gomock.Any(), "content-1", gomock.Any()).Return(nil)
	server.EXPECT().UpdateShareableAnswerContent(gomock.Any(), "content-2", gomock.Any()).Return(nil)
	server.EXPECT().NotifyShare(ctx, "form-1").Return(nil)

	require.NoError(t, svc.ShareVault(ctx, "form-1"))
}

func TestShareVault_NothingToReconcile(t *testing.T) {
	server, _, svc := newSharingServiceForTest(t)
	ctx := context.Background()

	server.EXPECT().ValidateWorkflow(ctx, "form-1").Return(nil)
	server.EXPECT().ListAnswerContents(ctx, gomock.Any()).
		Return(models.AnswerContentPage{Count: 0}, nil)
	server.EXPECT().NotifyShare(ctx, "form-1").Return(nil)

	require.NoError(t, svc.ShareVault(ctx, "form-1"))
}

func TestShareVault_WorkflowValidationFailureStopsEverything(t *testing.T) {
	server, _, svc := newSharingServiceForTest(t)

	server.EXPECT().ValidateWorkflow(gomock.Any(), "form-1").Return(errors.New("workflow incomplete"))

	err := svc.ShareVault(context.Background(), "form-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate push form workflow")
}

func TestShareVault_RelationsWithoutKeysAreDropped(t *testing.T) {
	server, pipeline, svc := newSharingServiceForTest(t)
	ctx := context.Background()

	server.EXPECT().ValidateWorkflow(ctx, "form-1").Return(nil)
	server.EXPECT().ListAnswerContents(ctx, gomock.Any()).
		Return(models.AnswerContentPage{
			Count:   1,
			Results: []models.AnswerContentRecord{inlineRecord("content-1", "entry-1", "CIPHER-1")},
		}, nil)
	server.EXPECT().ListShareableRelations(gomock.Any(), "form-1", models.RelationActive).
		Return([]models.RelationRecord{
			{UUID: "rel-1", Status: models.RelationActive, PublicKey: "REL-PUB-1"},
			{UUID: "rel-keyless", Status: models.RelationActive},
		}, nil)
	server.EXPECT().WorkspaceID().Return("ws-1")
	pipeline.EXPECT().DecryptForWorkspace("ws-1", "CIPHER-1", crypto.PayloadText).Return("padded-hex", nil)
	pipeline.EXPECT().EncryptFor([]string{"REL-PUB-1"}, "padded-hex", crypto.PayloadText).Return("SHARED", nil)

	server.EXPECT().UpdateShareableAnswerContent(gomock.Any(), "content-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload models.ShareablePayload) error {
			assert.Equal(t, []string{"rel-1"}, payload.RelationIDs, "keyless relation must not appear in the payload")
			return nil
		})
	server.EXPECT().NotifyShare(ctx, "form-1").Return(nil)

	require.NoError(t, svc.ShareVault(ctx, "form-1"))
}

func TestShareVault_NoEligibleRecipients(t *testing.T) {
	server, _, svc := newSharingServiceForTest(t)
	ctx := context.Background()

	server.EXPECT().ValidateWorkflow(ctx, "form-1").Return(nil)
	server.EXPECT().ListAnswerContents(ctx, gomock.Any()).
		Return(models.AnswerContentPage{
			Count:   1,
			Results: []models.AnswerContentRecord{inlineRecord("content-1", "entry-1", "CIPHER-1")},
		}, nil)
	server.EXPECT().ListShareableRelations(gomock.Any(), "form-1", models.RelationActive).
		Return([]models.RelationRecord{{UUID: "rel-keyless", Status: models.RelationActive}}, nil)
	// No notification for a reconciliation that failed.

	err := svc.ShareVault(ctx, "form-1")
	assert.ErrorIs(t, err, ErrNoEligibleRecipients)
}

func TestShareVault_FileEntryIsReEncryptedAndReUploaded(t *testing.T) {
	server, pipeline, svc := newSharingServiceForTest(t)
	ctx := context.Background()

	record := models.AnswerContentRecord{
		UUID: "content-1",
		Content: []models.ContentItemRecord{{
			ItemUUID: "item-1",
			Entries: []models.ContentEntryRecord{{
				UUID:          "entry-file",
				ContentFormat: models.FormatFile,
				ContentHash:   "file-hash",
				File:          &models.FileDescriptor{FileID: "file-old", FileName: "scan.pdf", FileMimetype: "application/pdf"},
			}},
		}},
	}

	server.EXPECT().ValidateWorkflow(ctx, "form-1").Return(nil)
	server.EXPECT().ListAnswerContents(ctx, gomock.Any()).
		Return(models.AnswerContentPage{Count: 1, Results: []models.AnswerContentRecord{record}}, nil)
	server.EXPECT().ListShareableRelations(gomock.Any(), "form-1", models.RelationActive).
		Return(activeRelations(), nil)
	server.EXPECT().WorkspaceID().Return("ws-1")

	gomock.InOrder(
		server.EXPECT().DownloadFile(gomock.Any(), "file-old").Return([]byte("OWNER-ARMOR"), nil),
		pipeline.EXPECT().DecryptForWorkspace("ws-1", "OWNER-ARMOR", crypto.PayloadBinary).Return([]byte("raw"), nil),
		pipeline.EXPECT().EncryptFor([]string{"REL-PUB-1", "REL-PUB-2"}, []byte("raw"), crypto.PayloadBinary).Return("SHARED-ARMOR", nil),
		server.EXPECT().UploadFile(gomock.Any(), "scan.pdf", "application/pdf", []byte("SHARED-ARMOR")).
			Return(models.FileDescriptor{FileID: "file-shared", FileName: "scan.pdf", FileMimetype: "application/pdf"}, nil),
	)

	server.EXPECT().UpdateShareableAnswerContent(gomock.Any(), "content-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload models.ShareablePayload) error {
			require.Len(t, payload.Content, 1)
			entry := payload.Content[0]
			require.NotNil(t, entry.File)
			assert.Equal(t, "file-shared", entry.File.FileID, "shared copy must reference the new upload")
			assert.Equal(t, "file-hash", entry.ContentHash, "plaintext hash carries over unchanged")
			return nil
		})
	server.EXPECT().NotifyShare(ctx, "form-1").Return(nil)

	require.NoError(t, svc.ShareVault(ctx, "form-1"))
}

func TestShareVault_FileEntryWithoutDescriptorIsSkipped(t *testing.T) {
	server, _, svc := newSharingServiceForTest(t)
	ctx := context.Background()

	record := models.AnswerContentRecord{
		UUID: "content-1",
		Content: []models.ContentItemRecord{{
			ItemUUID: "item-1",
			Entries: []models.ContentEntryRecord{{
				UUID:          "entry-empty-file",
				ContentFormat: models.FormatFile,
				// File deliberately nil: historical entry with no bytes.
			}},
		}},
	}

	server.EXPECT().ValidateWorkflow(ctx, "form-1").Return(nil)
	server.EXPECT().ListAnswerContents(ctx, gomock.Any()).
		Return(models.AnswerContentPage{Count: 1, Results: []models.AnswerContentRecord{record}}, nil)
	server.EXPECT().ListShareableRelations(gomock.Any(), "form-1", models.RelationActive).
		Return(activeRelations(), nil)
	server.EXPECT().WorkspaceID().Return("ws-1")

	server.EXPECT().UpdateShareableAnswerContent(gomock.Any(), "content-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payload models.ShareablePayload) error {
			assert.Empty(t, payload.Content, "a file entry without a descriptor contributes nothing")
			return nil
		})
	server.EXPECT().NotifyShare(ctx, "form-1").Return(nil)

	require.NoError(t, svc.ShareVault(ctx, "form-1"))
}

func TestShareVault_ItemFailureFailsThePage(t *testing.T) {
	server, pipeline, svc := newSharingServiceForTest(t)
	ctx := context.Background()

	server.EXPECT().ValidateWorkflow(ctx, "form-1").Return(nil)
	server.EXPECT().ListAnswerContents(ctx, gomock.Any()).
		Return(models.AnswerContentPage{
			Count:   1,
			Results: []models.AnswerContentRecord{inlineRecord("content-1", "entry-1", "CIPHER-1")},
		}, nil)
	server.EXPECT().ListShareableRelations(gomock.Any(), "form-1", models.RelationActive).
		Return(activeRelations(), nil)
	server.EXPECT().WorkspaceID().Return("ws-1")
	pipeline.EXPECT().DecryptForWorkspace("ws-1", "CIPHER-1", crypto.PayloadText).
		Return(nil, errors.New("wrong key"))
	// No update, no notification: the failure propagates.

	err := svc.ShareVault(ctx, "form-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry-1")
}
