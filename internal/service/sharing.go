// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vaultshare/go-vaultshare/internal/adapter"
	"github.com/vaultshare/go-vaultshare/internal/crypto"
	"github.com/vaultshare/go-vaultshare/internal/logger"
	"github.com/vaultshare/go-vaultshare/models"
)

// sharePageSize is how many content items one reconciliation page holds.
// All items of a page are rebuilt concurrently; pages run sequentially
// because the termination condition depends on the re-queried remote count.
const sharePageSize = 10

type sharingService struct {
	server   adapter.VaultServerAdapter
	pipeline crypto.Pipeline

	logger *logger.Logger
}

// NewSharingService constructs a [SharingService].
func NewSharingService(server adapter.VaultServerAdapter, pipeline crypto.Pipeline, log *logger.Logger) SharingService {
	return &sharingService{server: server, pipeline: pipeline, logger: log}
}

// ShareVault implements [SharingService].
func (s *sharingService) ShareVault(ctx context.Context, pushFormID string) error {
	if err := s.server.ValidateWorkflow(ctx, pushFormID); err != nil {
		return fmt.Errorf("validate push form workflow: %w", err)
	}

	if err := s.reconcileShareableContent(ctx, pushFormID); err != nil {
		return err
	}

	if err := s.server.NotifyShare(ctx, pushFormID); err != nil {
		return fmt.Errorf("notify share: %w", err)
	}

	return nil
}

// reconcileShareableContent pages over the content items of the push form
// that still lack a shareable copy and produces one for each.
//
// Processing is bounded by the total count observed at the start: items
// that begin qualifying while the run is in flight are left for the next
// invocation. That keeps the loop terminating even when qualifying items
// appear concurrently, at the cost of eventual rather than immediate
// consistency for the new arrivals.
func (s *sharingService) reconcileShareableContent(ctx context.Context, pushFormID string) error {
	filter := missingShareableFilter(pushFormID)

	page, err := s.server.ListAnswerContents(ctx, filter)
	if err != nil {
		return fmt.Errorf("list content missing shareable copy: %w", err)
	}

	total := page.Count
	if total == 0 {
		return nil
	}

	processed := 0
	for {
		if len(page.Results) == 0 {
			return nil
		}

		// One page is one all-of group: a failure on any item fails the
		// page and propagates, nothing is silently skipped.
		g, groupCtx := errgroup.WithContext(ctx)
		for _, record := range page.Results {
			record := record
			g.Go(func() error {
				return s.shareContentItem(groupCtx, pushFormID, record)
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		processed += len(page.Results)
		s.logger.Debug().
			Str("push_form", pushFormID).
			Int("processed", processed).
			Int("total", total).
			Msg("shareable content page reconciled")

		if processed >= total {
			return nil
		}

		page, err = s.server.ListAnswerContents(ctx, filter)
		if err != nil {
			return fmt.Errorf("list content missing shareable copy: %w", err)
		}
		if page.Count == 0 {
			return nil
		}
	}
}

// shareContentItem rebuilds one content record as a shareable payload:
// every entry is decrypted with the owner's key and re-encrypted for all
// eligible relations, with file entries re-uploaded under a new descriptor.
func (s *sharingService) shareContentItem(ctx context.Context, pushFormID string, record models.AnswerContentRecord) error {
	recipients, err := s.eligibleRecipients(ctx, pushFormID)
	if err != nil {
		return err
	}

	relationIDs := make([]string, 0, len(recipients))
	publicKeys := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		relationIDs = append(relationIDs, recipient.RelationID)
		publicKeys = append(publicKeys, recipient.PublicKey)
	}

	workspaceID := s.server.WorkspaceID()
	content := make([]models.ContentEntryRecord, 0, len(record.Content))

	for _, item := range record.Content {
		for _, entry := range item.Entries {
			switch {
			case entry.ContentFormat == models.FormatFile && entry.File == nil:
				// Intentionally-absent historical value, nothing to share.
				continue

			case entry.ContentFormat == models.FormatFile:
				shared, err := s.shareFileEntry(ctx, workspaceID, entry, publicKeys)
				if err != nil {
					return fmt.Errorf("share file entry %s: %w", entry.UUID, err)
				}
				content = append(content, shared)

			default:
				shared, err := s.shareInlineEntry(workspaceID, entry, publicKeys)
				if err != nil {
					return fmt.Errorf("share inline entry %s: %w", entry.UUID, err)
				}
				content = append(content, shared)
			}
		}
	}

	payload := models.ShareablePayload{RelationIDs: relationIDs, Content: content}
	if err := s.server.UpdateShareableAnswerContent(ctx, record.UUID, payload); err != nil {
		return fmt.Errorf("update shareable content %s: %w", record.UUID, err)
	}

	return nil
}

// eligibleRecipients collects the push form's active relations as sharing
// recipients. Relations without a usable public key are dropped, not
// treated as an error; an empty result after filtering is one.
func (s *sharingService) eligibleRecipients(ctx context.Context, pushFormID string) ([]models.ShareableRelation, error) {
	relations, err := s.server.ListShareableRelations(ctx, pushFormID, models.RelationActive)
	if err != nil {
		return nil, fmt.Errorf("list shareable relations: %w", err)
	}

	recipients := make([]models.ShareableRelation, 0, len(relations))
	for _, relation := range relations {
		if relation.PublicKey == "" {
			s.logger.Debug().Str("relation", relation.UUID).Msg("relation has no public key, dropped from recipients")
			continue
		}
		recipients = append(recipients, models.ShareableRelation{
			RelationID: relation.UUID,
			PublicKey:  relation.PublicKey,
		})
	}

	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: push form %s", ErrNoEligibleRecipients, pushFormID)
	}
	return recipients, nil
}

// shareInlineEntry decrypts the owner's ciphertext and re-encrypts the
// value for the recipients. The padding flag and expiration date carry
// over unchanged: the value is re-encrypted in whatever layout it had.
func (s *sharingService) shareInlineEntry(workspaceID string, entry models.ContentEntryRecord, publicKeys []string) (models.ContentEntryRecord, error) {
	value, err := s.pipeline.DecryptForWorkspace(workspaceID, entry.Content, crypto.PayloadText)
	if err != nil {
		return models.ContentEntryRecord{}, err
	}

	reencrypted, err := s.pipeline.EncryptFor(publicKeys, value, crypto.PayloadText)
	if err != nil {
		return models.ContentEntryRecord{}, err
	}

	return models.ContentEntryRecord{
		UUID:            entry.UUID,
		ContentFormat:   models.FormatInline,
		ContentHash:     entry.ContentHash,
		ContentIsPadded: entry.ContentIsPadded,
		Content:         reencrypted,
		ExpirationDate:  entry.ExpirationDate,
	}, nil
}

// shareFileEntry downloads and decrypts the owner's file, re-encrypts the
// bytes for the recipients, and uploads the result as a new file.
func (s *sharingService) shareFileEntry(ctx context.Context, workspaceID string, entry models.ContentEntryRecord, publicKeys []string) (models.ContentEntryRecord, error) {
	armored, err := s.server.DownloadFile(ctx, entry.File.FileID)
	if err != nil {
		return models.ContentEntryRecord{}, fmt.Errorf("download file %s: %w", entry.File.FileID, err)
	}

	plain, err := s.pipeline.DecryptForWorkspace(workspaceID, string(armored), crypto.PayloadBinary)
	if err != nil {
		return models.ContentEntryRecord{}, fmt.Errorf("decrypt file %s: %w", entry.File.FileID, err)
	}

	reencrypted, err := s.pipeline.EncryptFor(publicKeys, plain, crypto.PayloadBinary)
	if err != nil {
		return models.ContentEntryRecord{}, err
	}

	descriptor, err := s.server.UploadFile(ctx, entry.File.FileName, entry.File.FileMimetype, []byte(reencrypted))
	if err != nil {
		return models.ContentEntryRecord{}, fmt.Errorf("upload shared file: %w", err)
	}

	return models.ContentEntryRecord{
		UUID:            entry.UUID,
		ContentFormat:   models.FormatFile,
		ContentHash:     entry.ContentHash,
		ContentIsPadded: entry.ContentIsPadded,
		File:            &descriptor,
		ExpirationDate:  entry.ExpirationDate,
	}, nil
}

func missingShareableFilter(pushFormID string) models.AnswerContentFilter {
	missing := true
	latest := true
	return models.AnswerContentFilter{
		InPushFormUUID:      pushFormID,
		AnswerPoolStatus:    "active",
		HasMissingShareable: &missing,
		IsLatest:            &latest,
		Limit:               sharePageSize,
	}
}
