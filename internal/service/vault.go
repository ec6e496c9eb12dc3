// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vaultshare/go-vaultshare/internal/adapter"
	"github.com/vaultshare/go-vaultshare/internal/crypto"
	"github.com/vaultshare/go-vaultshare/internal/keyring"
	"github.com/vaultshare/go-vaultshare/internal/logger"
	"github.com/vaultshare/go-vaultshare/models"
)

type vaultService struct {
	server   adapter.VaultServerAdapter
	pipeline crypto.Pipeline
	keys     keyring.Registry
	mapper   *answerContentMapper

	logger *logger.Logger
}

// NewVaultService constructs a [VaultService] on top of the vault API
// adapter, the encryption pipeline, and the workspace key registry.
func NewVaultService(server adapter.VaultServerAdapter, pipeline crypto.Pipeline, keys keyring.Registry, padBlockSize int, log *logger.Logger) VaultService {
	return &vaultService{
		server:   server,
		pipeline: pipeline,
		keys:     keys,
		mapper:   newAnswerContentMapper(pipeline, padBlockSize, log),
		logger:   log,
	}
}

// GetVaultAnswers implements [VaultService]. It lists the latest answer
// content of the vault and maps it into decrypted domain answers.
func (s *vaultService) GetVaultAnswers(ctx context.Context, vaultID string) ([]models.Answer, error) {
	isLatest := true
	page, err := s.server.ListAnswerContents(ctx, models.AnswerContentFilter{
		AnswerPoolUUID: vaultID,
		IsLatest:       &isLatest,
	})
	if err != nil {
		return nil, fmt.Errorf("list vault answers: %w", err)
	}

	return s.mapper.toAnswers(s.server.WorkspaceID(), page.Results), nil
}

// SaveVaultAnswers implements [VaultService]. The remote lock for vaultID
// brackets the whole batch; the deferred unlock runs on every exit path,
// including failures inside encryption or submission, so the lock is
// released exactly once per call. Answers are submitted one at a time and
// are not transactional against each other: a failure partway leaves
// earlier answers persisted.
func (s *vaultService) SaveVaultAnswers(ctx context.Context, vaultID string, answers []models.Answer) (err error) {
	workspaceID := s.server.WorkspaceID()

	pair, err := s.keys.Keys(workspaceID)
	if err != nil {
		return err
	}
	if !pair.HasPublic() {
		return fmt.Errorf("%w: %s", ErrMissingPublicKey, workspaceID)
	}

	if err = s.server.LockAnswerPool(ctx, vaultID); err != nil {
		return fmt.Errorf("lock vault: %w", err)
	}
	defer func() {
		if unlockErr := s.server.UnlockAnswerPool(ctx, vaultID); unlockErr != nil {
			err = errors.Join(err, fmt.Errorf("unlock vault: %w", unlockErr))
		}
	}()

	for _, answer := range answers {
		record, buildErr := s.mapper.toSaveRecord(ctx, answer, pair.PublicKey, s.server)
		if buildErr != nil {
			return fmt.Errorf("build save record for answer %s: %w", answer.UUID, buildErr)
		}

		if _, saveErr := s.server.SaveAnswerContent(ctx, record); saveErr != nil {
			return fmt.Errorf("save answer %s: %w", answer.UUID, saveErr)
		}
	}

	return nil
}

// DownloadVaultFile implements [VaultService]. Failures propagate: the
// caller explicitly asked for this file and must know when it could not be
// retrieved or decrypted.
func (s *vaultService) DownloadVaultFile(ctx context.Context, file models.FileDescriptor) ([]byte, error) {
	armored, err := s.server.DownloadFile(ctx, file.FileID)
	if err != nil {
		return nil, fmt.Errorf("download file %s: %w", file.FileID, err)
	}

	decrypted, err := s.pipeline.DecryptForWorkspace(s.server.WorkspaceID(), string(armored), crypto.PayloadBinary)
	if err != nil {
		return nil, fmt.Errorf("decrypt file %s: %w", file.FileID, err)
	}

	data, ok := decrypted.([]byte)
	if !ok {
		return nil, fmt.Errorf("decrypt file %s: unexpected payload type", file.FileID)
	}
	return data, nil
}
