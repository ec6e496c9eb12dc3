// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vaultshare/go-vaultshare/internal/config"
	"github.com/vaultshare/go-vaultshare/internal/logger"
	"github.com/vaultshare/go-vaultshare/models"
)

type httpVaultAdapter struct {
	client *resty.Client

	mu          sync.RWMutex
	token       string
	workspaceID string

	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs an HTTP/REST implementation of
// [VaultServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// request timeout and the transient-failure retry policy (HTTP 5xx, 429,
// 408).
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPVaultAdapter(adapterCfg config.Adapter, log *logger.Logger) (VaultServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetRetryCount(adapterCfg.RetryCount).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil || resp == nil {
				return false
			}
			return resp.StatusCode() >= http.StatusInternalServerError ||
				resp.StatusCode() == http.StatusTooManyRequests ||
				resp.StatusCode() == http.StatusRequestTimeout
		})

	return &httpVaultAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [VaultServerAdapter]. It stores token
// (whitespace-trimmed) and derives the workspace identifier from the JWT
// subject claim for use in workspace-scoped request paths.
func (h *httpVaultAdapter) SetToken(token string) error {
	token = strings.TrimSpace(token)

	workspaceID, err := parseWorkspaceIDFromJWT(token)
	if err != nil {
		return fmt.Errorf("parse workspace id from token: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
	h.workspaceID = workspaceID
	return nil
}

// Token implements [VaultServerAdapter].
func (h *httpVaultAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// WorkspaceID implements [VaultServerAdapter].
func (h *httpVaultAdapter) WorkspaceID() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.workspaceID
}

// ListAnswerContents implements [VaultServerAdapter]. It GETs
// /api/workspaces/{ws}/answers/contents/ with the filter rendered as query
// parameters. Returns an error if the request or response mapping fails.
func (h *httpVaultAdapter) ListAnswerContents(ctx context.Context, filter models.AnswerContentFilter) (models.AnswerContentPage, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(filterQueryParams(filter)).
		Get(h.workspacePath("/answers/contents/"))
	if err != nil {
		return models.AnswerContentPage{}, fmt.Errorf("list answer contents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AnswerContentPage{}, err
	}

	var page models.AnswerContentPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.AnswerContentPage{}, fmt.Errorf("decode answer contents response: %w", err)
	}
	return page, nil
}

// SaveAnswerContent implements [VaultServerAdapter]. It POSTs one record to
// /api/workspaces/{ws}/answers/contents/ and returns the stored record with
// server-assigned identifiers.
func (h *httpVaultAdapter) SaveAnswerContent(ctx context.Context, record models.AnswerContentRecord) (models.AnswerContentRecord, error) {
	var stored models.AnswerContentRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&stored).
		Post(h.workspacePath("/answers/contents/"))
	if err != nil {
		return models.AnswerContentRecord{}, fmt.Errorf("save answer content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AnswerContentRecord{}, err
	}

	return stored, nil
}

// UpdateShareableAnswerContent implements [VaultServerAdapter]. It POSTs the
// rebuilt payload to the update-shareable-answer-content action of the item.
func (h *httpVaultAdapter) UpdateShareableAnswerContent(ctx context.Context, contentUUID string, payload models.ShareablePayload) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(h.workspacePath("/answers/contents/" + contentUUID + "/actions/update-shareable-answer-content/"))
	if err != nil {
		return fmt.Errorf("update shareable answer content request: %w", err)
	}

	return mapHTTPError(resp)
}

// UploadFile implements [VaultServerAdapter]. It POSTs the armored blob as a
// multipart upload to the upload-file action and returns the descriptor of
// the stored file.
func (h *httpVaultAdapter) UploadFile(ctx context.Context, fileName, mimetype string, data []byte) (models.FileDescriptor, error) {
	var uploaded models.UploadFileResponse

	resp, err := h.authedRequest(ctx).
		SetFileReader("file", fileName, bytes.NewReader(data)).
		SetFormData(map[string]string{"file_mimetype": mimetype}).
		SetResult(&uploaded).
		Post(h.workspacePath("/answers/contents/actions/upload-file/"))
	if err != nil {
		return models.FileDescriptor{}, fmt.Errorf("upload file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FileDescriptor{}, err
	}

	return uploaded.File, nil
}

// DownloadFile implements [VaultServerAdapter]. It GETs the raw encrypted
// bytes of the stored blob.
func (h *httpVaultAdapter) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		Get(h.workspacePath("/answers/contents/files/" + fileID))
	if err != nil {
		return nil, fmt.Errorf("download file request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// LockAnswerPool implements [VaultServerAdapter].
func (h *httpVaultAdapter) LockAnswerPool(ctx context.Context, poolID string) error {
	resp, err := h.authedRequest(ctx).
		Post(h.workspacePath("/answer-pools/" + poolID + "/actions/lock/"))
	if err != nil {
		return fmt.Errorf("lock answer pool request: %w", err)
	}

	return mapHTTPError(resp)
}

// UnlockAnswerPool implements [VaultServerAdapter].
func (h *httpVaultAdapter) UnlockAnswerPool(ctx context.Context, poolID string) error {
	resp, err := h.authedRequest(ctx).
		Post(h.workspacePath("/answer-pools/" + poolID + "/actions/unlock/"))
	if err != nil {
		return fmt.Errorf("unlock answer pool request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListShareableRelations implements [VaultServerAdapter]. It GETs the
// relations of the push form filtered by status.
func (h *httpVaultAdapter) ListShareableRelations(ctx context.Context, pushFormID string, status models.RelationStatus) ([]models.RelationRecord, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("in_push_form_uuid", pushFormID).
		SetQueryParam("status", string(status)).
		Get(h.workspacePath("/relations/"))
	if err != nil {
		return nil, fmt.Errorf("list relations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var relations []models.RelationRecord
	if err = json.Unmarshal(resp.Body(), &relations); err != nil {
		return nil, fmt.Errorf("decode relations response: %w", err)
	}
	return relations, nil
}

// ValidateWorkflow implements [VaultServerAdapter].
func (h *httpVaultAdapter) ValidateWorkflow(ctx context.Context, pushFormID string) error {
	resp, err := h.authedRequest(ctx).
		Post(h.workspacePath("/push-forms/" + pushFormID + "/actions/validate-workflow/"))
	if err != nil {
		return fmt.Errorf("validate workflow request: %w", err)
	}

	return mapHTTPError(resp)
}

// NotifyShare implements [VaultServerAdapter].
func (h *httpVaultAdapter) NotifyShare(ctx context.Context, pushFormID string) error {
	resp, err := h.authedRequest(ctx).
		Post(h.workspacePath("/push-forms/" + pushFormID + "/actions/notify-share/"))
	if err != nil {
		return fmt.Errorf("notify share request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpVaultAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpVaultAdapter) workspacePath(suffix string) string {
	return "/api/workspaces/" + h.WorkspaceID() + suffix
}

func filterQueryParams(filter models.AnswerContentFilter) map[string]string {
	params := make(map[string]string, 6)
	if filter.AnswerPoolUUID != "" {
		params["answer_pool_uuid"] = filter.AnswerPoolUUID
	}
	if filter.InPushFormUUID != "" {
		params["in_push_form_uuid"] = filter.InPushFormUUID
	}
	if filter.AnswerPoolStatus != "" {
		params["answer_pool_status"] = filter.AnswerPoolStatus
	}
	if filter.HasMissingShareable != nil {
		params["has_missing_shareable"] = strconv.FormatBool(*filter.HasMissingShareable)
	}
	if filter.IsLatest != nil {
		params["is_latest"] = strconv.FormatBool(*filter.IsLatest)
	}
	if filter.Limit > 0 {
		params["limit"] = strconv.Itoa(filter.Limit)
	}
	return params
}

func parseWorkspaceIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("token subject is empty")
	}
	return sub, nil
}
