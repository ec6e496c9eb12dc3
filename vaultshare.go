// SPDX-License-Identifier: Apache-2.0

// Package vaultshare is a client SDK for the vaultshare API. It lets a
// workspace store structured answers encrypted so that only the workspace
// can read them, and selectively re-encrypt and share answer entries with
// its relations without ever exposing plaintext to the transport layer.
package vaultshare

import (
	"context"
	"fmt"
	"time"

	"github.com/vaultshare/go-vaultshare/internal/adapter"
	"github.com/vaultshare/go-vaultshare/internal/config"
	"github.com/vaultshare/go-vaultshare/internal/crypto"
	"github.com/vaultshare/go-vaultshare/internal/keyring"
	"github.com/vaultshare/go-vaultshare/internal/logger"
	"github.com/vaultshare/go-vaultshare/internal/service"
	"github.com/vaultshare/go-vaultshare/models"
)

// Config holds the explicit settings of one SDK instance. Zero fields fall
// back to built-in defaults; Address is required.
type Config struct {
	// Address is the base URL of the vault API.
	Address string

	// Token is the bearer token used for authenticated requests. Can be
	// set later via [Client.SetToken].
	Token string

	// RequestTimeout bounds a single outbound request. Defaults to 15s.
	RequestTimeout time.Duration

	// RetryCount is how many times transient failures (HTTP 5xx, 429,
	// 408) are retried. Defaults to 3.
	RetryCount int

	// PadBlockSize is the padding block size applied to inline answer
	// content before encryption. Defaults to 64.
	PadBlockSize int

	// ShareInterval is the default cadence of the background share job.
	// Defaults to 5 minutes.
	ShareInterval time.Duration
}

// Client is one SDK instance: a key registry, a vault API adapter, and the
// services wired on top of them. Construct it with [New] or [NewFromEnv].
type Client struct {
	keys     keyring.Registry
	server   adapter.VaultServerAdapter
	services *service.Services
	logger   *logger.Logger

	shareInterval time.Duration
}

// New constructs a [Client] from explicit settings.
func New(cfg Config) (*Client, error) {
	structured := &config.StructuredConfig{
		App: config.App{
			Token:        cfg.Token,
			PadBlockSize: cfg.PadBlockSize,
		},
		Adapter: config.Adapter{
			HTTPAddress:    cfg.Address,
			RequestTimeout: cfg.RequestTimeout,
			RetryCount:     cfg.RetryCount,
		},
		Workers: config.Workers{
			ShareInterval: cfg.ShareInterval,
		},
	}
	if structured.App.PadBlockSize <= 0 {
		structured.App.PadBlockSize = crypto.DefaultPadBlockSize
	}
	if structured.Adapter.RequestTimeout <= 0 {
		structured.Adapter.RequestTimeout = 15 * time.Second
	}
	if structured.Adapter.RetryCount <= 0 {
		structured.Adapter.RetryCount = 3
	}
	if structured.Workers.ShareInterval <= 0 {
		structured.Workers.ShareInterval = 5 * time.Minute
	}

	return newClient(structured)
}

// NewFromEnv constructs a [Client] from environment variables merged over
// built-in defaults (see the VAULTSHARE_* variables in internal/config).
func NewFromEnv() (*Client, error) {
	structured, err := config.GetSDKConfig()
	if err != nil {
		return nil, fmt.Errorf("load sdk config: %w", err)
	}
	return newClient(structured)
}

func newClient(cfg *config.StructuredConfig) (*Client, error) {
	log := logger.NewLogger("sdk")

	server, err := adapter.NewHTTPVaultAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create vault adapter: %w", err)
	}
	if cfg.App.Token != "" {
		if err := server.SetToken(cfg.App.Token); err != nil {
			return nil, fmt.Errorf("set token: %w", err)
		}
	}

	keys := keyring.NewRegistry()

	return &Client{
		keys:          keys,
		server:        server,
		services:      service.NewServices(server, keys, cfg.App.PadBlockSize, log),
		logger:        log,
		shareInterval: cfg.Workers.ShareInterval,
	}, nil
}

// SetToken stores the bearer token for all subsequent requests and derives
// the workspace identifier from its subject claim.
func (c *Client) SetToken(token string) error {
	return c.server.SetToken(token)
}

// SetWorkspaceKeys registers the non-empty halves of an armored key pair
// for the workspace, merging with any keys already registered.
func (c *Client) SetWorkspaceKeys(workspaceID, publicKey, privateKey string) error {
	return c.keys.SetKeys(workspaceID, models.WorkspaceKeyPair{
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	})
}

// SetWorkspacePublicKey registers the armored public key of the workspace.
func (c *Client) SetWorkspacePublicKey(workspaceID, publicKey string) error {
	return c.keys.SetPublicKey(workspaceID, publicKey)
}

// SetWorkspacePrivateKey registers the armored private key of the
// workspace. The armor is normalized before storage.
func (c *Client) SetWorkspacePrivateKey(workspaceID, privateKey string) error {
	return c.keys.SetPrivateKey(workspaceID, privateKey)
}

// WorkspaceKeys returns the key pair registered for the workspace, or an
// empty record if none is known.
func (c *Client) WorkspaceKeys(workspaceID string) (models.WorkspaceKeyPair, error) {
	return c.keys.Keys(workspaceID)
}

// ClearWorkspaceKeys removes the keys of one workspace from the registry.
func (c *Client) ClearWorkspaceKeys(workspaceID string) error {
	return c.keys.Clear(workspaceID)
}

// ClearAllKeys removes every registered key pair.
func (c *Client) ClearAllKeys() {
	c.keys.ClearAll()
}

// GetVaultAnswers fetches and decrypts the latest answers of the vault.
func (c *Client) GetVaultAnswers(ctx context.Context, vaultID string) ([]models.Answer, error) {
	return c.services.VaultService.GetVaultAnswers(ctx, vaultID)
}

// SaveVaultAnswers encrypts and persists the pending values of the given
// answers inside a remote lock bracket.
func (c *Client) SaveVaultAnswers(ctx context.Context, vaultID string, answers []models.Answer) error {
	return c.services.VaultService.SaveVaultAnswers(ctx, vaultID, answers)
}

// DownloadVaultFile fetches and decrypts the bytes of a file entry.
func (c *Client) DownloadVaultFile(ctx context.Context, file models.FileDescriptor) ([]byte, error) {
	return c.services.VaultService.DownloadVaultFile(ctx, file)
}

// ShareVault re-encrypts every answer content item of the push form that
// still lacks a shareable copy for all eligible relations.
func (c *Client) ShareVault(ctx context.Context, pushFormID string) error {
	return c.services.SharingService.ShareVault(ctx, pushFormID)
}

// StartShareJob launches the background job that periodically runs
// ShareVault for the push form. A non-positive interval falls back to the
// configured share interval.
func (c *Client) StartShareJob(ctx context.Context, pushFormID string, interval time.Duration) {
	if interval <= 0 {
		interval = c.shareInterval
	}
	c.services.ShareJob.Start(ctx, pushFormID, interval)
}

// StopShareJob stops the background share job and waits for it to exit.
func (c *Client) StopShareJob() {
	c.services.ShareJob.Stop()
}

// GenerateWorkspaceKey produces a fresh armored key pair suitable for
// registering with [Client.SetWorkspaceKeys].
func GenerateWorkspaceKey(name, email string) (publicKey, privateKey string, err error) {
	return crypto.GenerateWorkspaceKey(name, email)
}
