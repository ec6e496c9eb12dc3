package service

import (
	"github.com/vaultshare/go-vaultshare/internal/adapter"
	"github.com/vaultshare/go-vaultshare/internal/crypto"
	"github.com/vaultshare/go-vaultshare/internal/keyring"
	"github.com/vaultshare/go-vaultshare/internal/logger"
)

// Services aggregates every service of the SDK core, wired against one
// vault API adapter and one key registry.
type Services struct {
	VaultService   VaultService
	SharingService SharingService
	ShareJob       ShareJob
}

// NewServices wires the core services. padBlockSize controls the padding
// applied to inline answer content before encryption; a non-positive value
// falls back to the codec default.
func NewServices(server adapter.VaultServerAdapter, keys keyring.Registry, padBlockSize int, log *logger.Logger) *Services {
	pipeline := crypto.NewPipeline(keys)
	sharingSvc := NewSharingService(server, pipeline, log)

	return &Services{
		VaultService:   NewVaultService(server, pipeline, keys, padBlockSize, log),
		SharingService: sharingSvc,
		ShareJob:       NewShareJob(sharingSvc),
	}
}
