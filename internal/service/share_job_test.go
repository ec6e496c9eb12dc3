// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vaultshare/go-vaultshare/internal/mock"
)

func TestShareJob_RunsOnTickerUntilStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	sharing := mock.NewMockSharingService(ctrl)
	job := NewShareJob(sharing)

	ran := make(chan struct{}, 1)
	sharing.EXPECT().ShareVault(gomock.Any(), "form-1").
		DoAndReturn(func(context.Context, string) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		}).MinTimes(1)

	job.Start(context.Background(), "form-1", 5*time.Millisecond)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("share job never ran")
	}

	job.Stop()
}

func TestShareJob_StopWithoutStartIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := NewShareJob(mock.NewMockSharingService(ctrl))

	require.NotPanics(t, job.Stop)
	require.NotPanics(t, job.Stop)
}

func TestShareJob_ContextCancelStopsTheJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	sharing := mock.NewMockSharingService(ctrl)
	sharing.EXPECT().ShareVault(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	job := NewShareJob(sharing)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, "form-1", 5*time.Millisecond)
	cancel()

	// Stop after the context died must still return promptly.
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}

func TestShareJob_RestartReplacesTheRunningJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	sharing := mock.NewMockSharingService(ctrl)
	sharing.EXPECT().ShareVault(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	job := NewShareJob(sharing)

	job.Start(context.Background(), "form-1", 5*time.Millisecond)
	job.Start(context.Background(), "form-2", 5*time.Millisecond)
	job.Stop()
}
