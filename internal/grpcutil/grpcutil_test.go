package grpcutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"singmeasong/pkg/discovery"
	"singmeasong/pkg/discovery/memory"
)

func TestTransportCredentials(t *testing.T) {
	creds, err := TransportCredentials("", "")
	require.NoError(t, err)
	assert.Equal(t, "insecure", creds.Info().SecurityProtocol)

	_, err = TransportCredentials(filepath.Join(t.TempDir(), "missing.crt"), "missing.key")
	assert.Error(t, err)
}

func TestServiceConnection(t *testing.T) {
	ctx := context.Background()
	registry := memory.NewRegistry(zap.NewNop())
	creds, err := TransportCredentials("", "")
	require.NoError(t, err)

	_, err = ServiceConnection(ctx, "recommendation", registry, creds)
	assert.ErrorIs(t, err, discovery.ErrNotFound)

	require.NoError(t, registry.Register(ctx, "recommendation-1", "recommendation", "localhost:8082"))
	conn, err := ServiceConnection(ctx, "recommendation", registry, creds)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8082", conn.Target())
	assert.NoError(t, conn.Close())
}
