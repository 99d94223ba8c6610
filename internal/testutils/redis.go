// Package testutils provides helpers for integration tests.
package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// CreateTestRedisClient starts a throwaway Redis container and returns a
// client connected to it. When no container runtime is available it falls
// back to a local Redis on DB 15, and skips the test if that is missing too.
// Cleanup is registered on t.
func CreateTestRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		return localFallbackClient(t)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	require.NoError(t, client.Ping(ctx).Err())

	t.Cleanup(func() {
		_ = client.Close()
		_ = container.Terminate(ctx)
	})
	return client
}

// localFallbackClient connects to a developer's local Redis on a test DB
func localFallbackClient(t *testing.T) redis.UniversalClient {
	t.Helper()
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("no container runtime and no local Redis: %v", err)
	}

	require.NoError(t, client.FlushDB(ctx).Err())

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	return client
}
