package oidcflow_test

import (
	"testing"
	"time"

	"github.com/gymstack/gym-admin/server/oidcflow"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepo(t *testing.T) {
	repo := oidcflow.NewInMemoryRepo()

	t.Run("round trip", func(t *testing.T) {
		flow := &oidcflow.LoginFlow{Nonce: "n-1", ReturnURL: "/", CreatedAt: time.Now()}
		require.NoError(t, repo.Upsert("state-1", flow))

		got, err := repo.Get("state-1")
		require.NoError(t, err)
		require.Equal(t, "n-1", got.Nonce)
	})

	t.Run("unknown state errors", func(t *testing.T) {
		_, err := repo.Get("missing")
		require.Error(t, err)
	})

	t.Run("expired flow errors", func(t *testing.T) {
		flow := &oidcflow.LoginFlow{Nonce: "n-2", CreatedAt: time.Now().Add(-time.Hour)}
		require.NoError(t, repo.Upsert("state-2", flow))

		_, err := repo.Get("state-2")
		require.Error(t, err)
	})

	t.Run("delete removes the flow", func(t *testing.T) {
		flow := &oidcflow.LoginFlow{Nonce: "n-3", CreatedAt: time.Now()}
		require.NoError(t, repo.Upsert("state-3", flow))
		require.NoError(t, repo.Delete("state-3"))

		_, err := repo.Get("state-3")
		require.Error(t, err)
	})

	t.Run("nil flow is rejected", func(t *testing.T) {
		require.Error(t, repo.Upsert("state-4", nil))
	})
}
