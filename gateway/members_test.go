package gateway_test

import (
	"testing"
	"time"

	"github.com/gymstack/gym-admin/gateway"
	"github.com/stretchr/testify/require"
)

func TestHasActiveMembership(t *testing.T) {
	t.Run("matches regardless of status casing", func(t *testing.T) {
		lower := gateway.Member{Memberships: []gateway.Membership{{Status: "active"}}}
		upper := gateway.Member{Memberships: []gateway.Membership{{Status: "Active"}}}
		require.True(t, lower.HasActiveMembership())
		require.True(t, upper.HasActiveMembership())
	})

	t.Run("false without memberships", func(t *testing.T) {
		require.False(t, gateway.Member{}.HasActiveMembership())
	})

	t.Run("false when only expired", func(t *testing.T) {
		m := gateway.Member{Memberships: []gateway.Membership{{Status: "expired"}}}
		require.False(t, m.HasActiveMembership())
	})
}

func TestHasExpiredMembership(t *testing.T) {
	t.Run("by status", func(t *testing.T) {
		m := gateway.Member{Memberships: []gateway.Membership{{Status: "Expired"}}}
		require.True(t, m.HasExpiredMembership())
	})

	t.Run("by end date in the past", func(t *testing.T) {
		past := time.Now().Add(-24 * time.Hour).Format(time.RFC3339)
		m := gateway.Member{Memberships: []gateway.Membership{{Status: "active", EndDate: past}}}
		require.True(t, m.HasExpiredMembership())
	})

	t.Run("false for a current membership", func(t *testing.T) {
		future := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
		m := gateway.Member{Memberships: []gateway.Membership{{Status: "active", EndDate: future}}}
		require.False(t, m.HasExpiredMembership())
	})
}

func TestHasMembershipStatus(t *testing.T) {
	m := gateway.Member{Memberships: []gateway.Membership{{Status: "Pending"}}}
	require.True(t, m.HasMembershipStatus("pending"))
	require.False(t, m.HasMembershipStatus("active"))
}
