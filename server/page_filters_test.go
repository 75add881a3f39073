package server

import (
	"testing"

	"github.com/gymstack/gym-admin/gateway"
	"github.com/stretchr/testify/require"
)

func TestFilterMembers(t *testing.T) {
	members := []gateway.Member{
		{ID: "m-1", FirstName: "Ada", LastName: "Lovelace", Memberships: []gateway.Membership{{Status: "Active"}}},
		{ID: "m-2", FirstName: "Grace", LastName: "Hopper"},
		{ID: "m-3", FirstName: "Alan", LastName: "Turing", Memberships: []gateway.Membership{{Status: "Expired"}}},
		{ID: "m-4", FirstName: "Edsger", LastName: "Dijkstra", Memberships: []gateway.Membership{{Status: "pending"}}},
	}

	t.Run("active tab keeps only members with an active membership", func(t *testing.T) {
		filtered := filterMembers(members, "", "Active")
		require.Len(t, filtered, 1)
		require.Equal(t, "m-1", filtered[0].ID)
	})

	t.Run("active tab matches any status casing", func(t *testing.T) {
		lower := []gateway.Member{{ID: "m-5", FirstName: "Barbara", LastName: "Liskov", Memberships: []gateway.Membership{{Status: "active"}}}}
		require.Len(t, filterMembers(lower, "", "Active"), 1)
	})

	t.Run("expired tab keeps lapsed memberships", func(t *testing.T) {
		filtered := filterMembers(members, "", "Expired")
		require.Len(t, filtered, 1)
		require.Equal(t, "m-3", filtered[0].ID)
	})

	t.Run("pending tab keeps members awaiting payment", func(t *testing.T) {
		filtered := filterMembers(members, "", "Pending")
		require.Len(t, filtered, 1)
		require.Equal(t, "m-4", filtered[0].ID)
	})

	t.Run("all tab passes everyone through", func(t *testing.T) {
		require.Len(t, filterMembers(members, "", "All"), 4)
	})

	t.Run("search is case insensitive over the full name", func(t *testing.T) {
		filtered := filterMembers(members, "grace h", "All")
		require.Len(t, filtered, 1)
		require.Equal(t, "m-2", filtered[0].ID)
	})

	t.Run("search and tab combine", func(t *testing.T) {
		filtered := filterMembers(members, "a", "Active")
		require.Len(t, filtered, 1)
		require.Equal(t, "m-1", filtered[0].ID)
	})
}

func TestFilterPayments(t *testing.T) {
	payments := []gateway.Payment{
		{ID: "p-1", Status: "Paid"},
		{ID: "p-2", Status: "pending"},
		{ID: "p-3", Status: "Failed"},
	}

	t.Run("all tab passes everything through", func(t *testing.T) {
		require.Len(t, filterPayments(payments, "All"), 3)
	})

	t.Run("status match ignores case", func(t *testing.T) {
		filtered := filterPayments(payments, "Pending")
		require.Len(t, filtered, 1)
		require.Equal(t, "p-2", filtered[0].ID)
	})
}

func TestTabDefaults(t *testing.T) {
	require.Equal(t, "Active", membersTab(""))
	require.Equal(t, "Active", membersTab("nonsense"))
	require.Equal(t, "Expired", membersTab("Expired"))
	require.Equal(t, "Pending", membersTab("Pending"))
	require.Equal(t, "All", membersTab("All"))
	require.Equal(t, "All", paymentsTab(""))
	require.Equal(t, "Failed", paymentsTab("Failed"))
}
