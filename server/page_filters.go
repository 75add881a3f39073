package server

import (
	"strings"

	"github.com/gymstack/gym-admin/gateway"
)

// membersTab normalises the tab query param; unknown values fall back to
// "Active", matching the page's default tab.
func membersTab(tab string) string {
	switch tab {
	case "Active", "Expired", "Pending", "All":
		return tab
	default:
		return "Active"
	}
}

func paymentsTab(tab string) string {
	switch tab {
	case "All", "Paid", "Pending", "Failed":
		return tab
	default:
		return "All"
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func filterMembers(members []gateway.Member, search, tab string) []gateway.Member {
	filtered := make([]gateway.Member, 0, len(members))
	for _, m := range members {
		if search != "" && !containsFold(m.FullName(), search) {
			continue
		}
		switch tab {
		case "Active":
			if !m.HasActiveMembership() {
				continue
			}
		case "Expired":
			if !m.HasExpiredMembership() {
				continue
			}
		case "Pending":
			if !m.HasMembershipStatus("pending") {
				continue
			}
		}
		filtered = append(filtered, m)
	}
	return filtered
}

func filterTrainers(trainers []gateway.Trainer, search string) []gateway.Trainer {
	if search == "" {
		return trainers
	}
	filtered := make([]gateway.Trainer, 0, len(trainers))
	for _, t := range trainers {
		if containsFold(t.FullName(), search) || containsFold(t.Specialization, search) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func filterClasses(classes []gateway.Class, search string) []gateway.Class {
	if search == "" {
		return classes
	}
	filtered := make([]gateway.Class, 0, len(classes))
	for _, c := range classes {
		if containsFold(c.Title, search) || containsFold(c.Description, search) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func filterPayments(payments []gateway.Payment, tab string) []gateway.Payment {
	if tab == "All" {
		return payments
	}
	filtered := make([]gateway.Payment, 0, len(payments))
	for _, p := range payments {
		if strings.EqualFold(p.Status, tab) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func filterGyms(gyms []gateway.Gym, search string) []gateway.Gym {
	if search == "" {
		return gyms
	}
	filtered := make([]gateway.Gym, 0, len(gyms))
	for _, g := range gyms {
		if containsFold(g.Name, search) || containsFold(g.Address, search) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
