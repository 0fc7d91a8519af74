package services

import (
	"strings"

	"handover-system/internal/entities"
)

// Pure predicates over store snapshots. Nothing in this file mutates state.

type EquipmentQuery struct {
	Text      string
	CompanyID string
	Status    entities.EquipmentStatus
}

// FilterEquipment applies a case-insensitive substring match over name,
// serial number and category, combined (AND) with the optional company and
// status filters.
func FilterEquipment(items []entities.Equipment, q EquipmentQuery) []entities.Equipment {
	needle := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]entities.Equipment, 0, len(items))
	for _, e := range items {
		if q.CompanyID != "" && e.CompanyID != q.CompanyID {
			continue
		}
		if q.Status != "" && e.Status != q.Status {
			continue
		}
		if needle != "" && !matchesEquipment(e, needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesEquipment(e entities.Equipment, needle string) bool {
	return strings.Contains(strings.ToLower(e.Name), needle) ||
		strings.Contains(strings.ToLower(e.SerialNumber), needle) ||
		strings.Contains(strings.ToLower(e.Category), needle)
}

// AvailableForSelection returns equipment that can still be picked in the
// current workflow instance: available status and not already in the
// exclusion set. The exclusion set prevents double-assignment within one
// onboarding flow.
func AvailableForSelection(items []entities.Equipment, exclude map[string]bool) []entities.Equipment {
	out := make([]entities.Equipment, 0, len(items))
	for _, e := range items {
		if e.Status != entities.EquipmentAvailable {
			continue
		}
		if exclude[e.ID] {
			continue
		}
		out = append(out, e)
	}
	return out
}

type UserQuery struct {
	Text      string
	CompanyID string
}

func FilterUsers(users []entities.User, q UserQuery) []entities.User {
	needle := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]entities.User, 0, len(users))
	for _, u := range users {
		if q.CompanyID != "" && u.CompanyID != q.CompanyID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(u.Name), needle) &&
			!strings.Contains(strings.ToLower(u.Email), needle) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func FilterProfiles(profiles []entities.CollaboratorProfile, q UserQuery) []entities.CollaboratorProfile {
	needle := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]entities.CollaboratorProfile, 0, len(profiles))
	for _, p := range profiles {
		if q.CompanyID != "" && p.Filiale != q.CompanyID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Nom), needle) &&
			!strings.Contains(strings.ToLower(p.Prenom), needle) &&
			!strings.Contains(strings.ToLower(p.Email), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// HasEquipment reports whether the owner currently holds at least one piece
// of equipment, derived from the authoritative AssignedTo relation.
func HasEquipment(items []entities.Equipment, ownerID string) bool {
	for _, e := range items {
		if e.AssignedTo == ownerID {
			return true
		}
	}
	return false
}
