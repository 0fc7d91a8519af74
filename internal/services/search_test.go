package services

import (
	"testing"

	"handover-system/internal/entities"

	"github.com/stretchr/testify/assert"
)

var searchFixture = []entities.Equipment{
	{ID: "1", Name: "MacBook Pro", SerialNumber: "MBP-001", Category: "Ordinateur", Status: entities.EquipmentAssigned, CompanyID: "c1", AssignedTo: "u1"},
	{ID: "2", Name: "Dell XPS", SerialNumber: "XPS-001", Category: "Ordinateur", Status: entities.EquipmentAvailable},
	{ID: "3", Name: "iPhone 15", SerialNumber: "IPH-001", Category: "Téléphone", Status: entities.EquipmentAvailable, CompanyID: "c2"},
	{ID: "4", Name: "Écran Dell", SerialNumber: "MON-001", Category: "Écran", Status: entities.EquipmentMaintenance},
}

func TestFilterEquipmentTextIsCaseInsensitive(t *testing.T) {
	out := FilterEquipment(searchFixture, EquipmentQuery{Text: "macbook"})
	assert.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)

	out = FilterEquipment(searchFixture, EquipmentQuery{Text: "DELL"})
	assert.Len(t, out, 2)
}

func TestFilterEquipmentMatchesSerialAndCategory(t *testing.T) {
	out := FilterEquipment(searchFixture, EquipmentQuery{Text: "iph-001"})
	assert.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)

	out = FilterEquipment(searchFixture, EquipmentQuery{Text: "téléphone"})
	assert.Len(t, out, 1)
}

func TestFilterEquipmentCombinesCriteria(t *testing.T) {
	out := FilterEquipment(searchFixture, EquipmentQuery{Text: "dell", Status: entities.EquipmentAvailable})
	assert.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)

	out = FilterEquipment(searchFixture, EquipmentQuery{Text: "dell", CompanyID: "c1"})
	assert.Empty(t, out)
}

func TestFilterEquipmentEmptyQueryReturnsAll(t *testing.T) {
	out := FilterEquipment(searchFixture, EquipmentQuery{})
	assert.Len(t, out, len(searchFixture))
}

func TestAvailableForSelectionSkipsExcludedAndNonAvailable(t *testing.T) {
	out := AvailableForSelection(searchFixture, map[string]bool{"2": true})
	assert.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)
}

func TestFilterUsers(t *testing.T) {
	users := []entities.User{
		{ID: "1", Name: "Jean Dupont", Email: "jean.dupont@techcorp.fr", CompanyID: "c1"},
		{ID: "2", Name: "Sophie Leroy", Email: "sophie.leroy@dataprime.fr", CompanyID: "c3"},
	}

	out := FilterUsers(users, UserQuery{Text: "DUPONT"})
	assert.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)

	out = FilterUsers(users, UserQuery{Text: "dataprime"})
	assert.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)

	out = FilterUsers(users, UserQuery{Text: "dupont", CompanyID: "c3"})
	assert.Empty(t, out)
}

func TestFilterProfiles(t *testing.T) {
	profiles := []entities.CollaboratorProfile{
		{ID: "1", Nom: "Dupont", Prenom: "Jean", Email: "jean.dupont@techcorp.fr", Filiale: "TechCorp SAS"},
		{ID: "2", Nom: "Bernard", Prenom: "Pierre", Email: "pierre.bernard@innosolutions.fr", Filiale: "InnoSolutions"},
	}

	out := FilterProfiles(profiles, UserQuery{Text: "pierre"})
	assert.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
}

func TestHasEquipment(t *testing.T) {
	assert.True(t, HasEquipment(searchFixture, "u1"))
	assert.False(t, HasEquipment(searchFixture, "u2"))
}
