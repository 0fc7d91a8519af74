package services

import (
	"context"
	"strings"
	"testing"

	"handover-system/internal/entities"
	"handover-system/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newImportFixture(t *testing.T) (*ImportService, *repositories.EquipmentRepository) {
	t.Helper()
	store := repositories.NewStore(nil)
	repo := repositories.NewEquipmentRepository(store)
	return NewImportService(repo, zap.NewNop()), repo
}

func TestImportCSVWithAliasedHeaders(t *testing.T) {
	service, repo := newImportFixture(t)

	csv := "Nom;Numéro de série;Catégorie;Description\n" +
		"MacBook Pro;MBP-001;Ordinateur;14 pouces\n" +
		"Dell XPS;XPS-001;Ordinateur;\n"

	result, err := service.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)

	imported, err := repo.FindBySerial(context.Background(), "MBP-001")
	require.NoError(t, err)
	assert.Equal(t, "MacBook Pro", imported.Name)
	assert.Equal(t, "14 pouces", imported.Description)
	assert.Equal(t, entities.EquipmentAvailable, imported.Status)
}

func TestImportCSVPositionalFallback(t *testing.T) {
	service, _ := newImportFixture(t)

	csv := "colonne1;colonne2;colonne3;colonne4\n" +
		"iPhone 15;IPH-001;Téléphone;128 Go\n"

	result, err := service.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestImportCSVSkipsRowsMissingNameOrSerial(t *testing.T) {
	service, _ := newImportFixture(t)

	csv := "name;serial;category\n" +
		"MacBook Pro;MBP-001;Ordinateur\n" +
		";XPS-001;Ordinateur\n" +
		"iPad Pro\n"

	result, err := service.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "line 3")
	assert.Contains(t, result.Errors[1], "line 4")
}

func TestImportCSVSkipsDuplicateSerialsInFile(t *testing.T) {
	service, _ := newImportFixture(t)

	csv := "name;serial;category\n" +
		"MacBook Pro;MBP-001;Ordinateur\n" +
		"MacBook Pro bis;mbp-001;Ordinateur\n"

	result, err := service.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
}

func TestImportCSVSkipsSerialsAlreadyInStore(t *testing.T) {
	service, repo := newImportFixture(t)
	require.NoError(t, repo.CreateEquipment(context.Background(), entities.Equipment{
		ID: "e1", Name: "Existing", SerialNumber: "MBP-001", Category: "Ordinateur", Status: entities.EquipmentAvailable,
	}))

	csv := "name;serial;category\nMacBook Pro;MBP-001;Ordinateur\n"

	result, err := service.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 1, result.Skipped)
}

func TestImportCSVAcceptsCommaDelimitedExports(t *testing.T) {
	service, _ := newImportFixture(t)

	csv := "Name,Serial Number,Category,Description\n" +
		"MacBook Pro,MBP-001,Ordinateur,14 pouces\n"

	result, err := service.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
}

func TestImportCSVEmptyFile(t *testing.T) {
	service, _ := newImportFixture(t)

	_, err := service.ImportCSV(context.Background(), strings.NewReader(""))
	assert.Error(t, err)
}
