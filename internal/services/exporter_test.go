package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"handover-system/internal/entities"
	"handover-system/internal/repositories"
	"handover-system/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newExportFixture(t *testing.T) (*ExportService, *repositories.Store) {
	t.Helper()
	store := repositories.NewStore(nil)
	equipment := repositories.NewEquipmentRepository(store)
	users := repositories.NewUserRepository(store)
	companies := repositories.NewCompanyRepository(store)
	collaborators := repositories.NewCollaboratorRepository(store)
	handovers := repositories.NewHandoverRepository(store)

	assigned := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	store.Seed(repositories.SeedData{
		Companies: []entities.Company{
			{ID: "c1", Name: "TechCorp SAS"},
		},
		Users: []entities.User{
			{ID: "u1", Name: "Jean Dupont", Email: "jean@techcorp.fr", CompanyID: "c1"},
		},
		Equipment: []entities.Equipment{
			{ID: "e1", Name: "MacBook Pro", SerialNumber: "MBP-001", Category: "Ordinateur", Status: entities.EquipmentAssigned, AssignedTo: "u1", CompanyID: "c1", AssignedDate: utils.TimePtr(assigned)},
			{ID: "e2", Name: "Dell XPS, 15 pouces", SerialNumber: "XPS-001", Category: "Ordinateur", Status: entities.EquipmentAvailable},
		},
		Handovers: []entities.Handover{
			{ID: "h1", EquipmentID: "e1", UserID: "u1", CompanyID: "c1", Date: assigned, Type: entities.HandoverAssignment, Notes: "Nouveau collaborateur"},
			{ID: "h2", EquipmentID: "gone", UserID: "gone", Date: assigned.AddDate(0, 1, 0), Type: entities.HandoverReturn},
		},
	})

	return NewExportService(equipment, users, companies, collaborators, handovers), store
}

func TestInventoryCSVHeaderAndRows(t *testing.T) {
	service, _ := newExportFixture(t)

	csv := service.InventoryCSV(context.Background())
	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Serial Number,Category,Description,Status,Assigned To,Company", lines[0])
	assert.Contains(t, csv, "MacBook Pro,MBP-001,Ordinateur,,assigned,Jean Dupont,TechCorp SAS")
}

func TestInventoryCSVStripsDelimiterFromFields(t *testing.T) {
	service, _ := newExportFixture(t)

	csv := service.InventoryCSV(context.Background())
	assert.Contains(t, csv, "Dell XPS  15 pouces,XPS-001")
	assert.NotContains(t, csv, "Dell XPS, 15 pouces")
}

func TestInventoryCSVRoundTripsThroughImport(t *testing.T) {
	service, _ := newExportFixture(t)
	csv := service.InventoryCSV(context.Background())

	freshStore := repositories.NewStore(nil)
	freshRepo := repositories.NewEquipmentRepository(freshStore)
	importer := NewImportService(freshRepo, zap.NewNop())

	result, err := importer.ImportCSV(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	// status and assignment are outside the import schema
	reimported, err := freshRepo.FindBySerial(context.Background(), "MBP-001")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentAvailable, reimported.Status)
	assert.Empty(t, reimported.AssignedTo)
}

func TestCompanyEquipmentCSVFiltersByCompany(t *testing.T) {
	service, _ := newExportFixture(t)

	csv, err := service.CompanyEquipmentCSV(context.Background(), "c1")
	require.NoError(t, err)
	assert.Contains(t, csv, "MBP-001")
	assert.NotContains(t, csv, "XPS-001")
}

func TestCompanyEquipmentCSVUnknownCompany(t *testing.T) {
	service, _ := newExportFixture(t)

	_, err := service.CompanyEquipmentCSV(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestUserEquipmentCSV(t *testing.T) {
	service, _ := newExportFixture(t)

	csv, err := service.UserEquipmentCSV(context.Background(), "u1")
	require.NoError(t, err)
	assert.Contains(t, csv, "MBP-001")
	assert.NotContains(t, csv, "XPS-001")
}

func TestHandoverHistoryCSVPlaceholdersForVanishedRefs(t *testing.T) {
	service, _ := newExportFixture(t)

	csv := service.HandoverHistoryCSV(context.Background())
	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Type,Equipment,User,Company,Notes", lines[0])
	assert.Contains(t, csv, "2024-01-15,assignment,MacBook Pro,Jean Dupont,TechCorp SAS,Nouveau collaborateur")
	assert.Contains(t, csv, "2024-02-15,return,-,-,-,")
}

func TestInventoryReportShapesRowsForSpreadsheet(t *testing.T) {
	service, _ := newExportFixture(t)

	header, rows := service.InventoryReport(context.Background())
	assert.Equal(t, []string{"Name", "Serial Number", "Category", "Description", "Status", "Assigned To", "Company"}, header)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Len(t, row, len(header))
	}
}
