package services

import (
	"context"
	"strings"

	"handover-system/internal/entities"
	"handover-system/internal/repositories"
)

type ExportServiceInterface interface {
	InventoryCSV(ctx context.Context) string
	CompanyEquipmentCSV(ctx context.Context, companyID string) (string, error)
	UserEquipmentCSV(ctx context.Context, userID string) (string, error)
	HandoverHistoryCSV(ctx context.Context) string
	InventoryReport(ctx context.Context) ([]string, [][]interface{})
}

// ExportService renders the downloadable reports. CSV exports are
// comma-joined; the first four inventory columns (name, serial, category,
// description) keep the import column order so an export can be
// re-imported. Status and assignment are outside the CSV schema and are
// lost on a round trip.
type ExportService struct {
	equipmentRepository    repositories.EquipmentRepositoryInterface
	userRepository         repositories.UserRepositoryInterface
	companyRepository      repositories.CompanyRepositoryInterface
	collaboratorRepository repositories.CollaboratorRepositoryInterface
	handoverRepository     repositories.HandoverRepositoryInterface
}

func NewExportService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	userRepository repositories.UserRepositoryInterface,
	companyRepository repositories.CompanyRepositoryInterface,
	collaboratorRepository repositories.CollaboratorRepositoryInterface,
	handoverRepository repositories.HandoverRepositoryInterface,
) *ExportService {
	return &ExportService{
		equipmentRepository:    equipmentRepository,
		userRepository:         userRepository,
		companyRepository:      companyRepository,
		collaboratorRepository: collaboratorRepository,
		handoverRepository:     handoverRepository,
	}
}

var inventoryHeader = []string{"Name", "Serial Number", "Category", "Description", "Status", "Assigned To", "Company"}

func (s *ExportService) InventoryCSV(ctx context.Context) string {
	lines := []string{joinCSV(inventoryHeader)}
	for _, e := range s.equipmentRepository.GetEquipment(ctx) {
		lines = append(lines, joinCSV(s.equipmentRow(ctx, e)))
	}
	return strings.Join(lines, "\n")
}

func (s *ExportService) CompanyEquipmentCSV(ctx context.Context, companyID string) (string, error) {
	if _, err := s.companyRepository.FindCompany(ctx, companyID); err != nil {
		return "", err
	}

	lines := []string{joinCSV(inventoryHeader)}
	for _, e := range s.equipmentRepository.GetEquipment(ctx) {
		if e.CompanyID == companyID {
			lines = append(lines, joinCSV(s.equipmentRow(ctx, e)))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func (s *ExportService) UserEquipmentCSV(ctx context.Context, userID string) (string, error) {
	if _, err := s.userRepository.FindUser(ctx, userID); err != nil {
		if _, perr := s.collaboratorRepository.FindProfile(ctx, userID); perr != nil {
			return "", err
		}
	}

	lines := []string{joinCSV(inventoryHeader)}
	for _, e := range s.equipmentRepository.ListByAssignee(ctx, userID) {
		lines = append(lines, joinCSV(s.equipmentRow(ctx, e)))
	}
	return strings.Join(lines, "\n"), nil
}

func (s *ExportService) HandoverHistoryCSV(ctx context.Context) string {
	lines := []string{joinCSV([]string{"Date", "Type", "Equipment", "User", "Company", "Notes"})}
	for _, h := range s.handoverRepository.GetHandovers(ctx) {
		equipmentName := "-"
		if e, err := s.equipmentRepository.FindEquipment(ctx, h.EquipmentID); err == nil {
			equipmentName = e.Name
		}
		userName := s.assigneeName(ctx, h.UserID)
		companyName := "-"
		if c, err := s.companyRepository.FindCompany(ctx, h.CompanyID); err == nil {
			companyName = c.Name
		}
		lines = append(lines, joinCSV([]string{
			h.Date.Format("2006-01-02"),
			string(h.Type),
			equipmentName,
			userName,
			companyName,
			h.Notes,
		}))
	}
	return strings.Join(lines, "\n")
}

// InventoryReport returns header and rows for the xlsx rendering.
func (s *ExportService) InventoryReport(ctx context.Context) ([]string, [][]interface{}) {
	var rows [][]interface{}
	for _, e := range s.equipmentRepository.GetEquipment(ctx) {
		row := s.equipmentRow(ctx, e)
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		rows = append(rows, cells)
	}
	return inventoryHeader, rows
}

func (s *ExportService) equipmentRow(ctx context.Context, e entities.Equipment) []string {
	assignee := ""
	if e.AssignedTo != "" {
		assignee = s.assigneeName(ctx, e.AssignedTo)
	}
	companyName := ""
	if e.CompanyID != "" {
		if c, err := s.companyRepository.FindCompany(ctx, e.CompanyID); err == nil {
			companyName = c.Name
		}
	}
	return []string{e.Name, e.SerialNumber, e.Category, e.Description, string(e.Status), assignee, companyName}
}

// Vanished assignees render as a placeholder dash instead of failing the
// whole report.
func (s *ExportService) assigneeName(ctx context.Context, id string) string {
	if u, err := s.userRepository.FindUser(ctx, id); err == nil {
		return u.Name
	}
	if p, err := s.collaboratorRepository.FindProfile(ctx, id); err == nil {
		return p.FullName()
	}
	return "-"
}

// joinCSV comma-joins the values, stripping the delimiter and line breaks
// from each field.
func joinCSV(values []string) string {
	cleaned := make([]string, len(values))
	for i, v := range values {
		v = strings.ReplaceAll(v, ",", " ")
		v = strings.ReplaceAll(v, "\n", " ")
		cleaned[i] = strings.TrimSpace(v)
	}
	return strings.Join(cleaned, ",")
}
