package services

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"handover-system/internal/dto"
	"handover-system/internal/entities"
	"handover-system/internal/repositories"
	"handover-system/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ImportServiceInterface interface {
	ImportCSV(ctx context.Context, r io.Reader) (dto.ImportResultDTO, error)
}

// ImportService loads equipment from semicolon-delimited CSV files. A
// header row is required; known header aliases are matched
// case-insensitively and unrecognized headers fall back to positional
// columns 0-3 (name, serial, category, description).
type ImportService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewImportService(equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) *ImportService {
	return &ImportService{equipmentRepository: equipmentRepository, logger: logger}
}

var headerAliases = map[string][]string{
	"name":        {"name", "nom"},
	"serial":      {"serial", "serialnumber", "serial number", "numéro de série", "numero de serie"},
	"category":    {"category", "catégorie", "categorie"},
	"description": {"description"},
}

func (s *ImportService) ImportCSV(ctx context.Context, r io.Reader) (dto.ImportResultDTO, error) {
	buffered := bufio.NewReader(r)
	delimiter, err := detectDelimiter(buffered)
	if err != nil {
		return dto.ImportResultDTO{}, apperrors.NewValidationError("the CSV file is empty")
	}

	reader := csv.NewReader(buffered)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return dto.ImportResultDTO{}, apperrors.NewValidationError("the CSV file could not be parsed: %v", err)
	}
	if len(rows) < 1 {
		return dto.ImportResultDTO{}, apperrors.NewValidationError("the CSV file has no header row")
	}

	nameIdx, serialIdx, categoryIdx, descriptionIdx := resolveColumns(rows[0])

	result := dto.ImportResultDTO{}
	seenSerials := make(map[string]bool)

	for i, row := range rows[1:] {
		lineNum := i + 2

		name := safeGet(row, nameIdx)
		serial := safeGet(row, serialIdx)
		if name == "" || serial == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: name and serial number are required", lineNum))
			continue
		}

		if seenSerials[strings.ToLower(serial)] {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: duplicate serial %q in file", lineNum, serial))
			continue
		}
		seenSerials[strings.ToLower(serial)] = true

		equipment := entities.Equipment{
			ID:           uuid.NewString(),
			Name:         name,
			SerialNumber: serial,
			Category:     safeGet(row, categoryIdx),
			Description:  safeGet(row, descriptionIdx),
			Status:       entities.EquipmentAvailable,
		}

		if err := s.equipmentRepository.CreateEquipment(ctx, equipment); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", lineNum, err))
			continue
		}
		result.Imported++
	}

	s.logger.Info("CSV import finished",
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// detectDelimiter peeks at the header line. Import files are
// semicolon-delimited; comma is accepted so that our own exports can be
// re-imported.
func detectDelimiter(r *bufio.Reader) (rune, error) {
	peeked, err := r.Peek(4096)
	if err != nil && len(peeked) == 0 {
		return 0, err
	}
	firstLine := string(peeked)
	if idx := strings.IndexByte(firstLine, '\n'); idx >= 0 {
		firstLine = firstLine[:idx]
	}
	if !strings.ContainsRune(firstLine, ';') && strings.ContainsRune(firstLine, ',') {
		return ',', nil
	}
	return ';', nil
}

// resolveColumns maps header names to column indices, falling back to
// positions 0-3 for any column whose alias is not present.
func resolveColumns(header []string) (nameIdx, serialIdx, categoryIdx, descriptionIdx int) {
	nameIdx, serialIdx, categoryIdx, descriptionIdx = 0, 1, 2, 3

	find := func(key string) int {
		for idx, col := range header {
			normalized := strings.ToLower(strings.TrimSpace(col))
			for _, alias := range headerAliases[key] {
				if normalized == alias {
					return idx
				}
			}
		}
		return -1
	}

	if idx := find("name"); idx >= 0 {
		nameIdx = idx
	}
	if idx := find("serial"); idx >= 0 {
		serialIdx = idx
	}
	if idx := find("category"); idx >= 0 {
		categoryIdx = idx
	}
	if idx := find("description"); idx >= 0 {
		descriptionIdx = idx
	}
	return
}

func safeGet(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
