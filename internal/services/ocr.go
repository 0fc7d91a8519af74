package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"handover-system/internal/dto"
	"handover-system/internal/repositories"
	"handover-system/pkg/apperrors"

	"go.uber.org/zap"
)

// TextExtractor is the external OCR collaborator. It reads an image,
// reports progress from 0 to 100 and returns the raw recognized text.
// Implementations must honor context cancellation.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte, progress func(int)) (string, error)
}

// serialPattern matches candidate serial numbers inside OCR output:
// uppercase alphanumeric runs with optional dashes, at least 4 characters.
var serialPattern = regexp.MustCompile(`[A-Z0-9][-A-Z0-9]{3,}`)

// ExtractSerialCandidates pulls candidate serial numbers out of raw OCR
// text. The text is uppercased first so recognition case does not matter.
func ExtractSerialCandidates(text string) []string {
	matches := serialPattern.FindAllString(strings.ToUpper(text), -1)
	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// NormalizeFallback is used when no token matches: collapse whitespace and
// truncate to 100 characters. Truncation counts runes, OCR output is often
// accented French and must not be cut mid-character.
func NormalizeFallback(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if runes := []rune(normalized); len(runes) > 100 {
		return string(runes[:100])
	}
	return normalized
}

type OCRServiceInterface interface {
	ScanSerial(ctx context.Context, image []byte, progress func(int)) (dto.OCRSearchResultDTO, error)
}

// OCRService runs serial-number recognition over a photographed label and
// looks the result up in the store. The scan is cancellable: cancelling the
// context aborts the extraction instead of letting an orphaned callback
// fire later.
type OCRService struct {
	extractor           TextExtractor
	equipmentRepository repositories.EquipmentRepositoryInterface
	logger              *zap.Logger
}

func NewOCRService(extractor TextExtractor, equipmentRepository repositories.EquipmentRepositoryInterface, logger *zap.Logger) *OCRService {
	return &OCRService{
		extractor:           extractor,
		equipmentRepository: equipmentRepository,
		logger:              logger,
	}
}

type extraction struct {
	text string
	err  error
}

func (s *OCRService) ScanSerial(ctx context.Context, image []byte, progress func(int)) (dto.OCRSearchResultDTO, error) {
	if len(image) == 0 {
		return dto.OCRSearchResultDTO{}, apperrors.NewValidationError("an image is required")
	}
	if progress == nil {
		progress = func(int) {}
	}

	done := make(chan extraction, 1)
	go func() {
		text, err := s.extractor.ExtractText(ctx, image, progress)
		done <- extraction{text: text, err: err}
	}()

	var text string
	select {
	case <-ctx.Done():
		s.logger.Debug("OCR scan cancelled", zap.Error(ctx.Err()))
		return dto.OCRSearchResultDTO{}, ctx.Err()
	case result := <-done:
		if result.err != nil {
			s.logger.Error("OCR extraction failed", zap.Error(result.err))
			return dto.OCRSearchResultDTO{}, apperrors.NewHttpError(502, "Text extraction failed", result.err, nil)
		}
		text = result.text
	}

	result := dto.OCRSearchResultDTO{
		Candidates: ExtractSerialCandidates(text),
		ScannedAt:  time.Now(),
	}
	if len(result.Candidates) == 0 {
		result.Fallback = NormalizeFallback(text)
	}

	for _, candidate := range result.Candidates {
		if e, err := s.equipmentRepository.FindBySerial(ctx, candidate); err == nil {
			result.MatchedID = e.ID
			break
		}
	}

	return result, nil
}
