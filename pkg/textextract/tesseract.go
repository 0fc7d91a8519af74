package textextract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"
)

// TesseractExtractor shells out to the tesseract binary, reading the
// image from stdin and the recognized text from stdout. The command runs
// under the caller's context, so cancelling the scan kills the process.
type TesseractExtractor struct {
	binary string
	logger *zap.Logger
}

func NewTesseractExtractor(logger *zap.Logger) *TesseractExtractor {
	return &TesseractExtractor{binary: "tesseract", logger: logger}
}

func (e *TesseractExtractor) ExtractText(ctx context.Context, image []byte, progress func(int)) (string, error) {
	if progress == nil {
		progress = func(int) {}
	}
	progress(0)

	cmd := exec.CommandContext(ctx, e.binary, "stdin", "stdout")
	cmd.Stdin = bytes.NewReader(image)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		e.logger.Error("tesseract failed", zap.String("stderr", stderr.String()), zap.Error(err))
		return "", fmt.Errorf("tesseract: %w", err)
	}

	progress(100)
	return out.String(), nil
}
