package pdfparser

import (
	"fmt"
	"os"
	"os/exec"
)

// TextExtractor defines the interface for extracting flat text from a PDF
// document. The parser treats extraction as an opaque blocking dependency:
// its failure is the only hard error this stage can produce.
type TextExtractor interface {
	// ExtractText extracts text content from a PDF file at the given path.
	ExtractText(pdfPath string) (string, error)
}

// PdftotextExtractor implements TextExtractor by shelling out to the
// pdftotext command. This is the production implementation and requires
// pdftotext (poppler-utils) to be installed.
type PdftotextExtractor struct{}

// NewPdftotextExtractor creates a new PdftotextExtractor instance.
func NewPdftotextExtractor() *PdftotextExtractor {
	return &PdftotextExtractor{}
}

// ExtractText extracts text from a PDF file using the pdftotext command.
func (e *PdftotextExtractor) ExtractText(pdfPath string) (string, error) {
	outFile := pdfPath + ".txt"

	cmd := exec.Command("pdftotext", "-layout", pdfPath, outFile) // #nosec G204 -- fixed binary, user-provided path
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running pdftotext: %w", err)
	}

	output, err := os.ReadFile(outFile) // #nosec G304 -- temp file derived from input path
	if err != nil {
		return "", fmt.Errorf("error reading extracted text: %w", err)
	}

	_ = os.Remove(outFile)

	return string(output), nil
}

// MockExtractor implements TextExtractor for testing purposes. It returns
// predefined text or an error instead of invoking pdftotext.
type MockExtractor struct {
	MockText string
	MockErr  error
}

// NewMockExtractor creates a new MockExtractor with the given mock data.
func NewMockExtractor(mockText string, mockErr error) *MockExtractor {
	return &MockExtractor{MockText: mockText, MockErr: mockErr}
}

// ExtractText returns the predefined mock text or error.
func (e *MockExtractor) ExtractText(pdfPath string) (string, error) {
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}
