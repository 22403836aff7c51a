package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hasnatAfzal/LinkdinScrapper/internal/constants"
	"github.com/hasnatAfzal/LinkdinScrapper/internal/domain"
	"github.com/hasnatAfzal/LinkdinScrapper/pkg/errors"
	"go.uber.org/zap"
)

// utf8BOM lets spreadsheet tools detect the encoding of exported files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"Name", "Title", "Link", "Description", "Image"}

// WriteCSV writes the header row followed by one row per profile.
func WriteCSV(w io.Writer, profiles []*domain.Profile) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range profiles {
		row := []string{p.Name, p.Title, p.Link, p.Description, p.Image}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// CSVExporter writes profile sets to CSV files on disk.
type CSVExporter struct {
	outputDir string
	logger    *zap.Logger
}

func NewCSVExporter(outputDir string, logger *zap.Logger) *CSVExporter {
	if outputDir == "" {
		outputDir = "."
	}
	return &CSVExporter{
		outputDir: outputDir,
		logger:    logger,
	}
}

// DefaultFilename returns a timestamped export name, matching the
// LinkedIn_Profiles_20060102_150405.csv convention.
func (e *CSVExporter) DefaultFilename() string {
	stamp := time.Now().Format(constants.ExportConfig.TimestampLayout)
	return fmt.Sprintf("%s%s.csv", constants.ExportConfig.FilenamePrefix, stamp)
}

// Export writes the profiles to path, or to a timestamped file in the
// configured output directory when path is empty. It returns the path of
// the written file.
func (e *CSVExporter) Export(profiles []*domain.Profile, path string) (string, error) {
	if len(profiles) == 0 {
		return "", errors.NewValidationError("no profiles to export", "profiles", len(profiles))
	}

	if path == "" {
		path = filepath.Join(e.outputDir, e.DefaultFilename())
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.NewAppError("failed to create export directory",
				errors.CodeAppError, 500, map[string]any{"dir": dir}).WithCause(err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.NewAppError("failed to create export file",
			errors.CodeAppError, 500, map[string]any{"path": path}).WithCause(err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return "", err
	}
	if err := WriteCSV(f, profiles); err != nil {
		return "", err
	}

	e.logger.Info("Profiles exported",
		zap.String("path", path),
		zap.Int("count", len(profiles)))

	return path, nil
}
