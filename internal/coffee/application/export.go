package application

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/beanthere/beanthere/internal/coffee/domain"
	"github.com/beanthere/beanthere/internal/log"
)

// CSVHeader is the column header row of a daily export.
var CSVHeader = []string{"Time", "Bean", "Origin", "Grams", "Price", "Rating", "Notes", "Flavors"}

// ExportFileName returns the export file name for the given date,
// e.g. beanthere_2026-08-29.csv.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("beanthere_%s.csv", now.Format("2006-01-02"))
}

// ExportDailyCSV writes all drinks logged since local midnight of now to a
// CSV file in dir, overwriting any export from the same day. The header row
// is written even when no drinks exist. Returns the path of the written file.
func (s *CoffeeService) ExportDailyCSV(now time.Time, dir string) (path string, retErr error) {
	drinks, err := s.repo.DrinksSince(domain.StartOfDay(now))
	if err != nil {
		return "", err
	}

	path = filepath.Join(dir, ExportFileName(now))
	f, err := os.Create(path) //nolint:gosec // G304: path is built from the configured export directory
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("closing export file: %w", closeErr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		return "", fmt.Errorf("writing export header: %w", err)
	}
	for _, d := range drinks {
		if err := w.Write(exportRow(d)); err != nil {
			return "", fmt.Errorf("writing export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing export: %w", err)
	}

	log.Info(log.CatExport, "Exported daily CSV", "path", path, "drinks", len(drinks))
	return path, nil
}

// exportRow renders one drink as a CSV record. Flavors keep their stored
// association order.
func exportRow(d *domain.Drink) []string {
	flavorNames := make([]string, len(d.Flavors))
	for i, f := range d.Flavors {
		flavorNames[i] = f.Name
	}

	var beanName, origin string
	if d.Bean != nil {
		beanName = d.Bean.Name
		origin = d.Bean.Origin
	}

	return []string{
		d.CreatedAt.Format("15:04"),
		beanName,
		origin,
		strconv.FormatFloat(d.GramsUsed, 'f', -1, 64),
		strconv.FormatFloat(d.PricePaid, 'f', -1, 64),
		strconv.Itoa(d.Rating),
		d.Notes,
		strings.Join(flavorNames, ", "),
	}
}
