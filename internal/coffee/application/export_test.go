package application_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/beanthere/beanthere/internal/coffee/application"
)

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.Local)
	require.Equal(t, "beanthere_2026-08-29.csv", application.ExportFileName(now))
}

func TestExportDailyCSV_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	_, _, err := svc.AddOrRestockBean("Ethiopia Sidamo", "Ethiopia", 300)
	require.NoError(t, err)

	first, err := svc.LogDrink(application.LogDrinkParams{
		BeanName:    "Ethiopia Sidamo",
		Grams:       20,
		Price:       5.0,
		Rating:      4,
		Notes:       "Bright acidity",
		FlavorNames: []string{"Citrus", "Floral"},
	})
	require.NoError(t, err)
	_, err = svc.LogDrink(application.LogDrinkParams{
		BeanName: "Ethiopia Sidamo", Grams: 18, Price: 4.5, Rating: 5,
	})
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := svc.ExportDailyCSV(time.Now(), dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, application.ExportFileName(time.Now())), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per drink")
	require.Equal(t, application.CSVHeader, records[0])

	row := records[1]
	require.Equal(t, first.CreatedAt.Format("15:04"), row[0])
	require.Equal(t, "Ethiopia Sidamo", row[1])
	require.Equal(t, "Ethiopia", row[2])
	require.Equal(t, "20", row[3])
	require.Equal(t, "5", row[4])
	require.Equal(t, "4", row[5])
	require.Equal(t, "Bright acidity", row[6])
	require.Equal(t, "Citrus, Floral", row[7])
}

func TestExportDailyCSV_EmptyDayStillWritesHeader(t *testing.T) {
	svc := newTestService(t)

	dir := t.TempDir()
	path, err := svc.ExportDailyCSV(time.Now(), dir)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, application.CSVHeader, records[0])
}

func TestExportDailyCSV_OverwritesSameDay(t *testing.T) {
	svc := newTestService(t)
	_, _, err := svc.AddOrRestockBean("Brazil Santos", "Brazil", 600)
	require.NoError(t, err)

	dir := t.TempDir()
	_, err = svc.ExportDailyCSV(time.Now(), dir)
	require.NoError(t, err)

	_, err = svc.LogDrink(application.LogDrinkParams{
		BeanName: "Brazil Santos", Grams: 15, Price: 3.5, Rating: 4,
	})
	require.NoError(t, err)

	path, err := svc.ExportDailyCSV(time.Now(), dir)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "re-export replaces the earlier file")
}
