package application_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/beanthere/beanthere/internal/coffee/application"
	"github.com/beanthere/beanthere/internal/coffee/domain"
	"github.com/beanthere/beanthere/internal/infrastructure/sqlite"
)

// newTestService wires a CoffeeService to a fresh migrated database in a
// temp directory.
func newTestService(t testing.TB) *application.CoffeeService {
	t.Helper()
	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "beanthere.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return application.NewCoffeeService(db.CoffeeRepository(), application.BeanDefaults{
		Roaster:   "Local Roaster",
		CostPerKg: 90,
	})
}

func TestAddOrRestockBean_CreatesWithDefaults(t *testing.T) {
	svc := newTestService(t)

	bean, restocked, err := svc.AddOrRestockBean("Kenya AA", "Kenya", 400)
	require.NoError(t, err)
	require.False(t, restocked)
	require.Equal(t, "Local Roaster", bean.Roaster)
	require.InDelta(t, 90, bean.CostPerKg, 1e-9)
	require.InDelta(t, 400, bean.GramsInStock, 1e-9)
}

func TestAddOrRestockBean_RestockAccumulates(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.AddOrRestockBean("Kenya AA", "Kenya", 100)
	require.NoError(t, err)

	bean, restocked, err := svc.AddOrRestockBean("Kenya AA", "", 250)
	require.NoError(t, err)
	require.True(t, restocked)
	require.InDelta(t, 350, bean.GramsInStock, 1e-9)
}

func TestAddOrRestockBean_NegativeCorrection(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.AddOrRestockBean("Kenya AA", "Kenya", 100)
	require.NoError(t, err)

	// Correcting down within the available stock is allowed.
	bean, _, err := svc.AddOrRestockBean("Kenya AA", "", -40)
	require.NoError(t, err)
	require.InDelta(t, 60, bean.GramsInStock, 1e-9)

	// A correction below zero fails and changes nothing.
	_, _, err = svc.AddOrRestockBean("Kenya AA", "", -100)
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)

	beans, err := svc.Inventory()
	require.NoError(t, err)
	require.InDelta(t, 60, beans[0].GramsInStock, 1e-9)
}

func TestAddOrRestockBean_Validation(t *testing.T) {
	svc := newTestService(t)

	var validation *domain.ValidationError

	_, _, err := svc.AddOrRestockBean("  ", "Kenya", 100)
	require.ErrorAs(t, err, &validation)

	_, _, err = svc.AddOrRestockBean("Kenya AA", "", 100)
	require.ErrorAs(t, err, &validation, "origin is required for a new bean")

	_, _, err = svc.AddOrRestockBean("Kenya AA", "Kenya", -5)
	require.ErrorAs(t, err, &validation, "a new bean cannot start with negative stock")
}

func TestLogDrink_DeductsStockAndNormalizesFlavors(t *testing.T) {
	svc := newTestService(t)
	_, _, err := svc.AddOrRestockBean("Kenya AA", "Kenya", 400)
	require.NoError(t, err)

	drink, err := svc.LogDrink(application.LogDrinkParams{
		BeanName:    "Kenya AA",
		Grams:       20,
		Price:       5.0,
		Rating:      5,
		Notes:       "bright",
		FlavorNames: []string{" Citrus ", "", "Citrus"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, drink.GUID)
	require.Equal(t, 5, drink.Rating)
	require.Len(t, drink.Flavors, 1)
	require.Equal(t, "Citrus", drink.Flavors[0].Name)
	require.InDelta(t, 380, drink.Bean.GramsInStock, 1e-9)
}

func TestLogDrink_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name   string
		params application.LogDrinkParams
	}{
		{"zero grams", application.LogDrinkParams{BeanName: "Kenya AA", Grams: 0, Price: 5, Rating: 5}},
		{"negative price", application.LogDrinkParams{BeanName: "Kenya AA", Grams: 20, Price: -1, Rating: 5}},
		{"rating too low", application.LogDrinkParams{BeanName: "Kenya AA", Grams: 20, Price: 5, Rating: 0}},
		{"rating too high", application.LogDrinkParams{BeanName: "Kenya AA", Grams: 20, Price: 5, Rating: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.LogDrink(tt.params)
			var validation *domain.ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestLogDrink_BeanNotFound_NoDrinkCreated(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.LogDrink(application.LogDrinkParams{
		BeanName: "Ghost Roast", Grams: 20, Price: 5, Rating: 5,
	})
	var notFound *domain.BeanNotFoundError
	require.ErrorAs(t, err, &notFound)

	report, err := svc.DailyReport(time.Now())
	require.NoError(t, err)
	require.Nil(t, report)
}

func TestLogDrink_InsufficientStock_StateUnchanged(t *testing.T) {
	svc := newTestService(t)
	_, _, err := svc.AddOrRestockBean("Kenya AA", "Kenya", 15)
	require.NoError(t, err)

	_, err = svc.LogDrink(application.LogDrinkParams{
		BeanName: "Kenya AA", Grams: 20, Price: 5, Rating: 5,
	})
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)

	beans, err := svc.Inventory()
	require.NoError(t, err)
	require.InDelta(t, 15, beans[0].GramsInStock, 1e-9)

	report, err := svc.DailyReport(time.Now())
	require.NoError(t, err)
	require.Nil(t, report)
}

func TestDailyReport_AggregatesTodaysDrinks(t *testing.T) {
	svc := newTestService(t)
	_, _, err := svc.AddOrRestockBean("Colombia Supremo", "Colombia", 500)
	require.NoError(t, err)

	_, err = svc.LogDrink(application.LogDrinkParams{
		BeanName: "Colombia Supremo", Grams: 18, Price: 4.50, Rating: 5,
	})
	require.NoError(t, err)
	_, err = svc.LogDrink(application.LogDrinkParams{
		BeanName: "Colombia Supremo", Grams: 22, Price: 5.50, Rating: 4,
	})
	require.NoError(t, err)

	report, err := svc.DailyReport(time.Now())
	require.NoError(t, err)
	require.NotNil(t, report)
	require.Equal(t, 2, report.DrinkCount)
	require.InDelta(t, 10.00, report.Revenue, 1e-9)
	require.InDelta(t, 3.60, report.Cost, 1e-9)
	require.InDelta(t, 6.40, report.Profit, 1e-9)
	require.Equal(t, "Colombia Supremo", report.TopBean)
}

func TestSeedSampleData(t *testing.T) {
	svc := newTestService(t)

	seeded, err := svc.SeedSampleData()
	require.NoError(t, err)
	require.True(t, seeded)

	beans, err := svc.Inventory()
	require.NoError(t, err)
	require.Len(t, beans, 7)

	// Seed drinks deduct stock like real sales.
	for _, b := range beans {
		if b.Name == "Colombia Supremo" {
			require.InDelta(t, 482, b.GramsInStock, 1e-9)
		}
	}

	// Second run is a no-op.
	seeded, err = svc.SeedSampleData()
	require.NoError(t, err)
	require.False(t, seeded)

	beans, err = svc.Inventory()
	require.NoError(t, err)
	require.Len(t, beans, 7)
}

// Restocking any sequence of amounts leaves the stock equal to the sum of
// all amounts.
func TestAddOrRestockBean_AccumulationProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		svc := newTestService(t)

		initial := rapid.Float64Range(0, 1000).Draw(rt, "initial")
		_, _, err := svc.AddOrRestockBean("Kenya AA", "Kenya", initial)
		require.NoError(t, err)

		total := initial
		n := rapid.IntRange(0, 6).Draw(rt, "restocks")
		for i := 0; i < n; i++ {
			grams := rapid.Float64Range(0, 500).Draw(rt, "grams")
			_, _, err := svc.AddOrRestockBean("Kenya AA", "", grams)
			require.NoError(t, err)
			total += grams
		}

		beans, err := svc.Inventory()
		require.NoError(t, err)
		require.Len(t, beans, 1)
		require.InDelta(t, total, beans[0].GramsInStock, 1e-6)
	})
}

// LogDrink never drives the stock negative: a pour either succeeds and
// deducts exactly its grams, or fails with InsufficientStockError and
// changes nothing.
func TestLogDrink_StockNeverNegativeProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		svc := newTestService(t)

		stock := rapid.Float64Range(0, 100).Draw(rt, "stock")
		_, _, err := svc.AddOrRestockBean("Kenya AA", "Kenya", stock)
		require.NoError(t, err)

		pours := rapid.SliceOfN(rapid.Float64Range(1, 50), 0, 8).Draw(rt, "pours")
		for _, grams := range pours {
			_, err := svc.LogDrink(application.LogDrinkParams{
				BeanName: "Kenya AA", Grams: grams, Price: 4.5, Rating: 4,
			})
			if err == nil {
				stock -= grams
				continue
			}
			var insufficient *domain.InsufficientStockError
			require.ErrorAs(t, err, &insufficient)
		}

		beans, err := svc.Inventory()
		require.NoError(t, err)
		require.InDelta(t, stock, beans[0].GramsInStock, 1e-6)
		require.GreaterOrEqual(t, beans[0].GramsInStock, 0.0)
	})
}
