package application

import (
	"fmt"

	"github.com/beanthere/beanthere/internal/coffee/domain"
	"github.com/beanthere/beanthere/internal/log"
)

type seedDrink struct {
	bean    string
	grams   float64
	price   float64
	rating  int
	notes   string
	flavors []string
}

// SeedSampleData loads a starter inventory of beans plus a few logged drinks
// so reports have something to show. It is a no-op when any bean already
// exists, so running it twice is safe. Returns whether data was written.
func (s *CoffeeService) SeedSampleData() (bool, error) {
	count, err := s.repo.CountBeans()
	if err != nil {
		return false, err
	}
	if count > 0 {
		log.Debug(log.CatCoffee, "Seed skipped, beans already present", "count", count)
		return false, nil
	}

	beans := []*domain.Bean{
		{Name: "Colombia Supremo", Origin: "Colombia", GramsInStock: 500},
		{Name: "Ethiopia Sidamo", Origin: "Ethiopia", GramsInStock: 300},
		{Name: "Kenya AA", Origin: "Kenya", GramsInStock: 400},
		{Name: "Guatemala Antigua", Origin: "Guatemala", GramsInStock: 350},
		{Name: "Sumatra Mandheling", Origin: "Indonesia", GramsInStock: 450},
		{Name: "Brazil Santos", Origin: "Brazil", GramsInStock: 600},
		{Name: "Costa Rica Tarrazu", Origin: "Costa Rica", GramsInStock: 320},
	}
	for _, b := range beans {
		b.Roaster = s.defaults.Roaster
		b.CostPerKg = s.defaults.CostPerKg
		if err := s.repo.SaveBean(b); err != nil {
			return false, fmt.Errorf("seeding bean %s: %w", b.Name, err)
		}
	}

	// Logged through LogDrink so stock deduction and flavor creation take
	// the same path as real sales.
	drinks := []seedDrink{
		{bean: "Colombia Supremo", grams: 18, price: 4.5, rating: 5, notes: "Smooth & nutty", flavors: []string{"Chocolate", "Berry"}},
		{bean: "Ethiopia Sidamo", grams: 20, price: 5.0, rating: 4, notes: "Bright acidity", flavors: []string{"Citrus", "Floral"}},
		{bean: "Guatemala Antigua", grams: 22, price: 5.5, rating: 5, notes: "Rich and balanced", flavors: []string{"Nutty", "Caramel"}},
	}
	for _, d := range drinks {
		_, err := s.LogDrink(LogDrinkParams{
			BeanName:    d.bean,
			Grams:       d.grams,
			Price:       d.price,
			Rating:      d.rating,
			Notes:       d.notes,
			FlavorNames: d.flavors,
		})
		if err != nil {
			return false, fmt.Errorf("seeding drink for %s: %w", d.bean, err)
		}
	}

	log.Info(log.CatCoffee, "Seeded sample data", "beans", len(beans), "drinks", len(drinks))
	return true, nil
}
