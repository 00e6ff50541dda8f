package domain

import "time"

// Rating bounds for a logged drink.
const (
	MinRating = 1
	MaxRating = 5
)

// Drink is one recorded sale event. It consumes grams of exactly one bean
// and is immutable once logged.
type Drink struct {
	ID        int64
	GUID      string
	BeanID    int64
	GramsUsed float64
	PricePaid float64
	Rating    int
	Notes     string
	CreatedAt time.Time

	// Bean and Flavors are resolved eagerly by the repository when drinks
	// are queried for reporting.
	Bean    *Bean
	Flavors []Flavor
}

// ValidRating reports whether rating is within the 1-5 scale.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// Cost returns the bean cost of this drink: grams used converted to
// kilograms times the bean's cost per kilogram. Returns 0 when the bean is
// not resolved.
func (d *Drink) Cost() float64 {
	if d.Bean == nil {
		return 0
	}
	return d.GramsUsed / 1000 * d.Bean.CostPerKg
}

// StartOfDay returns local midnight of the calendar date containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
