package sqlite

import (
	"time"

	"github.com/beanthere/beanthere/internal/coffee/domain"
)

// BeanModel represents a row of the beans table. Fields map directly to SQL
// columns; process is nullable.
type BeanModel struct {
	ID           int64
	Name         string
	Origin       string
	Roaster      string
	Process      *string
	CostPerKg    float64
	GramsInStock float64
}

// toBeanModel converts a domain Bean to its database row form.
func toBeanModel(b *domain.Bean) *BeanModel {
	m := &BeanModel{
		ID:           b.ID,
		Name:         b.Name,
		Origin:       b.Origin,
		Roaster:      b.Roaster,
		CostPerKg:    b.CostPerKg,
		GramsInStock: b.GramsInStock,
	}
	if b.Process != "" {
		process := b.Process
		m.Process = &process
	}
	return m
}

// toDomain converts a database BeanModel to a domain Bean.
func (m *BeanModel) toDomain() *domain.Bean {
	var process string
	if m.Process != nil {
		process = *m.Process
	}
	return &domain.Bean{
		ID:           m.ID,
		Name:         m.Name,
		Origin:       m.Origin,
		Roaster:      m.Roaster,
		Process:      process,
		CostPerKg:    m.CostPerKg,
		GramsInStock: m.GramsInStock,
	}
}

// DrinkModel represents a row of the drinks table with its joined bean
// columns. CreatedAt is a Unix timestamp.
type DrinkModel struct {
	ID        int64
	GUID      string
	BeanID    int64
	GramsUsed float64
	PricePaid float64
	Rating    int64
	Notes     string
	CreatedAt int64

	Bean BeanModel
}

// toDomain converts a database DrinkModel to a domain Drink. Flavors are
// attached separately by the repository.
func (m *DrinkModel) toDomain() *domain.Drink {
	return &domain.Drink{
		ID:        m.ID,
		GUID:      m.GUID,
		BeanID:    m.BeanID,
		GramsUsed: m.GramsUsed,
		PricePaid: m.PricePaid,
		Rating:    int(m.Rating),
		Notes:     m.Notes,
		CreatedAt: time.Unix(m.CreatedAt, 0),
		Bean:      m.Bean.toDomain(),
	}
}
