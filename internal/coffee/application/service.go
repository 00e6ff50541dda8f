package application

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/beanthere/beanthere/internal/coffee/domain"
	"github.com/beanthere/beanthere/internal/log"
)

// Defaults applied when a bean is first created. Mirrors config defaults so
// the service stays usable without a config file.
type BeanDefaults struct {
	Roaster   string
	CostPerKg float64
}

// CoffeeService implements the domain operations over a Repository.
type CoffeeService struct {
	repo     Repository
	defaults BeanDefaults
}

// NewCoffeeService creates a CoffeeService with the given new-bean defaults.
func NewCoffeeService(repo Repository, defaults BeanDefaults) *CoffeeService {
	return &CoffeeService{repo: repo, defaults: defaults}
}

// AddOrRestockBean creates a bean named name with the given origin and
// initial stock, or adds grams to an existing bean's stock. Negative grams
// are allowed on an existing bean as an explicit stock correction, but a
// correction that would take stock below zero fails with
// InsufficientStockError and changes nothing. Returns the resulting bean and
// whether an existing bean was restocked.
func (s *CoffeeService) AddOrRestockBean(name, origin string, grams float64) (*domain.Bean, bool, error) {
	name = strings.TrimSpace(name)
	origin = strings.TrimSpace(origin)
	if name == "" {
		return nil, false, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}

	bean, err := s.repo.FindBeanByName(name)
	if err == nil {
		newStock := bean.GramsInStock + grams
		if newStock < 0 {
			return nil, false, &domain.InsufficientStockError{
				Bean:           bean.Name,
				RequestedGrams: -grams,
				AvailableGrams: bean.GramsInStock,
			}
		}
		bean.GramsInStock = newStock
		if err := s.repo.SaveBean(bean); err != nil {
			return nil, false, err
		}
		log.Info(log.CatCoffee, "Restocked bean", "name", name, "grams", grams, "stock", bean.GramsInStock)
		return bean, true, nil
	}
	var notFound *domain.BeanNotFoundError
	if !errors.As(err, &notFound) {
		return nil, false, err
	}

	if origin == "" {
		return nil, false, &domain.ValidationError{Field: "origin", Reason: "must not be empty"}
	}
	if grams < 0 {
		return nil, false, &domain.ValidationError{Field: "grams", Reason: "initial stock must not be negative"}
	}
	bean = &domain.Bean{
		Name:         name,
		Origin:       origin,
		Roaster:      s.defaults.Roaster,
		CostPerKg:    s.defaults.CostPerKg,
		GramsInStock: grams,
	}
	if err := s.repo.SaveBean(bean); err != nil {
		return nil, false, err
	}
	log.Info(log.CatCoffee, "Added bean", "name", name, "origin", origin, "grams", grams)
	return bean, false, nil
}

// LogDrinkParams carries the inputs for LogDrink.
type LogDrinkParams struct {
	BeanName    string
	Grams       float64
	Price       float64
	Rating      int
	Notes       string
	FlavorNames []string
}

// LogDrink records one sale: it validates inputs, then atomically creates
// the drink with its flavor associations and deducts the bean's stock.
func (s *CoffeeService) LogDrink(params LogDrinkParams) (*domain.Drink, error) {
	if params.Grams <= 0 {
		return nil, &domain.ValidationError{Field: "grams", Reason: "must be greater than zero"}
	}
	if params.Price < 0 {
		return nil, &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if !domain.ValidRating(params.Rating) {
		return nil, &domain.ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}

	drink := &domain.Drink{
		GUID:      uuid.NewString(),
		GramsUsed: params.Grams,
		PricePaid: params.Price,
		Rating:    params.Rating,
		Notes:     params.Notes,
		CreatedAt: time.Now(),
	}
	flavorNames := domain.NormalizeFlavorNames(params.FlavorNames)
	if err := s.repo.CreateDrink(params.BeanName, drink, flavorNames); err != nil {
		return nil, err
	}
	log.Info(log.CatCoffee, "Logged drink",
		"bean", params.BeanName, "grams", params.Grams, "price", params.Price, "rating", params.Rating)
	return drink, nil
}

// DailyReport aggregates drinks logged since local midnight of now.
// Returns nil when no drinks were logged today.
func (s *CoffeeService) DailyReport(now time.Time) (*domain.DailyReport, error) {
	drinks, err := s.repo.DrinksSince(domain.StartOfDay(now))
	if err != nil {
		return nil, err
	}
	return domain.ComputeDailyReport(drinks), nil
}

// Inventory returns all beans ordered by name.
func (s *CoffeeService) Inventory() ([]*domain.Bean, error) {
	return s.repo.ListBeans()
}
