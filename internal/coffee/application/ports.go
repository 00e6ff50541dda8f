// Package application wires the coffee domain operations to a storage
// implementation. The CoffeeService methods are the business logic behind
// every CLI command; presentation stays in cmd/.
package application

import (
	"time"

	"github.com/beanthere/beanthere/internal/coffee/domain"
)

// Repository is the persistence port for beans, flavors, and drinks.
// Implemented by the sqlite infrastructure package.
type Repository interface {
	// FindBeanByName returns the bean with the given name, or
	// domain.BeanNotFoundError.
	FindBeanByName(name string) (*domain.Bean, error)

	// ListBeans returns all beans ordered by name.
	ListBeans() ([]*domain.Bean, error)

	// CountBeans returns the number of bean records.
	CountBeans() (int, error)

	// SaveBean inserts the bean when its ID is zero (setting the ID) and
	// updates the existing row otherwise.
	SaveBean(bean *domain.Bean) error

	// FindFlavorByName returns the flavor with the given name, or nil when
	// no such flavor exists.
	FindFlavorByName(name string) (*domain.Flavor, error)

	// ListFlavors returns all flavors ordered by name.
	ListFlavors() ([]*domain.Flavor, error)

	// CreateDrink persists a drink as one atomic unit: it resolves the bean
	// by name, gets or creates each flavor, inserts the drink and its flavor
	// associations, and deducts the bean's stock. Nothing is written when
	// the bean is missing or stock is insufficient. On success the drink's
	// ID, BeanID, Bean, and Flavors fields are populated.
	CreateDrink(beanName string, drink *domain.Drink, flavorNames []string) error

	// DrinksSince returns drinks created at or after t, ordered by creation
	// time then id, with Bean and Flavors eagerly resolved.
	DrinksSince(t time.Time) ([]*domain.Drink, error)
}
