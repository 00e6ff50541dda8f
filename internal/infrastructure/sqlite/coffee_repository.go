package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/beanthere/beanthere/internal/coffee/application"
	"github.com/beanthere/beanthere/internal/coffee/domain"
)

// coffeeRepository implements application.Repository using SQLite.
type coffeeRepository struct {
	db *sql.DB
}

// newCoffeeRepository creates a new coffeeRepository instance.
func newCoffeeRepository(db *sql.DB) *coffeeRepository {
	return &coffeeRepository{db: db}
}

// Ensure coffeeRepository implements application.Repository.
var _ application.Repository = (*coffeeRepository)(nil)

const beanColumns = `id, name, origin, roaster, process, cost_per_kg, grams_in_stock`

// FindBeanByName retrieves a bean by its unique name.
// Returns BeanNotFoundError if no matching bean exists.
func (r *coffeeRepository) FindBeanByName(name string) (*domain.Bean, error) {
	var model BeanModel
	err := r.db.QueryRow(
		`SELECT `+beanColumns+` FROM beans WHERE name = ?`,
		name,
	).Scan(&model.ID, &model.Name, &model.Origin, &model.Roaster, &model.Process, &model.CostPerKg, &model.GramsInStock)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.BeanNotFoundError{Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find bean by name: %w", err)
	}
	return model.toDomain(), nil
}

// ListBeans retrieves all beans ordered by name.
func (r *coffeeRepository) ListBeans() ([]*domain.Bean, error) {
	rows, err := r.db.Query(`SELECT ` + beanColumns + ` FROM beans ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list beans: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var beans []*domain.Bean
	for rows.Next() {
		var model BeanModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Origin, &model.Roaster, &model.Process, &model.CostPerKg, &model.GramsInStock); err != nil {
			return nil, fmt.Errorf("failed to scan bean row: %w", err)
		}
		beans = append(beans, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bean rows: %w", err)
	}
	return beans, nil
}

// CountBeans returns the number of bean records.
func (r *coffeeRepository) CountBeans() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM beans`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count beans: %w", err)
	}
	return count, nil
}

// SaveBean persists a bean to the database. For new beans (ID == 0), inserts
// a new row and sets the bean ID. For existing beans, updates the row.
func (r *coffeeRepository) SaveBean(bean *domain.Bean) error {
	model := toBeanModel(bean)

	if bean.ID == 0 {
		result, err := r.db.Exec(
			`INSERT INTO beans (name, origin, roaster, process, cost_per_kg, grams_in_stock)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			model.Name, model.Origin, model.Roaster, model.Process, model.CostPerKg, model.GramsInStock,
		)
		if err != nil {
			return fmt.Errorf("failed to insert bean: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		bean.ID = id
		return nil
	}

	_, err := r.db.Exec(
		`UPDATE beans SET origin = ?, roaster = ?, process = ?, cost_per_kg = ?, grams_in_stock = ? WHERE id = ?`,
		model.Origin, model.Roaster, model.Process, model.CostPerKg, model.GramsInStock, model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bean: %w", err)
	}
	return nil
}

// FindFlavorByName retrieves a flavor by its unique name.
// Returns nil (no error) if no matching flavor exists.
func (r *coffeeRepository) FindFlavorByName(name string) (*domain.Flavor, error) {
	var flavor domain.Flavor
	err := r.db.QueryRow(`SELECT id, name FROM flavors WHERE name = ?`, name).Scan(&flavor.ID, &flavor.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find flavor by name: %w", err)
	}
	return &flavor, nil
}

// ListFlavors retrieves all flavors ordered by name.
func (r *coffeeRepository) ListFlavors() ([]*domain.Flavor, error) {
	rows, err := r.db.Query(`SELECT id, name FROM flavors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list flavors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var flavors []*domain.Flavor
	for rows.Next() {
		var flavor domain.Flavor
		if err := rows.Scan(&flavor.ID, &flavor.Name); err != nil {
			return nil, fmt.Errorf("failed to scan flavor row: %w", err)
		}
		flavors = append(flavors, &flavor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flavor rows: %w", err)
	}
	return flavors, nil
}

// CreateDrink persists a drink, its flavor associations, and the bean stock
// deduction as one transaction. The stock check and deduction happen in a
// single guarded UPDATE, so the stock can never go negative even with
// concurrent writers. Nothing is written when the bean is missing or stock
// is insufficient.
func (r *coffeeRepository) CreateDrink(beanName string, drink *domain.Drink, flavorNames []string) (retErr error) {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	var bean BeanModel
	err = tx.QueryRow(
		`SELECT `+beanColumns+` FROM beans WHERE name = ?`,
		beanName,
	).Scan(&bean.ID, &bean.Name, &bean.Origin, &bean.Roaster, &bean.Process, &bean.CostPerKg, &bean.GramsInStock)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.BeanNotFoundError{Name: beanName}
	}
	if err != nil {
		return fmt.Errorf("failed to find bean by name: %w", err)
	}

	// Guarded deduction: the WHERE clause re-checks stock inside the
	// transaction, so the earlier read can't race a concurrent writer.
	result, err := tx.Exec(
		`UPDATE beans SET grams_in_stock = grams_in_stock - ? WHERE id = ? AND grams_in_stock >= ?`,
		drink.GramsUsed, bean.ID, drink.GramsUsed,
	)
	if err != nil {
		return fmt.Errorf("failed to deduct stock: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &domain.InsufficientStockError{
			Bean:           bean.Name,
			RequestedGrams: drink.GramsUsed,
			AvailableGrams: bean.GramsInStock,
		}
	}

	drinkResult, err := tx.Exec(
		`INSERT INTO drinks (guid, bean_id, grams_used, price_paid, rating, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		drink.GUID, bean.ID, drink.GramsUsed, drink.PricePaid, drink.Rating, drink.Notes, drink.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert drink: %w", err)
	}
	drinkID, err := drinkResult.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	flavors := make([]domain.Flavor, 0, len(flavorNames))
	for _, name := range flavorNames {
		flavor, err := getOrCreateFlavor(tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			`INSERT INTO drink_flavors (drink_id, flavor_id) VALUES (?, ?)`,
			drinkID, flavor.ID,
		); err != nil {
			return fmt.Errorf("failed to associate flavor %s: %w", name, err)
		}
		flavors = append(flavors, *flavor)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit drink: %w", err)
	}

	drink.ID = drinkID
	drink.BeanID = bean.ID
	drink.Flavors = flavors
	bean.GramsInStock -= drink.GramsUsed
	drink.Bean = bean.toDomain()
	return nil
}

// getOrCreateFlavor looks up a flavor by name inside the transaction,
// inserting it on first sight.
func getOrCreateFlavor(tx *sql.Tx, name string) (*domain.Flavor, error) {
	var flavor domain.Flavor
	err := tx.QueryRow(`SELECT id, name FROM flavors WHERE name = ?`, name).Scan(&flavor.ID, &flavor.Name)
	if err == nil {
		return &flavor, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to find flavor %s: %w", name, err)
	}

	result, err := tx.Exec(`INSERT INTO flavors (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert flavor %s: %w", name, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return &domain.Flavor{ID: id, Name: name}, nil
}

// DrinksSince retrieves drinks created at or after t with their bean eagerly
// joined and flavors loaded in one pass over the association table. Results
// are ordered by creation time then id so reporting sees a stable order.
func (r *coffeeRepository) DrinksSince(t time.Time) ([]*domain.Drink, error) {
	rows, err := r.db.Query(
		`SELECT d.id, d.guid, d.bean_id, d.grams_used, d.price_paid, d.rating, d.notes, d.created_at,
		        b.id, b.name, b.origin, b.roaster, b.process, b.cost_per_kg, b.grams_in_stock
		 FROM drinks d
		 JOIN beans b ON b.id = d.bean_id
		 WHERE d.created_at >= ?
		 ORDER BY d.created_at, d.id`,
		t.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query drinks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var drinks []*domain.Drink
	byID := make(map[int64]*domain.Drink)
	for rows.Next() {
		var model DrinkModel
		err := rows.Scan(
			&model.ID, &model.GUID, &model.BeanID, &model.GramsUsed, &model.PricePaid, &model.Rating, &model.Notes, &model.CreatedAt,
			&model.Bean.ID, &model.Bean.Name, &model.Bean.Origin, &model.Bean.Roaster, &model.Bean.Process, &model.Bean.CostPerKg, &model.Bean.GramsInStock,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drink row: %w", err)
		}
		drink := model.toDomain()
		drinks = append(drinks, drink)
		byID[drink.ID] = drink
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drink rows: %w", err)
	}
	if len(drinks) == 0 {
		return drinks, nil
	}

	if err := r.attachFlavors(byID, t); err != nil {
		return nil, err
	}
	return drinks, nil
}

// attachFlavors loads the flavor associations for the given drinks in one
// query, preserving insertion order of the association rows.
func (r *coffeeRepository) attachFlavors(byID map[int64]*domain.Drink, since time.Time) error {
	rows, err := r.db.Query(
		`SELECT df.drink_id, f.id, f.name
		 FROM drink_flavors df
		 JOIN flavors f ON f.id = df.flavor_id
		 JOIN drinks d ON d.id = df.drink_id
		 WHERE d.created_at >= ?
		 ORDER BY df.drink_id, df.rowid`,
		since.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to query drink flavors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var drinkID int64
		var flavor domain.Flavor
		if err := rows.Scan(&drinkID, &flavor.ID, &flavor.Name); err != nil {
			return fmt.Errorf("failed to scan drink flavor row: %w", err)
		}
		if drink, ok := byID[drinkID]; ok {
			drink.Flavors = append(drink.Flavors, flavor)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating drink flavor rows: %w", err)
	}
	return nil
}
