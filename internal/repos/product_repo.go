package repos

import (
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"chatorder/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, name, price, base_stock, active, created_at)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, p.ID, p.Name, p.Price, p.BaseStock, p.Active)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrDuplicateName
	}
	return err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, price, base_stock, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) ListActive() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, price, base_stock, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE active = 1
	  ORDER BY rowid ASC
	`)
	return out, err
}

func (r *ProductRepo) ListAll() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, price, base_stock, active,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  ORDER BY rowid ASC
	`)
	return out, err
}

// Update applies only the fields set on f.
func (r *ProductRepo) Update(id string, f domain.ProductUpdate) error {
	sets := []string{}
	args := []any{}
	if f.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *f.Name)
	}
	if f.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *f.Price)
	}
	if f.BaseStock != nil {
		sets = append(sets, "base_stock = ?")
		args = append(args, *f.BaseStock)
	}
	if f.Active != nil {
		sets = append(sets, "active = ?")
		args = append(args, boolToInt(*f.Active))
	}
	if len(sets) == 0 {
		return domain.ErrNoFieldsToUpdate
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().Format("2006-01-02 15:04:05"))

	args = append(args, id)
	_, err := r.db.Exec(`UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrDuplicateName
	}
	return err
}

// SummaryRows returns every product with its cumulative ordered quantity.
// Remaining stock and sale status are derived by the stock service.
func (r *ProductRepo) SummaryRows(activeOnly bool) ([]domain.StockSummary, error) {
	where := ""
	if activeOnly {
		where = "WHERE p.active = 1"
	}
	var out []domain.StockSummary
	err := r.db.Select(&out, `
	  SELECT p.id, p.name, p.price, p.base_stock, p.active,
	         COALESCE(SUM(i.quantity), 0) AS ordered_qty
	  FROM products p
	  LEFT JOIN order_items i ON i.product_id = p.id
	  `+where+`
	  GROUP BY p.id, p.name, p.price, p.base_stock, p.active
	  ORDER BY p.rowid ASC
	`)
	return out, err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
