package repos

import (
	"github.com/jmoiron/sqlx"

	"chatorder/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// InsertWithItem appends one order and its single line item in one
// transaction. Either both rows land or neither does.
func (r *OrderRepo) InsertWithItem(o domain.Order, item domain.OrderItem) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, phone4, created_at) VALUES(?, ?, ?)
	`, o.ID, o.Phone4, o.CreatedAt); err != nil {
		return err
	}
	if _, err := tx.Exec(`
	  INSERT INTO order_items(order_id, product_id, quantity, unit_price)
	  VALUES(?, ?, ?, ?)
	`, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice); err != nil {
		return err
	}
	return tx.Commit()
}

// ListByPhone returns a customer's order lines, most recent first; the
// rowid tie-break keeps same-second orders in reverse insertion order.
// limit <= 0 means uncapped (the admin path).
func (r *OrderRepo) ListByPhone(phone4 string, limit int) ([]domain.OrderLine, error) {
	q := `
	  SELECT o.id AS order_id, o.phone4, o.created_at,
	         p.name AS product_name, i.quantity, i.unit_price
	  FROM orders o
	  JOIN order_items i ON i.order_id = o.id
	  JOIN products p ON p.id = i.product_id
	  WHERE o.phone4 = ?
	  ORDER BY datetime(o.created_at) DESC, o.rowid DESC
	`
	args := []any{phone4}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	out := []domain.OrderLine{}
	err := r.db.Select(&out, q, args...)
	return out, err
}

// TotalsByProduct aggregates lifetime ordered quantity and revenue for
// every product, including products never ordered.
func (r *OrderRepo) TotalsByProduct() ([]domain.ProductTotals, error) {
	var out []domain.ProductTotals
	err := r.db.Select(&out, `
	  SELECT p.id, p.name,
	         COALESCE(SUM(i.quantity), 0) AS total_qty,
	         COALESCE(SUM(i.quantity * i.unit_price), 0) AS total_amount
	  FROM products p
	  LEFT JOIN order_items i ON i.product_id = p.id
	  GROUP BY p.id, p.name
	  ORDER BY p.rowid ASC
	`)
	return out, err
}

// Counts reports the ledger row counts; used by tests to check that a
// failed write left nothing behind.
func (r *OrderRepo) Counts() (orders, items int, err error) {
	if err = r.db.Get(&orders, `SELECT COUNT(*) FROM orders`); err != nil {
		return
	}
	err = r.db.Get(&items, `SELECT COUNT(*) FROM order_items`)
	return
}
