package services

import (
	"time"

	"github.com/google/uuid"

	"chatorder/internal/domain"
	"chatorder/internal/repos"
)

// chatHistoryLimit caps the customer-facing lookup window. The admin
// path reads uncapped.
const chatHistoryLimit = 50

type LedgerService struct {
	Orders *repos.OrderRepo
}

func NewLedgerService(orders *repos.OrderRepo) *LedgerService {
	return &LedgerService{Orders: orders}
}

// Record appends one immutable order for phone4. The unit price is
// copied from the product at this moment; stock is not checked, it is
// advisory and derived later.
func (s *LedgerService) Record(phone4 string, p domain.Product, quantity int) (string, error) {
	o := domain.Order{
		ID:        uuid.NewString(),
		Phone4:    phone4,
		CreatedAt: time.Now().Format("2006-01-02 15:04:05"),
	}
	item := domain.OrderItem{
		OrderID:   o.ID,
		ProductID: p.ID,
		Quantity:  quantity,
		UnitPrice: p.Price,
	}
	if err := s.Orders.InsertWithItem(o, item); err != nil {
		return "", err
	}
	return o.ID, nil
}

// ListRecent returns the capped history window used by chat lookups.
func (s *LedgerService) ListRecent(phone4 string) ([]domain.OrderLine, error) {
	return s.Orders.ListByPhone(phone4, chatHistoryLimit)
}

// ListAll returns a customer's full history for the admin API.
func (s *LedgerService) ListAll(phone4 string) ([]domain.OrderLine, error) {
	return s.Orders.ListByPhone(phone4, 0)
}

func (s *LedgerService) TotalsByProduct() ([]domain.ProductTotals, error) {
	return s.Orders.TotalsByProduct()
}
