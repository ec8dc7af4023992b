package services

import (
	"chatorder/internal/domain"
	"chatorder/internal/repos"
)

const (
	StatusOnSale  = "on sale"
	StatusSoldOut = "sold out"
)

type StockService struct {
	Prods *repos.ProductRepo
}

func NewStockService(prods *repos.ProductRepo) *StockService {
	return &StockService{Prods: prods}
}

// Summarize derives remaining stock per product fresh from the ledger.
// A base stock of 0 means untracked stock and is never sold out, even
// with orders against it; remaining goes negative on oversell.
func (s *StockService) Summarize(includeInactive bool) ([]domain.StockSummary, error) {
	rows, err := s.Prods.SummaryRows(!includeInactive)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Remaining = rows[i].BaseStock - rows[i].OrderedQty
		rows[i].Status = StatusOnSale
		if rows[i].BaseStock > 0 && rows[i].Remaining <= 0 {
			rows[i].Status = StatusSoldOut
		}
	}
	return rows, nil
}
