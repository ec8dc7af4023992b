package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"chatorder/internal/chat"
	"chatorder/internal/domain"
	"chatorder/internal/repos"
	"chatorder/internal/validate"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// Match resolves a normalized name candidate against the active catalog.
// Matching is exact after whitespace normalization, nothing fuzzier.
// Two active products normalizing identically is a data-integrity
// precondition closed off by Create; the scan keeps first-match order.
func (s *CatalogService) Match(candidate string) (domain.Product, error) {
	prods, err := s.Prods.ListActive()
	if err != nil {
		return domain.Product{}, err
	}
	for _, p := range prods {
		if chat.Normalize(p.Name) == candidate {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// Create validates the payload, rejects names that collide with an
// existing active product once whitespace is ignored, and inserts.
func (s *CatalogService) Create(in domain.ProductCreate) (string, error) {
	if errs := validate.Struct(in); len(errs) > 0 {
		return "", fmt.Errorf("invalid product: %s", errs[0].FailedField)
	}
	if _, err := s.Match(chat.Normalize(in.Name)); err == nil {
		return "", domain.ErrDuplicateName
	} else if !errors.Is(err, domain.ErrProductNotFound) {
		return "", err
	}

	p := domain.Product{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Price:     in.Price,
		BaseStock: in.BaseStock,
		Active:    true,
	}
	if err := s.Prods.Insert(p); err != nil {
		return "", err
	}
	return p.ID, nil
}

// Update applies a partial-field patch to one product.
func (s *CatalogService) Update(id string, in domain.ProductUpdate) error {
	if errs := validate.Struct(in); len(errs) > 0 {
		return fmt.Errorf("invalid product: %s", errs[0].FailedField)
	}
	return s.Prods.Update(id, in)
}

func (s *CatalogService) List() ([]domain.Product, error) {
	return s.Prods.ListAll()
}
