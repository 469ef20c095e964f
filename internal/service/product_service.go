// Package service orchestrates validation, existence checks and repository
// calls for the product resource, reporting every outcome as a Result.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/simplecrud/internal/domain"
	"github.com/example/simplecrud/internal/repository"
)

// ProductService implements the product use cases on top of a repository.
// It is stateless; each call is independent. Repository faults never cross
// this boundary as raw errors: this is the single place where exceptional
// conditions are normalized into Results.
type ProductService struct {
	repo repository.Repository
}

// NewProductService creates a product service owning a reference to the
// given repository.
func NewProductService(repo repository.Repository) *ProductService {
	return &ProductService{repo: repo}
}

// Create validates and stores a new product. All validation errors are
// returned together. On success the returned product carries the assigned
// id and creation timestamp.
func (s *ProductService) Create(ctx context.Context, product *domain.Product) DataResult[*domain.Product] {
	if product == nil {
		return FailData[*domain.Product]("product cannot be nil", "")
	}

	if errs := product.Validate(); len(errs) > 0 {
		return FailDataAll[*domain.Product](errs, "Validation failed.")
	}

	if err := s.repo.Add(ctx, domain.KindProduct, product); err != nil {
		return FailData[*domain.Product](err.Error(), "An error occurred while creating the product.")
	}
	return OKData(product, "Product created successfully.")
}

// Update replaces an existing product. Existence is checked before
// validation, so a missing id is reported as not found rather than as a
// validation failure. The stored creation timestamp is preserved.
func (s *ProductService) Update(ctx context.Context, product *domain.Product) DataResult[*domain.Product] {
	if product == nil {
		return FailData[*domain.Product]("product cannot be nil", "")
	}
	if product.ID <= 0 {
		return FailData[*domain.Product]("product must have a valid id to update", "")
	}

	if _, err := s.repo.FindByID(ctx, domain.KindProduct, product.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return FailData[*domain.Product](fmt.Sprintf("product with id %d not found", product.ID), "")
		}
		return FailData[*domain.Product](err.Error(), "An error occurred while updating the product.")
	}

	if errs := product.Validate(); len(errs) > 0 {
		return FailDataAll[*domain.Product](errs, "Validation failed.")
	}

	if err := s.repo.Update(ctx, domain.KindProduct, product); err != nil {
		return FailData[*domain.Product](err.Error(), "An error occurred while updating the product.")
	}
	return OKData(product, "Product updated successfully.")
}

// Delete removes the product with the given id. Deleting an id that was
// never created reports not found.
func (s *ProductService) Delete(ctx context.Context, id int64) Result {
	if id <= 0 {
		return Fail("invalid id", "")
	}

	existing, err := s.repo.FindByID(ctx, domain.KindProduct, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Fail(fmt.Sprintf("product with id %d not found", id), "")
		}
		return Fail(err.Error(), "An error occurred while deleting the product.")
	}

	deleted, err := s.repo.Delete(ctx, domain.KindProduct, existing)
	if err != nil {
		return Fail(err.Error(), "An error occurred while deleting the product.")
	}
	if deleted > 0 {
		return OK("Product deleted.")
	}
	// Lost a race with a concurrent delete between the existence check and
	// the delete call. There is no transaction spanning the two repository
	// calls, so this is reported as a generic failure, not a not-found.
	return Fail("could not delete product", "")
}

// GetByID retrieves a product by id.
func (s *ProductService) GetByID(ctx context.Context, id int64) DataResult[*domain.Product] {
	if id <= 0 {
		return FailData[*domain.Product]("invalid id", "")
	}

	entity, err := s.repo.FindByID(ctx, domain.KindProduct, id)
	if err != nil {
		return FailData[*domain.Product](fmt.Sprintf("product with id %d not found", id), "")
	}
	return OKData(entity.(*domain.Product), "")
}

// GetAll returns all current products ordered by id. It always succeeds;
// with an empty store the data is an empty list, never nil.
func (s *ProductService) GetAll(ctx context.Context) DataResult[[]*domain.Product] {
	products := make([]*domain.Product, 0)
	for entity := range s.repo.Query(domain.KindProduct) {
		products = append(products, entity.(*domain.Product))
	}

	// The store iterates in unspecified order; ids are monotonic per kind,
	// so sorting by id restores insertion order.
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	return OKData(products, "")
}
