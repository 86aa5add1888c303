// Package catalog holds the product and category lists. It is the only place
// allowed to touch Product.Stock; the cart asks it to decrement at checkout.
package catalog

import (
	"errors"
	"sync"
	"time"

	"boutique-pos/internal/localstore"
	"boutique-pos/internal/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a product or category id does not exist.
var ErrNotFound = errors.New("catalog: not found")

const (
	productsKey   = "boutiqueProducts"
	categoriesKey = "boutiqueCategories"
)

// Store is the catalog service. Every mutation writes the full product or
// category snapshot back to the local store.
type Store struct {
	mu         sync.RWMutex
	store      *localstore.Store
	products   []models.Product
	categories []models.Category
	now        func() time.Time
}

// NewStore loads the saved snapshots, or seeds the boutique demo data when
// nothing has been persisted yet.
func NewStore(store *localstore.Store) (*Store, error) {
	s := &Store{store: store, now: time.Now}

	err := store.Load(categoriesKey, &s.categories)
	if errors.Is(err, localstore.ErrNoValue) {
		s.categories = seedCategories()
		err = store.Save(categoriesKey, s.categories)
	}
	if err != nil {
		return nil, err
	}

	err = store.Load(productsKey, &s.products)
	if errors.Is(err, localstore.ErrNoValue) {
		s.products = seedProducts(s.categories, s.now())
		err = store.Save(productsKey, s.products)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ProductInput carries the caller-supplied fields of a new product.
type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	Barcode     string  `json:"barcode"`
	ImageURL    string  `json:"imageUrl"`
}

// ProductUpdate is a partial update: nil fields are left untouched.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Barcode     *string  `json:"barcode"`
	ImageURL    *string  `json:"imageUrl"`
}

// AddProduct assigns an id and timestamps, appends and persists.
func (s *Store) AddProduct(in ProductInput) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := models.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Category:    in.Category,
		Barcode:     in.Barcode,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.products = append(s.products, p)
	if err := s.store.Save(productsKey, s.products); err != nil {
		s.products = s.products[:len(s.products)-1]
		return models.Product{}, err
	}
	return p, nil
}

// UpdateProduct merges the provided fields and refreshes UpdatedAt.
func (s *Store) UpdateProduct(id string, up ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if up.Name != nil {
			p.Name = *up.Name
		}
		if up.Description != nil {
			p.Description = *up.Description
		}
		if up.Price != nil {
			p.Price = *up.Price
		}
		if up.Stock != nil {
			p.Stock = *up.Stock
		}
		if up.Category != nil {
			p.Category = *up.Category
		}
		if up.Barcode != nil {
			p.Barcode = *up.Barcode
		}
		if up.ImageURL != nil {
			p.ImageURL = *up.ImageURL
		}
		p.UpdatedAt = s.now()
		if err := s.store.Save(productsKey, s.products); err != nil {
			return models.Product{}, err
		}
		return *p, nil
	}
	return models.Product{}, ErrNotFound
}

// DeleteProduct removes the product. Historical transactions are untouched;
// they carry their own name/price snapshots.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return s.store.Save(productsKey, s.products)
		}
	}
	return ErrNotFound
}

// UpdateStock applies a delta and clamps at zero. Over-decrementing is not
// an error.
func (s *Store) UpdateStock(id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		stock := s.products[i].Stock + delta
		if stock < 0 {
			stock = 0
		}
		s.products[i].Stock = stock
		s.products[i].UpdatedAt = s.now()
		return s.store.Save(productsKey, s.products)
	}
	return ErrNotFound
}

// GetProductByID returns a copy of the product or ErrNotFound.
func (s *Store) GetProductByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// GetProductByBarcode looks a product up by its scan code.
func (s *Store) GetProductByBarcode(code string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Barcode != "" && p.Barcode == code {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Products returns a copy of the product list.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns a copy of the category list.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// AddCategory appends a category and persists the list.
func (s *Store) AddCategory(name string) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Category{ID: uuid.NewString(), Name: name}
	s.categories = append(s.categories, c)
	if err := s.store.Save(categoriesKey, s.categories); err != nil {
		s.categories = s.categories[:len(s.categories)-1]
		return models.Category{}, err
	}
	return c, nil
}

// DeleteCategory removes a category. Products keep their dangling reference.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return s.store.Save(categoriesKey, s.categories)
		}
	}
	return ErrNotFound
}

// LowStockCount counts products at or below the threshold, for the dashboard.
func (s *Store) LowStockCount(threshold int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.products {
		if p.Stock <= threshold {
			n++
		}
	}
	return n
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: uuid.NewString(), Name: "Clothing"},
		{ID: uuid.NewString(), Name: "Accessories"},
		{ID: uuid.NewString(), Name: "Shoes"},
		{ID: uuid.NewString(), Name: "Jewelry"},
	}
}

func seedProducts(categories []models.Category, now time.Time) []models.Product {
	// products reference categories by id
	catID := func(name string) string {
		for _, c := range categories {
			if c.Name == name {
				return c.ID
			}
		}
		return ""
	}
	return []models.Product{
		{
			ID: uuid.NewString(), Name: "Summer Dress",
			Description: "Light and comfortable summer dress",
			Price:       49.99, Stock: 15, Category: catID("Clothing"),
			Barcode: "123456789", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.NewString(), Name: "Leather Handbag",
			Description: "Genuine leather handbag",
			Price:       79.99, Stock: 8, Category: catID("Accessories"),
			Barcode: "987654321", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.NewString(), Name: "Silver Necklace",
			Description: "Sterling silver pendant necklace",
			Price:       29.99, Stock: 20, Category: catID("Jewelry"),
			Barcode: "456789123", CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: uuid.NewString(), Name: "Ankle Boots",
			Description: "Stylish ankle boots with low heel",
			Price:       59.99, Stock: 12, Category: catID("Shoes"),
			Barcode: "789123456", CreatedAt: now, UpdatedAt: now,
		},
	}
}
