package catalog

import (
	"sync"

	"github.com/google/uuid"
)

type Product struct {
	ID          string
	Title       string
	ImageURL    string
	Price       float64
	Description string
}

// Store holds the process-lifetime product list. Products are kept in
// insertion order and only ever appended; there is no update or delete.
type Store struct {
	mu       sync.RWMutex
	products []Product
}

func NewStore() *Store {
	return &Store{products: make([]Product, 0, 16)}
}

// Add appends a product with a freshly assigned identifier and returns it.
// Field values are stored as given: empty titles and negative prices are
// not rejected here.
func (s *Store) Add(title, imageURL string, price float64, description string) Product {
	p := Product{
		ID:          uuid.NewString(),
		Title:       title,
		ImageURL:    imageURL,
		Price:       price,
		Description: description,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return p
}

// List returns all products in insertion order. The returned slice is a
// copy, so callers never hold a reference into store state.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}
