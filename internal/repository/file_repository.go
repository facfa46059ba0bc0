package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"changemoney-backend/internal/domain"
)

// FileOrderRepository keeps the order sequence as one JSON array file.
// A mutex serializes mutations within this process; writes go through a
// temp file and rename so a failed write leaves the previous file intact.
// Nothing guards against a second process writing the same file.
type FileOrderRepository struct {
	Path string

	mu sync.Mutex
}

func NewFileOrderRepository(path string) *FileOrderRepository {
	return &FileOrderRepository{Path: path}
}

func (r *FileOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *FileOrderRepository) Append(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(orders, order))
}

func (r *FileOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, updatedAt string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			orders[i].UpdatedAt = updatedAt
			if err := r.save(orders); err != nil {
				return nil, err
			}
			updated := orders[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (r *FileOrderRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save([]domain.Order{})
}

// Replace overwrites the whole sequence. Used by the cached store to mirror
// remote state.
func (r *FileOrderRepository) Replace(ctx context.Context, orders []domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if orders == nil {
		orders = []domain.Order{}
	}
	return r.save(orders)
}

// Health verifies the order file is readable (or absent, which bootstraps
// to an empty sequence).
func (r *FileOrderRepository) Health(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.load()
	return err
}

func (r *FileOrderRepository) load() ([]domain.Order, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Order{}, nil
		}
		return nil, fmt.Errorf("read orders file: %w", err)
	}
	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("parse orders file: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (r *FileOrderRepository) save(orders []domain.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}

	dir := filepath.Dir(r.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create orders dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "orders-*.json")
	if err != nil {
		return fmt.Errorf("create temp orders file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write orders file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close orders file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace orders file: %w", err)
	}
	return nil
}
