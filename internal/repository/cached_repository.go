package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"changemoney-backend/internal/domain"
	"changemoney-backend/internal/ports"
)

// CachedOrderRepository fronts a remote store with a local snapshot file.
// The remote stays authoritative: successful reads overwrite the cache, and
// mutations go to the remote first. When the remote is unreachable a
// mutation lands in the cache only and the call reports ErrDegraded so the
// caller can label the success accordingly; reads then serve the (possibly
// stale) cache. Remote and cache are not kept strictly consistent.
type CachedOrderRepository struct {
	Remote ports.OrderStore
	Cache  *FileOrderRepository
	Logger *slog.Logger
}

func NewCachedOrderRepository(remote ports.OrderStore, cache *FileOrderRepository, logger *slog.Logger) *CachedOrderRepository {
	return &CachedOrderRepository{Remote: remote, Cache: cache, Logger: logger}
}

func (r *CachedOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := r.Remote.List(ctx)
	if err == nil {
		if cacheErr := r.Cache.Replace(ctx, orders); cacheErr != nil {
			r.Logger.Warn("failed to refresh order cache", "err", cacheErr)
		}
		return orders, nil
	}
	r.Logger.Warn("remote list failed, serving cache", "err", err)
	return r.Cache.List(ctx)
}

func (r *CachedOrderRepository) Append(ctx context.Context, order domain.Order) error {
	if err := r.Remote.Append(ctx, order); err != nil {
		r.Logger.Warn("remote append failed, caching locally", "err", err, "orderId", order.ID)
		if cacheErr := r.Cache.Append(ctx, order); cacheErr != nil {
			return errors.Join(err, cacheErr)
		}
		return fmt.Errorf("%w: %v", ErrDegraded, err)
	}
	if cacheErr := r.Cache.Append(ctx, order); cacheErr != nil {
		r.Logger.Warn("failed to mirror append into cache", "err", cacheErr)
	}
	return nil
}

func (r *CachedOrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, updatedAt string) (*domain.Order, error) {
	updated, err := r.Remote.UpdateStatus(ctx, id, status, updatedAt)
	if err == nil {
		if _, cacheErr := r.Cache.UpdateStatus(ctx, id, status, updatedAt); cacheErr != nil && !errors.Is(cacheErr, ErrNotFound) {
			r.Logger.Warn("failed to mirror status update into cache", "err", cacheErr)
		}
		return updated, nil
	}
	if errors.Is(err, ErrNotFound) {
		return nil, err
	}

	r.Logger.Warn("remote status update failed, updating cache only", "err", err, "orderId", id)
	updated, cacheErr := r.Cache.UpdateStatus(ctx, id, status, updatedAt)
	if cacheErr != nil {
		if errors.Is(cacheErr, ErrNotFound) {
			return nil, cacheErr
		}
		return nil, errors.Join(err, cacheErr)
	}
	return updated, fmt.Errorf("%w: %v", ErrDegraded, err)
}

func (r *CachedOrderRepository) Clear(ctx context.Context) error {
	if err := r.Remote.Clear(ctx); err != nil {
		r.Logger.Warn("remote clear failed, clearing cache only", "err", err)
		if cacheErr := r.Cache.Clear(ctx); cacheErr != nil {
			return errors.Join(err, cacheErr)
		}
		return fmt.Errorf("%w: %v", ErrDegraded, err)
	}
	if cacheErr := r.Cache.Clear(ctx); cacheErr != nil {
		r.Logger.Warn("failed to clear cache", "err", cacheErr)
	}
	return nil
}

// Health reports the remote's health; the cache keeps the service usable
// but a broken remote is still a degraded dependency.
func (r *CachedOrderRepository) Health(ctx context.Context) error {
	if checker, ok := r.Remote.(ports.HealthChecker); ok {
		return checker.Health(ctx)
	}
	return nil
}
