package authctx

import "context"

type contextKey string

const adminContextKey contextKey = "currentAdmin"

// Admin marks a request that passed the admin gate.
type Admin struct {
	Subject string
}

func WithAdmin(ctx context.Context, admin Admin) context.Context {
	return context.WithValue(ctx, adminContextKey, admin)
}

func FromContext(ctx context.Context) *Admin {
	val, ok := ctx.Value(adminContextKey).(Admin)
	if !ok {
		return nil
	}
	return &val
}
