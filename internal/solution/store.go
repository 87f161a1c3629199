package solution

import "context"

// Store is the persistence interface for solution records.
type Store interface {
	Get(ctx context.Context, id string) (*Record, bool, error)
	Put(ctx context.Context, r *Record) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]*Record, error)
}
