// Package storage provides the key-value surfaces the state blob is written to.
package storage

import "context"

// KV is a minimal key-value store. Get reports found=false for missing keys
// rather than an error.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close(ctx context.Context) error
}
