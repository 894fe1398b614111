// Package tokens persists the bearer-token pair across client restarts.
//
// The store keeps two opaque strings under fixed keys. No expiry tracking is
// done locally; an expired token is discovered only by a failed request.
package tokens

import "context"

// Store saves and restores the access/refresh token pair. Either token may be
// absent; absent values are empty strings. Implementations must be safe to
// call with nothing stored.
type Store interface {
	Save(ctx context.Context, access, refresh string) error
	Load(ctx context.Context) (access, refresh string, err error)
	Clear(ctx context.Context) error
}
