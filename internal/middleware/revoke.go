package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revoker is the server-side session revocation list. Logged-out token
// ids (jti claims) are stored in Redis with a TTL equal to whatever
// validity the token had left, so the list cleans itself up. With a
// nil Redis client every method degrades to a no-op: logout then only
// means the client discards its token.
type Revoker struct{ RDB *redis.Client }

func NewRevoker(rdb *redis.Client) *Revoker { return &Revoker{RDB: rdb} }

const revokePrefix = "revoked:"

// Revoke denylists a token id until its natural expiry.
func (r *Revoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if r == nil || r.RDB == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return r.RDB.Set(ctx, revokePrefix+jti, 1, ttl).Err()
}

// IsRevoked reports whether a token id has been denylisted. Redis
// errors count as not revoked so an outage never locks everyone out.
func (r *Revoker) IsRevoked(ctx context.Context, jti string) bool {
	if r == nil || r.RDB == nil || jti == "" {
		return false
	}
	n, err := r.RDB.Exists(ctx, revokePrefix+jti).Result()
	return err == nil && n > 0
}
