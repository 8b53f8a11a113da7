package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/paywatch/internal/paywatch"

	"github.com/redis/go-redis/v9"
)

// watchKeyPrefix is the namespace of watch claim keys.
const watchKeyPrefix = "paywatch:watch"

// releaseWatchScript deletes a claim only if it still belongs to the caller,
// so a claim that expired and was taken over elsewhere survives.
var releaseWatchScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func watchKey(address string) string {
	return fmt.Sprintf("%s:%s", watchKeyPrefix, address)
}

// ClaimWatch reserves address with SET NX and a ttl.
//
// Returns paywatch.ErrAlreadyWatched when the key already exists.
func (c *client) ClaimWatch(ctx context.Context, address string, ttl time.Duration) error {
	ok, err := c.conn.SetNX(ctx, watchKey(address), c.owner, ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return paywatch.ErrAlreadyWatched
	}

	return nil
}

// ReleaseWatch deletes the claim on address if this process still owns it.
func (c *client) ReleaseWatch(ctx context.Context, address string) error {
	return releaseWatchScript.Run(ctx, c.conn, []string{watchKey(address)}, c.owner).Err()
}

var _ paywatch.WatchGuard = (*client)(nil)
