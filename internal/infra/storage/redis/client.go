// Package redis provides Redis-backed storage for paywatch, currently the
// per-address watch claims shared by every replica.
package redis

import (
	"context"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client

	// owner identifies this process in the claims it writes.
	owner string
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and verifies the connection with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:  conn,
		owner: uuid.NewString(),
	}, nil
}
