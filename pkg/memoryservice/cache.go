package memoryservice

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedClient is a read-through decorator over Client. Users and sessions
// fetched from the remote service are kept in a TTL cache; writes and
// deletes invalidate their entries. Only successful lookups are cached, so
// ErrNotFound is always re-checked against the service.
type CachedClient struct {
	*Client
	cache *cache.Cache
}

func NewCachedClient(client *Client) *CachedClient {
	// Default expiration of 1 hour, expired items purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &CachedClient{
		Client: client,
		cache:  c,
	}
}

func (c *CachedClient) GetUser(ctx context.Context, userID string) (*User, error) {
	if x, found := c.cache.Get("user:" + userID); found {
		return x.(*User), nil
	}

	user, err := c.Client.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.cache.Set("user:"+userID, user, cache.DefaultExpiration)
	return user, nil
}

func (c *CachedClient) UpdateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	user, err := c.Client.UpdateUser(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Set("user:"+req.UserID, user, cache.DefaultExpiration)
	return user, nil
}

func (c *CachedClient) DeleteUser(ctx context.Context, userID string) error {
	if err := c.Client.DeleteUser(ctx, userID); err != nil {
		return err
	}
	c.cache.Delete("user:" + userID)
	return nil
}

func (c *CachedClient) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	if x, found := c.cache.Get("session:" + sessionID); found {
		return x.(*Session), nil
	}

	session, err := c.Client.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.cache.Set("session:"+sessionID, session, cache.DefaultExpiration)
	return session, nil
}

func (c *CachedClient) AddSession(ctx context.Context, userID string, metadata map[string]interface{}) (*Session, error) {
	session, err := c.Client.AddSession(ctx, userID, metadata)
	if err != nil {
		return nil, err
	}
	c.cache.Set("session:"+session.SessionID, session, cache.DefaultExpiration)
	return session, nil
}
