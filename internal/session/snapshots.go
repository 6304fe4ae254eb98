package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/studio316/booking-api/internal/models"
)

const keyPrefix = "session:"

// Snapshots stores the serialized identity of each live session, keyed by
// the token id. It is the server-side counterpart of the single saved
// identity record the client keeps across page reloads: written on
// login/register, removed on logout.
type Snapshots struct {
	cache Cache
	ttl   time.Duration
}

func NewSnapshots(cache Cache, ttl time.Duration) *Snapshots {
	return &Snapshots{cache: cache, ttl: ttl}
}

func (s *Snapshots) Save(ctx context.Context, tokenID string, u *models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, keyPrefix+tokenID, b, s.ttl)
}

func (s *Snapshots) Load(ctx context.Context, tokenID string) (*models.User, bool, error) {
	b, ok, err := s.cache.Get(ctx, keyPrefix+tokenID)
	if err != nil || !ok {
		return nil, false, err
	}

	var u models.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, false, err
	}
	return &u, true, nil
}

func (s *Snapshots) Remove(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, keyPrefix+tokenID)
}
