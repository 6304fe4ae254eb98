package session

import (
	"context"
	"testing"
	"time"

	"github.com/studio316/booking-api/internal/models"
)

func TestMemoryCacheSetGetDelete(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("miss: ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(v) != "v" {
		t.Fatalf("get: v=%q ok=%v err=%v", v, ok, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("deleted key still present")
	}
	// Deleting again is a no-op.
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("repeat delete: %v", err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Fatal("expired entry still readable")
	}
}

func TestSnapshotsRoundtrip(t *testing.T) {
	s := NewSnapshots(NewMemory(), time.Hour)
	ctx := context.Background()

	u := &models.User{
		ID:      "user1",
		Name:    "John Smith",
		Email:   "john@example.com",
		IsAdmin: false,
	}
	if err := s.Save(ctx, "token-a", u); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := s.Load(ctx, "token-a")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got.ID != u.ID || got.Email != u.Email || got.Name != u.Name {
		t.Fatalf("snapshot mismatch: %+v", got)
	}

	if _, ok, _ := s.Load(ctx, "token-b"); ok {
		t.Fatal("unknown token must miss")
	}

	if err := s.Remove(ctx, "token-a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.Load(ctx, "token-a"); ok {
		t.Fatal("removed snapshot still loads")
	}
}
