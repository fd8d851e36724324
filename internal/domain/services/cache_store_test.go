package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, InterfaceRedisService) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisServiceWithClient(client)
}

func TestRedisService(t *testing.T) {
	ctx := context.Background()
	mr, svc := newTestRedis(t)

	t.Run("miss", func(t *testing.T) {
		_, found, err := svc.GetBytes(ctx, "absent")
		if err != nil || found {
			t.Fatalf("GetBytes(absent) = %v, %v", found, err)
		}
	})

	t.Run("expiry", func(t *testing.T) {
		if err := svc.SetBytes(ctx, "short", []byte("x"), time.Second); err != nil {
			t.Fatalf("SetBytes returned error: %v", err)
		}
		mr.FastForward(2 * time.Second)
		if _, found, _ := svc.GetBytes(ctx, "short"); found {
			t.Fatal("expected key to expire")
		}
	})

	t.Run("delete by prefix", func(t *testing.T) {
		for i := 0; i < 150; i++ {
			if err := svc.SetBytes(ctx, fmt.Sprintf("cache:residents:%d", i), []byte("x"), time.Minute); err != nil {
				t.Fatalf("SetBytes returned error: %v", err)
			}
		}
		if err := svc.SetBytes(ctx, "cache:users", []byte("x"), time.Minute); err != nil {
			t.Fatalf("SetBytes returned error: %v", err)
		}

		deleted, err := svc.DeleteByPrefix(ctx, "cache:residents:")
		if err != nil {
			t.Fatalf("DeleteByPrefix returned error: %v", err)
		}
		if deleted != 150 {
			t.Fatalf("expected 150 deleted keys, got %d", deleted)
		}
		if !mr.Exists("cache:users") {
			t.Fatal("unrelated key was deleted")
		}
	})

	t.Run("delete by prefix without matches", func(t *testing.T) {
		deleted, err := svc.DeleteByPrefix(ctx, "cache:absent:")
		if err != nil || deleted != 0 {
			t.Fatalf("DeleteByPrefix = %d, %v", deleted, err)
		}
	})

	if err := svc.Ping(ctx); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}

func TestCacheStores(t *testing.T) {
	_, redisService := newTestRedis(t)
	stores := map[string]InterfaceCacheStore{
		"memory": NewMemoryCacheStore(),
		"redis":  NewRedisCacheStore(redisService),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store.Set(ctx, "cache:/residents", []byte(`[]`), time.Minute)
			store.Set(ctx, "cache:/users", []byte(`[]`), time.Minute)

			if got, ok := store.Get(ctx, "cache:/residents"); !ok || string(got) != "[]" {
				t.Fatalf("Get = %q, %v", got, ok)
			}

			store.Purge(ctx, "cache:/residents")
			if _, ok := store.Get(ctx, "cache:/residents"); ok {
				t.Fatal("expected purged entry to miss")
			}
			if _, ok := store.Get(ctx, "cache:/users"); !ok {
				t.Fatal("purge removed an unrelated entry")
			}
		})
	}
}

func TestMemoryCacheStoreExpiry(t *testing.T) {
	store := NewMemoryCacheStore()
	ctx := context.Background()

	store.Set(ctx, "gone", []byte("x"), -time.Second)
	if _, ok := store.Get(ctx, "gone"); ok {
		t.Fatal("expected expired entry to miss")
	}

	store.Set(ctx, "kept", []byte("x"), time.Minute)
	if store.Len() != 1 {
		t.Fatalf("expected expired entries to be dropped on write, have %d", store.Len())
	}
}
