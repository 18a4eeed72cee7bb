package redis

import (
	"testing"

	"github.com/akulikov/pharmshop-backend/pkg/config"
)

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when url and address are both empty")
	}
}

func TestOptionsFromConfigAddress(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{Address: "localhost:6379", PoolSize: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" {
		t.Fatalf("unexpected addr %s", opts.Addr)
	}
	if opts.PoolSize != 5 {
		t.Fatalf("expected pool size applied, got %d", opts.PoolSize)
	}
}

func TestOptionsFromConfigURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://:secret@cache.internal:6380/2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "cache.internal:6380" || opts.DB != 2 {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestAccessSessionKeyNamespaced(t *testing.T) {
	c := &Client{}
	if got := c.AccessSessionKey("abc"); got != "ps:session:access:abc" {
		t.Fatalf("unexpected key %s", got)
	}
}
