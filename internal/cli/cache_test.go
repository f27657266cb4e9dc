package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/matzehuels/funnelchart/pkg/cache"
)

func TestNewCache(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)
	c := New(&discard{}, LogInfo)

	store, err := c.newCache(false)
	if err != nil {
		t.Fatalf("newCache() error: %v", err)
	}
	fc, ok := store.(*cache.FileCache)
	if !ok {
		t.Fatalf("newCache() = %T, want *cache.FileCache", store)
	}
	if want := filepath.Join(xdg, "funnelchart"); fc.Dir() != want {
		t.Errorf("cache dir = %q, want %q", fc.Dir(), want)
	}

	store, err = c.newCache(true)
	if err != nil {
		t.Fatalf("newCache(noCache) error: %v", err)
	}
	if _, ok := store.(cache.NullCache); !ok {
		t.Errorf("newCache(noCache) = %T, want cache.NullCache", store)
	}
}

func TestCacheClearCommand(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	fc, err := cache.NewFileCache(filepath.Join(xdg, "funnelchart"))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, key := range []string{"artifact:a", "artifact:b"} {
		if err := fc.Set(ctx, key, []byte("<svg/>"), 0); err != nil {
			t.Fatal(err)
		}
	}

	root := New(&discard{}, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatalf("cache clear error: %v", err)
	}

	if _, hit, _ := fc.Get(ctx, "artifact:a"); hit {
		t.Error("entry survived cache clear")
	}
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }
