package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/epntex/pkg/config"
	"github.com/matzehuels/epntex/pkg/httputil"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir(config.Default())
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir(config.Default())
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(xdg, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Dir = "/srv/epntex-cache"
	if dir, _ := cacheDir(cfg); dir != cfg.Cache.Dir {
		t.Errorf("cacheDir() = %q, want %q", dir, cfg.Cache.Dir)
	}
}

func TestCacheCommands(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\nttl = \"2h\"\n")

	cache, err := httputil.NewCache(dir, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b"} {
		if _, err := cache.Set(k, k); err != nil {
			t.Fatal(err)
		}
	}

	stdout, _, err := execute(t, "--config", cfg, "cache", "path")
	if err != nil {
		t.Fatalf("cache path error: %v", err)
	}
	if strings.TrimSpace(stdout) != dir {
		t.Errorf("cache path = %q, want %q", stdout, dir)
	}

	stdout, _, err = execute(t, "--config", cfg, "cache", "info")
	if err != nil {
		t.Fatalf("cache info error: %v", err)
	}
	for _, want := range []string{dir, "2h0m0s", "2"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("cache info missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, err = execute(t, "--config", cfg, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(stdout, "Cleared 2 cached pages") {
		t.Errorf("cache clear output = %q", stdout)
	}
	if files, _ := os.ReadDir(dir); len(files) != 0 {
		t.Errorf("cache clear left %d files", len(files))
	}
}

func TestCacheClearEmpty(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "never-created")
	cfg := writeConfig(t, "[cache]\ndir = \""+filepath.ToSlash(missing)+"\"\n")

	stdout, _, err := execute(t, "--config", cfg, "cache", "clear")
	if err != nil {
		t.Fatalf("cache clear error: %v", err)
	}
	if !strings.Contains(stdout, "Cache is empty") {
		t.Errorf("cache clear output = %q", stdout)
	}
}
