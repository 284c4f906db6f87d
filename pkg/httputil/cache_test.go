package httputil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCache_GetSet(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	body := []byte("<html><body><h1>Time</h1></body></html>")
	n, err := c.Set("https://example.org/page", body)
	if err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if n == 0 {
		t.Error("Set() reported 0 bytes written")
	}

	var got []byte
	ok, err := c.Get("https://example.org/page", &got)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want true, nil", ok, err)
	}
	if string(got) != string(body) {
		t.Errorf("Get() = %q, want %q", got, body)
	}
}

func TestCache_Miss(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	var result []byte
	ok, err := c.Get("missing", &result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("Get() returned true for missing key")
	}
}

func TestCache_Expiration(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 10*time.Millisecond)

	if _, err := c.Set("key", "value"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var res string
	ok, err := c.Get("key", &res)
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v; want true, nil", ok, err)
	}

	time.Sleep(20 * time.Millisecond)

	ok, err = c.Get("key", &res)
	if !errors.Is(err, ErrExpired) {
		t.Errorf("got error %v, want ErrExpired", err)
	}
	if ok {
		t.Error("Get() returned true for expired key")
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c, _ := NewCache(t.TempDir(), 0)
	for _, k := range []string{"a", "b", "c"} {
		if _, err := c.Namespace("page:").Set(k, k); err != nil {
			t.Fatal(err)
		}
	}

	pages := c.Namespace("page:")
	if err := pages.Delete("a"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := pages.Delete("a"); err != nil {
		t.Errorf("second Delete() error: %v", err)
	}
	var v string
	if ok, _ := pages.Get("a", &v); ok {
		t.Error("deleted entry still present")
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear() removed %d entries, want 2", n)
	}
	if ok, _ := pages.Get("b", &v); ok {
		t.Error("Clear() left namespaced entries behind")
	}
}

func TestCache_ClearKeepsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	c, _ := NewCache(dir, 0)
	if _, err := c.Set("page", "body"); err != nil {
		t.Fatal(err)
	}
	foreign := []string{"notes.txt", strings.Repeat("A", 64), strings.Repeat("a", 63)}
	for _, name := range foreign {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("keep"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if n, err := c.Len(); err != nil || n != 1 {
		t.Errorf("Len() = %d, %v; want 1", n, err)
	}
	n, err := c.Clear()
	if err != nil || n != 1 {
		t.Errorf("Clear() = %d, %v; want 1", n, err)
	}
	for _, name := range foreign {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Clear() removed %s", name)
		}
	}
}

func TestCache_KeyStability(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)
	p1 := c.keyPath("test")
	p2 := c.keyPath("test")
	if p1 != p2 {
		t.Error("path should be deterministic")
	}
	if p1 == c.keyPath("other") {
		t.Error("different keys should produce different paths")
	}
}

func TestDefaultDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	c, err := NewCache("", time.Hour)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}
	if want := filepath.Join(xdg, DefaultDirName); c.Dir() != want {
		t.Errorf("Dir() = %s, want %s", c.Dir(), want)
	}
	if c.TTL() != time.Hour {
		t.Errorf("TTL() = %v, want 1h", c.TTL())
	}
}

func TestCache_Namespace(t *testing.T) {
	c, _ := NewCache(t.TempDir(), time.Hour)

	desc := c.Namespace("descriptions:")
	table := c.Namespace("table:")
	if _, err := desc.Set("page", "desc-data"); err != nil {
		t.Fatal(err)
	}
	if _, err := table.Set("page", "table-data"); err != nil {
		t.Fatal(err)
	}

	var got string
	if ok, err := desc.Get("page", &got); !ok || err != nil || got != "desc-data" {
		t.Errorf("desc.Get() = %v, %v, %q", ok, err, got)
	}
	if ok, err := table.Get("page", &got); !ok || err != nil || got != "table-data" {
		t.Errorf("table.Get() = %v, %v, %q", ok, err, got)
	}

	chained := c.Namespace("a:").Namespace("b:")
	if _, err := chained.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := c.Namespace("a:").Get("k", &got); ok {
		t.Error("value accessible without full namespace chain")
	}
	if ok, _ := c.Get("a:b:k", &got); !ok {
		t.Error("chained namespace should equal concatenated prefix")
	}

	if desc.Dir() != c.Dir() || desc.TTL() != c.TTL() {
		t.Error("namespace should share dir and TTL")
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()
	errTransient := errors.New("transient")
	errFatal := errors.New("fatal")

	calls := 0
	err := Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return Retryable(errTransient)
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Errorf("Retry() = %v after %d calls; want nil after 3", err, calls)
	}

	calls = 0
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return errFatal
	})
	if !errors.Is(err, errFatal) || calls != 1 {
		t.Errorf("non-retryable: %v after %d calls", err, calls)
	}

	calls = 0
	err = Retry(ctx, 2, time.Millisecond, func() error {
		calls++
		return Retryable(errTransient)
	})
	if !errors.Is(err, errTransient) || calls != 2 {
		t.Errorf("exhausted: %v after %d calls", err, calls)
	}
	if !IsRetryable(err) {
		t.Error("exhausted error should stay retryable")
	}

	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Hour, func() error {
		return Retryable(errors.New("down"))
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() = %v, want context.Canceled", err)
	}
}
