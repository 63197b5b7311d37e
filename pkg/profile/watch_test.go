package profile_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/KJ-GM/responsive-csx/pkg/profile"
)

const watchYAML = `
profiles:
  - name: Watched Phone
    window: {width: 390, height: 844}
`

const watchYAMLv2 = `
profiles:
  - name: Watched Phone
    window: {width: 430, height: 932}
`

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	writeCatalog(t, path, watchYAML)

	var mu sync.Mutex
	var reloads []profile.Reload

	stop, err := profile.Watch(path, 10*time.Millisecond, nil, func(r profile.Reload) {
		mu.Lock()
		reloads = append(reloads, r)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer stop()

	writeCatalog(t, path, watchYAMLv2)

	deadline := time.Now().Add(3 * time.Second)
	for {
		mu.Lock()
		n := len(reloads)
		mu.Unlock()
		if n > 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("no reload delivered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	mu.Lock()
	last := reloads[len(reloads)-1]
	mu.Unlock()
	if last.Err != nil {
		t.Fatalf("reload error: %v", last.Err)
	}
	p, ok := last.Catalog.Find("Watched Phone")
	if !ok {
		t.Fatal("reloaded catalog missing profile")
	}
	if p.Window.Width != 430 {
		t.Errorf("reloaded width = %g, want 430", p.Window.Width)
	}
}

func TestWatchReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	writeCatalog(t, path, watchYAML)

	errs := make(chan error, 1)
	stop, err := profile.Watch(path, 10*time.Millisecond, nil, func(r profile.Reload) {
		if r.Err != nil {
			select {
			case errs <- r.Err:
			default:
			}
		}
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer stop()

	writeCatalog(t, path, "profiles: []")

	select {
	case <-errs:
	case <-time.After(3 * time.Second):
		t.Fatal("broken catalog produced no error reload")
	}
}

func TestWatchStopPreventsDelivery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	writeCatalog(t, path, watchYAML)

	var mu sync.Mutex
	calls := 0
	stop, err := profile.Watch(path, 10*time.Millisecond, nil, func(profile.Reload) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	stop()
	writeCatalog(t, path, watchYAMLv2)
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Errorf("callback ran %d times after stop", calls)
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := profile.Watch("/nonexistent-dir-for-rsx/profiles.yaml", 0, nil, func(profile.Reload) {})
	if err == nil {
		t.Fatal("Watch accepted a missing directory")
	}
}
