package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KJ-GM/responsive-csx/pkg/profile"
)

// WriteAll renders one chart per profile into dir, named after the
// profile (e.g. "iphone-15-pro.svg"). Profiles render concurrently; the
// first failure cancels nothing already written but is reported.
func WriteAll(dir string, cat profile.Catalog, sizes []float64) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	var g errgroup.Group
	for _, p := range cat {
		g.Go(func() error {
			path := filepath.Join(dir, slug(p.Name)+".svg")
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create %s: %w", path, err)
			}
			defer f.Close()

			if err := WriteChart(f, p, sizes); err != nil {
				return fmt.Errorf("render %s: %w", p.Name, err)
			}
			return f.Close()
		})
	}
	return g.Wait()
}

// slug lowercases a profile name into a safe file stem.
func slug(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
