package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is an ordered list of profiles.
type Catalog []Profile

// catalogFile is the YAML document shape:
//
//	profiles:
//	  - name: iPhone 15 Pro
//	    window: {width: 393, height: 852}
//	    pixel_density: 3
//	    platform: ios
type catalogFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// Parse decodes a YAML catalog, normalizes defaults, and validates every
// entry.
func Parse(data []byte) (Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Profiles) == 0 {
		return nil, fmt.Errorf("catalog contains no profiles")
	}

	cat := make(Catalog, 0, len(f.Profiles))
	for _, p := range f.Profiles {
		p = p.normalize()
		if err := p.validate(); err != nil {
			return nil, err
		}
		cat = append(cat, p)
	}
	return cat, nil
}

// LoadFile reads and parses a YAML catalog file.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Merge overlays other onto c: entries with a matching name replace the
// existing ones in place, new names append in order. Neither input is
// modified.
func (c Catalog) Merge(other Catalog) Catalog {
	out := make(Catalog, len(c))
	copy(out, c)

	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.Name] = i
	}

	for _, p := range other {
		if i, ok := index[p.Name]; ok {
			out[i] = p
			continue
		}
		index[p.Name] = len(out)
		out = append(out, p)
	}
	return out
}

// Find returns the profile with the exact name.
func (c Catalog) Find(name string) (Profile, bool) {
	for _, p := range c {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Names returns the profile names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, p := range c {
		names[i] = p.Name
	}
	return names
}
