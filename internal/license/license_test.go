package license

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/firefly-engineering/readmegen/internal/manifest"
)

type staticScanner struct {
	pkgs  []Package
	err   error
	calls int
}

func (s *staticScanner) Scan(context.Context, string, *manifest.Manifest) ([]Package, error) {
	s.calls++
	return s.pkgs, s.err
}

func TestResolver_Resolve(t *testing.T) {
	withLicense := &manifest.Manifest{Kind: manifest.KindNPM, Name: "widget", License: "Apache-2.0"}
	withoutLicense := &manifest.Manifest{Kind: manifest.KindNPM, Name: "widget"}

	tests := []struct {
		name           string
		scanner        *staticScanner
		manifest       *manifest.Manifest
		preferManifest bool
		want           string
		wantScan       bool
	}{
		{
			name:           "manifest license preferred",
			scanner:        &staticScanner{pkgs: []Package{{Name: "a", License: "ISC"}}},
			manifest:       withLicense,
			preferManifest: true,
			want:           "Apache-2.0",
		},
		{
			name:     "first scanned package when not preferring manifest",
			scanner:  &staticScanner{pkgs: []Package{{Name: "a", License: "ISC"}, {Name: "b", License: "MIT"}}},
			manifest: withLicense,
			want:     "ISC",
			wantScan: true,
		},
		{
			name:           "scan when manifest has no license",
			scanner:        &staticScanner{pkgs: []Package{{Name: "a", License: "BSD-2-Clause"}}},
			manifest:       withoutLicense,
			preferManifest: true,
			want:           "BSD-2-Clause",
			wantScan:       true,
		},
		{
			name:     "scan error falls back",
			scanner:  &staticScanner{err: errors.New("npx not found")},
			want:     "MIT",
			wantScan: true,
		},
		{
			name:     "empty result falls back",
			scanner:  &staticScanner{},
			want:     "MIT",
			wantScan: true,
		},
		{
			name:     "empty license field falls back",
			scanner:  &staticScanner{pkgs: []Package{{Name: "a", License: "  "}, {Name: "b", License: "ISC"}}},
			want:     "MIT",
			wantScan: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{Scanner: tt.scanner, Default: "MIT", PreferManifest: tt.preferManifest}
			got := r.Resolve(context.Background(), "/p", tt.manifest)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantScan, tt.scanner.calls > 0)
		})
	}
}

func TestResolver_NoScanner(t *testing.T) {
	r := &Resolver{Default: "Unlicense"}
	assert.Equal(t, "Unlicense", r.Resolve(context.Background(), "/p", nil))
}

func TestPackage_ID(t *testing.T) {
	assert.Equal(t, "express@4.18.2", Package{Name: "express", Version: "4.18.2"}.ID())
	assert.Equal(t, "local", Package{Name: "local"}.ID())
}
