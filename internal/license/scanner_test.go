package license

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-engineering/readmegen/internal/manifest"
	"github.com/firefly-engineering/readmegen/internal/system"
)

func TestNodeModulesScanner(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/p/node_modules/express/package.json",
		[]byte(`{"name": "express", "version": "4.18.2", "license": "MIT"}`), 0644)
	mockFS.AddFile("/p/node_modules/@scope/util/package.json",
		[]byte(`{"name": "@scope/util", "version": "1.0.0", "license": {"type": "ISC"}}`), 0644)
	mockFS.AddFile("/p/node_modules/broken/package.json", []byte(`{`), 0644)
	mockFS.AddFile("/p/node_modules/jest/package.json",
		[]byte(`{"name": "jest", "version": "29.0.0", "license": "MIT"}`), 0644)

	m := &manifest.Manifest{
		Kind:            manifest.KindNPM,
		Name:            "widget",
		Version:         "0.1.0",
		License:         "Apache-2.0",
		Dependencies:    []string{"@scope/util", "broken", "express", "not-installed"},
		DevDependencies: []string{"jest"},
	}

	s := &NodeModulesScanner{FS: mockFS}
	pkgs, err := s.Scan(context.Background(), "/p", m)
	require.NoError(t, err)

	ids := make([]string, len(pkgs))
	for i, p := range pkgs {
		ids[i] = p.ID()
	}
	assert.Equal(t, []string{"@scope/util@1.0.0", "express@4.18.2", "widget@0.1.0"}, ids)
	assert.Equal(t, "ISC", pkgs[0].License)
	assert.Equal(t, "Apache-2.0", pkgs[2].License)
}

func TestNodeModulesScanner_TraversalStaysInside(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/p/secret/package.json", []byte(`{"name": "secret", "license": "PROPRIETARY"}`), 0644)

	m := &manifest.Manifest{Kind: manifest.KindNPM, Dependencies: []string{"../secret"}}

	pkgs, err := (&NodeModulesScanner{FS: mockFS}).Scan(context.Background(), "/p", m)
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestNodeModulesScanner_NonNPM(t *testing.T) {
	s := &NodeModulesScanner{FS: system.NewMockFS()}

	pkgs, err := s.Scan(context.Background(), "/p", nil)
	require.NoError(t, err)
	assert.Empty(t, pkgs)

	pkgs, err = s.Scan(context.Background(), "/p", &manifest.Manifest{Kind: manifest.KindGo, Name: "x"})
	require.NoError(t, err)
	assert.Empty(t, pkgs)
}

func TestLicenseCheckerScanner(t *testing.T) {
	exec := system.NewMockExecutor()
	exec.AddResponse("npx", []byte(`{
		"widget@0.1.0": {"licenses": "Apache-2.0", "repository": "https://github.com/acme/widget"},
		"@scope/util@1.0.0": {"licenses": ["MIT", "ISC"]},
		"express@4.18.2": {"licenses": "MIT"}
	}`), nil)

	s := &LicenseCheckerScanner{Executor: exec}
	pkgs, err := s.Scan(context.Background(), "/p", nil)
	require.NoError(t, err)

	require.Len(t, pkgs, 3)
	assert.Equal(t, Package{Name: "@scope/util", Version: "1.0.0", License: "(MIT OR ISC)"}, pkgs[0])
	assert.Equal(t, "express@4.18.2", pkgs[1].ID())
	assert.Equal(t, "widget@0.1.0", pkgs[2].ID())

	cmd, ok := exec.LastCommand()
	require.True(t, ok)
	assert.Equal(t, "/p", cmd.Dir)
	assert.Equal(t, "npx --yes license-checker --production --json --start /p", cmd.String())
}

func TestLicenseCheckerScanner_Errors(t *testing.T) {
	t.Run("command failure", func(t *testing.T) {
		exec := system.NewMockExecutor()
		exec.AddResponse("npx", nil, errors.New("exit status 1"))

		_, err := (&LicenseCheckerScanner{Executor: exec}).Scan(context.Background(), "/p", nil)
		assert.ErrorContains(t, err, "license-checker failed")
	})

	t.Run("bad output", func(t *testing.T) {
		exec := system.NewMockExecutor()
		exec.AddResponse("npx", []byte("npm WARN something"), nil)

		_, err := (&LicenseCheckerScanner{Executor: exec}).Scan(context.Background(), "/p", nil)
		assert.ErrorContains(t, err, "failed to parse license-checker output")
	})
}

func TestSplitID(t *testing.T) {
	tests := []struct {
		id, name, version string
	}{
		{"express@4.18.2", "express", "4.18.2"},
		{"@scope/util@1.0.0", "@scope/util", "1.0.0"},
		{"@scope/util", "@scope/util", ""},
		{"plain", "plain", ""},
	}
	for _, tt := range tests {
		name, version := splitID(tt.id)
		assert.Equal(t, tt.name, name, tt.id)
		assert.Equal(t, tt.version, version, tt.id)
	}
}
