package license

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/firefly-engineering/readmegen/internal/manifest"
	"github.com/firefly-engineering/readmegen/internal/system"
)

// LicenseCheckerScanner runs the npm license-checker tool for production
// dependencies and decodes its JSON report.
type LicenseCheckerScanner struct {
	Executor system.CommandExecutor
}

// licenseCheckerArgs are passed to npx.
func licenseCheckerArgs(root string) []string {
	return []string{"--yes", "license-checker", "--production", "--json", "--start", root}
}

type checkerEntry struct {
	Licenses json.RawMessage `json:"licenses"`
}

// Scan implements Scanner.
func (s *LicenseCheckerScanner) Scan(ctx context.Context, root string, _ *manifest.Manifest) ([]Package, error) {
	out, err := s.Executor.Execute(ctx, root, "npx", licenseCheckerArgs(root)...)
	if err != nil {
		return nil, fmt.Errorf("license-checker failed: %w", err)
	}

	var report map[string]checkerEntry
	if err := json.Unmarshal(out, &report); err != nil {
		return nil, fmt.Errorf("failed to parse license-checker output: %w", err)
	}

	pkgs := make([]Package, 0, len(report))
	for id, entry := range report {
		name, version := splitID(id)
		pkgs = append(pkgs, Package{Name: name, Version: version, License: decodeLicenses(entry.Licenses)})
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].ID() < pkgs[j].ID() })
	return pkgs, nil
}

// splitID splits "name@version", keeping the leading "@" of scoped names.
func splitID(id string) (name, version string) {
	at := strings.LastIndexByte(id, '@')
	if at <= 0 {
		return id, ""
	}
	return id[:at], id[at+1:]
}

// decodeLicenses accepts a single license string or a list of them.
func decodeLicenses(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil || len(list) == 0 {
		return ""
	}
	if len(list) == 1 {
		return list[0]
	}
	return "(" + strings.Join(list, " OR ") + ")"
}
