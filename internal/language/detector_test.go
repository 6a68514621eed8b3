package language

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-engineering/readmegen/internal/system"
)

func TestDetect_TopLevelOnly(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/project/index.js", []byte("console.log(1)"), 0644)
	mockFS.AddFile("/project/server.JS", []byte(""), 0644)
	mockFS.AddFile("/project/main.go", []byte("package main"), 0644)
	mockFS.AddFile("/project/package.json", []byte("{}"), 0644)
	mockFS.AddFile("/project/Dockerfile", []byte("FROM scratch"), 0644)
	mockFS.AddFile("/project/src/app.py", []byte("print(1)"), 0644)

	set := NewDetector(mockFS).Detect("/project")

	assert.Equal(t, Set{"Dockerfile", "Go", "JavaScript"}, set)
}

func TestDetect_DocsAndDataAreNotLanguages(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/project/README.md", []byte("# widget\n"), 0644)
	mockFS.AddFile("/project/package.json", []byte("{}"), 0644)
	mockFS.AddFile("/project/config.yaml", []byte("a: 1\n"), 0644)
	mockFS.AddFile("/project/.readmegen.toml", []byte(""), 0644)

	assert.Empty(t, NewDetector(mockFS).Detect("/project"))
}

func TestDetect_Shebang(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/project/run", []byte("#!/usr/bin/env node\nrequire('x')\n"), 0755)
	mockFS.AddFile("/project/build", []byte("#!/bin/bash -e\necho hi\n"), 0755)
	mockFS.AddFile("/project/tool", []byte("#!/usr/bin/env -S python3.11 -u\n"), 0755)
	mockFS.AddFile("/project/LICENSE", []byte("MIT License\n"), 0644)

	set := NewDetector(mockFS).Detect("/project")

	assert.Equal(t, Set{"JavaScript", "Python", "Shell"}, set)
}

func TestDetect_ClassificationFailureSwallowed(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/project/main.rs", []byte("fn main() {}"), 0644)
	mockFS.AddFile("/project/script", []byte("#!/bin/sh\n"), 0755)
	mockFS.PathErrs["/project/script"] = fs.ErrPermission

	set := NewDetector(mockFS).Detect("/project")

	assert.Equal(t, Set{"Rust"}, set)
}

func TestDetect_ListingFailure(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/project/main.go", nil, 0644)
	mockFS.ReadDirErr = fs.ErrPermission

	set := NewDetector(mockFS).Detect("/project")

	assert.NotNil(t, set)
	assert.Empty(t, set)
}

func TestDetect_MissingRoot(t *testing.T) {
	set := NewDetector(system.NewMockFS()).Detect("/nowhere")
	assert.Empty(t, set)
}

func TestDetect_Exclude(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/project/main.go", nil, 0644)
	mockFS.AddFile("/project/gen.pb.go", nil, 0644)
	mockFS.AddFile("/project/webpack.config.js", nil, 0644)

	set := NewDetector(mockFS, WithExclude([]string{"*.config.js"})).Detect("/project")

	assert.Equal(t, Set{"Go"}, set)
}

func TestDetect_Deterministic(t *testing.T) {
	mockFS := system.NewMockFS()
	for _, name := range []string{"a.ts", "b.rb", "c.go", "d.py", "e.sh"} {
		mockFS.AddFile("/project/"+name, nil, 0644)
	}

	d := NewDetector(mockFS)
	first := d.Detect("/project")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, d.Detect("/project"))
	}
}

func TestClassify(t *testing.T) {
	mockFS := system.NewMockFS()
	mockFS.AddFile("/p/Makefile", nil, 0644)
	mockFS.AddFile("/p/notes.txt", nil, 0644)
	mockFS.AddFile("/p/bin", []byte("no shebang"), 0644)

	d := NewDetector(mockFS)

	lang, ok, err := d.Classify("/p/Makefile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Makefile", lang)

	_, ok, err = d.Classify("/p/notes.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = d.Classify("/p/bin")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = d.Classify("/p/missing")
	assert.Error(t, err)
}

func TestWithTable(t *testing.T) {
	table, err := ParseTable([]byte("extensions:\n  .X: Xlang\n"))
	require.NoError(t, err)

	mockFS := system.NewMockFS()
	mockFS.AddFile("/project/a.x", nil, 0644)
	mockFS.AddFile("/project/b.go", nil, 0644)

	set := NewDetector(mockFS, WithTable(table)).Detect("/project")

	assert.Equal(t, Set{"Xlang"}, set)
}
