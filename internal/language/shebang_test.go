package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpreter(t *testing.T) {
	tests := []struct {
		content string
		want    string
		ok      bool
	}{
		{"#!/bin/sh\n", "sh", true},
		{"#!/usr/bin/env node\n", "node", true},
		{"#! /usr/bin/python3 -u\nimport os", "python3", true},
		{"#!/usr/bin/env -S deno run --allow-net\n", "deno", true},
		{"#!/usr/bin/env FOO=1 ruby\n", "ruby", true},
		{"#!/usr/bin/env\n", "", false},
		{"#!\n", "", false},
		{"#!/bin/sh 'unterminated\n", "", false},
		{"echo hi\n", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			got, ok := interpreter([]byte(tt.content))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTable_ByInterpreter(t *testing.T) {
	table := DefaultTable()

	lang, ok := table.byInterpreter("python3.11")
	assert.True(t, ok)
	assert.Equal(t, "Python", lang)

	lang, ok = table.byInterpreter("node")
	assert.True(t, ok)
	assert.Equal(t, "JavaScript", lang)

	_, ok = table.byInterpreter("awk")
	assert.False(t, ok)
}
