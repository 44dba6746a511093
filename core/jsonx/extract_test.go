package jsonx

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{
			name:   "bare object",
			input:  `{"a": 1}`,
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "object inside prose",
			input:  `Sure, here you go: {"a": 1} hope that helps`,
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "greedy object span keeps nesting",
			input:  `prefix {"a": {"b": 2}} suffix`,
			want:   `{"a": {"b": 2}}`,
			wantOK: true,
		},
		{
			name:   "fenced block with json tag",
			input:  "```json\n{\"a\": 1}\n```",
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "fenced block without tag",
			input:  "```\n{\"a\": 1}\n```",
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "fenced block with uppercase tag",
			input:  "```JSON\n{\"a\": 1}\n```",
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "fence takes priority over surrounding braces",
			input:  "{\"outside\": true}\n```json\n{\"inside\": true}\n```",
			want:   `{"inside": true}`,
			wantOK: true,
		},
		{
			name:   "first of two fenced blocks wins",
			input:  "```json\n{\"first\": 1}\n```\nand also\n```json\n{\"second\": 2}\n```",
			want:   `{"first": 1}`,
			wantOK: true,
		},
		{
			name:   "array span",
			input:  `the list is [1, 2, 3] as requested`,
			want:   `[1, 2, 3]`,
			wantOK: true,
		},
		{
			name:   "object takes priority over array",
			input:  `[1, 2] and {"a": 1}`,
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "BOM stripped",
			input:  "\ufeff{\"a\": 1}",
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "stray json line stripped inside fence",
			input:  "```\njson\n{\"a\": 1}\n```",
			want:   `{"a": 1}`,
			wantOK: true,
		},
		{
			name:   "no JSON at all",
			input:  "not json at all",
			wantOK: false,
		},
		{
			name:   "empty input",
			input:  "",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			input:  "   \n\t  ",
			wantOK: false,
		},
		{
			name:   "empty fenced block",
			input:  "```json\n```",
			wantOK: false,
		},
		{
			name:   "lone open brace",
			input:  "{",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Extract(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripArtifacts_XMLDeclaration(t *testing.T) {
	got := stripArtifacts(`<?xml version="1.0"?>{"a": 1}`)
	if got != `{"a": 1}` {
		t.Errorf("expected XML declaration stripped, got %q", got)
	}
}
