// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"strings"
	"testing"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name       string
		keyword    string
		categories []string
		want       string
	}{
		{
			name:    "single token gets wildcard suffix",
			keyword: "laser",
			want:    "(ti:laser*+OR+abs:laser*)",
		},
		{
			name:    "existing wildcard kept verbatim",
			keyword: "topo*",
			want:    "(ti:topo*+OR+abs:topo*)",
		},
		{
			name:    "phrase is quoted and percent-encoded",
			keyword: "neutral atom",
			want:    "(ti:%22neutral+atom%22+OR+abs:%22neutral+atom%22)",
		},
		{
			name:       "categories AND the keyword clause",
			keyword:    "laser",
			categories: []string{"physics.optics"},
			want:       "(cat:physics.optics)+AND+(ti:laser*+OR+abs:laser*)",
		},
		{
			name:       "multiple categories are OR-combined",
			keyword:    "qubit",
			categories: []string{"quant-ph", "physics.atom-ph"},
			want:       "(cat:quant-ph+OR+cat:physics.atom-ph)+AND+(ti:qubit*+OR+abs:qubit*)",
		},
		{
			name:       "blank categories are dropped",
			keyword:    "qubit",
			categories: []string{"", "  ", "quant-ph"},
			want:       "(cat:quant-ph)+AND+(ti:qubit*+OR+abs:qubit*)",
		},
		{
			name:    "keyword is trimmed before classification",
			keyword: "  laser  ",
			want:    "(ti:laser*+OR+abs:laser*)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildQuery(tt.keyword, tt.categories)
			if err != nil {
				t.Fatalf("BuildQuery() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildQueryEmptyKeyword(t *testing.T) {
	for _, kw := range []string{"", "   ", "\t"} {
		if _, err := BuildQuery(kw, nil); err == nil {
			t.Errorf("BuildQuery(%q) expected error, got nil", kw)
		}
	}
}

func TestBuildQueryDeterministic(t *testing.T) {
	a, _ := BuildQuery("neutral atom", []string{"quant-ph"})
	b, _ := BuildQuery("neutral atom", []string{"quant-ph"})
	if a != b {
		t.Errorf("BuildQuery not deterministic: %q vs %q", a, b)
	}
	if !strings.Contains(a, "%22") {
		t.Errorf("phrase query %q should contain encoded quotes", a)
	}
}
