// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"context"
	"testing"

	"github.com/pdiddy/arxiv-digest/pkg/types"
)

func testCfg(model string) types.EnrichConfig {
	return types.EnrichConfig{Enabled: true, Model: model, APIKey: "test-key"}
}

func TestNoopSummarize(t *testing.T) {
	got, err := Noop{}.Summarize(context.Background(), "Title", "Abstract")
	if err != nil {
		t.Fatalf("Noop.Summarize() error = %v", err)
	}
	if got != "" {
		t.Errorf("Noop.Summarize() = %q, want empty", got)
	}
}

func TestNewOpenAIDefaults(t *testing.T) {
	o := NewOpenAI(testCfg(""))
	if o.model != defaultModel {
		t.Errorf("model = %q, want default %q", o.model, defaultModel)
	}

	o = NewOpenAI(testCfg("gpt-4o-mini"))
	if string(o.model) != "gpt-4o-mini" {
		t.Errorf("model = %q, want configured model", o.model)
	}
}
