package tui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gemspell/gemspell/internal/adapters/outbound/tui"
	"github.com/gemspell/gemspell/internal/domain"
)

func sampleResult() *domain.LintResult {
	return &domain.LintResult{
		Offenses: []domain.Offense{
			domain.MisspelledDependency{Manifest: "Gemfile", Name: "railz", Suggestions: []string{"rails"}},
			domain.MisspelledDependency{Manifest: "Gemfile", Name: "sqlte3", Suggestions: []string{"sqlite3"}},
			domain.MisspelledSource{Manifest: "api/Gemfile", URI: "https://rubygemz.org/", Suggestions: []string{"https://rubygems.org/"}},
			domain.InvalidManifest{Manifest: "engines/billing.gemfile", Reason: "line 3: unexpected end"},
		},
		Stats: []domain.PathStat{
			{Path: "Gemfile", Dependencies: 5, Sources: 1, Offenses: 2},
			{Path: "api/Gemfile", Dependencies: 2, Sources: 2, Offenses: 1},
			{Path: "engines/billing.gemfile", Offenses: 1},
		},
	}
}

func cleanResult() *domain.LintResult {
	return &domain.LintResult{
		Stats: []domain.PathStat{
			{Path: "Gemfile", Dependencies: 4, Sources: 1},
		},
	}
}

func TestRenderReport_FailVerdict(t *testing.T) {
	output := tui.RenderReport(sampleResult())
	assert.Contains(t, output, "gemspell")
	assert.Contains(t, output, "4 offenses")
}

func TestRenderReport_PassVerdict(t *testing.T) {
	output := tui.RenderReport(cleanResult())
	assert.Contains(t, output, "✓ pass")
	assert.Contains(t, output, "No offenses found.")
	assert.Contains(t, output, "5 declarations in 1 manifests")
}

func TestRenderReport_ShowsManifests(t *testing.T) {
	output := tui.RenderReport(sampleResult())
	assert.Contains(t, output, "Gemfile")
	assert.Contains(t, output, "api/Gemfile")
	assert.Contains(t, output, "engines/billing.gemfile")
	assert.Contains(t, output, "5 gems, 1 sources")
}

func TestRenderReport_ShowsOffenseMessages(t *testing.T) {
	output := tui.RenderReport(sampleResult())
	assert.Contains(t, output, `gem "railz" is possibly misspelled, did you mean "rails"?`)
	assert.Contains(t, output, `source "https://rubygemz.org/" is possibly misspelled`)
	assert.Contains(t, output, "manifest could not be evaluated: line 3: unexpected end")
}

func TestRenderReport_ShowsKindTags(t *testing.T) {
	output := tui.RenderReport(sampleResult())
	assert.Contains(t, output, "gem ")
	assert.Contains(t, output, "source ")
	assert.Contains(t, output, "invalid")
}

func TestRenderReport_OffenseSummaryCounts(t *testing.T) {
	output := tui.RenderReport(sampleResult())
	assert.Contains(t, output, "Offenses")
	assert.Contains(t, output, "2 gems")
	assert.Contains(t, output, "1 sources")
	assert.Contains(t, output, "1 invalid")
}

func TestRenderReport_KeepsSessionOrder(t *testing.T) {
	output := tui.RenderReport(sampleResult())
	first := indexOf(output, `gem "railz"`)
	second := indexOf(output, `gem "sqlte3"`)
	third := indexOf(output, `source "https://rubygemz.org/"`)
	assert.True(t, first >= 0 && first < second, "offenses should keep session order")
	assert.True(t, second < third, "offenses should keep session order")
}

func TestRenderReport_StatusIndicators(t *testing.T) {
	output := tui.RenderReport(sampleResult())
	assert.Contains(t, output, "●", "should use ● indicators for manifests")
}

func TestRenderHistory_Empty(t *testing.T) {
	output := tui.RenderHistory(nil)
	assert.Contains(t, output, "No lint history found.")
}

func TestRenderHistory_ShowsRuns(t *testing.T) {
	entries := []domain.RunEntry{
		{
			Timestamp: time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
			Commit:    "0123456789abcdef",
			Paths:     []string{"Gemfile", "api/Gemfile"},
			Checked:   12,
			Offenses:  3,
		},
		{
			Timestamp: time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC),
			Commit:    "fedcba9876543210",
			Paths:     []string{"Gemfile", "api/Gemfile"},
			Checked:   12,
			Offenses:  0,
			Pass:      true,
		},
	}

	output := tui.RenderHistory(entries)
	assert.Contains(t, output, "Lint History")
	assert.Contains(t, output, "2026-03-10")
	assert.Contains(t, output, "2026-03-11")
	assert.Contains(t, output, "0123456")
	assert.Contains(t, output, "fedcba9")
	assert.Contains(t, output, "3 offenses")
	assert.Contains(t, output, "pass")
	assert.Contains(t, output, "2 manifests")
}

func TestRenderHistory_ShowsDelta(t *testing.T) {
	entries := []domain.RunEntry{
		{Timestamp: time.Now(), Offenses: 3},
		{Timestamp: time.Now(), Offenses: 1},
		{Timestamp: time.Now(), Offenses: 4},
	}

	output := tui.RenderHistory(entries)
	assert.Contains(t, output, "↓2")
	assert.Contains(t, output, "↑3")
}

func TestRenderHistory_MissingHashPlaceholder(t *testing.T) {
	entries := []domain.RunEntry{
		{Timestamp: time.Now(), Pass: true},
	}

	output := tui.RenderHistory(entries)
	assert.Contains(t, output, "·······")
}

func indexOf(s, substr string) int {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
