package tui

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gemspell/gemspell/internal/domain"
)

// WriteSummaryTable prints one row per linted manifest.
func WriteSummaryTable(w io.Writer, stats []domain.PathStat) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Manifest", "Gems", "Sources", "Offenses"})

	totalGems, totalSources, totalOffenses := 0, 0, 0
	for _, s := range stats {
		t.AppendRow(table.Row{s.Path, s.Dependencies, s.Sources, s.Offenses})
		totalGems += s.Dependencies
		totalSources += s.Sources
		totalOffenses += s.Offenses
	}
	t.AppendFooter(table.Row{"Total", totalGems, totalSources, totalOffenses})
	t.Render()
}

// WriteVocabTable prints the size of each loaded vocabulary.
func WriteVocabTable(w io.Writer, vocabs domain.Vocabularies) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Vocabulary", "Entries"})
	t.AppendRow(table.Row{"dependencies", vocabs.Dependencies.Len()})
	t.AppendRow(table.Row{"sources", vocabs.Sources.Len()})
	t.Render()
}
