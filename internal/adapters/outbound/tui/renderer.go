package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gemspell/gemspell/internal/domain"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a finished lint run. Offenses keep the order the
// session produced them in.
func RenderReport(result *domain.LintResult) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("gemspell")
	subtitle := dimStyle.Render("Dependency Spell Check")
	verdict := passStyle.Bold(true).Render("✓ pass")
	if !result.Pass() {
		verdict = failStyle.Bold(true).Render(fmt.Sprintf("✗ %d offenses", len(result.Offenses)))
	}
	checked := dimStyle.Render(fmt.Sprintf("%d declarations in %d manifests", result.Checked(), len(result.Stats)))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + verdict + "  " + checked))
	b.WriteString("\n\n")

	// ── Manifests ──
	for _, stat := range result.Stats {
		renderPathStat(&b, stat)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Offenses ──
	if len(result.Offenses) > 0 {
		gems, sources, invalid := countKinds(result.Offenses)
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Offenses"))
		b.WriteString("  ")
		if gems > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d gems", gems)))
			b.WriteString("  ")
		}
		if sources > 0 {
			b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d sources", sources)))
			b.WriteString("  ")
		}
		if invalid > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d invalid", invalid)))
		}
		b.WriteString("\n\n")

		for _, o := range result.Offenses {
			renderOffense(&b, o)
		}
	} else {
		b.WriteString("  " + passStyle.Render("No offenses found.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderPathStat(b *strings.Builder, stat domain.PathStat) {
	var icon string
	switch {
	case stat.Offenses == 0:
		icon = passStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}

	name := titleStyle.Render(padRight(shortenPath(stat.Path), 36))
	counts := dimStyle.Render(fmt.Sprintf("%d gems, %d sources", stat.Dependencies, stat.Sources))

	if stat.Offenses > 0 {
		fmt.Fprintf(b, "  %s %s %s  %s\n", icon, name, counts, failStyle.Render(fmt.Sprintf("%d offenses", stat.Offenses)))
	} else {
		fmt.Fprintf(b, "  %s %s %s\n", icon, name, counts)
	}
}

func renderOffense(b *strings.Builder, o domain.Offense) {
	tag := kindTag(o)
	file := shortenPath(o.Path())

	fmt.Fprintf(b, "    %s %s\n", tag, fileStyle.Render(file))
	fmt.Fprintf(b, "            %s\n", dimStyle.Render(o.Message()))
}

func kindTag(o domain.Offense) string {
	switch o.(type) {
	case domain.MisspelledDependency:
		return errorTagStyle.Render("gem    ")
	case domain.MisspelledSource:
		return warnTagStyle.Render("source ")
	case domain.InvalidManifest:
		return errorTagStyle.Render("invalid")
	default:
		panic(fmt.Sprintf("unhandled offense kind %T", o))
	}
}

func countKinds(offenses []domain.Offense) (gems, sources, invalid int) {
	for _, o := range offenses {
		switch o.(type) {
		case domain.MisspelledDependency:
			gems++
		case domain.MisspelledSource:
			sources++
		case domain.InvalidManifest:
			invalid++
		default:
			panic(fmt.Sprintf("unhandled offense kind %T", o))
		}
	}
	return
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RenderHistory formats recorded lint runs for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No lint history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Lint History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.Commit
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		verdict := passStyle.Render("pass")
		if !e.Pass {
			verdict = failStyle.Render(fmt.Sprintf("%d offenses", e.Offenses))
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(e.Timestamp.Format("2006-01-02")),
			faintStyle.Render(hash),
			verdict,
			infoTagStyle.Render(fmt.Sprintf("%d manifests", len(e.Paths))),
		)

		if i > 0 {
			diff := e.Offenses - entries[i-1].Offenses
			if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
