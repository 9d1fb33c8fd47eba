package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/gemspell/gemspell/internal/domain"
)

// Progress prints one mark per declaration checked, rspec style: a green
// dot for a clean declaration, a red F for an offense. Events from parallel
// lints may arrive from several goroutines, so writes are serialized.
type Progress struct {
	mu      sync.Mutex
	w       io.Writer
	printed bool
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{w: w}
}

func (p *Progress) Checked(ev domain.CheckEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.printed = true
	if ev.OK {
		fmt.Fprint(p.w, passStyle.Render("."))
	} else {
		fmt.Fprint(p.w, failStyle.Render("F"))
	}
}

// Finish terminates the progress line. A run that printed nothing stays
// silent.
func (p *Progress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.printed {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w)
	}
}

// Discard swallows progress events, for quiet and JSON output modes.
type Discard struct{}

func (Discard) Checked(domain.CheckEvent) {}
