package console

import (
	"fmt"
	"io"
	"sync"
)

// Printer writes operator-facing lines. It implements ports.Announcer.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Announce(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, line)
}

func (p *Printer) prompt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.w, "> ")
}
