package cli

import (
	"fmt"
	"os"
	"time"
)

// progressPrinter writes an in-place counter to stderr on a TTY and
// stays silent otherwise.
type progressPrinter struct {
	label   string
	total   int
	started time.Time
	enabled bool
}

func newProgressPrinter(label string, total int) *progressPrinter {
	return &progressPrinter{
		label:   label,
		total:   total,
		started: time.Now(),
		enabled: progressEnabled(),
	}
}

func progressEnabled() bool {
	if _, ok := os.LookupEnv("ARGGEN_NO_PROGRESS"); ok {
		return false
	}
	if _, ok := os.LookupEnv("NO_PROGRESS"); ok {
		return false
	}
	return hasTTY()
}

func (p *progressPrinter) update(done, total int) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "\r%s... %d/%d", p.label, done, total)
}

func (p *progressPrinter) done() {
	if !p.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "\r%s... done (%s)\n", p.label, formatDuration(time.Since(p.started)))
}

func (p *progressPrinter) fail() {
	if !p.enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "\r%s... failed\n", p.label)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return d.Round(10 * time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
