package tui

import tea "github.com/charmbracelet/bubbletea"

// frameDriver schedules one tick at a time.
// Every Start or Stop bumps the generation, so ticks already in flight
// from an earlier loop are recognised and dropped.
type frameDriver struct {
	rate    int
	gen     int
	running bool
}

func newFrameDriver(rate int) frameDriver {
	return frameDriver{rate: rate}
}

// Start begins a new loop. Call Next for its first tick.
func (d *frameDriver) Start() {
	d.gen++
	d.running = true
}

// Stop ends the current loop. Pending ticks become stale.
func (d *frameDriver) Stop() {
	d.gen++
	d.running = false
}

// Accept reports whether msg belongs to the running loop.
func (d frameDriver) Accept(msg TickMsg) bool {
	return d.running && msg.Gen == d.gen
}

// Next schedules the following tick of the running loop.
func (d frameDriver) Next() tea.Cmd {
	if !d.running {
		return nil
	}
	return tickCmd(d.rate, d.gen)
}

// Running reports whether the loop is scheduling ticks.
func (d frameDriver) Running() bool {
	return d.running
}
