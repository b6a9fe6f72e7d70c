package tui

import (
	"sync/atomic"

	tea "charm.land/bubbletea/v2"

	"github.com/otterbagel/cardiolog/internal/xsync"
)

// ProgramRenderer bridges scheduler pushes into the running bubbletea
// program. The scheduler is constructed before the program exists, so
// the program is attached afterwards; pushes before attachment are
// dropped (there is no screen to reflect them on yet).
type ProgramRenderer struct {
	program atomic.Pointer[tea.Program]
}

var _ xsync.Renderer = (*ProgramRenderer)(nil)

func NewProgramRenderer() *ProgramRenderer {
	return &ProgramRenderer{}
}

func (r *ProgramRenderer) Attach(p *tea.Program) {
	r.program.Store(p)
}

func (r *ProgramRenderer) RenderConnection(connected bool) {
	if p := r.program.Load(); p != nil {
		p.Send(ConnectionMsg{Connected: connected})
	}
}

func (r *ProgramRenderer) RenderTotals(totals xsync.Snapshot) {
	if p := r.program.Load(); p != nil {
		p.Send(TotalsMsg{Totals: totals})
	}
}
