package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/combviz/internal/trace"
)

// Role is how one array position is drawn for a step.
type Role int

const (
	RoleNeutral Role = iota
	RoleCompare
	RoleSwap
	RoleComplete
)

func (r Role) String() string {
	switch r {
	case RoleCompare:
		return "compare"
	case RoleSwap:
		return "swap"
	case RoleComplete:
		return "complete"
	default:
		return "neutral"
	}
}

// Highlight maps a step and a position to its role. A complete step
// highlights every position; compare and swap highlight their pair.
func Highlight(s trace.Step, idx int) Role {
	switch s.Kind {
	case trace.KindComplete:
		return RoleComplete
	case trace.KindCompare:
		if s.Highlights(idx) {
			return RoleCompare
		}
	case trace.KindSwap:
		if s.Highlights(idx) {
			return RoleSwap
		}
	}
	return RoleNeutral
}

// RoleColor returns the bar colour for r.
func (t Theme) RoleColor(r Role) lipgloss.Color {
	switch r {
	case RoleCompare:
		return t.Compare
	case RoleSwap:
		return t.Swap
	case RoleComplete:
		return t.Complete
	default:
		return t.Neutral
	}
}
