// Package player steps through a generated trace.
//
// A Player holds the current trace and an index into it. The index is read
// and written atomically so a timer goroutine and a UI goroutine can share
// one Player. The trace itself is never modified; Reset swaps in a new one.
package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/san-kum/combviz/internal/trace"
)

const (
	MinSpeed     = 100
	MaxSpeed     = 980
	DefaultSpeed = 780
)

// Generator turns an input sequence into a trace.
type Generator func([]float64) (trace.Trace, error)

// Source supplies the input for each Reset.
type Source func() []float64

type Option func(*Player)

// WithSpeed sets the initial speed. Values are clamped to [MinSpeed, MaxSpeed].
func WithSpeed(speed int) Option {
	return func(p *Player) { p.speed.Store(int64(clampSpeed(speed))) }
}

// WithInput uses input for the first trace instead of asking the Source.
func WithInput(input []float64) Option {
	return func(p *Player) { p.initial = append([]float64(nil), input...) }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Player) { p.log = l }
}

type Player struct {
	gen Generator
	src Source
	log *slog.Logger

	initial []float64

	mu      sync.Mutex // serializes Reset
	tr      atomic.Pointer[trace.Trace]
	input   atomic.Pointer[[]float64]
	index   atomic.Int64
	playing atomic.Bool
	speed   atomic.Int64
}

var errNilFunc = errors.New("player: generator and source are required")

// New builds a Player and generates its first trace. The Player starts
// paused at index 0.
func New(gen Generator, src Source, opts ...Option) (*Player, error) {
	if gen == nil || src == nil {
		return nil, errNilFunc
	}
	p := &Player{gen: gen, src: src, log: slog.Default()}
	p.speed.Store(DefaultSpeed)
	for _, opt := range opts {
		opt(p)
	}

	input := p.initial
	if input == nil {
		input = src()
	}
	if err := p.load(input); err != nil {
		return nil, fmt.Errorf("generate initial trace: %w", err)
	}
	return p, nil
}

func (p *Player) load(input []float64) error {
	tr, err := p.gen(input)
	if err != nil {
		return err
	}
	in := append([]float64(nil), input...)
	p.playing.Store(false)
	p.input.Store(&in)
	p.tr.Store(&tr)
	p.index.Store(0)
	p.log.Debug("trace loaded", "size", len(in), "steps", len(tr))
	return nil
}

// Trace returns the current trace. Callers must treat it as read-only.
func (p *Player) Trace() trace.Trace {
	return *p.tr.Load()
}

// Input returns a copy of the sequence the current trace was generated from.
func (p *Player) Input() []float64 {
	return append([]float64(nil), *p.input.Load()...)
}

func (p *Player) Len() int { return len(p.Trace()) }

func (p *Player) Index() int {
	i := int(p.index.Load())
	if n := p.Len(); i >= n {
		return n - 1
	}
	return i
}

// Current returns the step at the current index.
func (p *Player) Current() trace.Step {
	return p.Trace().At(p.Index())
}

// Done reports whether the index is on the last step.
func (p *Player) Done() bool {
	return p.Index() >= p.Len()-1
}

// StepForward moves one step ahead. It reports false when already on the
// last step.
func (p *Player) StepForward() bool {
	last := int64(p.Len() - 1)
	for {
		cur := p.index.Load()
		if cur >= last {
			return false
		}
		if p.index.CompareAndSwap(cur, cur+1) {
			return true
		}
	}
}

// StepBackward moves one step back. It reports false when already on the
// first step.
func (p *Player) StepBackward() bool {
	for {
		cur := p.index.Load()
		if cur <= 0 {
			return false
		}
		if p.index.CompareAndSwap(cur, cur-1) {
			return true
		}
	}
}

// Seek moves to step i, clamped to the trace bounds.
func (p *Player) Seek(i int) int {
	if i < 0 {
		i = 0
	}
	if n := p.Len(); i >= n {
		i = n - 1
	}
	p.index.Store(int64(i))
	return i
}

// Play starts timed advancement. It does nothing on the last step.
func (p *Player) Play() {
	if p.Done() {
		return
	}
	p.playing.Store(true)
}

func (p *Player) Pause() { p.playing.Store(false) }

// Toggle flips between playing and paused and returns the new state.
func (p *Player) Toggle() bool {
	if p.playing.Load() {
		p.Pause()
	} else {
		p.Play()
	}
	return p.Playing()
}

func (p *Player) Playing() bool { return p.playing.Load() }

// Advance is one timer tick: when playing it steps forward, and it pauses
// once the last step is reached. It reports whether the index moved.
func (p *Player) Advance() bool {
	if !p.playing.Load() {
		return false
	}
	moved := p.StepForward()
	if p.Done() {
		p.Pause()
	}
	return moved
}

// Reset asks the Source for a new input, regenerates the trace and rewinds
// to a paused index 0. On error the current trace is kept.
func (p *Player) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.load(p.src()); err != nil {
		p.log.Warn("reset failed", "err", err)
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// Replay restarts the current trace from index 0 without generating a new one.
func (p *Player) Replay() {
	p.Pause()
	p.index.Store(0)
}

func (p *Player) Speed() int { return int(p.speed.Load()) }

// SetSpeed changes the speed, clamped to [MinSpeed, MaxSpeed], and returns
// the value stored.
func (p *Player) SetSpeed(speed int) int {
	speed = clampSpeed(speed)
	p.speed.Store(int64(speed))
	return speed
}

// Delay is the pause between two timed steps. Higher speed means shorter
// delay: 1001-speed milliseconds.
func (p *Player) Delay() time.Duration {
	return DelayFor(p.Speed())
}

// DelayFor maps a speed value to the delay between steps.
func DelayFor(speed int) time.Duration {
	return time.Duration(1001-clampSpeed(speed)) * time.Millisecond
}

func clampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// Run plays the trace on a timer, calling onStep after every move. It
// returns nil when playback pauses or reaches the end, and ctx.Err() when
// ctx is cancelled. The delay is re-read every tick so SetSpeed takes effect
// immediately.
func (p *Player) Run(ctx context.Context, onStep func(int, trace.Step)) error {
	p.Play()
	timer := time.NewTimer(p.Delay())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-timer.C:
		}

		if !p.Playing() {
			return nil
		}
		if p.Advance() && onStep != nil {
			onStep(p.Index(), p.Current())
		}
		if !p.Playing() {
			return nil
		}
		timer.Reset(p.Delay())
	}
}
