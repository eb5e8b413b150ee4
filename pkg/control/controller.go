// Package control wraps a simulation engine in a thread-safe controller: a
// state machine over Idle, Running, Paused and Stopped plus a dedicated
// stepping goroutine that drives generations at a target rate while Running.
// Every other access to the engine goes through the same mutex, so callers
// on any goroutine only ever observe fully committed generations.
package control

import (
	"errors"
	"fmt"
	"sync"

	"sparselife/internal/core"
	simcore "sparselife/pkg/core"
	"sparselife/pkg/sims/life"
)

// ErrInvalidTransition marks a controller call that is not legal in the
// current phase, such as a manual Step while the run loop is active.
var ErrInvalidTransition = errors.New("invalid controller transition")

// Phase is a controller state-machine state.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseStopped
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Engine is the simulation surface the controller serializes access to.
// *life.Engine is the one concrete implementation.
type Engine interface {
	Step()
	Reset()
	Clear()
	CreateCell(x, y int32) error
	DestroyCell(x, y int32) error
	IsAlive(x, y int32) bool
	NeighborCountAt(x, y int32) uint8
	CellsInRegion(minX, maxX, minY, maxY int32) []simcore.Position
	State() life.GridState
}

// Controller owns an engine and serializes all access behind one mutex. The
// lock is held for the duration of a single step or query, never across
// calls, so stepping cannot starve queries for longer than one generation's
// computation.
type Controller struct {
	mu    sync.Mutex
	eng   Engine
	phase Phase
	rate  int

	// cancel ends the current run loop at the next step boundary; done is
	// closed by the loop on exit. Both are replaced on every Start.
	cancel chan struct{}
	done   chan struct{}
}

// New returns an Idle controller driving eng at tps generations per second
// while Running.
func New(eng Engine, tps int) *Controller {
	return &Controller{eng: eng, phase: PhaseIdle, rate: tps}
}

// Phase returns the current state-machine phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// SetRate changes the target stepping rate. A running loop picks the new
// rate up at its next tick.
func (c *Controller) SetRate(tps int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = tps
}

// Start begins or resumes automatic stepping. Valid from Idle and Paused.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.phase {
	case PhaseIdle, PhasePaused:
	default:
		return fmt.Errorf("start from %s: %w", c.phase, ErrInvalidTransition)
	}
	c.cancel = make(chan struct{})
	c.done = make(chan struct{})
	c.phase = PhaseRunning
	go c.run(c.cancel, c.done)
	return nil
}

func (c *Controller) run(cancel <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	pace := core.NewFixedStep(c.currentRate())
	for {
		pace.SetTPS(c.currentRate())
		if !pace.Wait(cancel) {
			return
		}
		c.mu.Lock()
		if c.phase != PhaseRunning {
			c.mu.Unlock()
			return
		}
		c.eng.Step()
		c.mu.Unlock()
	}
}

func (c *Controller) currentRate() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

// Pause suspends automatic stepping at the next step boundary. Valid only
// while Running; Pause returns once the run loop has exited, so no step is
// in flight afterwards.
func (c *Controller) Pause() error {
	c.mu.Lock()
	if c.phase != PhaseRunning {
		phase := c.phase
		c.mu.Unlock()
		return fmt.Errorf("pause from %s: %w", phase, ErrInvalidTransition)
	}
	c.phase = PhasePaused
	close(c.cancel)
	done := c.done
	c.mu.Unlock()
	<-done
	return nil
}

// Step advances one generation manually. Rejected while Running to avoid
// racing the automatic loop, and after Stop.
func (c *Controller) Step() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.phase {
	case PhaseIdle, PhasePaused:
	default:
		return fmt.Errorf("manual step from %s: %w", c.phase, ErrInvalidTransition)
	}
	c.eng.Step()
	return nil
}

// Reset halts any stepping, empties the board, rewinds the generation
// counter and returns the controller to Idle. Stopped is terminal and
// cannot be reset.
func (c *Controller) Reset() error {
	c.mu.Lock()
	if c.phase == PhaseStopped {
		c.mu.Unlock()
		return fmt.Errorf("reset from %s: %w", PhaseStopped, ErrInvalidTransition)
	}
	var done chan struct{}
	if c.phase == PhaseRunning {
		close(c.cancel)
		done = c.done
	}
	c.phase = PhaseIdle
	c.mu.Unlock()
	if done != nil {
		<-done
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eng.Reset()
	return nil
}

// Stop tears the controller down. Any running loop exits at its next step
// boundary; afterwards every transition except further Stops is rejected.
// Stop is idempotent.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.phase == PhaseStopped {
		c.mu.Unlock()
		return
	}
	var done chan struct{}
	if c.phase == PhaseRunning {
		close(c.cancel)
		done = c.done
	}
	c.phase = PhaseStopped
	c.mu.Unlock()
	if done != nil {
		<-done
	}
}

// State returns the metadata of the last committed generation.
func (c *Controller) State() life.GridState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.State()
}

// CreateCell brings a cell to life at (x, y). Safe to interleave with the
// stepping loop.
func (c *Controller) CreateCell(x, y int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.CreateCell(x, y)
}

// DestroyCell kills the cell at (x, y).
func (c *Controller) DestroyCell(x, y int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.DestroyCell(x, y)
}

// IsAlive reports whether a live cell occupies (x, y).
func (c *Controller) IsAlive(x, y int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.IsAlive(x, y)
}

// NeighborCountAt computes the live-neighbor count of (x, y) on demand.
func (c *Controller) NeighborCountAt(x, y int32) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.NeighborCountAt(x, y)
}

// CellsInRegion snapshots the live positions inside the inclusive rectangle.
func (c *Controller) CellsInRegion(minX, maxX, minY, maxY int32) []simcore.Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eng.CellsInRegion(minX, maxX, minY, maxY)
}

// Clear kills every cell without touching the generation counter. Rejected
// after Stop.
func (c *Controller) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseStopped {
		return fmt.Errorf("clear from %s: %w", PhaseStopped, ErrInvalidTransition)
	}
	c.eng.Clear()
	return nil
}
