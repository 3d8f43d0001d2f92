package motion

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Phase is the lifecycle of one entrance. It only ever moves forward.
type Phase int

const (
	PhasePending Phase = iota
	PhaseAnimating
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseAnimating:
		return "animating"
	case PhaseSettled:
		return "settled"
	}
	return "unknown"
}

// Offset is a displacement in page pixels.
type Offset struct {
	X, Y float64
}

// Visual is what the renderer needs to draw an item this frame.
type Visual struct {
	Opacity float64
	Offset  Offset
}

// SettledVisual is the resting state of every entrance.
var SettledVisual = Visual{Opacity: 1}

// Entrance fades and slides one item in after a delay.
type Entrance struct {
	Index int
	Delay time.Duration

	from     Offset
	phase    Phase
	waited   time.Duration
	progress *Transition
}

func newEntrance(index int, delay, duration time.Duration, from Offset) *Entrance {
	return &Entrance{
		Index:    index,
		Delay:    delay,
		from:     from,
		progress: NewTransition(0, 1, duration, ease.OutCubic),
	}
}

func (e *Entrance) Phase() Phase {
	return e.phase
}

func (e *Entrance) advance(dt time.Duration) {
	switch e.phase {
	case PhaseSettled:
		return
	case PhasePending:
		e.waited += dt
		if e.waited < e.Delay {
			return
		}
		// Time past the delay already counts toward the animation.
		dt = e.waited - e.Delay
		e.phase = PhaseAnimating
	}
	if _, done := e.progress.Advance(dt); done {
		e.phase = PhaseSettled
	}
}

func (e *Entrance) Visual() Visual {
	switch e.phase {
	case PhasePending:
		return Visual{Opacity: 0, Offset: e.from}
	case PhaseSettled:
		return SettledVisual
	}
	p := e.progress.Value()
	return Visual{
		Opacity: p,
		Offset:  Offset{X: e.from.X * (1 - p), Y: e.from.Y * (1 - p)},
	}
}

// StaggerDelay is the start delay of the item at index.
func StaggerDelay(index int, unit time.Duration) time.Duration {
	return time.Duration(index) * unit
}

// Sequence is the set of entrances for one rendered list.
type Sequence struct {
	entries []*Entrance
}

// NewSequence builds one entrance per delay, in index order.
func NewSequence(delays []time.Duration, duration time.Duration, from Offset) *Sequence {
	s := &Sequence{entries: make([]*Entrance, len(delays))}
	for i, d := range delays {
		s.entries[i] = newEntrance(i, d, duration, from)
	}
	return s
}

// Stagger builds n entrances whose delays grow by unit per index from zero.
func Stagger(n int, unit, duration time.Duration, from Offset) *Sequence {
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = StaggerDelay(i, unit)
	}
	return NewSequence(delays, duration, from)
}

func (s *Sequence) Len() int {
	return len(s.entries)
}

func (s *Sequence) Entry(i int) (*Entrance, bool) {
	if i < 0 || i >= len(s.entries) {
		return nil, false
	}
	return s.entries[i], true
}

func (s *Sequence) Delays() []time.Duration {
	out := make([]time.Duration, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Delay
	}
	return out
}

func (s *Sequence) Advance(dt time.Duration) {
	for _, e := range s.entries {
		e.advance(dt)
	}
}

// Visual returns the settled visual for an index outside the list.
func (s *Sequence) Visual(i int) Visual {
	e, ok := s.Entry(i)
	if !ok {
		return SettledVisual
	}
	return e.Visual()
}

func (s *Sequence) Settled() bool {
	for _, e := range s.entries {
		if e.phase != PhaseSettled {
			return false
		}
	}
	return true
}

// EntranceAnimator owns the sequences of every mounted list on the page.
// Lists are independent: each one counts its delays from its own mount.
type EntranceAnimator struct {
	sequences map[string]*Sequence
	order     []string
}

func NewEntranceAnimator() *EntranceAnimator {
	return &EntranceAnimator{sequences: make(map[string]*Sequence)}
}

// Mount registers seq under name. A name that is already mounted keeps its
// existing sequence so re-renders never replay an entrance.
func (a *EntranceAnimator) Mount(name string, seq *Sequence) *Sequence {
	if existing, ok := a.sequences[name]; ok {
		return existing
	}
	a.sequences[name] = seq
	a.order = append(a.order, name)
	return seq
}

// Unmount discards the named sequence. Mounting it again starts over.
func (a *EntranceAnimator) Unmount(name string) {
	if _, ok := a.sequences[name]; !ok {
		return
	}
	delete(a.sequences, name)
	for i, n := range a.order {
		if n == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

func (a *EntranceAnimator) Sequence(name string) (*Sequence, bool) {
	s, ok := a.sequences[name]
	return s, ok
}

// Names lists mounted sequences in mount order.
func (a *EntranceAnimator) Names() []string {
	return append([]string(nil), a.order...)
}

func (a *EntranceAnimator) Advance(dt time.Duration) {
	for _, name := range a.order {
		a.sequences[name].Advance(dt)
	}
}

func (a *EntranceAnimator) Visual(name string, index int) Visual {
	s, ok := a.sequences[name]
	if !ok {
		return SettledVisual
	}
	return s.Visual(index)
}

func (a *EntranceAnimator) Settled() bool {
	for _, s := range a.sequences {
		if !s.Settled() {
			return false
		}
	}
	return true
}

// Discard drops every sequence without finishing it.
func (a *EntranceAnimator) Discard() {
	a.sequences = make(map[string]*Sequence)
	a.order = nil
}
