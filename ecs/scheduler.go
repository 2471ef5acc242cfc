package ecs

// System advances one concern of the world by a frame.
type System interface {
	Update(w *World)
}

// Scheduler runs its systems in registration order. Step is one game frame:
// every system runs, then the events they raised are handed to the caller.
type Scheduler struct {
	systems []System
	frames  uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	s.Add(systems...)
	return s
}

// Add appends systems after the existing ones. Nil systems are dropped.
func (s *Scheduler) Add(systems ...System) {
	for _, sys := range systems {
		if sys != nil {
			s.systems = append(s.systems, sys)
		}
	}
}

// Update runs every system once without counting a frame or draining events.
func (s *Scheduler) Update(w *World) {
	for _, sys := range s.systems {
		sys.Update(w)
	}
}

// Step runs one frame and drains the world's event queue.
func (s *Scheduler) Step(w *World) []Event {
	s.Update(w)
	s.frames++
	return w.Events().Drain()
}

// Frames counts completed Steps.
func (s *Scheduler) Frames() uint64 { return s.frames }

func (s *Scheduler) Len() int { return len(s.systems) }
