package game

// InputState is the player's intent for one tick
type InputState struct {
	Up, Down, Left, Right bool

	// Boost swaps normal speed for boost speed while power lasts
	Boost bool

	Fire  bool
	Sonar bool

	PortalNext bool
	PortalPrev bool

	// Cursor is the aim point in world coordinates
	Cursor Vec2
}

// Movement returns the raw 4-way direction (components in {-1, 0, 1})
func (in InputState) Movement() Vec2 {
	var v Vec2
	if in.Left {
		v.X--
	}
	if in.Right {
		v.X++
	}
	if in.Up {
		v.Y--
	}
	if in.Down {
		v.Y++
	}
	return v
}

// InputFunc adapts a function to InputSource
type InputFunc func() InputState

// Poll calls f
func (f InputFunc) Poll() InputState { return f() }

// ScriptedInput replays a fixed sequence of states, repeating the last one
type ScriptedInput struct {
	States []InputState
	next   int
}

// Poll returns the next scripted state
func (s *ScriptedInput) Poll() InputState {
	if len(s.States) == 0 {
		return InputState{}
	}
	st := s.States[min(s.next, len(s.States)-1)]
	s.next++
	return st
}
