package nav

import "sync"

// Stack is the navigation back stack. The top element is the current
// screen.
type Stack struct {
	mu    sync.Mutex
	items []Destination
}

// NewStack returns a stack holding root.
func NewStack(root Destination) *Stack {
	return &Stack{items: []Destination{root}}
}

func (s *Stack) Push(d Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, d)
}

// Pop removes the current screen and returns the new one. The root is never
// removed; popping it reports false.
func (s *Stack) Pop() (Destination, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) <= 1 {
		return s.current(), false
	}
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return s.current(), true
}

// Replace empties the stack and makes d the only entry.
func (s *Stack) Replace(d Destination) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []Destination{d}
}

// Clear drops everything except the root.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) > 1 {
		s.items = s.items[:1]
	}
}

func (s *Stack) Current() Destination {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current()
}

func (s *Stack) current() Destination {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Resume routes away from a verified OTP screen, which must be the current
// entry. With an origin and a return destination the OTP screen is replaced
// by the return destination (after clearing history when requested). With
// an origin and no return destination the stack pops back to the origin.
// Without an origin noOrigin is called and the stack is left alone.
func (s *Stack) Resume(otp OTP, noOrigin func()) {
	switch {
	case otp.WithOrigin && otp.Return != nil:
		if otp.WipeHistory {
			s.Clear()
		} else {
			s.Pop()
		}
		s.Push(otp.Return)
	case otp.WithOrigin:
		s.Pop()
	default:
		if noOrigin != nil {
			noOrigin()
		}
	}
}
