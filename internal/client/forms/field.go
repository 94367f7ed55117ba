// Package forms implements debounced input fields and the auth forms built
// from them.
package forms

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/doorbell/internal/client/validation"
	"github.com/dmitrijs2005/doorbell/internal/observable"
)

// DefaultDebounce is the quiet period after the last edit before a touched
// field is validated.
const DefaultDebounce = 150 * time.Millisecond

// Validator computes the error code for a field value.
type Validator func(string) validation.Code

// State is a snapshot of a field.
type State struct {
	Text    string
	Touched bool
	Code    validation.Code
}

// Field is a single text input with debounced validation. Every change to
// the text or to the touched flag restarts one timer; when it fires and the
// field is touched, the validator runs and the result is published.
type Field struct {
	pubMu    sync.Mutex
	mu       sync.Mutex
	text     string
	touched  bool
	code     validation.Code
	validate Validator
	delay    time.Duration
	timer    *time.Timer
	gen      uint64
	closed   bool
	state    *observable.Value[State]
}

// NewField returns an empty, untouched field. A non-positive delay selects
// DefaultDebounce.
func NewField(v Validator, delay time.Duration) *Field {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Field{
		validate: v,
		delay:    delay,
		state:    observable.NewComparable(State{}),
	}
}

// publish pushes the latest snapshot. Snapshots are taken under pubMu so
// subscribers never observe an older state after a newer one.
func (f *Field) publish() {
	f.pubMu.Lock()
	defer f.pubMu.Unlock()

	f.mu.Lock()
	s := State{Text: f.text, Touched: f.touched, Code: f.code}
	f.mu.Unlock()

	f.state.Set(s)
}

// restart must be called with f.mu held.
func (f *Field) restart() {
	if f.closed {
		return
	}
	f.gen++
	gen := f.gen
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.delay, func() { f.fire(gen) })
}

func (f *Field) fire(gen uint64) {
	f.mu.Lock()
	if f.closed || gen != f.gen || !f.touched {
		f.mu.Unlock()
		return
	}
	f.code = f.validate(f.text)
	f.mu.Unlock()

	f.publish()
}

// SetText replaces the value. Setting the same text is a no-op.
func (f *Field) SetText(s string) {
	f.mu.Lock()
	if f.text == s {
		f.mu.Unlock()
		return
	}
	f.text = s
	f.restart()
	f.mu.Unlock()

	f.publish()
}

// Touch marks the field as interacted with; validation follows after the
// debounce period.
func (f *Field) Touch() {
	f.mu.Lock()
	if f.touched {
		f.mu.Unlock()
		return
	}
	f.touched = true
	f.restart()
	f.mu.Unlock()

	f.publish()
}

// Blur marks the field touched and validates it right away.
func (f *Field) Blur() {
	f.Validate()
}

// Validate marks the field touched, cancels any pending timer, runs the
// validator and returns its code. Forms call it on submit.
func (f *Field) Validate() validation.Code {
	f.mu.Lock()
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
	}
	f.touched = true
	f.code = f.validate(f.text)
	code := f.code
	f.mu.Unlock()

	f.publish()
	return code
}

// SetCode overrides the code, e.g. with the result of a remote check.
func (f *Field) SetCode(c validation.Code) {
	f.mu.Lock()
	f.code = c
	f.mu.Unlock()

	f.publish()
}

func (f *Field) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

func (f *Field) Touched() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched
}

func (f *Field) Code() validation.Code {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.code
}

// State returns the current snapshot.
func (f *Field) State() State {
	return f.state.Get()
}

// Subscribe registers fn for state changes. fn may read the field but must
// not modify it.
func (f *Field) Subscribe(fn func(State)) (unsubscribe func()) {
	return f.state.Subscribe(fn)
}

// Close stops the pending timer. Later edits no longer schedule validation.
func (f *Field) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.timer != nil {
		f.timer.Stop()
	}
}
