package intake

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// DefaultSubmitInterval is the minimum time between two accepted submissions
// from the same session.
const DefaultSubmitInterval = 60 * time.Second

// ThrottleError rejects a submission sent before the interval elapsed.
type ThrottleError struct {
	RetryAfterSeconds int
}

func (e *ThrottleError) Error() string {
	return fmt.Sprintf("submission too soon, retry in %d seconds", e.RetryAfterSeconds)
}

// UserMessage is the text shown next to the form.
func (e *ThrottleError) UserMessage() string {
	return fmt.Sprintf("Por favor, aguarde %d segundos antes de enviar outro formulário.", e.RetryAfterSeconds)
}

// ThrottleState is the per-session anti-spam timer. It is advisory only and
// lives in process memory.
type ThrottleState struct {
	lastSubmit *time.Time
}

// Check returns a *ThrottleError when now is inside the interval since the
// last accepted submission. It never changes the state.
func (s *ThrottleState) Check(now time.Time, interval time.Duration) error {
	if s == nil || s.lastSubmit == nil {
		return nil
	}
	elapsed := now.Sub(*s.lastSubmit)
	if elapsed >= interval {
		return nil
	}
	remaining := interval - elapsed
	return &ThrottleError{RetryAfterSeconds: int(math.Ceil(remaining.Seconds()))}
}

// MarkSubmitted restarts the timer at now.
func (s *ThrottleState) MarkSubmitted(now time.Time) {
	t := now
	s.lastSubmit = &t
}

// LastSubmit returns the last accepted submission time, if any.
func (s *ThrottleState) LastSubmit() (time.Time, bool) {
	if s == nil || s.lastSubmit == nil {
		return time.Time{}, false
	}
	return *s.lastSubmit, true
}

const pruneThreshold = 1024

// SessionThrottles keeps one ThrottleState per session key.
type SessionThrottles struct {
	mu       sync.Mutex
	states   map[string]*ThrottleState
	interval time.Duration
	now      func() time.Time
}

func NewSessionThrottles(interval time.Duration, now func() time.Time) *SessionThrottles {
	if interval <= 0 {
		interval = DefaultSubmitInterval
	}
	if now == nil {
		now = time.Now
	}
	return &SessionThrottles{
		states:   make(map[string]*ThrottleState),
		interval: interval,
		now:      now,
	}
}

func (t *SessionThrottles) Interval() time.Duration {
	return t.interval
}

// Reserve checks key and, when allowed, starts its timer in the same critical
// section, so concurrent submissions from one session cannot all pass. The
// returned release undoes the reservation when the submission is not stored;
// it is a no-op once a later reservation has replaced it.
func (t *SessionThrottles) Reserve(key string) (release func(), err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if err := t.states[key].Check(now, t.interval); err != nil {
		return nil, err
	}
	if len(t.states) >= pruneThreshold {
		t.pruneLocked(now)
	}
	st, ok := t.states[key]
	if !ok {
		st = &ThrottleState{}
		t.states[key] = st
	}
	prev := st.lastSubmit
	st.MarkSubmitted(now)
	stamp := st.lastSubmit

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()
			cur, ok := t.states[key]
			if !ok || cur.lastSubmit != stamp {
				return
			}
			if prev == nil {
				delete(t.states, key)
				return
			}
			cur.lastSubmit = prev
		})
	}, nil
}

// pruneLocked drops sessions whose window already elapsed; they behave the
// same as unknown sessions.
func (t *SessionThrottles) pruneLocked(now time.Time) {
	for key, st := range t.states {
		if st.Check(now, t.interval) == nil {
			delete(t.states, key)
		}
	}
}

func (t *SessionThrottles) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.states)
}
