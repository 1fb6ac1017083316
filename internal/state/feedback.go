package state

import "time"

// FeedbackDelay is how long a "Copied!" marker stays up.
const FeedbackDelay = 2000 * time.Millisecond

// CopyKind names the contact field a copy request targets.
type CopyKind int

const (
	CopyNone CopyKind = iota
	CopyPhone
	CopyEmail
)

func (k CopyKind) String() string {
	switch k {
	case CopyPhone:
		return "phone"
	case CopyEmail:
		return "email"
	default:
		return "none"
	}
}

// ResetHandle identifies one scheduled feedback reset. The caller fires it
// back through ExpireFeedback once Delay has passed; only the most recently
// issued handle is live.
type ResetHandle struct {
	ID    uint64
	Kind  CopyKind
	Delay time.Duration
}

// resetScheduler keeps at most one live reset handle.
type resetScheduler struct {
	seq  uint64
	live uint64
}

// schedule cancels any live handle and issues a new one.
func (s *resetScheduler) schedule(kind CopyKind, delay time.Duration) ResetHandle {
	s.cancel()
	s.seq++
	s.live = s.seq
	return ResetHandle{ID: s.seq, Kind: kind, Delay: delay}
}

func (s *resetScheduler) cancel() {
	s.live = 0
}

func (s *resetScheduler) isLive(h ResetHandle) bool {
	return h.ID != 0 && h.ID == s.live
}

// consume reports whether h is live and retires it.
func (s *resetScheduler) consume(h ResetHandle) bool {
	if !s.isLive(h) {
		return false
	}
	s.live = 0
	return true
}
