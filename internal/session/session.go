// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the process-wide signed-in identity.
//
// A single [Session] is shared by the backend adapter and the service layer.
// Readers always work on [models.Session] snapshots. The credential changes
// in exactly three places: Start (sign-in), Clear (sign-out) and Rotate (the
// adapter's refresh routine). Rotate is a compare-and-swap on the stale
// credential, so a late rotation can never replace a newer token.
package session

import (
	"strings"
	"sync"
	"time"

	"github.com/jander15/BathroomPass-sub000/models"
)

// Listener is notified with the new state after every change.
type Listener func(models.Session)

// Session is the live, mutable session. The zero value is an empty session
// ready for use.
type Session struct {
	mu      sync.RWMutex
	current models.Session

	listeners []Listener
	now       func() time.Time
}

// New returns an empty session.
func New() *Session {
	return &Session{now: time.Now}
}

// Subscribe registers l to be called after every change. Listeners run
// synchronously on the goroutine that made the change, outside the lock.
func (s *Session) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Authenticated reports whether a credential is present.
func (s *Session) Authenticated() bool {
	return s.Snapshot().Authenticated()
}

// Start replaces the session with a freshly signed-in identity.
func (s *Session) Start(email, idToken string) {
	s.set(models.Session{
		Email:     strings.TrimSpace(email),
		IDToken:   strings.TrimSpace(idToken),
		UpdatedAt: s.timestamp(),
	})
}

// Restore loads a previously persisted state without touching its
// timestamp.
func (s *Session) Restore(saved models.Session) {
	s.set(saved)
}

// Clear signs the session out.
func (s *Session) Clear() {
	s.set(models.Session{})
}

// Rotate replaces the credential with fresh if, and only if, the current
// credential still equals stale. A signed-out session is never rotated.
// It reports whether the swap happened.
func (s *Session) Rotate(stale, fresh string) bool {
	fresh = strings.TrimSpace(fresh)

	s.mu.Lock()
	if stale == "" || fresh == "" || s.current.IDToken != stale {
		s.mu.Unlock()
		return false
	}
	s.current.IDToken = fresh
	s.current.UpdatedAt = s.timestamp()
	snapshot, listeners := s.current, s.listeners
	s.mu.Unlock()

	notify(listeners, snapshot)
	return true
}

func (s *Session) set(next models.Session) {
	s.mu.Lock()
	s.current = next
	listeners := s.listeners
	s.mu.Unlock()

	notify(listeners, next)
}

func (s *Session) timestamp() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

func notify(listeners []Listener, snapshot models.Session) {
	for _, l := range listeners {
		l(snapshot)
	}
}
