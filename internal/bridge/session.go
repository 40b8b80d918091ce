package bridge

import (
	"sync"

	"github.com/ternarybob/placesbridge/internal/models"
)

// SessionTokens tracks the session token shared by an autocomplete burst and
// the fetch that ends it.
//
// The stored token only changes when a search succeeds (Commit). Until then
// the token minted for a search is held as pending, so repeated searches reuse
// it. Concurrent commits are last-writer-wins.
type SessionTokens struct {
	mu      sync.Mutex
	mint    func() models.SessionToken
	stored  models.SessionToken
	pending models.SessionToken
}

// NewSessionTokens creates an empty token store using mint for new tokens
func NewSessionTokens(mint func() models.SessionToken) *SessionTokens {
	return &SessionTokens{mint: mint}
}

// ForSearch returns the token for an autocomplete search
func (s *SessionTokens) ForSearch(forceNew bool) models.SessionToken {
	s.mu.Lock()
	defer s.mu.Unlock()

	if forceNew {
		s.pending = s.mint()
		return s.pending
	}
	if s.stored != "" {
		return s.stored
	}
	if s.pending != "" {
		return s.pending
	}
	s.pending = s.mint()
	return s.pending
}

// ForFetch returns the token stored by the last successful search. A forced
// fetch, or one before any search has succeeded, gets a one-off token that is
// never remembered.
func (s *SessionTokens) ForFetch(forceNew bool) models.SessionToken {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !forceNew && s.stored != "" {
		return s.stored
	}
	return s.mint()
}

// Commit records token as the stored token after a successful search
func (s *SessionTokens) Commit(token models.SessionToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stored = token
	if s.pending == token {
		s.pending = ""
	}
}

// Stored returns the token set by the last successful search, if any
func (s *SessionTokens) Stored() models.SessionToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stored
}
