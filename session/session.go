// Package session carries a citizen's per-device state: whether they have
// verified their email and which cases they have claimed. It replaces
// browser-storage flags with an explicit value that handlers receive and a
// Store persists at the request boundary.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID            string   `json:"id"`
	Authenticated bool     `json:"authenticated"`
	Email         string   `json:"email,omitempty"`
	Visited       []string `json:"visited"`
}

func New() *Session {
	return &Session{ID: uuid.NewString(), Visited: []string{}}
}

// Visit records a claimed case. It reports false when the case was already
// in the visited set.
func (s *Session) Visit(caseID string) bool {
	if s.HasVisited(caseID) {
		return false
	}
	s.Visited = append(s.Visited, caseID)
	return true
}

func (s *Session) HasVisited(caseID string) bool {
	return slices.Contains(s.Visited, caseID)
}

// Encode serialises s for storage.
func Encode(s *Session) ([]byte, error) {
	return json.Marshal(s)
}

// Decode parses a stored session. A missing visited list decodes as empty.
func Decode(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if s.ID == "" {
		return nil, fmt.Errorf("decode session: missing id")
	}
	if s.Visited == nil {
		s.Visited = []string{}
	}
	return &s, nil
}

// Store persists sessions by ID.
type Store interface {
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}
