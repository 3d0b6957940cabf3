package models

import "sync"

// SessionState holds the process-wide UI state: the currently loaded dataset
// path, the selected user and the glucose thresholds chosen this session.
// Access is mutex-guarded so background work can read it safely.
type SessionState struct {
	mu            sync.RWMutex
	datasetPath   string
	selectedUser  string
	lowThreshold  int
	highThreshold int
}

func NewSessionState() *SessionState {
	return &SessionState{}
}

func (s *SessionState) SetDatasetPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasetPath = path
}

func (s *SessionState) DatasetPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datasetPath
}

func (s *SessionState) SetSelectedUser(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedUser = name
}

func (s *SessionState) SelectedUser() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedUser
}

// SetThresholds stores the session's glucose category boundaries.
func (s *SessionState) SetThresholds(low, high int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lowThreshold = low
	s.highThreshold = high
}

// Thresholds returns the session thresholds; ok is false until they have
// been set once.
func (s *SessionState) Thresholds() (low, high int, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lowThreshold, s.highThreshold, s.lowThreshold != 0 && s.highThreshold != 0
}
