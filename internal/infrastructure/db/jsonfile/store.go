// Package jsonfile implements the persistence ports on top of a single JSON
// document on disk. The whole dataset is held in memory and rewritten
// atomically (temp file + rename) after every mutation.
package jsonfile

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/workboard/workspace/internal/core/domain"
)

// fileUser is the persisted form of a user. It exists so the bcrypt hash can
// be stored without exposing it through domain.User's JSON tags.
type fileUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type fileData struct {
	Users      []fileUser    `json:"users"`
	Tasks      []domain.Task `json:"tasks"`
	Notes      []domain.Note `json:"notes"`
	NextUserID int64         `json:"nextUserId"`
	NextTaskID int64         `json:"nextTaskId"`
	NextNoteID int64         `json:"nextNoteId"`
}

// Store owns the backing file and the in-memory dataset. All repositories
// created from one Store share its mutex, so cross-entity operations never
// interleave mid-write.
type Store struct {
	mu   sync.Mutex
	path string
	data fileData
}

// Open loads the dataset from path, creating an empty one if the file does
// not exist yet.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("jsonfile: data file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.data = fileData{NextUserID: 1, NextTaskID: 1, NextNoteID: 1}
		return s, nil
	case err != nil:
		return nil, err
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, err
	}
	if s.data.NextUserID == 0 {
		s.data.NextUserID = 1
	}
	if s.data.NextTaskID == 0 {
		s.data.NextTaskID = 1
	}
	if s.data.NextNoteID == 0 {
		s.data.NextNoteID = 1
	}
	return s, nil
}

// save rewrites the backing file. Callers must hold s.mu.
func (s *Store) save() error {
	raw, err := json.MarshalIndent(&s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func toDomainUser(u fileUser) *domain.User {
	return &domain.User{
		ID:           u.ID,
		Username:     u.Username,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
