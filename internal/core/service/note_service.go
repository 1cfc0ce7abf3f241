package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/workboard/workspace/internal/api/metrics"
	"github.com/workboard/workspace/internal/core/domain"
	"github.com/workboard/workspace/internal/core/ports"
)

type NoteService struct {
	repo   ports.NoteRepository
	logger zerolog.Logger
}

func NewNoteService(repo ports.NoteRepository, logger zerolog.Logger) *NoteService {
	return &NoteService{repo: repo, logger: logger}
}

func (s *NoteService) ListNotes(ctx context.Context, userID int64) ([]domain.Note, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NoteService) CreateNote(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	now := time.Now().UTC()
	note := &domain.Note{
		Title:     title,
		Body:      input.Body,
		UserID:    input.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, note)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", input.UserID).Msg("failed to create note")
		return nil, err
	}

	metrics.NotesCreatedTotal.Inc()
	s.logger.Info().Int64("note_id", created.ID).Int64("user_id", created.UserID).Msg("note created")
	return created, nil
}

func (s *NoteService) UpdateNote(ctx context.Context, input ports.UpdateNoteInput) (*domain.Note, error) {
	note, err := s.repo.FindByID(ctx, input.UserID, input.NoteID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrTitleRequired
		}
		note.Title = title
	}
	if input.Body != nil {
		note.Body = *input.Body
	}
	note.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, note)
	if err != nil {
		s.logger.Error().Err(err).Int64("note_id", input.NoteID).Msg("failed to update note")
		return nil, err
	}
	return updated, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, userID, noteID int64) (*domain.Note, error) {
	deleted, err := s.repo.Delete(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("note_id", noteID).Int64("user_id", userID).Msg("note deleted")
	return deleted, nil
}
