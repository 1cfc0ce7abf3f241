package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/workboard/workspace/internal/core/domain"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Note, error) {
	var recs []noteRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	out := make([]domain.Note, 0, len(recs))
	for _, rec := range recs {
		out = append(out, *noteToDomain(rec))
	}
	return out, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	rec := noteRecord{
		Title:     note.Title,
		Body:      note.Body,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}
	return noteToDomain(rec), nil
}

func (r *NoteRepository) FindByID(ctx context.Context, userID, noteID int64) (*domain.Note, error) {
	var rec noteRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ? AND user_id = ?", noteID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return noteToDomain(rec), nil
}

func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	rec := noteRecord{
		ID:        note.ID,
		Title:     note.Title,
		Body:      note.Body,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}

	result := r.db.WithContext(ctx).
		Model(&noteRecord{}).
		Where("id = ? AND user_id = ?", note.ID, note.UserID).
		Select("title", "body", "updated_at").
		Updates(&rec)
	if err := result.Error; err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNoteNotFound
	}
	return r.FindByID(ctx, note.UserID, note.ID)
}

func (r *NoteRepository) Delete(ctx context.Context, userID, noteID int64) (*domain.Note, error) {
	deleted, err := r.FindByID(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Delete(&noteRecord{}, "id = ? AND user_id = ?", noteID, userID)
	if err := result.Error; err != nil {
		return nil, fmt.Errorf("delete note: %w", err)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNoteNotFound
	}
	return deleted, nil
}

func noteToDomain(rec noteRecord) *domain.Note {
	return &domain.Note{
		ID:        rec.ID,
		Title:     rec.Title,
		Body:      rec.Body,
		UserID:    rec.UserID,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
