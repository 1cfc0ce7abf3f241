package sqlite

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/workboard/workspace/internal/core/domain"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	return db
}

func TestTaskRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Task{Title: "Buy milk", UserID: 1, DueDate: "2025-03-14"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	created.Completed = true
	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Completed || updated.DueDate != "2025-03-14" {
		t.Fatalf("unexpected record after update: %+v", updated)
	}

	deleted, err := repo.Delete(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.Title != "Buy milk" {
		t.Fatalf("expected deleted record back, got %+v", deleted)
	}
	if _, err := repo.FindByID(ctx, 1, created.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("expected ErrTaskNotFound after delete, got %v", err)
	}
}

func TestTaskRepository_ListOrderAndOwnership(t *testing.T) {
	db := openTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	first, _ := repo.Create(ctx, &domain.Task{Title: "First", UserID: 1})
	_, _ = repo.Create(ctx, &domain.Task{Title: "Other user", UserID: 2})
	second, _ := repo.Create(ctx, &domain.Task{Title: "Second", UserID: 1})

	tasks, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != first.ID || tasks[1].ID != second.ID {
		t.Fatalf("expected insertion order, got %+v", tasks)
	}

	if _, err := repo.Update(ctx, &domain.Task{ID: first.ID, UserID: 2, Title: "Hijack"}); err != domain.ErrTaskNotFound {
		t.Fatalf("foreign update must report not found, got %v", err)
	}
	if _, err := repo.Delete(ctx, 2, first.ID); err != domain.ErrTaskNotFound {
		t.Fatalf("foreign delete must report not found, got %v", err)
	}
}

func TestAuthRepository_CreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.User{Username: "alice", Name: "Alice", PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	found, err := repo.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.PasswordHash != "hash" {
		t.Fatalf("expected stored hash, got %q", found.PasswordHash)
	}

	if _, err := repo.Create(ctx, &domain.User{Username: "alice", Name: "Dup", PasswordHash: "h"}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := repo.FindByUsername(ctx, "nobody"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestNoteRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Note{Title: "Ideas", Body: "v1", UserID: 1})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	created.Body = "v2"
	updated, err := repo.Update(ctx, created)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Body != "v2" || updated.Title != "Ideas" {
		t.Fatalf("unexpected record after update: %+v", updated)
	}

	if _, err := repo.Delete(ctx, 1, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	notes, _ := repo.ListByUser(ctx, 1)
	if len(notes) != 0 {
		t.Fatalf("expected empty list, got %+v", notes)
	}
}
