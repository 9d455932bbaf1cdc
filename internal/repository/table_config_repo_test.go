package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Lucien-Luc/Programs/internal/model"
)

func TestTableConfigUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewTableConfigRepository(newTestDB(t))

	if _, err := repo.FindByTableName(ctx, "programs"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before upsert, got %v", err)
	}

	first, err := repo.Upsert(ctx, &model.TableConfig{
		TableName:      "programs",
		VisibleColumns: model.StringArray{"name", "status"},
	})
	if err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}

	second, err := repo.Upsert(ctx, &model.TableConfig{
		TableName:      "programs",
		VisibleColumns: model.StringArray{"name", "status", "progress"},
	})
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	// Singleton per table name: the same row is replaced, not duplicated
	if first.ID != second.ID {
		t.Errorf("upsert created a new row: %d != %d", first.ID, second.ID)
	}
	if len(second.VisibleColumns) != 3 {
		t.Errorf("visible columns = %v", second.VisibleColumns)
	}
}

func TestColumnHeaderUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewColumnHeaderRepository(newTestDB(t))

	first, err := repo.Upsert(ctx, &model.ColumnHeader{TableName: "programs", ColumnKey: "name", Label: "Name", Visible: true})
	if err != nil {
		t.Fatalf("first Upsert failed: %v", err)
	}
	second, err := repo.Upsert(ctx, &model.ColumnHeader{TableName: "programs", ColumnKey: "name", Label: "Program Name", Visible: true})
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("upsert created a new row for the same column: %d != %d", first.ID, second.ID)
	}
	if second.Label != "Program Name" {
		t.Errorf("label = %q, want Program Name", second.Label)
	}

	headers, err := repo.FindByTableName(ctx, "programs")
	if err != nil {
		t.Fatalf("FindByTableName failed: %v", err)
	}
	if len(headers) != 1 {
		t.Errorf("expected one header, got %d", len(headers))
	}
}
