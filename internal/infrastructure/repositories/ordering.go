package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	domainerrors "portfolio.backend/internal/domain/errors"
)

const displayOrderColumn = "display_order"

// nextDisplayOrder returns max(display_order)+1, or 0 for an empty table.
func nextDisplayOrder(ctx context.Context, db *gorm.DB, model interface{}) (int, error) {
	var next int64
	if err := db.WithContext(ctx).
		Model(model).
		Select("COALESCE(MAX(" + displayOrderColumn + "), -1) + 1").
		Scan(&next).Error; err != nil {
		return 0, err
	}
	return int(next), nil
}

func orderTaken(ctx context.Context, db *gorm.DB, model interface{}, order int, exclude uuid.UUID) (bool, error) {
	var count int64
	query := db.WithContext(ctx).Model(model).Where(displayOrderColumn+" = ?", order)
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func updateDisplayOrder(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID, order int) error {
	result := db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Update(displayOrderColumn, order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, db *gorm.DB, model interface{}, id uuid.UUID) error {
	result := db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
