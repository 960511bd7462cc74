package gorm

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/artrights/pkg/model"
	"github.com/doodlesbykumbi/artrights/pkg/server/store"
)

// Ensure Repository implements store.Repository
var _ store.Repository[model.Artwork] = (*Repository[model.Artwork])(nil)

// Repository implements store.Repository on one table using GORM
type Repository[T model.Record] struct {
	db    *gorm.DB
	table string
}

// NewRepository creates a Repository. An empty table uses the table GORM
// derives from T.
func NewRepository[T model.Record](db *gorm.DB, table string) *Repository[T] {
	return &Repository[T]{db: db, table: table}
}

func (r *Repository[T]) query(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	if r.table != "" {
		tx = tx.Table(r.table)
	}
	return tx
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := r.query(ctx).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	var row T
	err := r.query(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create inserts record. Unique violations are reported as
// store.ErrDuplicateID when the DB was opened with TranslateError.
func (r *Repository[T]) Create(ctx context.Context, record T) (T, error) {
	err := r.query(ctx).Create(&record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return record, fmt.Errorf("%w: %s", store.ErrDuplicateID, record.Key())
	}
	return record, err
}

// CreateIfAbsent relies on a unique constraint covering criteria: an insert
// that loses a race to a concurrent one returns the row that won.
func (r *Repository[T]) CreateIfAbsent(ctx context.Context, criteria store.Criteria, record T) (T, bool, error) {
	if row, err := r.first(ctx, criteria); err != nil || row != nil {
		if row != nil {
			return *row, false, nil
		}
		return record, false, err
	}
	err := r.query(ctx).Create(&record).Error
	if err == nil {
		return record, true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return record, false, err
	}
	row, lookupErr := r.first(ctx, criteria)
	if lookupErr != nil {
		return record, false, lookupErr
	}
	if row == nil {
		return record, false, fmt.Errorf("%w: %s", store.ErrDuplicateID, record.Key())
	}
	return *row, false, nil
}

func (r *Repository[T]) first(ctx context.Context, criteria store.Criteria) (*T, error) {
	rows, err := r.ListWhere(ctx, criteria)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func (r *Repository[T]) Update(ctx context.Context, id string, patch model.Patch[T]) (*T, error) {
	cols := patch.Columns()
	if len(cols) > 0 {
		res := r.query(ctx).Model(new(T)).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return r.Get(ctx, id)
}

func (r *Repository[T]) Delete(ctx context.Context, id string) (bool, error) {
	res := r.query(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *Repository[T]) ListWhere(ctx context.Context, criteria store.Criteria) ([]T, error) {
	var rows []T
	if err := r.query(ctx).Where(map[string]interface{}(criteria)).Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository[T]) DeleteWhere(ctx context.Context, criteria store.Criteria) (int, error) {
	res := r.query(ctx).Where(map[string]interface{}(criteria)).Delete(new(T))
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *Repository[T]) Count(ctx context.Context, criteria store.Criteria) (int, error) {
	var n int64
	tx := r.query(ctx).Model(new(T))
	if len(criteria) > 0 {
		tx = tx.Where(map[string]interface{}(criteria))
	}
	if err := tx.Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}
