// Package crud provides a generic gorm-backed store shared by every
// entity's admin and public handlers, so the list/filter/paginate pattern
// is implemented once instead of per entity.
package crud

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a row lookup matches nothing.
var ErrNotFound = errors.New("record not found")

// Filter is one AND-combined WHERE clause, e.g. {"title LIKE ?", ["%x%"]}.
type Filter struct {
	Query string
	Args  []interface{}
}

// ListOptions control filtering, ordering and pagination of List.
type ListOptions struct {
	Page    int
	PerPage int
	Order   string
	Filters []Filter
}

type Store[T any] struct {
	db *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// List returns one page of rows plus the total row count for the same
// filters. The count and the page read are separate statements; they are
// not atomic with respect to concurrent writers.
func (s *Store[T]) List(opts ListOptions) ([]T, int64, error) {
	query := s.db.Model(new(T))
	for _, f := range opts.Filters {
		query = query.Where(f.Query, f.Args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if opts.Order != "" {
		query = query.Order(opts.Order)
	}
	if opts.PerPage > 0 {
		page := opts.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * opts.PerPage).Limit(opts.PerPage)
	}

	var rows []T
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *Store[T]) GetByID(id uint) (*T, error) {
	var row T
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (s *Store[T]) Create(row *T) error {
	return s.db.Create(row).Error
}

// Save writes every field of row back; last write wins.
func (s *Store[T]) Save(row *T) error {
	return s.db.Save(row).Error
}

// Delete hard-deletes by primary key. Deleting a missing row is not an
// error; references from other entities are left dangling.
func (s *Store[T]) Delete(id uint) error {
	return s.db.Delete(new(T), id).Error
}

func (s *Store[T]) Count(filters ...Filter) (int64, error) {
	query := s.db.Model(new(T))
	for _, f := range filters {
		query = query.Where(f.Query, f.Args...)
	}
	var total int64
	err := query.Count(&total).Error
	return total, err
}
