// Copyright (C) 2024 supplyline
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"fmt"

	"github.com/supplyline-dev/supplyline/shared"
	"gorm.io/gorm"
)

const (
	orderNewestFirst = "created_at DESC"
	orderByName      = "name ASC"
)

// GormRepository implements the uniform CRUD contract every entity shares:
// paged, filtered listing with eager-loaded relations, point reads, and
// single-row writes through gorm's change tracking.
type GormRepository[T any] struct {
	db           *gorm.DB
	defaultOrder string
	preloads     []string
}

func newGormRepository[T any](db *gorm.DB, defaultOrder string, preloads ...string) *GormRepository[T] {
	return &GormRepository[T]{
		db:           db,
		defaultOrder: defaultOrder,
		preloads:     preloads,
	}
}

func (g *GormRepository[T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}

func (g *GormRepository[T]) Transaction(f func(tx *gorm.DB) error) error {
	tx := g.db.Begin()
	err := f(tx)
	if err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (g *GormRepository[T]) filtered(filters map[string]any) *gorm.DB {
	q := g.db.Model(new(T))
	for col, value := range filters {
		q = q.Where(fmt.Sprintf("%s = ?", col), value)
	}
	return q
}

// List returns a page of rows matching the given column-equality filters,
// relations eager-loaded, ordered by the per-entity default.
func (g *GormRepository[T]) List(filters map[string]any, pageInfo shared.PageInfo) (shared.Paged[T], error) {
	var total int64
	if err := g.filtered(filters).Count(&total).Error; err != nil {
		return shared.Paged[T]{}, err
	}

	q := g.filtered(filters).Order(g.defaultOrder)
	for _, preload := range g.preloads {
		q = q.Preload(preload)
	}

	var ts []T
	if err := pageInfo.ApplyOnDB(q).Find(&ts).Error; err != nil {
		return shared.Paged[T]{}, err
	}
	return shared.NewPaged(pageInfo, total, ts), nil
}

// All returns every row matching the filters without paging. Used by the
// aggregate endpoints which reduce over full result sets.
func (g *GormRepository[T]) All(filters map[string]any) ([]T, error) {
	q := g.filtered(filters).Order(g.defaultOrder)
	var ts []T
	err := q.Find(&ts).Error
	return ts, err
}

func (g *GormRepository[T]) Read(id uint) (T, error) {
	var t T
	q := g.db
	for _, preload := range g.preloads {
		q = q.Preload(preload)
	}
	err := q.First(&t, "id = ?", id).Error
	return t, err
}

// Exists is the point lookup backing foreign-key validation: it never loads
// the row, only checks for its presence.
func (g *GormRepository[T]) Exists(id uint) (bool, error) {
	var count int64
	err := g.db.Model(new(T)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (g *GormRepository[T]) Count(filters map[string]any) (int64, error) {
	var count int64
	err := g.filtered(filters).Count(&count).Error
	return count, err
}

func (g *GormRepository[T]) Create(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Create(t).Error
}

func (g *GormRepository[T]) Save(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Save(t).Error
}

func (g *GormRepository[T]) Delete(tx *gorm.DB, id uint) error {
	var t T
	return g.GetDB(tx).Delete(&t, id).Error
}
