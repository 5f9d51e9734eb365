/*
 * Copyright 2023 ICON Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"math"
	"time"

	"gorm.io/gorm"
)

type Model struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Pageable struct {
	// Page 0-indexed
	Page uint `json:"page" query:"page"`
	// Size zero for unlimited
	Size uint `json:"size" query:"size"`
	// Sort for example "FIELD desc,FIELD"
	Sort string `json:"sort,omitempty" query:"sort"`
}

type Page[T any] struct {
	Content       []T      `json:"content"`
	TotalElements int      `json:"total_elements"`
	TotalPages    int      `json:"total_pages"`
	Pageable      Pageable `json:"pageable"`
}

type Repository[T any] interface {
	Save(v *T) error
	Count(query interface{}, conds ...interface{}) (int64, error)
	FindOne(query interface{}, conds ...interface{}) (*T, error)
	Find(query interface{}, conds ...interface{}) ([]T, error)
	Page(p Pageable, query interface{}, conds ...interface{}) (*Page[T], error)
}

type DefaultRepository[T any] struct {
	db   *gorm.DB
	name string
}

func NewDefaultRepository[T any](db *gorm.DB, name string) (*DefaultRepository[T], error) {
	if err := db.Table(name).AutoMigrate(new(T)); err != nil {
		return nil, err
	}
	return &DefaultRepository[T]{
		db:   db,
		name: name,
	}, nil
}

func (r *DefaultRepository[T]) where(query interface{}, conds ...interface{}) *gorm.DB {
	ret := r.db.Table(r.name)
	if query != nil {
		ret = ret.Where(query, conds...)
	}
	return ret
}

func (r *DefaultRepository[T]) Save(v *T) error {
	return r.db.Table(r.name).Save(v).Error
}

func (r *DefaultRepository[T]) Count(query interface{}, conds ...interface{}) (int64, error) {
	var count int64
	if err := r.where(query, conds...).Count(&count).Error; err != nil {
		return -1, err
	}
	return count, nil
}

func filterError(err error) error {
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	return nil
}

// FindOne returns nil without error if no record matches.
func (r *DefaultRepository[T]) FindOne(query interface{}, conds ...interface{}) (*T, error) {
	v := new(T)
	if err := r.where(query, conds...).First(v).Error; err != nil {
		return nil, filterError(err)
	}
	return v, nil
}

func (r *DefaultRepository[T]) Find(query interface{}, conds ...interface{}) ([]T, error) {
	var l []T
	if err := r.where(query, conds...).Find(&l).Error; err != nil {
		return nil, filterError(err)
	}
	return l, nil
}

func (r *DefaultRepository[T]) Page(p Pageable, query interface{}, conds ...interface{}) (*Page[T], error) {
	count, err := r.Count(query, conds...)
	if err != nil {
		return nil, err
	}
	ret := r.where(query, conds...)
	if p.Size > 0 {
		ret = ret.Offset(int(p.Page * p.Size)).Limit(int(p.Size))
	}
	if len(p.Sort) > 0 {
		ret = ret.Order(p.Sort)
	}
	l := make([]T, 0)
	if err = ret.Find(&l).Error; err != nil {
		return nil, filterError(err)
	}
	totalPages := 0
	if count > 0 {
		totalPages = 1
		if p.Size > 0 {
			totalPages = int(math.Ceil(float64(count) / float64(p.Size)))
		}
	}
	return &Page[T]{
		Pageable:      p,
		TotalElements: int(count),
		TotalPages:    totalPages,
		Content:       l,
	}, nil
}
