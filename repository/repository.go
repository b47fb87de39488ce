package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository holds the pool for reads; writes take an explicit handle so callers can pass a transaction.
type Repository[T any] struct {
	DB *gorm.DB
}

func (repo Repository[T]) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx == nil {
		tx = repo.DB
	}
	return tx.WithContext(ctx)
}

func (repo Repository[T]) Save(ctx context.Context, tx *gorm.DB, entity *T) error {
	return repo.conn(ctx, tx).Create(entity).Error
}

func (repo Repository[T]) FindById(ctx context.Context, entity *T, id string) error {
	return repo.conn(ctx, nil).Where("id = ?", id).Take(entity).Error
}

func (repo Repository[T]) FindAll(ctx context.Context, entities *[]T) error {
	return repo.conn(ctx, nil).Find(entities).Error
}
