package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskpilot/internal/models"
)

type CommandRunRepository interface {
	Create(ctx context.Context, run *models.CommandRun) error
	List(ctx context.Context, limit int) ([]models.CommandRun, error)
	DeleteAll(ctx context.Context) error
}

type commandRunRepository struct {
	db *gorm.DB
}

func NewCommandRunRepository(db *gorm.DB) CommandRunRepository {
	return &commandRunRepository{db: db}
}

func (r *commandRunRepository) Create(ctx context.Context, run *models.CommandRun) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("creating command run: %w", err)
	}
	return nil
}

// List returns the most recent runs first. A non-positive limit returns all.
func (r *commandRunRepository) List(ctx context.Context, limit int) ([]models.CommandRun, error) {
	var runs []models.CommandRun
	q := r.db.WithContext(ctx).Order("created_at desc").Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("listing command runs: %w", err)
	}
	return runs, nil
}

func (r *commandRunRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CommandRun{}).Error; err != nil {
		return fmt.Errorf("deleting command runs: %w", err)
	}
	return nil
}
