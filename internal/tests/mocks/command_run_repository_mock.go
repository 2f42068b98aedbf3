package mocks

import (
	"context"

	"deskpilot/internal/models"
)

type CommandRunRepositoryMock struct {
	CreateFunc    func(ctx context.Context, run *models.CommandRun) error
	ListFunc      func(ctx context.Context, limit int) ([]models.CommandRun, error)
	DeleteAllFunc func(ctx context.Context) error
}

func (m *CommandRunRepositoryMock) Create(ctx context.Context, run *models.CommandRun) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, run)
	}
	return nil
}

func (m *CommandRunRepositoryMock) List(ctx context.Context, limit int) ([]models.CommandRun, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return []models.CommandRun{}, nil
}

func (m *CommandRunRepositoryMock) DeleteAll(ctx context.Context) error {
	if m.DeleteAllFunc != nil {
		return m.DeleteAllFunc(ctx)
	}
	return nil
}
