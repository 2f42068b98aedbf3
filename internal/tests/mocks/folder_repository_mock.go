package mocks

import "deskpilot/internal/models"

type FolderRepositoryMock struct {
	GetAllFunc func() []models.Folder
	UpsertFunc func(folder models.Folder) error
	DeleteFunc func(id string) error
}

func (m *FolderRepositoryMock) GetAll() []models.Folder {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return []models.Folder{}
}

func (m *FolderRepositoryMock) Upsert(folder models.Folder) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(folder)
	}
	return nil
}

func (m *FolderRepositoryMock) Delete(id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
