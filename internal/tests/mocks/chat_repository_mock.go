package mocks

import "deskpilot/internal/models"

type ChatRepositoryMock struct {
	GetAllFunc func() []models.SavedChat
	UpsertFunc func(chat models.SavedChat) error
	DeleteFunc func(id string) error
}

func (m *ChatRepositoryMock) GetAll() []models.SavedChat {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return []models.SavedChat{}
}

func (m *ChatRepositoryMock) Upsert(chat models.SavedChat) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(chat)
	}
	return nil
}

func (m *ChatRepositoryMock) Delete(id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}
