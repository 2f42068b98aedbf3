package repositories

import (
	"deskpilot/internal/models"
	"deskpilot/internal/storage"
)

type ChatRepository interface {
	GetAll() []models.SavedChat
	Upsert(chat models.SavedChat) error
	Delete(id string) error
}

func NewChatRepository(backend *storage.Backend) ChatRepository {
	return newCollectionRepository[models.SavedChat](backend, "chats", "chat")
}
