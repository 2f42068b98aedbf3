package repositories

import (
	"deskpilot/internal/models"
	"deskpilot/internal/storage"
)

type FolderRepository interface {
	GetAll() []models.Folder
	Upsert(folder models.Folder) error
	Delete(id string) error
}

func NewFolderRepository(backend *storage.Backend) FolderRepository {
	return newCollectionRepository[models.Folder](backend, "folders", "folder")
}
