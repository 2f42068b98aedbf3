package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"deskpilot/internal/events"
	"deskpilot/internal/models"
	"deskpilot/internal/repositories"
)

type FolderService struct {
	folders repositories.FolderRepository
	log     *logrus.Entry
	context context.Context
}

func NewFolderService(folders repositories.FolderRepository, log *logrus.Entry) *FolderService {
	return &FolderService{folders: folders, log: componentLog(log, "folders")}
}

func (s *FolderService) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *FolderService) GetAllFolders() []models.Folder {
	return s.folders.GetAll()
}

// SaveFolder inserts or replaces a folder. ParentID is stored as given, even
// if no folder with that ID exists.
func (s *FolderService) SaveFolder(folder models.Folder) error {
	if strings.TrimSpace(folder.ID) == "" {
		return errors.New("folder ID is required")
	}
	if err := s.folders.Upsert(folder); err != nil {
		s.log.WithError(err).WithField("folder_id", folder.ID).Error("failed to save folder")
		return fmt.Errorf("service: save folder: %w", err)
	}

	events.Emit(ctxOrBackground(s.context), events.FoldersUpdated, events.Saved(folder.ID))
	return nil
}

func (s *FolderService) DeleteFolder(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("folder ID is required")
	}
	if err := s.folders.Delete(id); err != nil {
		return fmt.Errorf("service: delete folder: %w", err)
	}

	s.log.WithField("folder_id", id).Info("folder deleted")
	events.Emit(ctxOrBackground(s.context), events.FoldersUpdated, events.Deleted(id))
	return nil
}
