package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/sirupsen/logrus"

	"deskpilot/internal/events"
	"deskpilot/internal/models"
	"deskpilot/internal/repositories"
)

type ChatService struct {
	chats   repositories.ChatRepository
	log     *logrus.Entry
	context context.Context
}

func NewChatService(chats repositories.ChatRepository, log *logrus.Entry) *ChatService {
	return &ChatService{chats: chats, log: componentLog(log, "chats")}
}

func (s *ChatService) Startup(ctx context.Context) {
	s.context = ctx
}

// GetAllChats returns every saved chat, newest first.
func (s *ChatService) GetAllChats() []models.SavedChat {
	return s.chats.GetAll()
}

func (s *ChatService) SaveChat(chat models.SavedChat) error {
	chat = chat.Normalize()
	if err := validateChat(chat); err != nil {
		return err
	}

	if err := s.chats.Upsert(chat); err != nil {
		s.log.WithError(err).WithField("chat_id", chat.ID).Error("failed to save chat")
		return fmt.Errorf("service: save chat: %w", err)
	}

	s.log.WithField("chat_id", chat.ID).Debug("chat saved")
	events.Emit(ctxOrBackground(s.context), events.ChatsUpdated, events.Saved(chat.ID))
	return nil
}

func (s *ChatService) DeleteChat(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("chat ID is required")
	}
	if err := s.chats.Delete(id); err != nil {
		return fmt.Errorf("service: delete chat: %w", err)
	}

	s.log.WithField("chat_id", id).Info("chat deleted")
	events.Emit(ctxOrBackground(s.context), events.ChatsUpdated, events.Deleted(id))
	return nil
}

// SearchChats fuzzy-matches query against chat titles, falling back to the
// first user message for untitled chats. Best matches come first. An empty
// query returns every chat.
func (s *ChatService) SearchChats(query string) []models.SavedChat {
	chats := s.chats.GetAll()
	query = strings.TrimSpace(query)
	if query == "" {
		return chats
	}

	matches := fuzzy.FindFrom(query, chatTitles(chats))
	out := make([]models.SavedChat, 0, len(matches))
	for _, m := range matches {
		out = append(out, chats[m.Index])
	}
	return out
}

// chatTitles adapts a chat list to fuzzy.Source.
type chatTitles []models.SavedChat

func (c chatTitles) String(i int) string { return c[i].TitleOrPreview() }
func (c chatTitles) Len() int            { return len(c) }

func validateChat(chat models.SavedChat) error {
	if strings.TrimSpace(chat.ID) == "" {
		return errors.New("chat ID is required")
	}
	if !chat.Mode.Valid() {
		return fmt.Errorf("invalid chat mode %q", chat.Mode)
	}
	for i, m := range chat.Messages {
		if !m.Sender.Valid() {
			return fmt.Errorf("message %d: invalid sender %q", i, m.Sender)
		}
	}
	return nil
}
