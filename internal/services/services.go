package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"deskpilot/internal/commands"
	"deskpilot/internal/config"
	"deskpilot/internal/repositories"
	"deskpilot/internal/search"
	"deskpilot/internal/storage"
)

// Services aggregates the handlers bound to the frontend.
type Services struct {
	Settings *SettingsService
	Chats    *ChatService
	Folders  *FolderService
	Commands *CommandService
	Search   *SearchService
}

// NewServices builds repositories over backend and wires every service.
// db may be nil when command history is disabled.
func NewServices(cfg config.Config, backend *storage.Backend, db *gorm.DB, log *logrus.Entry) (*Services, error) {
	settingsRepo := repositories.NewSettingsRepository(backend)

	var policy commands.Policy = commands.AllowAll{}
	if cfg.EnforceCommandLists {
		policy = SettingsPolicy(settingsRepo)
	}

	opts := CommandServiceOptions{OutputLimit: cfg.HistoryOutputLimit}
	if cfg.CommandHistory && db != nil {
		opts.History = repositories.NewCommandRunRepository(db)
	}

	ttl, err := cfg.SearchCacheTTL()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.SearchTimeout()
	if err != nil {
		return nil, err
	}
	searchClient := search.NewClient(search.Options{
		Endpoint:     cfg.Search.Endpoint,
		DefaultLimit: cfg.Search.DefaultLimit,
		CacheTTL:     ttl,
		Timeout:      timeout,
		Log:          log,
	})

	return &Services{
		Settings: NewSettingsService(settingsRepo, log),
		Chats:    NewChatService(repositories.NewChatRepository(backend), log),
		Folders:  NewFolderService(repositories.NewFolderRepository(backend), log),
		Commands: NewCommandService(commands.NewExecutor(policy, log), opts, log),
		Search:   NewSearchService(searchClient, settingsRepo),
	}, nil
}

func (s *Services) Startup(ctx context.Context) {
	s.Settings.Startup(ctx)
	s.Chats.Startup(ctx)
	s.Folders.Startup(ctx)
	s.Commands.Startup(ctx)
	s.Search.Startup(ctx)
}

func componentLog(log *logrus.Entry, name string) *logrus.Entry {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return log.WithField("component", name)
}

func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
