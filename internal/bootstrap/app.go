package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avishek322/Ai-Resume-Builder/internal/chat"
	"github.com/avishek322/Ai-Resume-Builder/internal/export"
	"github.com/avishek322/Ai-Resume-Builder/internal/llm"
	"github.com/avishek322/Ai-Resume-Builder/internal/llm/gemini"
	"github.com/avishek322/Ai-Resume-Builder/internal/prefs"
	"github.com/avishek322/Ai-Resume-Builder/internal/saved"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/config"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/server"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	LLM          llm.Client
	Engine       *chat.Engine
	Sessions     *chat.Store
	PDFRenderer  export.Renderer
	SavedRepo    saved.Repo
	SavedService *saved.Service
	PrefsRepo    prefs.Repo
	PrefsService *prefs.Service

	ChatHandler  *chat.Handler
	SavedHandler *saved.Handler
	PrefsHandler *prefs.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:      cfg,
		DB:          sqlDB,
		LLM:         client,
		Engine:      chat.NewEngine(client),
		Sessions:    chat.NewStore(),
		PDFRenderer: export.NewChromeRenderer(cfg.ChromePath),
	}

	if sqlDB != nil {
		app.SavedRepo = &saved.PGRepo{DB: sqlDB}
		app.PrefsRepo = &prefs.PGRepo{DB: sqlDB}
	} else {
		app.SavedRepo = saved.NewMemoryRepo()
		app.PrefsRepo = prefs.NewMemoryRepo()
	}
	app.SavedService = &saved.Service{Repo: app.SavedRepo}
	app.PrefsService = &prefs.Service{Repo: app.PrefsRepo}

	app.ChatHandler = chat.NewHandler(app.Engine, app.Sessions, app.SavedService, app.PDFRenderer)
	app.SavedHandler = saved.NewHandler(app.SavedService, sessionAdapter{store: app.Sessions})
	app.PrefsHandler = prefs.NewHandler(app.PrefsService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:       app.Config,
		ChatHandler:  app.ChatHandler,
		SavedHandler: app.SavedHandler,
		PrefsHandler: app.PrefsHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: GEMINI_API_KEY empty; using scripted mock client")
			return &llm.MockClient{}, nil
		}
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiTextModel, cfg.GeminiImageModel)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

// sessionAdapter exposes chat sessions to the saved-resume handler without
// binding that package to the chat types.
type sessionAdapter struct {
	store *chat.Store
}

func (a sessionAdapter) Snapshot(sessionID, userID string) (saved.SessionSnapshot, error) {
	s, err := a.store.Get(sessionID, userID)
	if err != nil {
		return saved.SessionSnapshot{}, err
	}
	state := s.State()
	return saved.SessionSnapshot{
		ResumeData:          state.ResumeData,
		TemplateID:          state.TemplateID,
		HTMLContent:         state.HTML,
		CustomTemplateImage: state.CustomTemplateImage,
	}, nil
}
