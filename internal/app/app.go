package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/coursepilot-backend/internal/adapter/llm"
	"github.com/heartmarshall/coursepilot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursepilot-backend/internal/adapter/postgres/courserecord"
	"github.com/heartmarshall/coursepilot-backend/internal/adapter/postgres/subject"
	"github.com/heartmarshall/coursepilot-backend/internal/auth"
	"github.com/heartmarshall/coursepilot-backend/internal/config"
	"github.com/heartmarshall/coursepilot-backend/internal/eventbus"
	"github.com/heartmarshall/coursepilot-backend/internal/flow"
	"github.com/heartmarshall/coursepilot-backend/internal/service/chat"
	"github.com/heartmarshall/coursepilot-backend/internal/service/course"
	"github.com/heartmarshall/coursepilot-backend/internal/service/coursecreate"
	"github.com/heartmarshall/coursepilot-backend/internal/service/dispatch"
	"github.com/heartmarshall/coursepilot-backend/internal/transport/middleware"
	"github.com/heartmarshall/coursepilot-backend/internal/transport/rest"
)

// Run loads configuration, wires every component and serves HTTP until
// ctx is cancelled. Background course work is drained before it returns.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		BuildAttr(),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	stack := NewStack(cfg, logger, pool)
	serveErr := serve(ctx, cfg.Server, stack.Handler, logger)

	// Flows started by the last replies keep writing to the database.
	stack.Close()
	logger.Info("application stopped")

	return serveErr
}

// Stack is the wired HTTP application.
type Stack struct {
	Handler http.Handler

	limiter    *middleware.RateLimiter
	creator    *coursecreate.Service
	dispatcher *dispatch.Dispatcher
	tutorial   *chat.Tutorial
}

// NewStack builds repositories, services and the HTTP handler on pool.
// llmOpts are passed to the model client.
func NewStack(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, llmOpts ...option.RequestOption) *Stack {
	var (
		subjects = subject.New(pool)
		records  = courserecord.New(pool)
		tx       = postgres.NewTxManager(pool)
		bus      = eventbus.New(logger)
		flows    = flow.NewMachine()
		model    = llm.New(logger, cfg.LLM, llmOpts...)
	)

	courses := course.NewService(logger, subjects, records, tx, bus, cfg.Assistant.Languages)
	creator := coursecreate.NewService(logger, subjects, records, tx, model, model, model, bus, coursecreate.Options{
		PlaceholderNames:  cfg.Assistant.PlaceholderNames,
		MinNameLen:        cfg.Assistant.MinCourseNameLen,
		UploadConcurrency: cfg.Assistant.UploadConcurrency,
	})
	tutorial := chat.NewTutorial(logger, bus, chat.DefaultTutorialSteps, cfg.Assistant.TutorialTick)
	dispatcher := dispatch.New(logger, courses, creator, bus, tutorial, flows, dispatch.Options{
		PlaceholderSlugs: cfg.Assistant.PlaceholderSlugs,
	})
	chats := chat.NewService(logger, model, dispatcher, courses, flows, tutorial)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupEvery)

	mux := http.NewServeMux()
	rest.Routes(mux, rest.Handlers{
		Health:  rest.NewHealthHandler(Version, map[string]rest.Pinger{"postgres": pool}),
		Chat:    rest.NewChatHandler(chats, cfg.Server.MaxUploadBytes, logger),
		Events:  rest.NewEventsHandler(bus, cfg.Server.EventHeartbeat, logger),
		Courses: rest.NewCourseHandler(courses, logger),
	}, middleware.RequireUser, limiter.Limit(cfg.RateLimit.ChatPerMinute))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwt),
	)(mux)

	return &Stack{
		Handler:    handler,
		limiter:    limiter,
		creator:    creator,
		dispatcher: dispatcher,
		tutorial:   tutorial,
	}
}

// Close stops the rate limiter and waits for background course work.
func (s *Stack) Close() {
	s.limiter.Stop()
	s.dispatcher.Wait()
	s.creator.Wait()
	s.tutorial.Wait()
}
