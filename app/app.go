package chatrooms

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/cors"

	"github.com/MarcSastreViB/chatrooms/handlers"
	"github.com/MarcSastreViB/chatrooms/models"
	"github.com/MarcSastreViB/chatrooms/pkg/router"
	"github.com/MarcSastreViB/chatrooms/store"
)

type App struct {
	config  *Config
	context context.Context
	server  *http.Server
	logger  *slog.Logger
	router  *router.Router

	exit chan int

	userStore store.UserStore
	roomStore store.RoomStore
	chatStore store.ChatStore

	userHandler *handlers.UserHandler
	chatHandler *handlers.ChatHandler

	cleanupFuncs []func(context.Context)
}

func New(ctx context.Context, config *Config) *App {
	app := &App{
		exit: make(chan int),
	}
	if ctx == nil {
		ctx, _ = signal.NotifyContext(
			context.Background(),
			syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP)
	}
	app.context = ctx

	if config == nil {
		var err error
		config, err = LoadConfig()
		if err != nil {
			failed(1, "failed to load config: %v\n", err)
		}
	}
	if err := config.Validate(); err != nil {
		failed(1, FormatValidationErrors(err))
	}
	app.config = config

	app.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	}))

	app.userStore = store.NewMemoryUserStore()
	app.roomStore = store.NewMemoryRoomStore()
	app.chatStore = store.NewMemoryChatStore(app.roomStore, app.userStore)

	app.userHandler = handlers.NewUserHandler(app.userStore)
	app.chatHandler = handlers.NewChatHandler(app.chatStore)

	app.router = router.New(router.WithLogger(app.logger))

	app.router.Router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	api := router.New(router.WithLogger(app.logger))
	registerErrorMappers(api)

	api.Route("/users", func(r *router.Router) {
		r.Post("/", app.userHandler.RegisterUserHandler)
		r.Get("/", app.userHandler.ListUsersHandler)
		r.Get("/{username}", app.userHandler.GetUserHandler)
		r.Head("/{username}", app.userHandler.ExistsUserHandler)
		r.Delete("/{username}", app.userHandler.DeleteUserHandler)
	})

	api.Route("/rooms", func(r *router.Router) {
		r.Post("/", app.chatHandler.CreateRoomHandler)
		r.Get("/", app.chatHandler.ListRoomsHandler)
		r.Get("/{roomID}", app.chatHandler.GetRoomHandler)
		r.Post("/{roomID}/members", app.chatHandler.AddRoomMemberHandler)
		r.Post("/{roomID}/messages", app.chatHandler.SendMessageHandler)
	})

	app.router.Mount("/api", api)

	app.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", app.config.Hostname, app.config.Port),
		Handler: app.router.Router,
		BaseContext: func(listener net.Listener) context.Context {
			return app.context
		},
	}

	return app
}

// registerErrorMappers maps the store's error kinds onto HTTP status codes:
// blank input to 400, missing room/user to 404, invariant violations to 409.
func registerErrorMappers(r *router.Router) {
	badRequest := func(err error) router.Error {
		return router.NewJsonError(http.StatusBadRequest, err.Error())
	}
	notFound := func(err error) router.Error {
		return router.NewJsonError(http.StatusNotFound, err.Error())
	}
	conflict := func(err error) router.Error {
		return router.NewJsonError(http.StatusConflict, err.Error())
	}

	r.RegisterErrorMapper(store.ErrBlankUsername, badRequest)
	r.RegisterErrorMapper(models.ErrBlankContent, badRequest)
	r.RegisterErrorMapper(store.ErrRoomNotFound, notFound)
	r.RegisterErrorMapper(store.ErrUserNotFound, notFound)
	r.RegisterErrorMapper(store.ErrAlreadyMember, conflict)
	r.RegisterErrorMapper(store.ErrNotMember, conflict)
}

func (app *App) Start() {
	// listen for shutdown signal
	go func() {
		<-app.context.Done()
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		var wg sync.WaitGroup

		for _, f := range app.cleanupFuncs {
			wg.Add(1)
			func(wg *sync.WaitGroup) {
				defer wg.Done()
				f(closeCtx)
			}(&wg)
		}

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			app.logger.Info("app shutdown gracefully")
			app.exit <- 0
		case <-closeCtx.Done():
			app.logger.Info("app shutdown timed out")
			app.exit <- 1
		}
	}()

	app.AddCleanupFunc(func(ctx context.Context) {
		app.server.Shutdown(ctx)
	})
	app.logger.Info(fmt.Sprintf("app running on: %s:%d",
		app.config.Hostname, app.config.Port))

	err := app.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		failed(1, "server error: %v\n", err)
	}

	code := <-app.exit
	os.Exit(code)
}

func (app *App) AddCleanupFunc(f func(context.Context)) {
	app.cleanupFuncs = append(app.cleanupFuncs, f)
}

func failed(code int, s string, args ...interface{}) {
	fmt.Printf(s, args...)
	os.Exit(code)
}
