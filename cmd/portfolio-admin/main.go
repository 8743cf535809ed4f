// Command portfolio-admin serves the admin API and editor surface. In
// development it runs entirely in-process; in production it binds Firestore,
// Firebase auth, and Cloud Storage.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firestoredb "cloud.google.com/go/firestore"
	gcstorage "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/goliatone/go-portfolio-cms/internal/config"
	"github.com/goliatone/go-portfolio-cms/internal/httpserver"
	"github.com/goliatone/go-portfolio-cms/pkg/auth"
	"github.com/goliatone/go-portfolio-cms/pkg/content"
	"github.com/goliatone/go-portfolio-cms/pkg/locale"
	"github.com/goliatone/go-portfolio-cms/pkg/media"
	"github.com/goliatone/go-portfolio-cms/pkg/preview"
	"github.com/goliatone/go-portfolio-cms/pkg/render"
	renderhtml "github.com/goliatone/go-portfolio-cms/pkg/render/html"
	"github.com/goliatone/go-portfolio-cms/pkg/section"
	"github.com/goliatone/go-portfolio-cms/pkg/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("load config", zap.Error(err))
	}

	log := buildLogger(cfg)
	defer log.Sync()

	ctx := context.Background()

	registry := content.NewRegistry()
	if err := registry.Check(); err != nil {
		log.Fatal("invalid section descriptors", zap.Error(err))
	}

	deps, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		log.Fatal("wire dependencies", zap.Error(err))
	}
	defer deps.close()

	renderers := render.NewRegistry()
	htmlRenderer, err := renderhtml.New()
	if err != nil {
		log.Fatal("build html renderer", zap.Error(err))
	}
	renderers.MustRegister(htmlRenderer)

	hub := preview.NewHub(log.Named("preview"))

	server := httpserver.New(httpserver.Options{
		Log:           log.Named("http"),
		Registry:      registry,
		Sections:      section.NewService(registry, deps.docs),
		Profile:       auth.NewProfile(deps.users),
		Media:         deps.media,
		Renderers:     renderers,
		Authenticator: deps.authenticator,
		Preview:       hub,
	})

	srv := server.HTTPServer(cfg.Addr)

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()
	log.Info("admin server listening",
		zap.String("addr", cfg.Addr),
		zap.String("environment", cfg.Environment),
		zap.String("default_language", string(locale.DefaultLanguage)),
	)

	<-stopCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildLogger(cfg config.Config) *zap.Logger {
	if cfg.Development() {
		log, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return log
	}
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	return log
}

// dependencies groups the backing services that differ between development
// and production.
type dependencies struct {
	docs          store.Store
	users         auth.UserStore
	media         media.Library
	authenticator auth.Authenticator

	closers []func() error
}

func (d *dependencies) close() {
	for _, fn := range d.closers {
		_ = fn()
	}
}

func buildDependencies(ctx context.Context, cfg config.Config, log *zap.Logger) (*dependencies, error) {
	if cfg.Development() && cfg.ProjectID == "" {
		return devDependencies(cfg, log)
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	})
	if err != nil {
		return nil, err
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	authenticator, err := auth.NewFirebase(authClient)
	if err != nil {
		return nil, err
	}

	fsClient, err := firestoredb.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, err
	}

	storageClient, err := gcstorage.NewClient(ctx)
	if err != nil {
		fsClient.Close()
		return nil, err
	}
	library, err := media.NewGCS(storageClient, cfg.StorageBucket, cfg.MediaPrefix)
	if err != nil {
		fsClient.Close()
		storageClient.Close()
		return nil, err
	}

	log.Info("using Firebase backends", zap.String("project", cfg.ProjectID))
	return &dependencies{
		docs:          store.NewFirestore(fsClient),
		users:         auth.NewFirestoreUsers(fsClient),
		media:         library,
		authenticator: authenticator,
		closers:       []func() error{fsClient.Close, storageClient.Close},
	}, nil
}

// devDependencies runs everything in memory, with a static bearer token and
// a default admin account (password "admin").
func devDependencies(cfg config.Config, log *zap.Logger) (*dependencies, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	token := cfg.DevToken
	if token == "" {
		token = "dev"
	}

	log.Warn("running with in-memory backends",
		zap.String("token", token),
		zap.String("email", cfg.DevEmail),
	)
	return &dependencies{
		docs: store.NewMemory(),
		users: auth.NewMemoryUsers(auth.User{
			Email:        cfg.DevEmail,
			Name:         "Admin",
			PasswordHash: hash,
		}),
		media: media.NewMemory(),
		authenticator: auth.Static{
			Token: token,
			Actor: auth.Actor{UID: "dev", Name: "Admin", Email: cfg.DevEmail},
		},
	}, nil
}
