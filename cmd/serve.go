package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"blightwatch-be/config"
	"blightwatch-be/controllers"
	"blightwatch-be/limiter"
	"blightwatch-be/models"
	"blightwatch-be/repository"
	"blightwatch-be/routes"
	"blightwatch-be/services"
	"blightwatch-be/session"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

type stores struct {
	cases   repository.CaseRepository
	reviews repository.ReviewRepository
	users   repository.UserRepository
}

func openStores(ctx context.Context) (*stores, func(), error) {
	if cfg.StoreBackend != config.BackendMongo {
		logger.Info("using in-memory store seeded with sample cases")
		return &stores{
			cases:   repository.NewMemoryCaseStore(models.SampleCases()),
			reviews: repository.NewMemoryReviewStore(),
			users:   repository.NewMemoryUserStore(),
		}, func() {}, nil
	}

	client, db, err := config.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { disconnectMongo(client) }

	reviews := repository.NewMongoReviewStore(db)
	users := repository.NewMongoUserStore(db)
	if err := reviews.EnsureIndexes(ctx); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to create review indexes: %w", err)
	}
	if err := users.EnsureIndexes(ctx); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to create user indexes: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))
	return &stores{cases: repository.NewMongoCaseStore(db), reviews: reviews, users: users}, closeFn, nil
}

func disconnectMongo(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		logger.Warn("failed to disconnect from MongoDB", zap.Error(err))
	}
}

type sessionBackend struct {
	sessions session.Store
	codes    session.CodeStore
	limiter  limiter.Counter
}

func openSessions(ctx context.Context) (*sessionBackend, func(), error) {
	if cfg.SessionBackend != config.BackendRedis {
		logger.Info("using in-memory sessions and rate limits")
		counter := limiter.NewMemory()
		return &sessionBackend{
			sessions: session.NewMemoryStore(cfg.SessionTTL),
			codes:    session.NewMemoryCodes(counter, cfg.VerificationTTL),
			limiter:  counter,
		}, func() {}, nil
	}

	client, err := config.ConnectRedis(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to Redis", zap.String("address", cfg.RedisAddress))

	counter := limiter.NewRedis(client)
	return &sessionBackend{
		sessions: session.NewRedisStore(client, "session", cfg.SessionTTL),
		codes:    session.NewRedisCodes(client, "verify", counter, cfg.VerificationTTL),
		limiter:  counter,
	}, func() { closeRedis(client) }, nil
}

func closeRedis(client *redis.Client) {
	if err := client.Close(); err != nil {
		logger.Warn("failed to close Redis client", zap.Error(err))
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStores, err := openStores(ctx)
	if err != nil {
		return err
	}
	defer closeStores()

	sb, closeSessions, err := openSessions(ctx)
	if err != nil {
		return err
	}
	defer closeSessions()

	if _, created, err := services.EnsureAdmin(ctx, st.users, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return err
	} else if created {
		logger.Info("created bootstrap admin", zap.String("email", cfg.AdminEmail))
	}

	svc := services.NewCaseService(
		st.cases,
		st.reviews,
		repository.NewMemoryReviewerStore(models.SampleReviewers()),
		cfg.ReviewUpdatesStatus,
		logger,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	directory := services.NewDirectoryService(
		repository.NewMemoryDirectory(models.SampleStaff(), models.SampleOrganizations()),
		st.cases,
	)
	router, err := routes.NewRouter(routes.Deps{
		Handler:  controllers.NewHandler(svc, directory, st.users, sb.codes, cfg, logger),
		Sessions: sb.sessions,
		Limiter:  sb.limiter,
		Config:   cfg,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.StoreBackend),
			zap.String("sessions", cfg.SessionBackend),
			zap.Bool("review_updates_status", cfg.ReviewUpdatesStatus),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
