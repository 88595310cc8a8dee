package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	_ "github.com/umalmyha/crmtrack/docs"
	"github.com/umalmyha/crmtrack/internal/auth"
	"github.com/umalmyha/crmtrack/internal/cache"
	"github.com/umalmyha/crmtrack/internal/config"
	apperrors "github.com/umalmyha/crmtrack/internal/errors"
	"github.com/umalmyha/crmtrack/internal/handlers"
	"github.com/umalmyha/crmtrack/internal/middleware"
	"github.com/umalmyha/crmtrack/internal/repository"
	"github.com/umalmyha/crmtrack/internal/service"
	"github.com/umalmyha/crmtrack/internal/validation"
	"github.com/umalmyha/crmtrack/pkg/db/transactor"
)

const DefaultPort = 3000
const DefaultShutdownTimeout = 10 * time.Second
const DefaultConnectTimeout = 5 * time.Second

// @title       CRM Track API
// @version     1.0
// @description Customer relationship tracking - customers, interaction history, follow-ups and dashboard

// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	pgPool, err := connectToPostgres(cfg.PostgresCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer pgPool.Close()

	mongoClient, err := connectToMongodb(cfg.MongoCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logrus.Errorf("failed to disconnect from mongodb - %v", err)
		}
	}()

	redisClient, err := connectToRedis(cfg.RedisCfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logrus.Errorf("failed to close connection to redis - %v", err)
		}
	}()

	start(pgPool, mongoClient, redisClient, cfg.AuthCfg)
}

func connectToPostgres(cfg config.PostgresCfg) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	dsn := fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=%s sslmode=%s pool_max_conns=%d",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SslMode, cfg.PoolMaxConn)

	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to establish connection to postgresql - %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("didn't get response from postgresql after sending ping request - %w", err)
	}
	return pool, nil
}

func connectToMongodb(cfg config.MongoCfg) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	uri := fmt.Sprintf("mongodb://%s:%s@%s:%d/?maxPoolSize=%d", cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to establish connection to mongodb - %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("didn't get response from mongodb after sending ping request - %w", err)
	}
	return client, nil
}

func connectToRedis(cfg config.RedisCfg) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultConnectTimeout)
	defer cancel()

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("didn't get response from redis after sending ping request - %w", err)
	}
	return client, nil
}

func start(pgPool *pgxpool.Pool, mongoClient *mongo.Client, redisClient *redis.Client, authCfg config.AuthCfg) {
	app, err := app(pgPool, mongoClient, redisClient, authCfg)
	if err != nil {
		logrus.Fatal(err)
	}

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", DefaultPort))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Fatalf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}

//nolint:funlen // function contains a lot of boilerplate wiring
func app(pgPool *pgxpool.Pool, mongoClient *mongo.Client, redisClient *redis.Client, authCfg config.AuthCfg) (*echo.Echo, error) {
	e := echo.New()

	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)
	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to build echo validator because of missing en translations")
	}
	e.Validator = validation.Echo(validator.New(), trans)
	e.HTTPErrorHandler = errorHandler(e)

	// Transactors
	trx := transactor.NewPgxTransactor(pgPool)
	txExecutor := transactor.NewPgxWithinTransactionExecutor(pgPool)

	// Configs
	jwtCfg := authCfg.JwtCfg
	rfrTokenCfg := authCfg.RefreshTokenCfg

	// Extra functionality
	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey)

	// Middleware
	authorizeMw := middleware.Authorize(jwtValidator)

	// Repositories
	userRepo := repository.NewPostgresUserRepository(txExecutor)
	rfrTokenRepo := repository.NewPostgresRefreshTokenRepository(txExecutor)
	pgCustomerRepo := repository.NewPostgresCustomerRepository(pgPool)
	pgInteractionRepo := repository.NewPostgresInteractionRepository(pgPool)
	mongoCustomerRepo := repository.NewMongoCustomerRepository(mongoClient)
	mongoInteractionRepo := repository.NewMongoInteractionRepository(mongoClient)
	customerCacheV1 := cache.NewRedisCustomerCache(redisClient, "v1")
	customerCacheV2 := cache.NewRedisCustomerCache(redisClient, "v2")

	// Services
	authSvc := service.NewAuthService(jwtIssuer, &rfrTokenCfg, trx, userRepo, rfrTokenRepo)
	customerSvcV1 := service.NewCustomerService(pgCustomerRepo, customerCacheV1)
	customerSvcV2 := service.NewCustomerService(mongoCustomerRepo, customerCacheV2)
	interactionSvcV1 := service.NewInteractionService(pgInteractionRepo, pgCustomerRepo)
	interactionSvcV2 := service.NewInteractionService(mongoInteractionRepo, mongoCustomerRepo)
	dashboardSvcV1 := service.NewDashboardService(pgCustomerRepo, pgInteractionRepo)
	dashboardSvcV2 := service.NewDashboardService(mongoCustomerRepo, mongoInteractionRepo)

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(authSvc)
	customerHandlerV1 := handlers.NewCustomerHTTPHandler(customerSvcV1)
	customerHandlerV2 := handlers.NewCustomerHTTPHandler(customerSvcV2)
	interactionHandlerV1 := handlers.NewInteractionHTTPHandler(interactionSvcV1)
	interactionHandlerV2 := handlers.NewInteractionHTTPHandler(interactionSvcV2)
	dashboardHandlerV1 := handlers.NewDashboardHTTPHandler(dashboardSvcV1)
	dashboardHandlerV2 := handlers.NewDashboardHTTPHandler(dashboardSvcV2)

	// API routes
	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/signup", authHandler.Signup)
	authAPI.POST("/login", authHandler.Login)
	authAPI.POST("/logout", authHandler.Logout)
	authAPI.POST("/refresh", authHandler.Refresh)

	for version, h := range map[string]struct {
		customer    *handlers.CustomerHTTPHandler
		interaction *handlers.InteractionHTTPHandler
		dashboard   *handlers.DashboardHTTPHandler
	}{
		"/v1": {customerHandlerV1, interactionHandlerV1, dashboardHandlerV1},
		"/v2": {customerHandlerV2, interactionHandlerV2, dashboardHandlerV2},
	} {
		grp := api.Group(version, authorizeMw)

		grp.GET("/customers", h.customer.GetAll)
		grp.GET("/customers/:id", h.customer.Get)
		grp.POST("/customers", h.customer.Post)
		grp.PATCH("/customers/:id", h.customer.Patch)
		grp.DELETE("/customers/:id", h.customer.DeleteByID)

		grp.GET("/customers/:id/interactions", h.interaction.History)
		grp.POST("/customers/:id/interactions", h.interaction.Log)
		grp.DELETE("/interactions/:id", h.interaction.DeleteByID)

		grp.GET("/dashboard/stats", h.dashboard.Stats)
		grp.GET("/dashboard/follow-ups", h.dashboard.FollowUps)
	}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		logrus.Errorf("error occurred on %s %s - %v", c.Request().Method, c.Request().URL.Path, err)

		var (
			payloadErr    *validation.PayloadError
			validationErr *apperrors.ValidationErr
			notFoundErr   *apperrors.NotFoundErr
			unauthErr     *apperrors.UnauthenticatedErr
			storeErr      *apperrors.StoreErr
		)

		switch {
		case errors.As(err, &payloadErr):
			err = echo.NewHTTPError(http.StatusBadRequest, payloadErr)
		case errors.As(err, &validationErr):
			err = echo.NewHTTPError(http.StatusBadRequest, validationErr)
		case errors.As(err, &notFoundErr):
			err = echo.NewHTTPError(http.StatusNotFound, notFoundErr.Error())
		case errors.As(err, &unauthErr):
			err = echo.NewHTTPError(http.StatusUnauthorized, unauthErr.Error())
		case errors.As(err, &storeErr):
			err = echo.NewHTTPError(http.StatusServiceUnavailable, "storage is temporarily unavailable")
		}

		e.DefaultHTTPErrorHandler(err, c)
	}
}
