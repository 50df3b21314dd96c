package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "estimatepro/docs"
	"estimatepro/internal/adapter/http/handlers"
	"estimatepro/internal/adapter/http/middleware"
	"estimatepro/internal/infrastructure/config"
	"estimatepro/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Builder  *handlers.BuilderHandler
	Lead     *handlers.LeadHandler
	Survey   *handlers.SurveyHandler
	Payments *handlers.SubscriptionPaymentHandler
	Admin    *handlers.AdminHandler
}

// Run wires the application, starts the trial jobs and serves HTTP until SIGINT/SIGTERM.
func Run(cfg config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	app, err := buildApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.close()

	router := NewRouter(app.handlers, app.auth, cfg.CORSOrigins)
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if app.trialJobs != nil {
		app.trialJobs.Start()
	}

	serveErr := make(chan error, 1)
	go func() {
		zap.S().Infof("[app][http] listening port=%d env=%s", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		zap.S().Warnf("[app][http] received signal=%s, shutting down", sig)
	case err := <-serveErr:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if app.trialJobs != nil {
		app.trialJobs.Stop(shutdownCtx)
	}
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with every route and middleware.
func NewRouter(h Handlers, auth usecase.IAuthUseCase, corsOrigins []string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, corsOrigins)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addHealthRoutes(router)

	v1 := router.Group("/v1")
	addHealthRoutes(v1)

	authenticated := middleware.Auth(auth)
	subscribed := middleware.RequireActiveSubscription(nil)

	addAuthRoutes(v1, h.Auth, authenticated)
	addSurveyRoutes(v1, h.Survey)
	addWebhookRoutes(v1, h.Payments)

	private := v1.Group("", authenticated)
	addBuilderRoutes(private, h.Builder, subscribed)
	addLeadRoutes(private, h.Lead, subscribed)
	addBillingRoutes(private, h.Payments)
	addAdminRoutes(private, h.Admin)

	return router
}

func setMiddlewares(router *gin.Engine, corsOrigins []string) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(corsOrigins))
}
