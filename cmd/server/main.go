package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/maven-leads-api/api/swagger"
	"github.com/noah-isme/maven-leads-api/internal/handler"
	"github.com/noah-isme/maven-leads-api/internal/middleware"
	"github.com/noah-isme/maven-leads-api/internal/repository"
	"github.com/noah-isme/maven-leads-api/internal/service"
	"github.com/noah-isme/maven-leads-api/pkg/cache"
	"github.com/noah-isme/maven-leads-api/pkg/config"
	"github.com/noah-isme/maven-leads-api/pkg/database"
	"github.com/noah-isme/maven-leads-api/pkg/logger"
	"github.com/noah-isme/maven-leads-api/pkg/mailer"
	corsmiddleware "github.com/noah-isme/maven-leads-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/maven-leads-api/pkg/middleware/requestid"
)

// @title Maven Leads API
// @version 1.0.0
// @description Lead capture widget backend and admin panel
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect database", "error", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		logr.Sugar().Fatalw("failed to ensure schema", "error", err)
	}

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.SettingsTTL, logr, cfg.Cache.Enabled && cacheRepo != nil)

	settingsRepo := repository.NewSettingsRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	settingsSvc := service.NewSettingsService(settingsRepo, cacheSvc, logr)
	notifySvc := service.NewNotificationService(mailer.NewSMTP(cfg.Mail), metricsSvc, logr, cfg.Notify.Timeout)
	leadSvc := service.NewLeadService(leadRepo, settingsSvc, notifySvc, validator.New(), metricsSvc, logr)
	translationSvc := service.NewTranslationService(cfg.Assets.TranslationsPath, cacheSvc, logr)
	exportSvc := service.NewExportService(leadSvc)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := settingsSvc.EnsureDefault(ctx); err != nil {
		logr.Sugar().Fatalw("failed to bootstrap settings", "error", err)
	}
	cancel()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.LoadHTMLGlob(cfg.Assets.TemplatesGlob)

	pageHandler := handler.NewPageHandler(settingsSvc, leadSvc, logr)
	leadHandler := handler.NewLeadHandler(leadSvc, cfg.Notify.SurfaceAdminErrors)
	settingsHandler := handler.NewSettingsHandler(settingsSvc, cfg.Admin.SaveDelay)
	translationHandler := handler.NewTranslationHandler(translationSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r.GET("/", pageHandler.Index)
	r.GET("/admin", pageHandler.Admin)
	r.GET("/favicon.ico", pageHandler.Favicon)

	r.POST("/submit_lead", leadHandler.Submit)
	r.POST("/delete_lead/:id", leadHandler.Delete)

	r.POST("/admin/save", settingsHandler.Save)
	r.POST("/admin/save_email_settings", settingsHandler.SaveEmailSettings)
	r.GET("/get_settings", settingsHandler.GetSettings)
	r.GET("/get_translations/:language", translationHandler.Get)

	if cfg.Exports.Enabled {
		r.GET("/admin/leads/export", exportHandler.Export)
	}

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
