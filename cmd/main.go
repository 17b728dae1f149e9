package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Rehearse/config"
	"github.com/lshigami/Rehearse/database"
	_ "github.com/lshigami/Rehearse/docs" // Swagger docs - generated by swag init
	"github.com/lshigami/Rehearse/internal/auth"
	"github.com/lshigami/Rehearse/internal/controller"
	analysisctrl "github.com/lshigami/Rehearse/internal/controller/analysis"
	userctrl "github.com/lshigami/Rehearse/internal/controller/user"
	"github.com/lshigami/Rehearse/internal/logger"
	"github.com/lshigami/Rehearse/internal/model"
	"github.com/lshigami/Rehearse/internal/repository"
	"github.com/lshigami/Rehearse/internal/service"
	"github.com/lshigami/Rehearse/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Interview Practice API
// @version 1.0
// @description Mock interview practice: company and role setup, answer recording, and AI critique of recorded answers.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewRedisClient,
			auth.NewRedisSessionStore,
			storage.NewS3Store,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewCompanyRepository,
			repository.NewJobRoleRepository,
			repository.NewSessionRepository,
			repository.NewQuestionRepository,
			repository.NewResponseRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewCritiqueLLMService,
			service.NewAnalysisService,
			service.NewSetupService,
			service.NewInterviewService,
			service.NewRecordingService,
			service.NewLandingService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewController,
			analysisctrl.NewAnalysisController,
			userctrl.NewSetupController,
			userctrl.NewInterviewController,
			userctrl.NewRecordingController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(StartRecordingReaper),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  append([]string{"Origin", "Accept"}, analysisctrl.AllowedHeaders...),
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessions auth.SessionStore,
	rootCtrl *controller.Controller,
	analysisCtrl *analysisctrl.AnalysisController,
	setupCtrl *userctrl.SetupController,
	interviewCtrl *userctrl.InterviewController,
	recordingCtrl *userctrl.RecordingController,
) {
	router.GET("/", auth.Optional(sessions), rootCtrl.LandingHandler)
	router.GET("/health", rootCtrl.HealthHandler)

	analyze := router.Group("/analyze-response", analysisctrl.CORS())
	{
		analyze.POST("", analysisCtrl.AnalyzeResponse)
		analyze.OPTIONS("", analysisCtrl.Preflight)
	}

	// Candidate routes (prefixed with /api/v1), all behind the session gate
	api := router.Group("/api/v1", auth.Gate(sessions))
	{
		api.GET("/companies", setupCtrl.ListCompanies)
		api.GET("/companies/:company_id/roles", setupCtrl.ListRoles)
		api.GET("/roles", setupCtrl.ListRoles)
		api.POST("/sessions", setupCtrl.StartSession)

		api.GET("/sessions/:session_id/interview", interviewCtrl.LoadInterview)
		api.GET("/sessions/:session_id/responses", interviewCtrl.ListResponses)

		rec := api.Group("/sessions/:session_id/recording")
		rec.GET("", recordingCtrl.RecordingState)
		rec.DELETE("", recordingCtrl.DiscardRecording)
		rec.POST("/start", recordingCtrl.StartRecording)
		rec.PUT("/chunks", recordingCtrl.AppendChunk)
		rec.POST("/stop", recordingCtrl.StopRecording)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// StartRecordingReaper runs the idle-recording sweeper for the lifetime of the app.
func StartRecordingReaper(lc fx.Lifecycle, recordings service.RecordingService) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go recordings.RunReaper(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Company{},
		&model.JobRole{},
		&model.InterviewSession{},
		&model.Question{},
		&model.Response{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
