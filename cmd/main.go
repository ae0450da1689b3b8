package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/config"
	_ "github.com/lshigami/atcprep/docs" // Swagger docs - auto-generated
	"github.com/lshigami/atcprep/internal/auth"
	"github.com/lshigami/atcprep/internal/controller"
	adminctrl "github.com/lshigami/atcprep/internal/controller/admin"
	userctrl "github.com/lshigami/atcprep/internal/controller/user"
	"github.com/lshigami/atcprep/internal/database"
	"github.com/lshigami/atcprep/internal/document"
	"github.com/lshigami/atcprep/internal/event"
	"github.com/lshigami/atcprep/internal/logger"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/questionbank"
	"github.com/lshigami/atcprep/internal/repository"
	"github.com/lshigami/atcprep/internal/service"
	"github.com/lshigami/atcprep/internal/session"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title ATC Exam Preparation API
// @version 1.0
// @description Courses, exercises and timed tests for air traffic control exam preparation.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewPipeline,
			NewSessionManager,
			questionbank.NewGenerator,
			auth.NewTokenManager,
			event.NewEventPublisher,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewCourseRepository,
			repository.NewTestRepository,
			repository.NewExerciseRepository,
			repository.NewTestSubmissionRepository,
			repository.NewExerciseSubmissionRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewCourseService,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewExerciseService,
			service.NewSubmissionService,
			service.NewSessionService,
			service.NewUserService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			adminctrl.NewAdminCourseController,
			adminctrl.NewAdminExerciseController,
			adminctrl.NewAdminUserController,
			userctrl.NewUserTestController,
			userctrl.NewCourseController,
			userctrl.NewExerciseController,
			userctrl.NewSessionController,
			userctrl.NewAuthController,
		),

		fx.Invoke(ApplyLogLevel),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedAdmin),
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
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func ApplyLogLevel(cfg *config.Config) {
	logger.SetLevel(cfg.LogLevel)
}

func NewPipeline(cfg *config.Config) *document.Pipeline {
	return document.NewPipeline(cfg.Storage.MaxUploadBytes)
}

// NewSessionManager abandons every live session on shutdown, which also stops
// their countdowns.
func NewSessionManager(lc fx.Lifecycle) *session.Manager {
	manager := session.NewManager()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			manager.Close()
			return nil
		},
	})
	return manager
}

func NewGinEngine(cfg *config.Config, tokens *auth.TokenManager) *gin.Engine {
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", userctrl.HeaderFileWarning, userctrl.HeaderFilePartial},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(controller.Authenticate(tokens))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Controllers struct {
	fx.In

	AdminTests     *adminctrl.AdminTestController
	AdminCourses   *adminctrl.AdminCourseController
	AdminExercises *adminctrl.AdminExerciseController
	AdminUsers     *adminctrl.AdminUserController
	Tests          *userctrl.UserTestController
	Courses        *userctrl.CourseController
	Exercises      *userctrl.ExerciseController
	Sessions       *userctrl.SessionController
	Auth           *userctrl.AuthController
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	publisher event.Publisher,
	ctrl Controllers,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin", controller.RequireAdmin())
	{
		tests := adminAPIGroup.Group("/tests")
		tests.POST("", ctrl.AdminTests.CreateTest)
		tests.POST("/generate", ctrl.AdminTests.GenerateTest)
		tests.GET("/:test_id", ctrl.AdminTests.GetTest)
		tests.PUT("/:test_id", ctrl.AdminTests.UpdateTest)
		tests.DELETE("/:test_id", ctrl.AdminTests.DeleteTest)
		tests.GET("/:test_id/submissions", ctrl.AdminTests.GetTestSubmissions)

		courses := adminAPIGroup.Group("/courses")
		courses.POST("", ctrl.AdminCourses.CreateCourse)
		courses.PUT("/:course_id", ctrl.AdminCourses.UpdateCourse)
		courses.DELETE("/:course_id", ctrl.AdminCourses.DeleteCourse)

		exercises := adminAPIGroup.Group("/exercises")
		exercises.POST("", ctrl.AdminExercises.GenerateExercise)
		exercises.DELETE("/:exercise_id", ctrl.AdminExercises.DeleteExercise)

		users := adminAPIGroup.Group("/users")
		users.GET("", ctrl.AdminUsers.ListUsers)
		users.PUT("/:user_id/grades", ctrl.AdminUsers.SetGrade)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.POST("/auth/register", ctrl.Auth.Register)
		userAPIGroup.POST("/auth/login", ctrl.Auth.Login)
		userAPIGroup.GET("/me", controller.RequireUser(), ctrl.Auth.Me)
		userAPIGroup.GET("/me/submissions", controller.RequireUser(), ctrl.Auth.MySubmissions)

		userAPIGroup.GET("/courses", ctrl.Courses.ListCourses)
		userAPIGroup.GET("/courses/:course_id", ctrl.Courses.GetCourse)
		userAPIGroup.GET("/courses/:course_id/file", ctrl.Courses.DownloadCourseFile)

		userAPIGroup.GET("/tests", ctrl.Tests.GetAllTests)
		userAPIGroup.GET("/tests/:test_id", ctrl.Tests.GetTestDetails)
		userAPIGroup.POST("/tests/:test_id/sessions", ctrl.Tests.StartTest)

		userAPIGroup.GET("/exercises", ctrl.Exercises.ListExercises)
		userAPIGroup.GET("/exercises/:exercise_id", ctrl.Exercises.GetExercise)
		userAPIGroup.POST("/exercises/:exercise_id/sessions", ctrl.Exercises.StartExercise)

		sessions := userAPIGroup.Group("/sessions/:session_id")
		sessions.GET("", ctrl.Sessions.GetSession)
		sessions.DELETE("", ctrl.Sessions.Abandon)
		sessions.PUT("/answers", ctrl.Sessions.SelectAnswer)
		sessions.POST("/next", ctrl.Sessions.Next)
		sessions.POST("/previous", ctrl.Sessions.Previous)
		sessions.POST("/jump", ctrl.Sessions.Jump)
		sessions.POST("/submit", ctrl.Sessions.Submit)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("ATC prep API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return publisher.Close()
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Course{},
		&model.Test{},
		&model.Exercise{},
		&model.TestSubmission{},
		&model.ExerciseSubmission{},
		&model.User{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedAdmin(cfg *config.Config, users service.UserService) error {
	return users.EnsureAdmin(cfg.Auth.AdminEmail)
}
