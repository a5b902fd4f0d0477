package main

import (
	"context"
	"fmt"
	common_api "go-citizen/internal/common/api"
	"go-citizen/internal/config"
	"go-citizen/internal/database"
	"go-citizen/internal/features/admin"
	"go-citizen/internal/features/application"
	"go-citizen/internal/features/audit"
	"go-citizen/internal/features/auth"
	"go-citizen/internal/features/certificate"
	"go-citizen/internal/features/chat"
	"go-citizen/internal/features/dashboard"
	"go-citizen/internal/features/directory"
	"go-citizen/internal/features/land"
	"go-citizen/internal/features/notification"
	"go-citizen/internal/features/policy"
	"go-citizen/internal/features/product"
	"go-citizen/internal/features/recommendation"
	"go-citizen/internal/features/system"
	"go-citizen/internal/features/user"
	"go-citizen/internal/logger"
	"go-citizen/internal/middleware"
	"go-citizen/pkg/utils"
	"log"
	"time"

	_ "go-citizen/docs" // Import swagger docs

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Use custom CORS middleware
	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	log.Printf("Registering %d routes...\n", len(routes))
	for _, route := range routes {
		route.Setup(app)
	}
	log.Println("All routes registered successfully")
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

// InitializeIndexes ensures that necessary database indexes are created
func InitializeIndexes(lc fx.Lifecycle, userRepo user.UserRepository, appRepo application.ApplicationRepository) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := userRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure user indexes: %v", err)
				}
				if err := appRepo.EnsureIndexes(ctx); err != nil {
					log.Printf("Failed to ensure application indexes: %v", err)
				}
			}()
			return nil
		},
	})
}

// StartCertificateSweeper runs the missing-certificate retry scheduler for
// the life of the process.
func StartCertificateSweeper(lc fx.Lifecycle, sweeper *application.CertificateSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return sweeper.InitializeScheduler(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.StopScheduler()
		},
	})
}

// SeedServiceCatalogue inserts the default service policies on first boot.
func SeedServiceCatalogue(lc fx.Lifecycle, policyService policy.PolicyService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
			defer cancel()
			return policyService.SeedDefaults(ctx)
		},
	})
}

// ConfigureAuth sets the signing secret used for tokens.
func ConfigureAuth(cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)
}

// @title           Citizen Services API
// @version         1.0
// @description     Multi-stage approval workflow for government citizen services.

// @contact.name    API Support

// @host            localhost:8000
// @BasePath        /
func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Initialize Repository
			user.NewUserRepository,
			audit.NewAuditRepository,
			policy.NewPolicyRepository,
			application.NewApplicationRepository,
			application.NewHookRepository,
			notification.NewNotificationRepository,
			product.NewProductRepository,
			land.NewLandRepository,

			// Initialize Service
			audit.NewAuditService,
			auth.NewAuthService,
			policy.NewPolicyService,
			directory.NewDirectoryService,
			certificate.NewIssuer,
			application.NewHookRunner,
			notification.NewHub,
			notification.NewNotificationService,
			application.NewApplicationService,
			user.NewUserService,
			product.NewProductService,
			recommendation.NewRecommendationService,
			chat.NewChatService,
			land.NewLandService,
			dashboard.NewDashboardService,
			admin.NewAdminService,
			application.NewCertificateSweeper,

			// Interface Adapters to break circular dependencies and satisfy Fx
			func(s application.ApplicationService) user.WalletSource { return s },
			func(s notification.NotificationService) application.TransitionListener { return s },

			// Initialize Controller
			auth.NewAuthController,
			user.NewUserController,
			policy.NewPolicyController,
			directory.NewDirectoryController,
			application.NewApplicationController,
			notification.NewNotificationController,
			product.NewProductController,
			recommendation.NewRecommendationController,
			chat.NewChatController,
			land.NewLandController,
			dashboard.NewDashboardController,
			admin.NewAdminController,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(policy.NewPolicyApi),
			AsRoute(directory.NewDirectoryApi),
			AsRoute(application.NewApplicationApi),
			AsRoute(notification.NewNotificationApi),
			AsRoute(product.NewProductApi),
			AsRoute(recommendation.NewRecommendationApi),
			AsRoute(chat.NewChatApi),
			AsRoute(land.NewLandApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(admin.NewAdminApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewSwaggerApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			ConfigureAuth,

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			SeedServiceCatalogue,
			InitializeIndexes,
			StartCertificateSweeper,
		),
	)

	app.Run()
}
