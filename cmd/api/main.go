package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"condoadmin_backend/internal/controller"
	"condoadmin_backend/internal/middleware"
	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/ai"
	"condoadmin_backend/pkg/config"
	"condoadmin_backend/pkg/cron"
	"condoadmin_backend/pkg/database"
	"condoadmin_backend/pkg/seed"
	"condoadmin_backend/pkg/utils/jwt"
	"condoadmin_backend/pkg/utils/storage"
	"condoadmin_backend/pkg/utils/validation"
)

func setupRoutes(app *fiber.App, cfg *config.Config) {
	api := app.Group("/api")

	catalogCache := gocache.New(5*time.Minute, 10*time.Minute)

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)

	// Public catalog routes, cached
	api.Get("/amenities", middleware.Cache(catalogCache, 5*time.Minute), controller.ListAmenities)
	api.Get("/icons", middleware.Cache(catalogCache, 5*time.Minute), controller.ListIcons)

	// Public view recording
	api.Post("/buildings/:id/view", controller.RecordBuildingView)

	// Everything below requires a session; mutations also carry the
	// anti-forgery token and ajax marker.
	protected := api.Group("/", middleware.AuthMiddleware(), middleware.CSRF(cfg.Security.CSRFToken))
	protected.Get("/me", controller.GetMe)

	// Website Routes
	websites := protected.Group("/websites")
	websites.Get("/", controller.ListMyWebsites)
	websites.Post("/", controller.CreateWebsite)
	websites.Get("/:website_id", middleware.CheckWebsiteOwnership("website_id"), controller.GetWebsite)
	websites.Put("/:website_id", middleware.CheckWebsiteOwnership("website_id"), controller.UpdateWebsite)
	websites.Delete("/:website_id", middleware.CheckWebsiteOwnership("website_id"), controller.DeleteWebsite)

	// Home page content editor
	websites.Get("/:website_id/homepage", middleware.CheckWebsiteOwnership("website_id"), controller.GetHomePage)
	websites.Put("/:website_id/homepage", middleware.CheckWebsiteOwnership("website_id"), controller.UpdateHomePage)

	// Website asset slots (logo, favicon, agent photo)
	websites.Post("/:website_id/assets/:slot", middleware.CheckWebsiteOwnership("website_id"), controller.UploadWebsiteAsset)
	websites.Post("/:website_id/assets/:slot/delete", middleware.CheckWebsiteOwnership("website_id"), controller.DeleteWebsiteAsset)

	// Building Routes, scoped to a website
	websites.Get("/:website_id/buildings", middleware.CheckWebsiteOwnership("website_id"), controller.ListBuildings)
	websites.Post("/:website_id/buildings", middleware.CheckWebsiteOwnership("website_id"), controller.CreateBuilding)

	buildings := protected.Group("/buildings")
	buildings.Get("/:id", middleware.CheckBuildingOwnership("id"), controller.GetBuilding)
	buildings.Put("/:id", middleware.CheckBuildingOwnership("id"), controller.UpdateBuilding)
	buildings.Delete("/:id", middleware.CheckBuildingOwnership("id"), controller.DeleteBuilding)
	buildings.Post("/:id/images", middleware.CheckBuildingOwnership("id"), controller.UploadBuildingImages)
	buildings.Post("/:id/images/delete", middleware.CheckBuildingOwnership("id"), controller.DeleteBuildingImage)

	// AI description generation; rate limited per IP
	protected.Post("/ai/description", middleware.RateLimit(rate.Every(10*time.Second), 3), controller.GenerateDescription)

	// Icon asset management
	icons := protected.Group("/icons")
	icons.Post("/", controller.CreateIcon)
	icons.Put("/:id", controller.UpdateIcon)
	icons.Delete("/:id", controller.DeleteIcon)

	// Dashboard
	protected.Get("/dashboard/stats", controller.GetDashboardStats)
}

func main() {
	cfg := config.Load()

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set in .env")
	}
	jwt.Init(cfg.JWT.Secret)

	if overrides, err := config.LoadSlotLimits("slots.yaml"); err != nil {
		log.Fatal("Could not load slot limits:", err)
	} else if overrides != nil {
		mapped := map[string]validation.SlotOverride{}
		for name, o := range overrides {
			mapped[name] = validation.SlotOverride{MaxSizeMB: o.MaxSizeMB, Types: o.Types}
		}
		validation.Configure(mapped)
	}

	r2, err := storage.NewR2Client(cfg.Storage)
	if err != nil {
		log.Fatal("Could not initialize storage client:", err)
	}
	storage.Default = r2

	ai.Default = ai.NewClient(cfg.AI.Endpoint, cfg.AI.APIKey)

	database.InitDB(cfg.Database.URL)
	err = database.MigrateDatabase(
		&model.User{},
		&model.Website{},
		&model.HomePage{},
		&model.Building{},
		&model.BuildingImage{},
		&model.BuildingView{},
		&model.BuildingStats{},
		&model.Amenity{},
		&model.Icon{},
	)
	if err != nil {
		log.Printf("Migration warning: %v", err)
	}

	seed.SeedAmenities(database.GetDB())
	seed.SeedIcons(database.GetDB())

	cron.InitBuildingStatsCron()

	app := fiber.New(fiber.Config{
		BodyLimit: 32 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app, cfg)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
