package server

import (
	"github.com/Yadav036/BeThere/internal/auth"
	"github.com/Yadav036/BeThere/internal/config"
	"github.com/Yadav036/BeThere/internal/eta"
	"github.com/Yadav036/BeThere/internal/event"
	"github.com/Yadav036/BeThere/internal/invite"
	"github.com/Yadav036/BeThere/internal/location"
	"github.com/Yadav036/BeThere/internal/places"
	"github.com/Yadav036/BeThere/internal/stream"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App    *fiber.App
	Cfg    config.Config
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Places *places.Client
	Stream *stream.Hub
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client, placesClient *places.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:    app,
		Cfg:    cfg,
		DB:     db,
		Redis:  redisClient,
		Places: placesClient,
		Stream: stream.NewHub(redisClient),
	}

	registerRoutes(s)
	return s
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	authSvc := auth.NewService(s.Cfg.JWTSecret, s.DB)
	auth.RegisterRoutes(s.App.Group("/auth"), authSvc)
	auth.RegisterUserRoutes(s.App.Group("/users"), authSvc, jwtMiddleware)

	inviteSvc := invite.NewService(s.DB)

	events := s.App.Group("/events")
	event.RegisterRoutes(events, event.NewService(s.DB), jwtMiddleware)
	location.RegisterRoutes(events, location.NewService(s.DB, s.Stream), jwtMiddleware)
	eta.RegisterRoutes(events, eta.NewService(s.DB, s.Places), jwtMiddleware)
	invite.RegisterEventRoutes(events, inviteSvc, jwtMiddleware)

	invite.RegisterRoutes(s.App.Group("/invites"), inviteSvc, jwtMiddleware)
	places.RegisterRoutes(s.App.Group("/places"), s.Places, jwtMiddleware)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
