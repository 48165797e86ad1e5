package event

import (
	"errors"

	"github.com/Yadav036/BeThere/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req CreateEventRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == "" || req.EventTime.IsZero() || req.LocationName == "" || req.LocationLat == 0 || req.LocationLng == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "name, event_time and location required")
		}
		ev, err := svc.CreateEvent(c.Context(), auth.UserID(c), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(ev)
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		events, err := svc.ListEvents(c.Context(), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if events == nil {
			events = []Event{}
		}
		return c.JSON(fiber.Map{"events": events})
	})

	r.Get("/:id", authMiddleware, func(c *fiber.Ctx) error {
		ev, err := svc.GetEvent(c.Context(), c.Params("id"))
		if errors.Is(err, pgx.ErrNoRows) {
			return fiber.NewError(fiber.StatusNotFound, "event not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(ev)
	})

	r.Post("/:id/join", authMiddleware, func(c *fiber.Ctx) error {
		if _, err := svc.GetEvent(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fiber.NewError(fiber.StatusNotFound, "event not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		participant, err := svc.Join(c.Context(), c.Params("id"), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(participant)
	})

	r.Get("/:id/participants", authMiddleware, func(c *fiber.Ctx) error {
		participants, err := svc.Participants(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if participants == nil {
			participants = []Participant{}
		}
		return c.JSON(fiber.Map{"participants": participants})
	})
}
