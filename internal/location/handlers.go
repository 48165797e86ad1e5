package location

import (
	"github.com/Yadav036/BeThere/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/:id/location", authMiddleware, func(c *fiber.Ctx) error {
		var req ReportRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		// lat and lng travel together or not at all
		if req.Lat == nil || req.Lng == nil {
			return fiber.NewError(fiber.StatusBadRequest, "lat and lng required")
		}
		update, err := svc.Report(c.Context(), c.Params("id"), auth.UserID(c), *req.Lat, *req.Lng)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"updated": update})
	})

	r.Get("/:id/locations", authMiddleware, func(c *fiber.Ctx) error {
		locations, err := svc.Locations(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if locations == nil {
			locations = []ParticipantLocation{}
		}
		return c.JSON(fiber.Map{"locations": locations})
	})
}
