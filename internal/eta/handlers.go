package eta

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/:id/eta", authMiddleware, func(c *fiber.Ctx) error {
		results, err := svc.Estimates(c.Context(), c.Params("id"))
		if errors.Is(err, ErrEventNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "event not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if results == nil {
			results = []Estimate{}
		}
		return c.JSON(fiber.Map{"results": results})
	})

	r.Get("/:id/when-to-leave", authMiddleware, func(c *fiber.Ctx) error {
		plan, err := svc.WhenToLeave(c.Context(), c.Params("id"))
		if errors.Is(err, ErrEventNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "event not found")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if plan.Results == nil {
			plan.Results = []LeaveEstimate{}
		}
		return c.JSON(plan)
	})
}
