package invite

import (
	"errors"

	"github.com/Yadav036/BeThere/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		invites, err := svc.ListPending(c.Context(), auth.UserID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if invites == nil {
			invites = []PendingInvite{}
		}
		return c.JSON(fiber.Map{"invites": invites})
	})

	r.Post("/:id/accept", authMiddleware, func(c *fiber.Ctx) error {
		eventID, err := svc.Accept(c.Context(), c.Params("id"), auth.UserID(c))
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "invite not found or already processed")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"ok": true, "event_id": eventID})
	})

	r.Post("/:id/reject", authMiddleware, func(c *fiber.Ctx) error {
		err := svc.Reject(c.Context(), c.Params("id"), auth.UserID(c))
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "invite not found or already processed")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{"ok": true})
	})
}

// RegisterEventRoutes mounts the creator-side invite endpoint on the events
// group.
func RegisterEventRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/:id/invite", authMiddleware, func(c *fiber.Ctx) error {
		var req InviteRequest
		if err := c.BodyParser(&req); err != nil || req.InviteeID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "invitee_id required")
		}
		inv, err := svc.Invite(c.Context(), c.Params("id"), auth.UserID(c), req.InviteeID)
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "event not found")
		}
		if errors.Is(err, ErrForbidden) {
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"invite": inv})
	})
}
