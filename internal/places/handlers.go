package places

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, client *Client, authMiddleware fiber.Handler) {
	r.Get("/autocomplete", authMiddleware, func(c *fiber.Ctx) error {
		q := c.Query("q")
		if q == "" {
			return c.JSON(fiber.Map{"predictions": []Prediction{}})
		}
		predictions, err := client.Autocomplete(c.Context(), q)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		if predictions == nil {
			predictions = []Prediction{}
		}
		return c.JSON(fiber.Map{"predictions": predictions})
	})

	r.Get("/geocode", authMiddleware, func(c *fiber.Ctx) error {
		placeID := c.Query("placeId")
		if placeID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "placeId required")
		}
		place, err := client.PlaceDetails(c.Context(), placeID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return c.JSON(place)
	})
}
