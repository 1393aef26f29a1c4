// Package middleware holds the Fiber middleware shared by every route.
package middleware

import "github.com/gofiber/fiber/v2"

// resolve runs the app error handler for err so the final status is visible
// to the calling middleware. It mirrors what Fiber's own logger does.
func resolve(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}
