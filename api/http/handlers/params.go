package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/userhub/pkg/apperr"
)

// parseID reads a positive integer path parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("id must be a positive integer")
	}
	return id, nil
}
