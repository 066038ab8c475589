package handlers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sistema-tickets/helpdesk-service/pkg/util/errorutil"
)

// parseIDParam reads a numeric path parameter. Non-numeric values are a
// client error, not a missing resource.
func parseIDParam(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errorutil.NewValidationError(
			fmt.Sprintf("%s inválido: %s", name, raw),
			map[string]any{name: raw},
		)
	}
	return id, nil
}
