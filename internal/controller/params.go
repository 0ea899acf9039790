package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func websiteIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("website_id"), 10, 32)
	return uint(id), err
}

func idParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	return uint(id), err
}
