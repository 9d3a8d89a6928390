package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/SanzharBissenali/tazaQala/models"
)

// The /api/data envelope is fixed: clients match on the literal
// message strings, so the reason only goes to the server log.

func badReq(c *fiber.Ctx, reason string) error {
	log.Printf("reports: rejected: %s", reason)
	return c.Status(fiber.StatusBadRequest).JSON(models.StatusResp{Message: "Error"})
}

func serverErr(c *fiber.Ctx, err error) error {
	log.Printf("reports: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.StatusResp{Message: "Error"})
}
