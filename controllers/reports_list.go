package controllers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/SanzharBissenali/tazaQala/models"
)

// maxListLimit caps an explicit ?limit; without one the full
// collection is returned, newest first, as existing clients expect.
const maxListLimit = 500

// HandleList returns stored reports sorted by createdAt descending.
// Optional query parameters: limit (1..500) and cursor (ObjectID hex,
// exclusive upper bound from a previous page).
func (h *ReportHandler) HandleList(c *fiber.Ctx) error {
	var limit int64
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return badReq(c, "invalid limit")
		}
		if n > maxListLimit {
			n = maxListLimit
		}
		limit = int64(n)
	}

	cursor := c.Query("cursor")
	if cursor != "" {
		if _, err := primitive.ObjectIDFromHex(cursor); err != nil {
			return badReq(c, "invalid cursor")
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
	defer cancel()
	reports, err := h.store.List(ctx, limit, cursor)
	if err != nil {
		return serverErr(c, err)
	}

	for i := range reports {
		// Documents written by the original app carry no status.
		if reports[i].Status == "" {
			reports[i].Status = models.StatusPending
		}
	}
	if reports == nil {
		reports = []models.Report{}
	}

	return c.Status(fiber.StatusOK).JSON(reports)
}
