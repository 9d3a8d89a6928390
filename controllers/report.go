package controllers

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SanzharBissenali/tazaQala/models"
)

// opTimeout bounds every store round trip started by a handler.
const opTimeout = 8 * time.Second

// ReportStore is the persistence surface the report handlers need.
// *database.Store implements it; tests substitute an in-memory fake.
type ReportStore interface {
	Insert(ctx context.Context, r models.Report) (string, error)
	List(ctx context.Context, limit int64, cursor string) ([]models.Report, error)
}

// ReportHandler serves POST and GET /api/data.
type ReportHandler struct {
	store ReportStore
}

func NewReportHandler(store ReportStore) *ReportHandler {
	return &ReportHandler{store: store}
}

// HandleCreate inserts one report. Validation is enforced here rather
// than trusted to the frontend form: a blank name or text, or missing
// coords, is rejected with nothing written.
func (h *ReportHandler) HandleCreate(c *fiber.Ctx) error {
	var p models.ReportCreatePayload
	if err := c.BodyParser(&p); err != nil {
		return badReq(c, "invalid JSON: "+err.Error())
	}
	if err := validateReport(p); err != nil {
		return badReq(c, err.Error())
	}

	doc := models.Report{
		Name:      strings.TrimSpace(p.Name),
		Email:     strings.TrimSpace(p.Email),
		Text:      strings.TrimSpace(p.Text),
		Coords:    [2]float64{p.Coords[0], p.Coords[1]},
		Photo:     strings.TrimSpace(p.Photo),
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(c.Context(), opTimeout)
	defer cancel()
	id, err := h.store.Insert(ctx, doc)
	if err != nil {
		return serverErr(c, err)
	}

	log.Printf("reports: created %s", id)
	return c.Status(fiber.StatusOK).JSON(models.StatusResp{Message: "Success"})
}

func validateReport(p models.ReportCreatePayload) error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("missing name")
	}
	if strings.TrimSpace(p.Text) == "" {
		return errors.New("missing text")
	}
	if len(p.Coords) != 2 {
		return errors.New("coords must be [lng, lat]")
	}
	return nil
}
