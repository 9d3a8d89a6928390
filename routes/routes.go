package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SanzharBissenali/tazaQala/controllers"
)

// Register attaches all API endpoints to the app. Paths are fixed by
// the deployed frontend.
func Register(app *fiber.App, reports *controllers.ReportHandler, uploads *controllers.UploadHandler) {
	api := app.Group("/api")

	api.Post("/data", reports.HandleCreate)
	api.Get("/data", reports.HandleList)

	api.Post("/upload", uploads.HandleUpload)
}
