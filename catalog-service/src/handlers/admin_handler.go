package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/git-pranav2004/getdeal/catalog-service/src/services"
	"github.com/git-pranav2004/getdeal/catalog-service/src/view"
	apierrors "github.com/git-pranav2004/getdeal/common/apierrors"
	"github.com/git-pranav2004/getdeal/common/apirequests"
	apiresponses "github.com/git-pranav2004/getdeal/common/apiresponses"
	"github.com/git-pranav2004/getdeal/common/middleware"
	commontrace "github.com/git-pranav2004/getdeal/common/telemetry/trace"
)

const addedManualNotice = "✅ Product added successfully! Copy updated JSON below and replace products.json on GitHub."

func (h *AdminHandler) Page(c *fiber.Ctx) error {
	return h.renderPage(c, http.StatusOK, view.AdminData{Output: h.service.Output()})
}

// AddProduct builds the updated document from the submitted form. Browsers
// get the admin page back, JSON clients get an AdminResult.
func (h *AdminHandler) AddProduct(c *fiber.Ctx) (err error) {
	ctx, span := commontrace.StartSpan(c.UserContext())
	defer commontrace.EndSpan(span, &err, nil)

	var req apirequests.AddProductRequest
	if err = c.BodyParser(&req); err != nil {
		return apierrors.NewBusinessError(apierrors.ErrCodeRequestValidation, "Invalid product form", err)
	}

	h.logger.InfoContext(ctx, "Admin add product requested",
		slog.String("title", req.Title),
		slog.String("category", req.Category),
		slog.String("publisher", h.service.PublisherName()))

	outcome, appErr := h.service.AddProduct(ctx, req)

	if wantsJSON(c) {
		if appErr != nil {
			err = appErr
			return err
		}
		result := apiresponses.AdminResult{
			ProductID: int64(outcome.Product.ID),
			Count:     outcome.Count,
			Published: outcome.Published,
			Publisher: outcome.Publisher,
			Output:    outcome.Output,
		}
		return c.Status(http.StatusOK).JSON(apiresponses.NewSuccessResponse(result).WithRequestID(middleware.RequestIDFromContext(ctx)))
	}

	data := view.AdminData{Output: h.service.Output()}
	status := http.StatusOK
	if appErr != nil {
		status = middleware.StatusFor(appErr)
		data.Error = appErr.Message
		data.Form = req
	} else {
		data.Notice = addedNotice(outcome)
	}
	return h.renderPage(c, status, data)
}

// CopyJSON returns the generated document for the clipboard.
func (h *AdminHandler) CopyJSON(c *fiber.Ctx) error {
	output, appErr := h.service.CopyJSON(c.UserContext())
	if appErr != nil {
		return appErr
	}
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("json", "utf-8")
	return c.Status(http.StatusOK).SendString(output)
}

func (h *AdminHandler) renderPage(c *fiber.Ctx, status int, data view.AdminData) error {
	data.Theme = h.chrome.Current(c)
	data.Publisher = h.service.PublisherName()

	var buf bytes.Buffer
	if err := h.renderer.Admin(&buf, data); err != nil {
		h.logger.ErrorContext(c.UserContext(), "Failed to render admin page", slog.Any("error", err))
		return apierrors.NewApplicationError(apierrors.ErrCodeInternalProcessing, "Failed to render page", err)
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func addedNotice(outcome *services.AdminOutcome) string {
	if !outcome.Published {
		return addedManualNotice
	}
	return fmt.Sprintf("✅ Product added successfully and published via %s.", outcome.Publisher)
}
