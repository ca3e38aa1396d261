package billing

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/telecare/telecare/internal/platform/apperr"
	"github.com/telecare/telecare/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	any := auth.RequireRole("admin", "doctor", "patient")
	staff := auth.RequireRole("admin", "doctor")

	api.POST("/payments", h.CreatePayment, any)
	api.GET("/payments/:id", h.GetPayment, any)
	api.PUT("/payments/:id/status", h.UpdatePaymentStatus, staff)
	api.GET("/patients/:id/payments", h.ListPaymentsByPatient, any)
}

func (h *Handler) CreatePayment(c echo.Context) error {
	var p Payment
	if err := c.Bind(&p); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	created, err := h.svc.CreatePayment(c.Request().Context(), &p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetPayment(c echo.Context) error {
	p, err := h.svc.GetPayment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// statusResponse carries the transitioned payment and, for completed or
// failed transitions, the tagged outcome kind.
type statusResponse struct {
	Payment *Payment    `json:"payment"`
	Outcome apperr.Kind `json:"outcome,omitempty"`
}

func (h *Handler) UpdatePaymentStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	p, outcome, err := h.svc.UpdatePaymentStatus(c.Request().Context(), c.Param("id"), body.Status)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, statusResponse{Payment: p, Outcome: outcome})
}

func (h *Handler) ListPaymentsByPatient(c echo.Context) error {
	items, err := h.svc.ListPaymentsByPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
