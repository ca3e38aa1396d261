package scheduling

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

	api.POST("/appointments", h.CreateAppointment, any)
	api.GET("/appointments/:id", h.GetAppointment, any)
	api.PUT("/appointments/:id", h.UpdateAppointment, any)
	api.PUT("/appointments/:id/video-link", h.AttachVideoLink, staff)
	api.GET("/patients/:id/appointments", h.ListAppointmentsByPatient, any)
	api.GET("/doctors/:id/appointments", h.ListAppointmentsByDoctor, any)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	created, err := h.svc.CreateAppointment(c.Request().Context(), &a)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	a, err := h.svc.GetAppointment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	var p Patch
	if err := c.Bind(&p); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	a, err := h.svc.UpdateAppointment(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) AttachVideoLink(c echo.Context) error {
	var body struct {
		VideoLink string `json:"video_link"`
	}
	if err := c.Bind(&body); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	a, err := h.svc.AttachVideoLink(c.Request().Context(), c.Param("id"), body.VideoLink)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) ListAppointmentsByPatient(c echo.Context) error {
	items, err := h.svc.ListAppointmentsByPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListAppointmentsByDoctor(c echo.Context) error {
	items, err := h.svc.ListAppointmentsByDoctor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
