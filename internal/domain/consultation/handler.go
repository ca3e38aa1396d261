package consultation

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

	api.POST("/consultations", h.CreateConsultation, any)
	api.GET("/consultations/:id", h.GetConsultation, any)
	api.GET("/patients/:id/consultations", h.ListConsultationsByPatient, any)

	api.POST("/chats", h.CreateChat, any)
	api.GET("/chats/:id", h.GetChat, any)
	api.GET("/chats/history", h.ChatHistory, any)
}

func (h *Handler) CreateConsultation(c echo.Context) error {
	var con Consultation
	if err := c.Bind(&con); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	created, err := h.svc.CreateConsultation(c.Request().Context(), &con)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetConsultation(c echo.Context) error {
	con, err := h.svc.GetConsultation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) ListConsultationsByPatient(c echo.Context) error {
	items, err := h.svc.ListConsultationsByPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateChat(c echo.Context) error {
	var chat Chat
	if err := c.Bind(&chat); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	created, err := h.svc.CreateChat(c.Request().Context(), &chat)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetChat(c echo.Context) error {
	chat, err := h.svc.GetChat(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, chat)
}

// ChatHistory lists the messages between one patient and one doctor,
// identified by query params.
func (h *Handler) ChatHistory(c echo.Context) error {
	patientID := c.QueryParam("patient_id")
	doctorID := c.QueryParam("doctor_id")
	if patientID == "" || doctorID == "" {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	items, err := h.svc.ChatHistory(c.Request().Context(), patientID, doctorID)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
