package patient

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/telecare/telecare/internal/platform/apperr"
	"github.com/telecare/telecare/internal/platform/auth"
	"github.com/telecare/telecare/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	staff := auth.RequireRole("admin", "doctor")
	any := auth.RequireRole("admin", "doctor", "patient")

	api.POST("/patients", h.CreatePatient, any)
	api.GET("/patients", h.ListPatients, staff)
	api.GET("/patients/me", h.GetMyPatient, any)
	api.GET("/patients/:id", h.GetPatient, any)
	api.PUT("/patients/:id", h.UpdatePatient, any)
	api.DELETE("/patients/:id", h.DeletePatient, staff)

	api.GET("/patients/:id/medical-record", h.GetMedicalRecord, any)
	api.PUT("/patients/:id/medical-record", h.UpsertMedicalRecord, staff)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	owner := auth.UserIDFromContext(c.Request().Context())
	created, err := h.svc.CreatePatient(c.Request().Context(), owner, &p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// GetMyPatient resolves the patient profile owned by the caller.
func (h *Handler) GetMyPatient(c echo.Context) error {
	owner := auth.UserIDFromContext(c.Request().Context())
	p, err := h.svc.GetPatientByOwner(c.Request().Context(), owner)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPatients(c echo.Context) error {
	items, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	pg := pagination.FromContext(c)
	return c.JSON(http.StatusOK, pagination.NewResponse(pagination.Page(items, pg), len(items), pg.Limit, pg.Offset))
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	p, err := h.svc.UpdatePatient(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	if err := h.svc.DeletePatient(c.Request().Context(), c.Param("id")); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "patient deleted"})
}

func (h *Handler) GetMedicalRecord(c echo.Context) error {
	rec, err := h.svc.GetMedicalRecord(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *Handler) UpsertMedicalRecord(c echo.Context) error {
	var rec MedicalRecord
	if err := c.Bind(&rec); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	rec.PatientID = c.Param("id")
	saved, err := h.svc.UpsertMedicalRecord(c.Request().Context(), &rec)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, saved)
}
