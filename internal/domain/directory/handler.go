package directory

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
	admin := auth.RequireRole("admin")

	api.POST("/departments", h.CreateDepartment, admin)
	api.GET("/departments", h.ListDepartments)
	api.GET("/departments/:id", h.GetDepartment)
	api.PUT("/departments/:id", h.UpdateDepartment, admin)
	api.DELETE("/departments/:id", h.DeleteDepartment, admin)
	api.GET("/departments/:id/doctors", h.ListDoctorsByDepartment)

	doctor := auth.RequireRole("admin", "doctor")

	api.POST("/doctors", h.CreateDoctor, doctor)
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/me", h.GetMyDoctor, doctor)
	api.GET("/doctors/search", h.SearchDoctors)
	api.GET("/doctors/:id", h.GetDoctor)
	api.PUT("/doctors/:id", h.UpdateDoctor, doctor)
	api.PUT("/doctors/:id/availability", h.UpdateDoctorAvailability, doctor)
	api.DELETE("/doctors/:id", h.DeleteDoctor, admin)
}

// -- Departments --

func (h *Handler) CreateDepartment(c echo.Context) error {
	var d Department
	if err := c.Bind(&d); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	created, err := h.svc.CreateDepartment(c.Request().Context(), &d)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetDepartment(c echo.Context) error {
	d, err := h.svc.GetDepartment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListDepartments(c echo.Context) error {
	items, err := h.svc.ListDepartments(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	pg := pagination.FromContext(c)
	return c.JSON(http.StatusOK, pagination.NewResponse(pagination.Page(items, pg), len(items), pg.Limit, pg.Offset))
}

func (h *Handler) UpdateDepartment(c echo.Context) error {
	var p DepartmentPatch
	if err := c.Bind(&p); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	d, err := h.svc.UpdateDepartment(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDepartment(c echo.Context) error {
	if err := h.svc.DeleteDepartment(c.Request().Context(), c.Param("id")); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "department deleted"})
}

// -- Doctors --

func (h *Handler) CreateDoctor(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	owner := auth.UserIDFromContext(c.Request().Context())
	created, err := h.svc.CreateDoctor(c.Request().Context(), owner, &d)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	d, err := h.svc.GetDoctor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// GetMyDoctor resolves the doctor profile owned by the caller.
func (h *Handler) GetMyDoctor(c echo.Context) error {
	owner := auth.UserIDFromContext(c.Request().Context())
	d, err := h.svc.GetDoctorByOwner(c.Request().Context(), owner)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	items, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return apperr.JSON(c, err)
	}
	pg := pagination.FromContext(c)
	return c.JSON(http.StatusOK, pagination.NewResponse(pagination.Page(items, pg), len(items), pg.Limit, pg.Offset))
}

func (h *Handler) ListDoctorsByDepartment(c echo.Context) error {
	items, err := h.svc.ListDoctorsByDepartment(c.Request().Context(), c.Param("id"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SearchDoctors(c echo.Context) error {
	items, err := h.svc.SearchDoctorsByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) UpdateDoctor(c echo.Context) error {
	var p DoctorPatch
	if err := c.Bind(&p); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	d, err := h.svc.UpdateDoctor(c.Request().Context(), c.Param("id"), p)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) UpdateDoctorAvailability(c echo.Context) error {
	var body struct {
		Available bool `json:"available"`
	}
	if err := c.Bind(&body); err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("missing required fields"))
	}
	d, err := h.svc.SetDoctorAvailability(c.Request().Context(), c.Param("id"), body.Available)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDoctor(c echo.Context) error {
	if err := h.svc.DeleteDoctor(c.Request().Context(), c.Param("id")); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "doctor deleted"})
}
