package metrics

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/telecare/telecare/internal/platform/apperr"
)

// Handler exposes the calculators as GET endpoints taking numeric
// query parameters.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/calculators/bmi", h.BMI)
	api.GET("/calculators/dosage", h.Dosage)
	api.GET("/calculators/insurance", h.InsuranceEstimate)
	api.GET("/calculators/risk-score", h.RiskScore)
}

func floatParam(c echo.Context, name string) (float64, error) {
	v, err := strconv.ParseFloat(c.QueryParam(name), 64)
	if err != nil {
		return 0, apperr.InvalidPayload("invalid %s", name)
	}
	return v, nil
}

func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0, apperr.InvalidPayload("invalid %s", name)
	}
	return v, nil
}

func (h *Handler) BMI(c echo.Context) error {
	weight, err := floatParam(c, "weight")
	if err != nil {
		return apperr.JSON(c, err)
	}
	height, err := floatParam(c, "height")
	if err != nil {
		return apperr.JSON(c, err)
	}
	msg, err := BMI(weight, height)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"result": msg})
}

func (h *Handler) Dosage(c echo.Context) error {
	weight, err := intParam(c, "weight")
	if err != nil {
		return apperr.JSON(c, err)
	}
	perKg, err := intParam(c, "dosage_per_kg")
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"result": Dosage(weight, perKg)})
}

func (h *Handler) InsuranceEstimate(c echo.Context) error {
	base, err := floatParam(c, "base_cost")
	if err != nil {
		return apperr.JSON(c, err)
	}
	insured, err := strconv.ParseBool(c.QueryParam("insured"))
	if err != nil {
		return apperr.JSON(c, apperr.InvalidPayload("invalid insured"))
	}
	return c.JSON(http.StatusOK, map[string]int{"result": InsuranceEstimate(base, insured)})
}

func (h *Handler) RiskScore(c echo.Context) error {
	age, err := floatParam(c, "age")
	if err != nil {
		return apperr.JSON(c, err)
	}
	bmi, err := floatParam(c, "bmi")
	if err != nil {
		return apperr.JSON(c, err)
	}
	bp, err := floatParam(c, "blood_pressure")
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"result": RiskScore(age, bmi, bp)})
}
