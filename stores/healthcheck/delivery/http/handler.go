package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-music/goapi/base/ctx"
	hcdomain "github.com/arcadia-music/goapi/domain/healthcheck"
)

// ResponseError represent the reseponse error struct
type ResponseError struct {
	Message string `json:"message"`
}

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

// New will initialize the healthcheck/
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	g := e.Group("/health")
	g.GET("", handler.check)
}

// check godoc
// @Summary  liveness and upstream status
// @Tags     health
// @Produce  json
// @Success  200 {object} hcdomain.Report
// @Failure  500 {object} ResponseError
// @Router   /health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	report, err := h.healthCheck.Check(context)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{
			Message: err.Error(),
		})
	}
	return c.JSON(http.StatusOK, report)
}
