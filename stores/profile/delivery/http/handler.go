package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/delivery"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/profile"
	"github.com/arcadia-music/goapi/middleware"
)

type handler struct {
	profile profile.Usecase
}

func New(e *echo.Echo, profile profile.Usecase) {
	h := &handler{profile}

	g := e.Group("/accounts/:address")

	g.GET("/profile", h.get, middleware.IsValidAddress("address"), middleware.CacheHttp(1*time.Minute))
}

// get godoc
// @Summary  latest published profile of an address
// @Tags     accounts
// @Produce  json
// @Param    address path string true "wallet address"
// @Success  200 {object} delivery.JsonResponse{data=profile.Profile}
// @Failure  400 {object} delivery.JsonResponse
// @Router   /accounts/{address}/profile [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	p, err := h.profile.GetProfile(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, p)
}
