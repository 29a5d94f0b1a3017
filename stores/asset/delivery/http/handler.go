package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/delivery"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/asset"
	"github.com/arcadia-music/goapi/middleware"
)

type handler struct {
	asset asset.Usecase
}

func New(e *echo.Echo, asset asset.Usecase) {
	h := &handler{asset}

	g := e.Group("/tracks/:id")

	g.GET("/owners", h.getOwners, middleware.IsValidTxId("id"), middleware.CacheHttp(15*time.Second))
}

// getOwners godoc
// @Summary  holders of a track asset, largest first
// @Tags     tracks
// @Produce  json
// @Param    id path string true "track transaction id"
// @Success  200 {object} delivery.JsonResponse{data=[]asset.TrackAssetOwner}
// @Failure  400 {object} delivery.JsonResponse
// @Failure  404 {object} delivery.JsonResponse
// @Router   /tracks/{id}/owners [get]
func (h *handler) getOwners(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := domain.ContractId(c.Param("id"))

	owners, err := h.asset.GetOwners(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, owners)
}
