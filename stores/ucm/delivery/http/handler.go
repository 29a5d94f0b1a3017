package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/delivery"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/ucm"
	"github.com/arcadia-music/goapi/middleware"
)

type handler struct {
	ucm ucm.Usecase
}

func New(e *echo.Echo, ucm ucm.Usecase) {
	h := &handler{ucm}

	gt := e.Group("/tracks/:id")

	gt.GET("/listings", h.getListings, middleware.IsValidTxId("id"), middleware.CacheHttp(15*time.Second))

	g := e.Group("/ucm")

	g.GET("/pairs", h.getPairs, middleware.CacheHttp(15*time.Second))

	g.GET("/assets", h.getListedAssets, middleware.CacheHttp(15*time.Second))
}

// getListings godoc
// @Summary  open sell orders of a track, cheapest first
// @Tags     tracks
// @Produce  json
// @Param    id path string true "track transaction id"
// @Success  200 {object} delivery.JsonResponse{data=[]ucm.Listing}
// @Failure  400 {object} delivery.JsonResponse
// @Failure  502 {object} delivery.JsonResponse
// @Router   /tracks/{id}/listings [get]
func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := domain.TxId(c.Param("id"))

	listings, err := h.ucm.GetListings(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, listings)
}

// getPairs godoc
// @Summary  every pair of the order book
// @Tags     ucm
// @Produce  json
// @Success  200 {object} delivery.JsonResponse{data=[]ucm.Pair}
// @Failure  502 {object} delivery.JsonResponse
// @Router   /ucm/pairs [get]
func (h *handler) getPairs(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	pairs, err := h.ucm.GetPairs(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, pairs)
}

// getListedAssets godoc
// @Summary  assets with open sell orders
// @Tags     ucm
// @Produce  json
// @Param    offset query int false "offset"
// @Param    limit  query int false "page size, at most 100"
// @Success  200 {object} delivery.JsonResponse{data=ucm.ListedAssets}
// @Failure  400 {object} delivery.JsonResponse
// @Router   /ucm/assets [get]
func (h *handler) getListedAssets(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Offset int `query:"offset"`
		Limit  int `query:"limit"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	res, err := h.ucm.GetListedAssets(ctx, p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
