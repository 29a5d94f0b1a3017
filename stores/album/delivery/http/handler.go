package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/delivery"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/album"
	"github.com/arcadia-music/goapi/middleware"
)

type handler struct {
	album album.Usecase
}

func New(e *echo.Echo, album album.Usecase) {
	h := &handler{album}

	g := e.Group("/albums")

	g.GET("/:id", h.get, middleware.IsValidTxId("id"), middleware.CacheHttp(1*time.Minute))

	ga := e.Group("/accounts/:address")

	ga.GET("/albums", h.getByCreator, middleware.IsValidAddress("address"), middleware.CacheHttp(30*time.Second))
}

// get godoc
// @Summary  album with its tracks
// @Tags     albums
// @Produce  json
// @Param    id path string true "album transaction id"
// @Success  200 {object} delivery.JsonResponse{data=album.Album}
// @Failure  400 {object} delivery.JsonResponse
// @Failure  404 {object} delivery.JsonResponse
// @Router   /albums/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := domain.TxId(c.Param("id"))

	a, err := h.album.GetAlbum(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

// getByCreator godoc
// @Summary  albums published by an address, newest first
// @Tags     accounts
// @Produce  json
// @Param    address path string true "wallet address"
// @Success  200 {object} delivery.JsonResponse{data=[]album.Album}
// @Failure  400 {object} delivery.JsonResponse
// @Router   /accounts/{address}/albums [get]
func (h *handler) getByCreator(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	res, err := h.album.ListByCreator(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
