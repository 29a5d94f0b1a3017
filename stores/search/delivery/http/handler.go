package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/delivery"
	"github.com/arcadia-music/goapi/domain/search"
	"github.com/arcadia-music/goapi/middleware"
)

type handler struct {
	search search.Usecase
}

func New(e *echo.Echo, search search.Usecase) {
	h := &handler{search: search}

	g := e.Group("/search")

	g.GET("", h.searchAll, middleware.CacheHttp(30*time.Second))

	g.GET("/tracks", h.searchTracks, middleware.CacheHttp(30*time.Second))

	g.GET("/albums", h.searchAlbums, middleware.CacheHttp(30*time.Second))
}

type params struct {
	Keyword string   `query:"q"`
	Filter  []string `query:"filter"`
	Limit   int      `query:"limit"`
}

// searchAll godoc
// @Summary  search indexed tracks and albums
// @Tags     search
// @Produce  json
// @Param    q      query string   false "keyword, matches title, creator name or genre"
// @Param    filter query []string false "track or album, both when omitted"
// @Param    limit  query int      false "results per kind, at most 50"
// @Success  200 {object} delivery.JsonResponse{data=search.Result}
// @Failure  400 {object} delivery.JsonResponse
// @Router   /search [get]
func (h *handler) searchAll(c echo.Context) error {
	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.search.Search(ctx, p.Keyword, p.Filter, p.Limit); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// searchTracks godoc
// @Summary  search indexed tracks
// @Tags     search
// @Produce  json
// @Param    q     query string false "keyword"
// @Param    limit query int    false "at most 50"
// @Success  200 {object} delivery.JsonResponse{data=search.Result}
// @Router   /search/tracks [get]
func (h *handler) searchTracks(c echo.Context) error {
	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.search.SearchTracks(ctx, p.Keyword, p.Limit); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

// searchAlbums godoc
// @Summary  search indexed albums
// @Tags     search
// @Produce  json
// @Param    q     query string false "keyword"
// @Param    limit query int    false "at most 50"
// @Success  200 {object} delivery.JsonResponse{data=search.Result}
// @Router   /search/albums [get]
func (h *handler) searchAlbums(c echo.Context) error {
	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	ctx := c.Get("ctx").(ctx.Ctx)

	if res, err := h.search.SearchAlbums(ctx, p.Keyword, p.Limit); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}
