package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/delivery"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/track"
	"github.com/arcadia-music/goapi/middleware"
)

const maxIndexedLimit = 100

type handler struct {
	track track.Usecase
}

func New(e *echo.Echo, track track.Usecase) {
	h := &handler{track}

	gs := e.Group("/tracks")

	gs.GET("", h.getAll, middleware.CacheHttp(30*time.Second))

	gs.GET("/latest", h.getLatest, middleware.CacheHttp(15*time.Second))

	gs.GET("/:id", h.get, middleware.IsValidTxId("id"), middleware.CacheHttp(1*time.Minute))

	gs.GET("/:id/detail", h.getDetail, middleware.IsValidTxId("id"), middleware.CacheHttp(15*time.Second))

	ga := e.Group("/accounts/:address")

	ga.GET("/tracks", h.getByCreator, middleware.IsValidAddress("address"), middleware.CacheHttp(15*time.Second))
}

type searchParams struct {
	SortBy  string `query:"sortBy"`
	Offset  int32  `query:"offset"`
	Limit   int32  `query:"limit"`
	Creator string `query:"creator"`
	Genre   string `query:"genre"`
	Keyword string `query:"keyword"`
}

type pageParams struct {
	Cursor string `query:"cursor"`
	Limit  int    `query:"limit"`
}

// getAll godoc
// @Summary  list indexed tracks
// @Tags     tracks
// @Produce  json
// @Param    sortBy  query string false "latest, oldest, title_a_to_z or title_z_to_a"
// @Param    offset  query int    false "offset"
// @Param    limit   query int    false "page size, at most 100"
// @Param    creator query string false "creator address"
// @Param    genre   query string false "genre, case insensitive"
// @Param    keyword query string false "matches title, creator name or genre"
// @Success  200 {object} delivery.JsonResponse{data=track.SearchResult}
// @Failure  400 {object} delivery.JsonResponse
// @Router   /tracks [get]
func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &searchParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if p.Limit == 0 {
		p.Limit = 20
	}
	if p.Limit > maxIndexedLimit {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	sortBy, sortDir := track.ParseSortOption(p.SortBy)
	opts := []track.FindAllOptions{
		track.WithSort(sortBy, sortDir),
		track.WithPagination(p.Offset, p.Limit),
	}

	if p.Creator != "" {
		opts = append(opts, track.WithCreator(domain.Address(p.Creator)))
	}

	if p.Genre != "" {
		opts = append(opts, track.WithGenre(p.Genre))
	}

	if p.Keyword != "" {
		opts = append(opts, track.WithKeyword(p.Keyword))
	}

	res, err := h.track.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getLatest godoc
// @Summary  latest tracks straight from the gateway
// @Tags     tracks
// @Produce  json
// @Param    cursor query string false "cursor from the previous page"
// @Param    limit  query int    false "page size, at most 100"
// @Success  200 {object} delivery.JsonResponse{data=track.Page}
// @Failure  400 {object} delivery.JsonResponse
// @Failure  502 {object} delivery.JsonResponse
// @Router   /tracks/latest [get]
func (h *handler) getLatest(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &pageParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	page, err := h.track.ListLatest(ctx, p.Cursor, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, page)
}

// get godoc
// @Summary  one track
// @Tags     tracks
// @Produce  json
// @Param    id path string true "track transaction id"
// @Success  200 {object} delivery.JsonResponse{data=track.Track}
// @Failure  400 {object} delivery.JsonResponse
// @Failure  404 {object} delivery.JsonResponse
// @Router   /tracks/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := domain.TxId(c.Param("id"))

	t, err := h.track.GetTrack(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, t)
}

// getDetail godoc
// @Summary  track with owners, listings and creator profile
// @Tags     tracks
// @Produce  json
// @Param    id path string true "track transaction id"
// @Success  200 {object} delivery.JsonResponse{data=track.Detail}
// @Failure  400 {object} delivery.JsonResponse
// @Failure  404 {object} delivery.JsonResponse
// @Router   /tracks/{id}/detail [get]
func (h *handler) getDetail(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := domain.TxId(c.Param("id"))

	d, err := h.track.GetDetail(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, d)
}

// getByCreator godoc
// @Summary  tracks uploaded by an address
// @Tags     accounts
// @Produce  json
// @Param    address path  string true  "wallet address"
// @Param    cursor  query string false "cursor from the previous page"
// @Param    limit   query int    false "page size, at most 100"
// @Success  200 {object} delivery.JsonResponse{data=track.Page}
// @Failure  400 {object} delivery.JsonResponse
// @Router   /accounts/{address}/tracks [get]
func (h *handler) getByCreator(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))

	p := &pageParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	page, err := h.track.ListByCreator(ctx, address, p.Cursor, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, page)
}
