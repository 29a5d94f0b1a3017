package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/delivery"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/waveform"
	"github.com/arcadia-music/goapi/middleware"
)

type handler struct {
	waveform waveform.Usecase
}

func New(e *echo.Echo, waveform waveform.Usecase) {
	h := &handler{waveform}

	g := e.Group("/tracks/:id")

	// audio on arweave never changes
	g.GET("/waveform", h.get, middleware.IsValidTxId("id"), middleware.CacheHttp(10*time.Minute))
}

// get godoc
// @Summary  waveform peaks of a track
// @Tags     tracks
// @Produce  json
// @Param    id    path  string true  "track transaction id"
// @Param    peaks query int    false "number of peaks"
// @Success  200 {object} delivery.JsonResponse{data=waveform.Waveform}
// @Failure  400 {object} delivery.JsonResponse
// @Failure  422 {object} delivery.JsonResponse
// @Router   /tracks/{id}/waveform [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Peaks int `query:"peaks"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	id := domain.TxId(c.Param("id"))

	w, err := h.waveform.GetWaveform(ctx, id, p.Peaks)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, w)
}
