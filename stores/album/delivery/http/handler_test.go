package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/album"
	"github.com/arcadia-music/goapi/domain/album/mocks"
	"github.com/arcadia-music/goapi/middleware"
)

func newEcho(us album.Usecase) *echo.Echo {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, us)
	return e
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestAlbumHandler(t *testing.T) {
	req := require.New(t)
	middleware.SetupCache(nil, 8)

	id := domain.TxId(strings.Repeat("b", 43))
	notAlbum := domain.TxId(strings.Repeat("n", 43))
	artist := domain.Address(strings.Repeat("r", 43))

	us := mocks.NewUsecase(t)
	us.On("GetAlbum", mock.Anything, id).Return(&album.Album{Id: id, Title: "Nights", TrackIds: []domain.TxId{}}, nil).Once()
	us.On("GetAlbum", mock.Anything, notAlbum).Return(nil, domain.ErrNotAlbum).Once()
	us.On("ListByCreator", mock.Anything, artist).Return([]*album.Album{{Id: id}}, nil).Once()

	e := newEcho(us)

	rec := serve(e, "/albums/"+id.String())
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"title":"Nights"`)

	rec = serve(e, "/albums/"+notAlbum.String())
	req.Equal(http.StatusBadRequest, rec.Code)

	rec = serve(e, "/albums/nope")
	req.Equal(http.StatusBadRequest, rec.Code)

	rec = serve(e, "/accounts/"+artist.String()+"/albums")
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), id.String())
}
