package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/asset"
	"github.com/arcadia-music/goapi/domain/asset/mocks"
	"github.com/arcadia-music/goapi/middleware"
)

func TestGetOwners(t *testing.T) {
	req := require.New(t)
	middleware.SetupCache(nil, 8)

	id := domain.ContractId(strings.Repeat("o", 43))
	gone := domain.ContractId(strings.Repeat("g", 43))
	us := mocks.NewUsecase(t)
	us.On("GetOwners", mock.Anything, id).Return([]*asset.TrackAssetOwner{
		{Address: "a", Balance: 3, Percentage: decimal.RequireFromString("75")},
		{Address: "b", Balance: 1, Percentage: decimal.RequireFromString("25")},
	}, nil).Once()
	us.On("GetOwners", mock.Anything, gone).Return(nil, domain.ErrNotFound).Once()

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, us)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks/"+id.String()+"/owners", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"percentage":"75"`)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tracks/"+gone.String()+"/owners", nil))
	req.Equal(http.StatusNotFound, rec.Code)
}
