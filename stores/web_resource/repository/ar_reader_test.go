package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
)

func Test_arReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/album-1":
			req.Equal("arcadia", r.Header.Get("X-App"))
			_, _ = w.Write([]byte(`{"items":["t1"]}`))
		case "/manifest/cover.png":
			_, _ = w.Write([]byte("png"))
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	ctx := bCtx.Background()
	r := NewArReaderRepo(http.Client{}, srv.URL+"/", 5*time.Second, 0, map[string]string{"X-App": "arcadia"})

	b, err := r.Get(ctx, "ar://album-1")
	req.NoError(err)
	req.Equal(`{"items":["t1"]}`, string(b))

	b, err = r.Get(ctx, "ar://manifest/cover.png")
	req.NoError(err)
	req.Equal("png", string(b))

	_, err = r.Get(ctx, "ar://missing")
	req.ErrorIs(err, domain.ErrNotFound)

	_, err = r.Get(ctx, "ar://broken")
	req.ErrorIs(err, domain.ErrUpstream)

	_, err = r.Get(ctx, "https://arweave.net/x")
	req.ErrorIs(err, domain.ErrUnsupportedSchema)

	_, err = r.Get(ctx, "ar://")
	req.ErrorIs(err, domain.ErrInvalidTxId)
}
