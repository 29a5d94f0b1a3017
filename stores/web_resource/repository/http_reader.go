package repository

import (
	"net/http"
	"time"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
)

type httpReaderRepo struct {
	client     http.Client
	ctxTimeout time.Duration
	maxBytes   int64
	headers    map[string]string
}

func NewHttpReaderRepo(client http.Client, timeout time.Duration, maxBytes int64, headers map[string]string) domain.WebResourceReaderRepository {
	return &httpReaderRepo{client: client, ctxTimeout: timeout, maxBytes: maxBytes, headers: headers}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	return fetch(c, &r.client, r.ctxTimeout, r.maxBytes, r.headers, "http", url)
}
