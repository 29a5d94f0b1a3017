package repository

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
)

const (
	arUriSchema    = "ar://"
	DefaultGateway = "https://arweave.net"
)

type arReaderRepo struct {
	client     http.Client
	gateway    string
	ctxTimeout time.Duration
	maxBytes   int64
	headers    map[string]string
}

// NewArReaderRepo reads ar://<txid>[/path] from an arweave data gateway.
// Bodies above maxBytes fail with domain.ErrTooLarge.
func NewArReaderRepo(client http.Client, gateway string, timeout time.Duration, maxBytes int64, headers map[string]string) domain.WebResourceReaderRepository {
	if gateway == "" {
		gateway = DefaultGateway
	}
	return &arReaderRepo{
		client:     client,
		gateway:    strings.TrimSuffix(gateway, "/"),
		ctxTimeout: timeout,
		maxBytes:   maxBytes,
		headers:    headers,
	}
}

func (r *arReaderRepo) Get(c bCtx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, arUriSchema) {
		return nil, xerrors.Errorf("invalid ar uri: %w", domain.ErrUnsupportedSchema)
	}
	id := strings.TrimPrefix(uri, arUriSchema)
	if id == "" {
		return nil, domain.ErrInvalidTxId
	}
	return fetch(c, &r.client, r.ctxTimeout, r.maxBytes, r.headers, "gateway", r.gateway+"/"+id)
}
