package domain

import (
	"github.com/arcadia-music/goapi/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceWriterRepository interface {
	Store(ctx.Ctx, string, []byte, string) (string, error)
}

type WebResourceUseCase interface {
	// Get reads ar://<txid>, a bare tx id or an http(s) url
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	// Store archives body under path and returns its public url.
	// It returns ErrNotFound when no writer is configured.
	Store(ctx ctx.Ctx, path string, body []byte, contentType string) (string, error)
}
