package usecase

import (
	"encoding/json"
	"net/url"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/base/validator"
	"github.com/arcadia-music/goapi/domain"
)

type WebResourceUseCaseCfg struct {
	HttpReader         domain.WebResourceReaderRepository
	ArUriReader        domain.WebResourceReaderRepository
	CloudStorageWriter domain.WebResourceWriterRepository
}

type webResourceUseCase struct {
	httpReader         domain.WebResourceReaderRepository
	arUriReader        domain.WebResourceReaderRepository
	cloudStorageWriter domain.WebResourceWriterRepository
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		httpReader:         cfg.HttpReader,
		arUriReader:        cfg.ArUriReader,
		cloudStorageWriter: cfg.CloudStorageWriter,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return data, nil
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	// a bare transaction id
	if validator.IsValidTxId(rawUrl) {
		rawUrl = "ar://" + rawUrl
	}

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, domain.ErrBadParamInput
	}

	var data []byte
	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ar":
		data, err = u.arUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err != nil {
		c.WithFields(log.Fields{
			"schema": pUrl.Scheme,
			"url":    rawUrl,
			"err":    err,
		}).Error("failed to fetch")
		return nil, err
	}
	return data, nil
}

func (u *webResourceUseCase) Store(c bCtx.Ctx, path string, body []byte, contentType string) (string, error) {
	if u.cloudStorageWriter == nil {
		return "", domain.ErrNotFound
	}
	url, err := u.cloudStorageWriter.Store(c, path, body, contentType)
	if err != nil {
		c.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Error("cloudStorageWriter.Store failed")
		return "", err
	}
	return url, nil
}
