package repository

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/base/metrics"
	"github.com/arcadia-music/goapi/domain"
)

// fetch GETs url and returns the body. 404 maps to domain.ErrNotFound,
// other non 200 statuses to domain.ErrUpstream. Bodies above maxBytes fail
// with domain.ErrTooLarge, maxBytes <= 0 reads any size.
func fetch(c bCtx.Ctx, client *http.Client, timeout time.Duration, maxBytes int64, headers map[string]string, upstream, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(c, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		metrics.ObserveUpstream(upstream, "error")
		ctx.WithFields(log.Fields{"url": url, "err": err}).Warn("failed with request")
		return nil, err
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(upstream, strconv.Itoa(resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, xerrors.Errorf("resp.StatusCode %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	var reader io.Reader = resp.Body
	if maxBytes > 0 {
		if resp.ContentLength > maxBytes {
			ctx.WithFields(log.Fields{"url": url, "contentLength": resp.ContentLength, "maxBytes": maxBytes}).Warn("body too large")
			return nil, xerrors.Errorf("content length %d: %w", resp.ContentLength, domain.ErrTooLarge)
		}
		// one byte over the limit tells an oversized body without a content length
		reader = io.LimitReader(resp.Body, maxBytes+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	if maxBytes > 0 && int64(len(body)) > maxBytes {
		ctx.WithFields(log.Fields{"url": url, "maxBytes": maxBytes}).Warn("body too large")
		return nil, xerrors.Errorf("body over %d bytes: %w", maxBytes, domain.ErrTooLarge)
	}
	return body, nil
}
