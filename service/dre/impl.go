package dre

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
	"golang.org/x/xerrors"

	"github.com/arcadia-music/goapi/base/backoff"
	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/base/metrics"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/keys"
	"github.com/arcadia-music/goapi/service/cache"
)

const upstreamName = "dre"

func NewClient(cfg *ClientCfg) Client {
	attempts := cfg.Attempts
	if attempts <= 0 {
		attempts = 3
	}
	limit := rate.Inf
	if cfg.Rps > 0 {
		limit = rate.Limit(cfg.Rps)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &client{
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
		url:      strings.TrimSuffix(cfg.Url, "/"),
		attempts: attempts,
		limiter:  rate.NewLimiter(limit, burst),
		cache:    cfg.Cache,
	}
}

type client struct {
	client   http.Client
	timeout  time.Duration
	url      string
	attempts int
	limiter  *rate.Limiter
	cache    cache.Service
}

func (c *client) State(ctx bCtx.Ctx, id domain.ContractId) (*ContractState, error) {
	if id.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}
	if c.cache == nil {
		return c.state(ctx, id)
	}

	state := &ContractState{}
	key := keys.RedisKey(keys.PfxDre, id.String())
	if err := c.cache.GetByFunc(ctx, key, state, func() (interface{}, error) {
		return c.state(ctx, id)
	}); err != nil {
		return nil, err
	}
	return state, nil
}

func (c *client) state(ctx bCtx.Ctx, id domain.ContractId) (*ContractState, error) {
	q := url.Values{}
	q.Set("id", id.String())
	q.Set("errorMessages", "false")
	q.Set("validity", "false")

	data, err := c.getWithRetry(ctx, c.url+"/contract?"+q.Encode())
	if err != nil {
		return nil, err
	}

	res := gjson.ParseBytes(data)
	if status := res.Get("status").String(); status != StatusEvaluated {
		ctx.WithFields(log.Fields{"id": id, "status": status}).Warn("contract not evaluated")
		return nil, xerrors.Errorf("contract %s is %q: %w", id, status, domain.ErrUpstream)
	}
	state := res.Get("state")
	if !state.Exists() {
		return nil, xerrors.Errorf("contract %s has no state: %w", id, domain.ErrUpstream)
	}

	return &ContractState{
		Id:      domain.ContractId(res.Get("contractTxId").String()),
		SortKey: res.Get("sortKey").String(),
		Raw:     []byte(state.Raw),
	}, nil
}

func (c *client) Name() string {
	return upstreamName
}

func (c *client) Ping(ctx bCtx.Ctx) error {
	_, _, err := c.get(ctx, c.url+"/status")
	return err
}

func (c *client) getWithRetry(ctx bCtx.Ctx, u string) ([]byte, error) {
	var data []byte
	b := backoff.NewExponential(200*time.Millisecond, 2*time.Second)
	err := b.Retry(ctx, c.attempts, func() (bool, error) {
		var (
			status int
			err    error
		)
		data, status, err = c.get(ctx, u)
		if err == nil || errors.Is(err, domain.ErrNotFound) {
			return false, err
		}
		return ctx.Err() == nil && (status == 0 || status == http.StatusTooManyRequests || status >= http.StatusInternalServerError), err
	})
	return data, err
}

func (c *client) get(ctx bCtx.Ctx, u string) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ObserveUpstream(upstreamName, "error")
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("client.Do failed")
		return nil, 0, err
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(upstreamName, strconv.Itoa(resp.StatusCode))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, resp.StatusCode, domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		ctx.WithFields(log.Fields{
			"url":        u,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, resp.StatusCode, xerrors.Errorf("dre status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("failed to read body")
		return nil, resp.StatusCode, err
	}
	return data, resp.StatusCode, nil
}
