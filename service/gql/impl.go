package gql

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
	"golang.org/x/xerrors"

	"github.com/arcadia-music/goapi/base/backoff"
	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/base/metrics"
	"github.com/arcadia-music/goapi/base/slice"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/keys"
	"github.com/arcadia-music/goapi/service/cache"
)

const upstreamName = "gql"

const transactionsQuery = `query Transactions($ids: [ID!], $owners: [String!], $tags: [TagFilter!], $first: Int, $after: String, $sort: SortOrder) {
  transactions(ids: $ids, owners: $owners, tags: $tags, first: $first, after: $after, sort: $sort) {
    pageInfo { hasNextPage }
    edges {
      cursor
      node {
        id
        owner { address }
        tags { name value }
        block { height timestamp }
        data { size type }
      }
    }
  }
}`

const pingQuery = `query { transactions(first: 1) { edges { cursor } } }`

func NewClient(cfg *ClientCfg) Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = defaultPageSize
	}
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
		url:      cfg.Url,
		pageSize: pageSize,
		attempts: attempts,
		limiter:  rate.NewLimiter(limit, burst),
		cache:    cfg.Cache,
	}
}

type client struct {
	client   http.Client
	timeout  time.Duration
	url      string
	pageSize int
	attempts int
	limiter  *rate.Limiter
	cache    cache.Service
}

type request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type response struct {
	Data struct {
		Transactions struct {
			PageInfo struct {
				HasNextPage bool `json:"hasNextPage"`
			} `json:"pageInfo"`
			Edges []edgeResp `json:"edges"`
		} `json:"transactions"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type edgeResp struct {
	Cursor string `json:"cursor"`
	Node   struct {
		Id    domain.TxId `json:"id"`
		Owner struct {
			Address domain.Address `json:"address"`
		} `json:"owner"`
		Tags  domain.Tags `json:"tags"`
		Block *struct {
			Height    int64 `json:"height"`
			Timestamp int64 `json:"timestamp"`
		} `json:"block"`
		Data struct {
			Size string `json:"size"`
			Type string `json:"type"`
		} `json:"data"`
	} `json:"node"`
}

func (e *edgeResp) toEdge() Edge {
	tx := &domain.Transaction{
		Id:       e.Node.Id,
		Owner:    e.Node.Owner.Address,
		Tags:     e.Node.Tags,
		DataType: e.Node.Data.Type,
	}
	// pending transactions have no block yet
	if e.Node.Block != nil {
		tx.Height = e.Node.Block.Height
		tx.Timestamp = e.Node.Block.Timestamp
	}
	if size, err := strconv.ParseInt(e.Node.Data.Size, 10, 64); err == nil {
		tx.DataSize = size
	}
	if tx.Tags == nil {
		tx.Tags = domain.Tags{}
	}
	return Edge{Cursor: e.Cursor, Node: tx}
}

func (c *client) variables(opt QueryOptions) map[string]interface{} {
	vars := map[string]interface{}{
		"first": c.pageSize,
		"sort":  opt.Sort,
	}
	if opt.First > 0 {
		vars["first"] = opt.First
	}
	if len(opt.Ids) > 0 {
		vars["ids"] = opt.Ids
	}
	if len(opt.Owners) > 0 {
		vars["owners"] = opt.Owners
	}
	if len(opt.Tags) > 0 {
		vars["tags"] = opt.Tags
	}
	if opt.After != "" {
		vars["after"] = opt.After
	}
	return vars
}

func (c *client) Transactions(ctx bCtx.Ctx, opts ...QueryOptionsFunc) (*TransactionsPage, error) {
	opt, err := ParseQueryOptions(opts...)
	if err != nil {
		return nil, err
	}

	req := request{Query: transactionsQuery, Variables: c.variables(opt)}
	body, err := json.Marshal(req)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return nil, err
	}

	fetch := func() (*TransactionsPage, error) {
		data, err := c.post(ctx, body)
		if err != nil {
			return nil, err
		}
		return parsePage(ctx, data)
	}

	if c.cache == nil || opt.NoCache {
		return fetch()
	}

	page := &TransactionsPage{}
	key := keys.RedisKey(keys.PfxGql, keys.MD5(string(body)))
	if err := c.cache.GetByFunc(ctx, key, page, func() (interface{}, error) {
		return fetch()
	}); err != nil {
		return nil, err
	}
	return page, nil
}

func parsePage(ctx bCtx.Ctx, data []byte) (*TransactionsPage, error) {
	resp := response{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("invalid gateway response: %w", domain.ErrUpstream)
	}
	if len(resp.Errors) > 0 {
		ctx.WithField("errors", resp.Errors).Error("graphql errors")
		return nil, xerrors.Errorf("%s: %w", resp.Errors[0].Message, domain.ErrUpstream)
	}

	page := &TransactionsPage{
		Edges:       make([]Edge, 0, len(resp.Data.Transactions.Edges)),
		HasNextPage: resp.Data.Transactions.PageInfo.HasNextPage,
	}
	for i := range resp.Data.Transactions.Edges {
		page.Edges = append(page.Edges, resp.Data.Transactions.Edges[i].toEdge())
	}
	return page, nil
}

func (c *client) Transaction(ctx bCtx.Ctx, id domain.TxId) (*domain.Transaction, error) {
	page, err := c.Transactions(ctx, WithIds(id), WithFirst(1))
	if err != nil {
		ctx.WithFields(log.Fields{"id": id, "err": err}).Error("c.Transactions failed")
		return nil, err
	}
	if len(page.Edges) == 0 {
		return nil, domain.ErrNotFound
	}
	return page.Edges[0].Node, nil
}

func (c *client) AllTransactions(ctx bCtx.Ctx, limit int, opts ...QueryOptionsFunc) ([]*domain.Transaction, error) {
	res := []*domain.Transaction{}
	after := ""
	for {
		page, err := c.Transactions(ctx, append(opts, WithAfter(after))...)
		if err != nil {
			ctx.WithFields(log.Fields{"after": after, "err": err}).Error("c.Transactions failed")
			return nil, err
		}
		// repeated edges do not count towards limit
		res = slice.Dedupe(append(res, page.Transactions()...), func(tx *domain.Transaction) domain.TxId { return tx.Id })
		if limit > 0 && len(res) >= limit {
			res = res[:limit]
			break
		}
		if !page.HasNextPage || len(page.Edges) == 0 {
			break
		}
		after = page.EndCursor()
	}
	return res, nil
}

func (c *client) Name() string {
	return upstreamName
}

func (c *client) Ping(ctx bCtx.Ctx) error {
	body, _ := json.Marshal(request{Query: pingQuery})
	_, err := c.post(ctx, body)
	return err
}

func (c *client) post(ctx bCtx.Ctx, body []byte) ([]byte, error) {
	var data []byte
	b := backoff.NewExponential(200*time.Millisecond, 2*time.Second)
	err := b.Retry(ctx, c.attempts, func() (bool, error) {
		var (
			status int
			err    error
		)
		data, status, err = c.do(ctx, body)
		// stop once the caller gave up
		return ctx.Err() == nil && retryable(status, err), err
	})
	return data, err
}

func retryable(status int, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, domain.ErrUpstream) {
		return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
	}
	// transport errors and per request timeouts
	return status == 0
}

func (c *client) do(ctx bCtx.Ctx, body []byte) ([]byte, int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, 0, err
	}

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ObserveUpstream(upstreamName, "error")
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("client.Do failed")
		return nil, 0, err
	}
	defer resp.Body.Close()
	metrics.ObserveUpstream(upstreamName, strconv.Itoa(resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        c.url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, resp.StatusCode, xerrors.Errorf("gateway status %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("failed to read body")
		return nil, resp.StatusCode, err
	}
	return data, resp.StatusCode, nil
}
