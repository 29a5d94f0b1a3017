package gql

import (
	"net/http"
	"time"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/service/cache"
)

const (
	// MaxPageSize is the largest `first` the gateways accept
	MaxPageSize     = 100
	defaultPageSize = 50
)

type Sort string

const (
	SortHeightDesc Sort = "HEIGHT_DESC"
	SortHeightAsc  Sort = "HEIGHT_ASC"
)

type TagFilter struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type QueryOptions struct {
	Ids    []domain.TxId
	Owners []domain.Address
	Tags   []TagFilter
	First  int
	After  string
	Sort   Sort
	// NoCache skips the response cache, used by pollers
	NoCache bool
}

type QueryOptionsFunc func(*QueryOptions) error

func ParseQueryOptions(opts ...QueryOptionsFunc) (QueryOptions, error) {
	opt := QueryOptions{Sort: SortHeightDesc}
	for _, f := range opts {
		if err := f(&opt); err != nil {
			return opt, err
		}
	}
	return opt, nil
}

func WithIds(ids ...domain.TxId) QueryOptionsFunc {
	return func(opt *QueryOptions) error {
		opt.Ids = append(opt.Ids, ids...)
		return nil
	}
}

func WithOwners(owners ...domain.Address) QueryOptionsFunc {
	return func(opt *QueryOptions) error {
		opt.Owners = append(opt.Owners, owners...)
		return nil
	}
}

func WithTag(name string, values ...string) QueryOptionsFunc {
	return func(opt *QueryOptions) error {
		if len(values) == 0 {
			return domain.ErrBadParamInput
		}
		opt.Tags = append(opt.Tags, TagFilter{Name: name, Values: values})
		return nil
	}
}

func WithFirst(first int) QueryOptionsFunc {
	return func(opt *QueryOptions) error {
		if first <= 0 || first > MaxPageSize {
			return domain.ErrBadParamInput
		}
		opt.First = first
		return nil
	}
}

func WithAfter(cursor string) QueryOptionsFunc {
	return func(opt *QueryOptions) error {
		opt.After = cursor
		return nil
	}
}

func WithSort(sort Sort) QueryOptionsFunc {
	return func(opt *QueryOptions) error {
		if sort != SortHeightAsc && sort != SortHeightDesc {
			return domain.ErrBadParamInput
		}
		opt.Sort = sort
		return nil
	}
}

func WithoutCache() QueryOptionsFunc {
	return func(opt *QueryOptions) error {
		opt.NoCache = true
		return nil
	}
}

type Edge struct {
	Cursor string              `json:"cursor"`
	Node   *domain.Transaction `json:"node"`
}

type TransactionsPage struct {
	Edges       []Edge `json:"edges"`
	HasNextPage bool   `json:"hasNextPage"`
}

func (p *TransactionsPage) Transactions() []*domain.Transaction {
	res := make([]*domain.Transaction, 0, len(p.Edges))
	for _, e := range p.Edges {
		res = append(res, e.Node)
	}
	return res
}

// EndCursor is the cursor of the last edge, "" for an empty page
func (p *TransactionsPage) EndCursor() string {
	if len(p.Edges) == 0 {
		return ""
	}
	return p.Edges[len(p.Edges)-1].Cursor
}

type Client interface {
	Transactions(ctx bCtx.Ctx, opts ...QueryOptionsFunc) (*TransactionsPage, error)
	// Transaction returns domain.ErrNotFound when the gateway does not know id
	Transaction(ctx bCtx.Ctx, id domain.TxId) (*domain.Transaction, error)
	// AllTransactions follows cursors until the last page or until limit
	// transactions were collected. limit <= 0 means no limit.
	AllTransactions(ctx bCtx.Ctx, limit int, opts ...QueryOptionsFunc) ([]*domain.Transaction, error)
	Name() string
	Ping(ctx bCtx.Ctx) error
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Url of the graphql endpoint, e.g. https://arweave.net/graphql
	Url      string
	PageSize int
	Rps      float64
	Burst    int
	// Attempts per request, 429 and 5xx responses are retried
	Attempts int
	// Cache is optional
	Cache cache.Service
}
