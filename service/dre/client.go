package dre

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/service/cache"
)

const StatusEvaluated = "evaluated"

// ContractState is an evaluated SmartWeave contract state
type ContractState struct {
	Id      domain.ContractId `json:"id"`
	SortKey string            `json:"sortKey"`
	Raw     json.RawMessage   `json:"state"`
}

// Get reads a gjson path from the state, e.g. "balances" or "pairs.#.pair"
func (s *ContractState) Get(path string) gjson.Result {
	return gjson.GetBytes(s.Raw, path)
}

func (s *ContractState) Unmarshal(v interface{}) error {
	return json.Unmarshal(s.Raw, v)
}

type Client interface {
	// State returns domain.ErrNotFound for unknown contracts
	State(ctx bCtx.Ctx, id domain.ContractId) (*ContractState, error)
	Name() string
	Ping(ctx bCtx.Ctx) error
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Url of the DRE node, e.g. https://dre-u.warp.cc
	Url      string
	Rps      float64
	Burst    int
	Attempts int
	// Cache is optional, keep its ttl short
	Cache cache.Service
}
