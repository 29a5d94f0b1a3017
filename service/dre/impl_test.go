package dre

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/service/cache"
	"github.com/arcadia-music/goapi/service/cache/provider/primitive"
)

var mockCtx = bCtx.Background()

const evaluated = `{"status":"evaluated","contractTxId":"asset-1","sortKey":"000001","state":{"name":"Song","ticker":"SONG","balances":{"a":60,"b":40},"claimable":[]}}`

type clientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	calls   int32
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientTestSuite))
}

func (s *clientTestSuite) SetupTest() {
	atomic.StoreInt32(&s.calls, 0)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.calls, 1)
		s.handler(w, r)
	}))
}

func (s *clientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *clientTestSuite) newClient(c cache.Service) Client {
	return NewClient(&ClientCfg{
		Timeout:  time.Second,
		Url:      s.server.URL + "/",
		Attempts: 2,
		Cache:    c,
	})
}

func (s *clientTestSuite) TestState() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/contract", r.URL.Path)
		s.Equal("asset-1", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(evaluated))
	}

	state, err := s.newClient(nil).State(mockCtx, "asset-1")
	s.Require().NoError(err)
	s.Equal(domain.ContractId("asset-1"), state.Id)
	s.Equal("000001", state.SortKey)
	s.Equal("SONG", state.Get("ticker").String())
	s.Equal(int64(60), state.Get("balances.a").Int())

	v := struct {
		Balances map[string]int64 `json:"balances"`
	}{}
	s.Require().NoError(state.Unmarshal(&v))
	s.Equal(map[string]int64{"a": 60, "b": 40}, v.Balances)
}

func (s *clientTestSuite) TestStateNotEvaluated() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"blacklisted","contractTxId":"asset-1"}`))
	}

	_, err := s.newClient(nil).State(mockCtx, "asset-1")
	s.ErrorIs(err, domain.ErrUpstream)
}

func (s *clientTestSuite) TestStateNotFound() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}

	_, err := s.newClient(nil).State(mockCtx, "missing")
	s.ErrorIs(err, domain.ErrNotFound)
	s.Equal(int32(1), atomic.LoadInt32(&s.calls))
}

func (s *clientTestSuite) TestStateEmptyId() {
	_, err := s.newClient(nil).State(mockCtx, "")
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *clientTestSuite) TestStateRetry() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&s.calls) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(evaluated))
	}

	_, err := s.newClient(nil).State(mockCtx, "asset-1")
	s.NoError(err)
	s.Equal(int32(2), atomic.LoadInt32(&s.calls))
}

func (s *clientTestSuite) TestStateCached() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(evaluated))
	}
	cli := s.newClient(cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "dretest",
		Cache: primitive.NewPrimitive("dretest", 8),
	}))

	for i := 0; i < 2; i++ {
		state, err := cli.State(mockCtx, "asset-1")
		s.Require().NoError(err)
		s.Equal(int64(40), state.Get("balances.b").Int())
	}
	s.Equal(int32(1), atomic.LoadInt32(&s.calls))
}
