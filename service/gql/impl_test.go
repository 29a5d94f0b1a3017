package gql

import (
	"encoding/json"
	"fmt"
	"io"
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
		Url:      s.server.URL,
		PageSize: 2,
		Attempts: 3,
		Cache:    c,
	})
}

func edgeJson(id string, cursor string) string {
	return fmt.Sprintf(`{"cursor":%q,"node":{"id":%q,"owner":{"address":"owner-1"},"tags":[{"name":"Content-Type","value":"audio/mpeg"},{"name":"Title","value":"t-%s"}],"block":{"height":100,"timestamp":1700000000},"data":{"size":"1024","type":"audio/mpeg"}}}`, cursor, id, id)
}

func pageJson(hasNext bool, edges ...string) string {
	body := ""
	for i, e := range edges {
		if i > 0 {
			body += ","
		}
		body += e
	}
	return fmt.Sprintf(`{"data":{"transactions":{"pageInfo":{"hasNextPage":%t},"edges":[%s]}}}`, hasNext, body)
}

func (s *clientTestSuite) decode(r *http.Request) request {
	body, err := io.ReadAll(r.Body)
	s.Require().NoError(err)
	req := request{}
	s.Require().NoError(json.Unmarshal(body, &req))
	return req
}

func (s *clientTestSuite) TestTransactions() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		req := s.decode(r)
		s.Equal(float64(2), req.Variables["first"])
		s.Equal(string(SortHeightDesc), req.Variables["sort"])
		s.Equal([]interface{}{"owner-1"}, req.Variables["owners"])
		_, _ = w.Write([]byte(pageJson(true, edgeJson("a", "c1"), edgeJson("b", "c2"))))
	}

	page, err := s.newClient(nil).Transactions(mockCtx, WithOwners("owner-1"))
	s.Require().NoError(err)
	s.True(page.HasNextPage)
	s.Equal("c2", page.EndCursor())

	txs := page.Transactions()
	s.Require().Len(txs, 2)
	s.Equal(domain.TxId("a"), txs[0].Id)
	s.Equal(domain.Address("owner-1"), txs[0].Owner)
	s.Equal(int64(1024), txs[0].DataSize)
	s.Equal(int64(100), txs[0].Height)
	s.Equal("t-a", txs[0].Tags.Value(domain.TagTitle))
	s.True(txs[0].IsAudio())
}

func (s *clientTestSuite) TestTransactionsInvalidFirst() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {}

	_, err := s.newClient(nil).Transactions(mockCtx, WithFirst(MaxPageSize+1))
	s.ErrorIs(err, domain.ErrBadParamInput)
	s.Equal(int32(0), atomic.LoadInt32(&s.calls))
}

func (s *clientTestSuite) TestTransactionPending() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"transactions":{"pageInfo":{"hasNextPage":false},"edges":[{"cursor":"c","node":{"id":"p","owner":{"address":"o"},"tags":[],"block":null,"data":{"size":"0","type":""}}}]}}}`))
	}

	tx, err := s.newClient(nil).Transaction(mockCtx, "p")
	s.Require().NoError(err)
	s.Equal(int64(0), tx.Height)
	s.True(tx.Time().IsZero())
}

func (s *clientTestSuite) TestTransactionNotFound() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pageJson(false)))
	}

	_, err := s.newClient(nil).Transaction(mockCtx, "missing")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *clientTestSuite) TestGraphqlErrors() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad query"}]}`))
	}

	_, err := s.newClient(nil).Transactions(mockCtx)
	s.ErrorIs(err, domain.ErrUpstream)
	s.Equal(int32(1), atomic.LoadInt32(&s.calls))
}

func (s *clientTestSuite) TestRetryOnServerError() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&s.calls) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(pageJson(false, edgeJson("a", "c1"))))
	}

	page, err := s.newClient(nil).Transactions(mockCtx)
	s.Require().NoError(err)
	s.Len(page.Edges, 1)
	s.Equal(int32(3), atomic.LoadInt32(&s.calls))
}

func (s *clientTestSuite) TestNoRetryOnClientError() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}

	_, err := s.newClient(nil).Transactions(mockCtx)
	s.ErrorIs(err, domain.ErrUpstream)
	s.Equal(int32(1), atomic.LoadInt32(&s.calls))
}

func (s *clientTestSuite) TestAllTransactions() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		req := s.decode(r)
		switch req.Variables["after"] {
		case nil:
			_, _ = w.Write([]byte(pageJson(true, edgeJson("a", "c1"), edgeJson("b", "c2"))))
		case "c2":
			// gateways may repeat an edge across pages
			_, _ = w.Write([]byte(pageJson(false, edgeJson("b", "c2"), edgeJson("c", "c3"))))
		default:
			s.Fail("unexpected cursor", req.Variables["after"])
		}
	}

	txs, err := s.newClient(nil).AllTransactions(mockCtx, 0)
	s.Require().NoError(err)
	s.Require().Len(txs, 3)
	s.Equal(domain.TxId("a"), txs[0].Id)
	s.Equal(domain.TxId("c"), txs[2].Id)
}

func (s *clientTestSuite) TestAllTransactionsLimit() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pageJson(true, edgeJson("a", "c1"), edgeJson("b", "c2"))))
	}

	txs, err := s.newClient(nil).AllTransactions(mockCtx, 1)
	s.Require().NoError(err)
	s.Len(txs, 1)
	s.Equal(int32(1), atomic.LoadInt32(&s.calls))
}

func (s *clientTestSuite) TestAllTransactionsLimitAfterDedupe() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		req := s.decode(r)
		switch req.Variables["after"] {
		case nil:
			_, _ = w.Write([]byte(pageJson(true, edgeJson("a", "c1"), edgeJson("b", "c2"))))
		case "c2":
			_, _ = w.Write([]byte(pageJson(true, edgeJson("b", "c2"), edgeJson("a", "c1"))))
		case "c1":
			_, _ = w.Write([]byte(pageJson(false, edgeJson("c", "c3"), edgeJson("d", "c4"))))
		default:
			s.Fail("unexpected cursor", req.Variables["after"])
		}
	}

	// a repeated page must not use up the limit
	txs, err := s.newClient(nil).AllTransactions(mockCtx, 3)
	s.Require().NoError(err)
	s.Require().Len(txs, 3)
	s.Equal(domain.TxId("a"), txs[0].Id)
	s.Equal(domain.TxId("b"), txs[1].Id)
	s.Equal(domain.TxId("c"), txs[2].Id)
	s.Equal(int32(3), atomic.LoadInt32(&s.calls))
}

func (s *clientTestSuite) TestCached() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(pageJson(false, edgeJson("a", "c1"))))
	}
	c := cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "gqltest",
		Cache: primitive.NewPrimitive("gqltest", 8),
	})
	cli := s.newClient(c)

	for i := 0; i < 3; i++ {
		page, err := cli.Transactions(mockCtx, WithIds("a"))
		s.Require().NoError(err)
		s.Equal(domain.TxId("a"), page.Edges[0].Node.Id)
	}
	s.Equal(int32(1), atomic.LoadInt32(&s.calls))

	_, err := cli.Transactions(mockCtx, WithIds("a"), WithoutCache())
	s.Require().NoError(err)
	s.Equal(int32(2), atomic.LoadInt32(&s.calls))
}

func (s *clientTestSuite) TestPing() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal(pingQuery, s.decode(r).Query)
		_, _ = w.Write([]byte(pageJson(false)))
	}

	cli := s.newClient(nil)
	s.Equal("gql", cli.Name())
	s.NoError(cli.Ping(mockCtx))
}
