package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/keys"
	"github.com/arcadia-music/goapi/domain/mocks"
	"github.com/arcadia-music/goapi/domain/profile"
	"github.com/arcadia-music/goapi/service/cache"
	"github.com/arcadia-music/goapi/service/cache/provider/primitive"
	"github.com/arcadia-music/goapi/service/gql"
	gqlMocks "github.com/arcadia-music/goapi/service/gql/mocks"
)

var mockCtx = bCtx.Background()

func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = mock.Anything
	}
	return args
}

func accountTx(id domain.TxId, owner domain.Address) *domain.Transaction {
	return &domain.Transaction{
		Id:        id,
		Owner:     owner,
		Timestamp: 1700000000,
		Tags:      domain.Tags{{Name: domain.TagProtocolName, Value: domain.ProtocolNameAccount}},
	}
}

// pageFor answers a Transactions call with one account tx per known owner
func pageFor(known map[domain.Address]domain.TxId) func(bCtx.Ctx, ...gql.QueryOptionsFunc) *gql.TransactionsPage {
	return func(_ bCtx.Ctx, fns ...gql.QueryOptionsFunc) *gql.TransactionsPage {
		opt, _ := gql.ParseQueryOptions(fns...)
		page := &gql.TransactionsPage{}
		if id, ok := known[opt.Owners[0]]; ok {
			page.Edges = []gql.Edge{{Cursor: "c", Node: accountTx(id, opt.Owners[0])}}
		}
		return page
	}
}

type profileUsecaseSuite struct {
	suite.Suite
	gql         *gqlMocks.Client
	webResource *mocks.WebResourceUseCase
	uc          profile.Usecase
}

func TestProfileUsecaseSuite(t *testing.T) {
	suite.Run(t, new(profileUsecaseSuite))
}

func (s *profileUsecaseSuite) SetupTest() {
	s.gql = gqlMocks.NewClient(s.T())
	s.webResource = mocks.NewWebResourceUseCase(s.T())
	s.uc = New(&ProfileUseCaseCfg{Gql: s.gql, WebResource: s.webResource})
}

func (s *profileUsecaseSuite) TestGetProfile() {
	s.gql.On("Transactions", anyArgs(5)...).Run(func(args mock.Arguments) {
		fns := []gql.QueryOptionsFunc{}
		for _, a := range args[1:] {
			fns = append(fns, a.(gql.QueryOptionsFunc))
		}
		opt, err := gql.ParseQueryOptions(fns...)
		s.Require().NoError(err)
		s.Equal([]domain.Address{"alice"}, opt.Owners)
		s.Equal(1, opt.First)
		s.Equal(gql.SortHeightDesc, opt.Sort)
		s.Equal(domain.TagProtocolName, opt.Tags[0].Name)
		s.Equal([]string{domain.ProtocolNameAccount}, opt.Tags[0].Values)
	}).Return(pageFor(map[domain.Address]domain.TxId{"alice": "p1"}), nil).Once()
	s.webResource.On("GetJson", mock.Anything, "p1").Return([]byte(`{"handle":"al","name":"Alice","links":{"x":"@al"}}`), nil).Once()

	p, err := s.uc.GetProfile(mockCtx, "alice")
	s.Require().NoError(err)
	s.Equal(domain.Address("alice"), p.Address)
	s.Equal("al", p.Handle)
	s.Equal("Alice", p.Name)
	s.Equal(domain.TxId("p1"), p.TxId)
	s.Equal("@al", p.Links["x"])
}

func (s *profileUsecaseSuite) TestGetProfileNone() {
	s.gql.On("Transactions", anyArgs(5)...).Return(&gql.TransactionsPage{}, nil).Once()

	p, err := s.uc.GetProfile(mockCtx, "nobody")
	s.Require().NoError(err)
	s.True(p.IsEmpty())
	s.Equal(domain.Address("nobody"), p.Address)
}

func (s *profileUsecaseSuite) TestGetProfileDataMissing() {
	s.gql.On("Transactions", anyArgs(5)...).Return(pageFor(map[domain.Address]domain.TxId{"bob": "p2"}), nil).Once()
	s.webResource.On("GetJson", mock.Anything, "p2").Return(nil, domain.ErrNotFound).Once()

	p, err := s.uc.GetProfile(mockCtx, "bob")
	s.Require().NoError(err)
	s.Equal(domain.TxId("p2"), p.TxId)
	s.Empty(p.Name)
}

func (s *profileUsecaseSuite) TestGetProfileErrors() {
	_, err := s.uc.GetProfile(mockCtx, "")
	s.ErrorIs(err, domain.ErrInvalidAddress)

	s.gql.On("Transactions", anyArgs(5)...).Return(nil, domain.ErrUpstream).Once()
	_, err = s.uc.GetProfile(mockCtx, "carol")
	s.ErrorIs(err, domain.ErrUpstream)
}

func (s *profileUsecaseSuite) TestGetProfileCached() {
	uc := New(&ProfileUseCaseCfg{
		Gql:         s.gql,
		WebResource: s.webResource,
		Cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxProfile,
			Cache: primitive.NewPrimitive("profile-test", 1),
		}),
	})
	s.gql.On("Transactions", anyArgs(5)...).Return(pageFor(map[domain.Address]domain.TxId{"dave": "p4"}), nil).Once()
	s.webResource.On("GetJson", mock.Anything, "p4").Return([]byte(`{"name":"Dave"}`), nil).Once()

	for i := 0; i < 3; i++ {
		p, err := uc.GetProfile(mockCtx, "dave")
		s.Require().NoError(err)
		s.Equal("Dave", p.Name)
	}
}

func (s *profileUsecaseSuite) TestGetProfiles() {
	known := map[domain.Address]domain.TxId{"alice": "p1", "bob": "p2"}
	s.gql.On("Transactions", anyArgs(5)...).Return(pageFor(known), nil).Times(3)
	s.webResource.On("GetJson", mock.Anything, "p1").Return([]byte(`{"name":"Alice"}`), nil).Once()
	s.webResource.On("GetJson", mock.Anything, "p2").Return(nil, errors.New("gateway down")).Once()

	res, err := s.uc.GetProfiles(mockCtx, []domain.Address{"alice", "bob", "alice", "zed"})
	s.Require().NoError(err)
	s.Require().Len(res, 3)

	s.Equal("Alice", res[0].Name)
	// failures degrade to an empty profile
	s.Equal(domain.Address("bob"), res[1].Address)
	s.True(res[1].IsEmpty())
	s.Equal(domain.Address("zed"), res[2].Address)
	s.True(res[2].IsEmpty())
}

func (s *profileUsecaseSuite) TestGetProfilesEmpty() {
	res, err := s.uc.GetProfiles(mockCtx, nil)
	s.Require().NoError(err)
	s.Empty(res)
}
