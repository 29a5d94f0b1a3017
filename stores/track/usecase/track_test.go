package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/asset"
	assetMocks "github.com/arcadia-music/goapi/domain/asset/mocks"
	"github.com/arcadia-music/goapi/domain/profile"
	profileMocks "github.com/arcadia-music/goapi/domain/profile/mocks"
	"github.com/arcadia-music/goapi/domain/track"
	trackMocks "github.com/arcadia-music/goapi/domain/track/mocks"
	"github.com/arcadia-music/goapi/domain/ucm"
	ucmMocks "github.com/arcadia-music/goapi/domain/ucm/mocks"
	"github.com/arcadia-music/goapi/service/gql"
	gqlMocks "github.com/arcadia-music/goapi/service/gql/mocks"
)

var mockCtx = bCtx.Background()

func audioTx(id domain.TxId, height int64) *domain.Transaction {
	return &domain.Transaction{
		Id:     id,
		Owner:  "artist",
		Height: height,
		Tags: domain.Tags{
			{Name: domain.TagContentType, Value: "audio/mpeg"},
			{Name: domain.TagTitle, Value: "title-" + id.String()},
		},
	}
}

func anyArgs(n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = mock.Anything
	}
	return args
}

// parsedOpts applies the query options a mocked call received
func parsedOpts(args mock.Arguments) gql.QueryOptions {
	fns := []gql.QueryOptionsFunc{}
	for _, a := range args[1:] {
		fns = append(fns, a.(gql.QueryOptionsFunc))
	}
	opt, _ := gql.ParseQueryOptions(fns...)
	return opt
}

type trackUsecaseSuite struct {
	suite.Suite
	repo    *trackMocks.Repo
	gql     *gqlMocks.Client
	asset   *assetMocks.Usecase
	ucm     *ucmMocks.Usecase
	profile *profileMocks.Usecase
	uc      track.Usecase
}

func TestTrackUsecaseSuite(t *testing.T) {
	suite.Run(t, new(trackUsecaseSuite))
}

func (s *trackUsecaseSuite) SetupTest() {
	s.repo = &trackMocks.Repo{}
	s.gql = &gqlMocks.Client{}
	s.asset = &assetMocks.Usecase{}
	s.ucm = &ucmMocks.Usecase{}
	s.profile = &profileMocks.Usecase{}
	s.uc = New(&TrackUseCaseCfg{
		Repo:    s.repo,
		Gql:     s.gql,
		Asset:   s.asset,
		Ucm:     s.ucm,
		Profile: s.profile,
	})
}

func (s *trackUsecaseSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.gql.AssertExpectations(s.T())
	s.asset.AssertExpectations(s.T())
	s.ucm.AssertExpectations(s.T())
	s.profile.AssertExpectations(s.T())
}

func (s *trackUsecaseSuite) TestGetTrackIndexed() {
	s.repo.On("FindOne", mockCtx, domain.TxId("t1")).Return(&track.Track{Id: "t1"}, nil).Once()

	t, err := s.uc.GetTrack(mockCtx, "t1")
	s.NoError(err)
	s.Equal(domain.TxId("t1"), t.Id)
}

func (s *trackUsecaseSuite) TestGetTrackFallback() {
	s.repo.On("FindOne", mockCtx, domain.TxId("t1")).Return(nil, domain.ErrNotFound).Once()
	s.gql.On("Transaction", mockCtx, domain.TxId("t1")).Return(audioTx("t1", 10), nil).Once()
	s.repo.On("Upsert", mockCtx, mock.AnythingOfType("*track.Track")).Return(nil).Once()

	t, err := s.uc.GetTrack(mockCtx, "t1")
	s.NoError(err)
	s.Equal("title-t1", t.Title)
}

func (s *trackUsecaseSuite) TestGetTrackPendingNotIndexed() {
	s.repo.On("FindOne", mockCtx, domain.TxId("t1")).Return(nil, domain.ErrNotFound).Once()
	s.gql.On("Transaction", mockCtx, domain.TxId("t1")).Return(audioTx("t1", 0), nil).Once()

	_, err := s.uc.GetTrack(mockCtx, "t1")
	s.NoError(err)
}

func (s *trackUsecaseSuite) TestGetTrackNotAudio() {
	s.repo.On("FindOne", mockCtx, domain.TxId("img")).Return(nil, domain.ErrNotFound).Once()
	s.gql.On("Transaction", mockCtx, domain.TxId("img")).Return(&domain.Transaction{Id: "img", DataType: "image/png"}, nil).Once()

	_, err := s.uc.GetTrack(mockCtx, "img")
	s.ErrorIs(err, domain.ErrNotTrack)
}

func (s *trackUsecaseSuite) TestGetDetail() {
	owners := []*asset.TrackAssetOwner{{Address: "a", Balance: 1}}
	listings := []*ucm.Listing{{Order: ucm.Order{Id: "o1"}}}
	s.repo.On("FindOne", mock.Anything, domain.TxId("t1")).Return(&track.Track{Id: "t1", Creator: "artist"}, nil).Once()
	s.profile.On("GetProfile", mock.Anything, domain.Address("artist")).Return(&profile.Profile{Address: "artist", Name: "A"}, nil).Once()
	s.asset.On("GetOwners", mock.Anything, domain.TxId("t1")).Return(owners, nil).Once()
	s.ucm.On("GetListings", mock.Anything, domain.TxId("t1")).Return(listings, nil).Once()

	d, err := s.uc.GetDetail(mockCtx, "t1")
	s.Require().NoError(err)
	s.Equal(domain.TxId("t1"), d.Id)
	s.Equal("A", d.Profile.Name)
	s.Equal(owners, d.Owners)
	s.Equal(listings, d.Listings)
}

func (s *trackUsecaseSuite) TestGetDetailDegrades() {
	s.repo.On("FindOne", mock.Anything, domain.TxId("t1")).Return(&track.Track{Id: "t1", Creator: "artist"}, nil).Once()
	s.profile.On("GetProfile", mock.Anything, domain.Address("artist")).Return(nil, errors.New("down")).Once()
	s.asset.On("GetOwners", mock.Anything, domain.TxId("t1")).Return(nil, domain.ErrNotFound).Once()
	s.ucm.On("GetListings", mock.Anything, domain.TxId("t1")).Return([]*ucm.Listing{}, nil).Once()

	d, err := s.uc.GetDetail(mockCtx, "t1")
	s.Require().NoError(err)
	s.True(d.Profile.IsEmpty())
	s.Empty(d.Owners)
}

func (s *trackUsecaseSuite) TestGetDetailUpstreamFails() {
	s.repo.On("FindOne", mock.Anything, domain.TxId("t1")).Return(&track.Track{Id: "t1", Creator: "artist"}, nil).Maybe()
	s.profile.On("GetProfile", mock.Anything, mock.Anything).Return(profile.Empty("artist"), nil).Maybe()
	s.asset.On("GetOwners", mock.Anything, domain.TxId("t1")).Return([]*asset.TrackAssetOwner{}, nil).Maybe()
	s.ucm.On("GetListings", mock.Anything, domain.TxId("t1")).Return(nil, domain.ErrUpstream).Once()

	_, err := s.uc.GetDetail(mockCtx, "t1")
	s.ErrorIs(err, domain.ErrUpstream)
}

func (s *trackUsecaseSuite) TestListByCreator() {
	page := &gql.TransactionsPage{
		Edges: []gql.Edge{
			{Cursor: "c1", Node: audioTx("t1", 3)},
			{Cursor: "c2", Node: &domain.Transaction{Id: "img", DataType: "image/png"}},
			{Cursor: "c3", Node: audioTx("t1", 3)},
			{Cursor: "c4", Node: audioTx("t2", 2)},
		},
		HasNextPage: true,
	}
	// ctx plus owners, tag, first, after and sort
	s.gql.On("Transactions", anyArgs(6)...).Run(func(args mock.Arguments) {
		opt := parsedOpts(args)
		s.Equal([]domain.Address{"artist"}, opt.Owners)
		s.Equal(5, opt.First)
		s.Equal("prev", opt.After)
		s.Equal(domain.TagContentType, opt.Tags[0].Name)
	}).Return(page, nil).Once()

	res, err := s.uc.ListByCreator(mockCtx, "artist", "prev", 5)
	s.Require().NoError(err)
	s.Require().Len(res.Items, 2)
	s.Equal(domain.TxId("t1"), res.Items[0].Id)
	s.Equal(domain.TxId("t2"), res.Items[1].Id)
	s.Equal("c4", res.Cursor)
	s.True(res.HasNext)
}

func (s *trackUsecaseSuite) TestListLatestLimits() {
	_, err := s.uc.ListLatest(mockCtx, "", gql.MaxPageSize+1)
	s.ErrorIs(err, domain.ErrBadParamInput)

	s.gql.On("Transactions", anyArgs(5)...).Run(func(args mock.Arguments) {
		s.Equal(DefaultLimit, parsedOpts(args).First)
	}).Return(&gql.TransactionsPage{}, nil).Once()

	res, err := s.uc.ListLatest(mockCtx, "", 0)
	s.Require().NoError(err)
	s.Empty(res.Items)
	s.False(res.HasNext)
}

func (s *trackUsecaseSuite) TestFindAll() {
	s.repo.On("FindAll", anyArgs(2)...).Return([]*track.Track{{Id: "t1"}}, nil).Once()
	s.repo.On("Count", anyArgs(2)...).Return(7, nil).Once()

	res, err := s.uc.FindAll(mockCtx, track.WithGenre("lofi"))
	s.Require().NoError(err)
	s.Len(res.Items, 1)
	s.Equal(7, res.Count)
}

func (s *trackUsecaseSuite) TestUpsertMany() {
	tracks := []*track.Track{{Id: "t1"}, {Id: "t2"}}
	s.repo.On("UpsertMany", mockCtx, tracks).Return(nil).Once()

	s.NoError(s.uc.UpsertMany(mockCtx, tracks))
	s.NoError(s.uc.UpsertMany(mockCtx, nil))
}

func (s *trackUsecaseSuite) TestUpsertManyInvalid() {
	s.ErrorIs(s.uc.UpsertMany(mockCtx, []*track.Track{{Id: "t1"}, {}}), domain.ErrBadParamInput)
	s.repo.AssertNotCalled(s.T(), "UpsertMany", mock.Anything, mock.Anything)
}
