package indexer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/album"
	albumMocks "github.com/arcadia-music/goapi/domain/album/mocks"
	domainMocks "github.com/arcadia-music/goapi/domain/mocks"
	"github.com/arcadia-music/goapi/domain/track"
	trackMocks "github.com/arcadia-music/goapi/domain/track/mocks"
	"github.com/arcadia-music/goapi/domain/waveform"
	waveformMocks "github.com/arcadia-music/goapi/domain/waveform/mocks"
	"github.com/arcadia-music/goapi/service/gql"
	gqlMocks "github.com/arcadia-music/goapi/service/gql/mocks"
	"github.com/arcadia-music/goapi/service/redis"
	redisMocks "github.com/arcadia-music/goapi/service/redis/mocks"
)

var (
	mockCtx   = ctx.Background()
	mockOwner = domain.Address("owner-aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
)

type trackIndexerSuite struct {
	suite.Suite

	gql          *gqlMocks.Client
	webResource  *domainMocks.WebResourceUseCase
	track        *trackMocks.Usecase
	album        *albumMocks.Usecase
	indexerState *domainMocks.IndexerStateUseCase
	waveform     *waveformMocks.Usecase
	redis        *redisMocks.Service

	im *TrackIndexer
}

func TestTrackIndexerSuite(t *testing.T) {
	suite.Run(t, new(trackIndexerSuite))
}

func (s *trackIndexerSuite) SetupTest() {
	s.gql = gqlMocks.NewClient(s.T())
	s.webResource = domainMocks.NewWebResourceUseCase(s.T())
	s.track = trackMocks.NewUsecase(s.T())
	s.album = albumMocks.NewUsecase(s.T())
	s.indexerState = domainMocks.NewIndexerStateUseCase(s.T())
	s.waveform = waveformMocks.NewUsecase(s.T())
	s.redis = &redisMocks.Service{}

	s.im = NewTrackIndexer(&TrackIndexerCfg{
		Gql:          s.gql,
		WebResource:  s.webResource,
		Track:        s.track,
		Album:        s.album,
		IndexerState: s.indexerState,
		Waveform:     s.waveform,
		Redis:        s.redis,
		PageSize:     10,
		MaxPages:     2,
		RetryLimit:   2,
	})
}

func (s *trackIndexerSuite) TearDownTest() {
	s.redis.AssertExpectations(s.T())
}

func audioTx(id string, height int64) *domain.Transaction {
	return &domain.Transaction{
		Id:     domain.TxId(id),
		Owner:  mockOwner,
		Height: height,
		Tags: domain.Tags{
			{Name: domain.TagContentType, Value: "audio/mpeg"},
			{Name: domain.TagTitle, Value: "song " + id},
		},
	}
}

func albumTx(id string, height int64) *domain.Transaction {
	return &domain.Transaction{
		Id:     domain.TxId(id),
		Owner:  mockOwner,
		Height: height,
		Tags: domain.Tags{
			{Name: domain.TagCollectionType, Value: domain.CollectionTypeAlbum},
			{Name: domain.TagTitle, Value: "album " + id},
		},
	}
}

func page(txs ...*domain.Transaction) *gql.TransactionsPage {
	p := &gql.TransactionsPage{}
	for _, tx := range txs {
		p.Edges = append(p.Edges, gql.Edge{Cursor: "c-" + tx.Id.String(), Node: tx})
	}
	return p
}

func stateTag(kind string) interface{} {
	return mock.MatchedBy(func(id *domain.IndexerStateId) bool {
		return id.Tag == domain.DefaultTag+":"+kind
	})
}

// onTransactions answers track and album queries with their own pages
func (s *trackIndexerSuite) onTransactions(tracks, albums *gql.TransactionsPage) {
	s.gql.On("Transactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(func(_ ctx.Ctx, opts ...gql.QueryOptionsFunc) *gql.TransactionsPage {
			opt, err := gql.ParseQueryOptions(opts...)
			s.Require().NoError(err)
			s.Equal(gql.SortHeightAsc, opt.Sort)
			s.True(opt.NoCache)
			if opt.Tags[0].Name == domain.TagCollectionType {
				return albums
			}
			return tracks
		}, nil)
}

// lock grants the run lock and expects it released with the same run id
func (s *trackIndexerSuite) lock(released bool) {
	var runId []byte
	s.redis.On("SetNX", mock.Anything, "indexerLock:default", mock.Anything, defaultLockTtl).
		Run(func(args mock.Arguments) { runId = args.Get(2).([]byte) }).
		Return(nil).Once()
	s.redis.On("DelIfEqual", mock.Anything, "indexerLock:default", mock.MatchedBy(func(v []byte) bool {
		return len(v) > 0 && bytes.Equal(v, runId)
	})).Return(released, nil).Once()
}

func (s *trackIndexerSuite) TestRunOnce() {
	s.lock(true)
	s.onTransactions(
		page(audioTx("t1", 100), audioTx("t2", 101), audioTx("t3", 0)),
		page(albumTx("a1", 102)),
	)

	s.indexerState.On("Get", mock.Anything, stateTag(kindTrack)).
		Return(&domain.IndexerState{Tag: "default:track"}, nil).Once()
	s.indexerState.On("Get", mock.Anything, stateTag(kindAlbum)).
		Return(&domain.IndexerState{Tag: "default:album"}, nil).Once()

	s.track.On("UpsertMany", mock.Anything, mock.MatchedBy(func(ts []*track.Track) bool {
		return len(ts) == 2 && ts[0].Id == "t1" && ts[1].Id == "t2"
	})).Return(nil).Once()

	s.webResource.On("GetJson", mock.Anything, "a1").Return([]byte(`{"items":["t1","t2","t1"]}`), nil).Once()
	s.album.On("Upsert", mock.Anything, mock.MatchedBy(func(a *album.Album) bool {
		return a.Id == "a1" && len(a.TrackIds) == 2
	})).Return(nil).Once()

	// the pending t3 is left for the next run
	s.indexerState.On("Update", mock.Anything, &domain.IndexerState{Tag: "default:track", Cursor: "c-t2", LastHeight: 101}).
		Return(nil).Once()
	s.indexerState.On("Update", mock.Anything, &domain.IndexerState{Tag: "default:album", Cursor: "c-a1", LastHeight: 102}).
		Return(nil).Once()

	n, err := s.im.RunOnce(mockCtx)
	s.Require().NoError(err)
	s.Equal(3, n)

	s.Require().Len(s.im.taskCh, 2)
	s.Equal(domain.TxId("t1"), <-s.im.taskCh)
	s.Equal(domain.TxId("t2"), <-s.im.taskCh)
}

func (s *trackIndexerSuite) TestRunOnceNothingNew() {
	s.lock(true)
	s.onTransactions(page(), page(audioTx("t9", 0)))

	s.indexerState.On("Get", mock.Anything, mock.Anything).Return(&domain.IndexerState{}, nil).Twice()

	n, err := s.im.RunOnce(mockCtx)
	s.Require().NoError(err)
	s.Equal(0, n)
	s.Len(s.im.taskCh, 0)
}

func (s *trackIndexerSuite) TestRunOnceLocked() {
	s.redis.On("SetNX", mock.Anything, "indexerLock:default", mock.Anything, defaultLockTtl).Return(redis.ErrNotSet).Once()

	n, err := s.im.RunOnce(mockCtx)
	s.ErrorIs(err, redis.ErrNotSet)
	s.Equal(0, n)
}

func (s *trackIndexerSuite) TestRunOnceUpsertFailed() {
	s.lock(true)
	s.onTransactions(page(audioTx("t1", 100)), nil)
	s.indexerState.On("Get", mock.Anything, stateTag(kindTrack)).Return(&domain.IndexerState{Tag: "default:track"}, nil).Once()

	upsertErr := errors.New("mongo down")
	s.track.On("UpsertMany", mock.Anything, mock.Anything).Return(upsertErr).Once()

	_, err := s.im.RunOnce(mockCtx)
	s.ErrorIs(err, upsertErr)
	s.indexerState.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *trackIndexerSuite) TestRunOnceAlbumDataUnavailable() {
	s.lock(true)
	s.onTransactions(page(), page(albumTx("a1", 102)))
	s.indexerState.On("Get", mock.Anything, stateTag(kindTrack)).Return(&domain.IndexerState{Tag: "default:track"}, nil).Once()
	s.indexerState.On("Get", mock.Anything, stateTag(kindAlbum)).Return(&domain.IndexerState{Tag: "default:album"}, nil).Once()
	s.webResource.On("GetJson", mock.Anything, "a1").Return(nil, domain.ErrUpstream).Once()

	n, err := s.im.RunOnce(mockCtx)
	s.ErrorIs(err, domain.ErrUpstream)
	s.Equal(0, n)
	// nothing stored and the album cursor stays, so a1 is read again next run
	s.album.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
	s.indexerState.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *trackIndexerSuite) TestRunOnceAlbumDataMalformed() {
	s.lock(true)
	s.onTransactions(page(), page(albumTx("a1", 102)))
	s.indexerState.On("Get", mock.Anything, stateTag(kindTrack)).Return(&domain.IndexerState{Tag: "default:track"}, nil).Once()
	s.indexerState.On("Get", mock.Anything, stateTag(kindAlbum)).Return(&domain.IndexerState{Tag: "default:album"}, nil).Once()
	s.webResource.On("GetJson", mock.Anything, "a1").Return(nil, domain.ErrInvalidJsonFormat).Once()
	s.album.On("Upsert", mock.Anything, mock.MatchedBy(func(a *album.Album) bool {
		return a.Id == "a1" && len(a.TrackIds) == 0
	})).Return(nil).Once()
	s.indexerState.On("Update", mock.Anything, &domain.IndexerState{Tag: "default:album", Cursor: "c-a1", LastHeight: 102}).
		Return(nil).Once()

	n, err := s.im.RunOnce(mockCtx)
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *trackIndexerSuite) TestRunOnceLockExpired() {
	s.lock(false)
	s.onTransactions(page(), page())
	s.indexerState.On("Get", mock.Anything, mock.Anything).Return(&domain.IndexerState{}, nil).Twice()

	n, err := s.im.RunOnce(mockCtx)
	s.Require().NoError(err)
	s.Equal(0, n)
	// the lock now belongs to another run and is left alone
	s.redis.AssertNotCalled(s.T(), "Del", mock.Anything, mock.Anything)
}

func (s *trackIndexerSuite) TestPrecomputeRetries() {
	s.waveform.On("GetWaveform", mock.Anything, domain.TxId("t1"), 0).Return(nil, domain.ErrUpstream).Once()
	s.waveform.On("GetWaveform", mock.Anything, domain.TxId("t1"), 0).Return(&waveform.Waveform{}, nil).Once()

	s.im.precompute(mockCtx, "t1")
}

func (s *trackIndexerSuite) TestPrecomputeGivesUp() {
	s.waveform.On("GetWaveform", mock.Anything, domain.TxId("t1"), 0).Return(nil, domain.ErrUpstream).Times(3)

	s.im.precompute(mockCtx, "t1")
}

func (s *trackIndexerSuite) TestPrecomputeUnsupported() {
	s.waveform.On("GetWaveform", mock.Anything, domain.TxId("t1"), 0).Return(nil, domain.ErrUnsupportedAudio).Once()

	s.im.precompute(mockCtx, "t1")
}

func (s *trackIndexerSuite) TestPrecomputeTooLarge() {
	s.waveform.On("GetWaveform", mock.Anything, domain.TxId("t1"), 0).Return(nil, domain.ErrTooLarge).Once()

	s.im.precompute(mockCtx, "t1")
}

func (s *trackIndexerSuite) TestPrecomputeRecoversPanic() {
	s.waveform.On("GetWaveform", mock.Anything, domain.TxId("t1"), 0).Run(func(mock.Arguments) {
		panic("decoder bug")
	}).Once()
	s.waveform.On("GetWaveform", mock.Anything, domain.TxId("t1"), 0).Return(&waveform.Waveform{}, nil).Once()

	s.im.precompute(mockCtx, "t1")
}

func (s *trackIndexerSuite) TestAnnounce() {
	im := NewTrackIndexer(&TrackIndexerCfg{ViewerUrl: "https://arcadia.music/track/"})
	msg := im.announce(&track.Track{Id: "t1", Title: "Song", Creator: mockOwner, Genre: "lofi", Thumbnail: "th"})

	s.Equal("New track: Song", msg.Title)
	s.Equal("https://arcadia.music/track/t1", msg.Url)
	s.Equal("https://arweave.net/th", msg.ImageUrl)
	s.Equal(mockOwner.String(), msg.Fields[0].Value)
}

func TestPairs(t *testing.T) {
	fields := pairs([]interface{}{"entry", 1, "next", "x", "dangling"})
	require.Len(t, fields, 2)
	require.Equal(t, 1, fields["entry"])
	require.Equal(t, "x", fields["next"])
}
