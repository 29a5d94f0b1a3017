package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/album"
	albumMocks "github.com/arcadia-music/goapi/domain/album/mocks"
	"github.com/arcadia-music/goapi/domain/search"
	"github.com/arcadia-music/goapi/domain/track"
	trackMocks "github.com/arcadia-music/goapi/domain/track/mocks"
)

var mockCtx = bCtx.Background()

type searchUsecaseSuite struct {
	suite.Suite
	track *trackMocks.Usecase
	album *albumMocks.Usecase
	uc    search.Usecase
}

func TestSearchUsecaseSuite(t *testing.T) {
	suite.Run(t, new(searchUsecaseSuite))
}

func (s *searchUsecaseSuite) SetupTest() {
	s.track = trackMocks.NewUsecase(s.T())
	s.album = albumMocks.NewUsecase(s.T())
	s.uc = New(&SearchUseCaseCfg{Track: s.track, Album: s.album})
}

func (s *searchUsecaseSuite) expectTracks(keyword string, limit int32, items []*track.Track) {
	s.track.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		fns := []track.FindAllOptions{}
		for _, a := range args[1:] {
			fns = append(fns, a.(track.FindAllOptions))
		}
		opts, err := track.GetFindAllOptions(fns...)
		s.Require().NoError(err)
		s.Equal(keyword, *opts.Keyword)
		s.Equal(limit, *opts.Limit)
		s.Equal(int32(0), *opts.Offset)
	}).Return(&track.SearchResult{Items: items, Count: len(items)}, nil).Once()
}

func (s *searchUsecaseSuite) expectAlbums(keyword string, limit int32, items []*album.Album) {
	s.album.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		fns := []album.FindAllOptions{}
		for _, a := range args[1:] {
			fns = append(fns, a.(album.FindAllOptions))
		}
		opts, err := album.GetFindAllOptions(fns...)
		s.Require().NoError(err)
		s.Equal(keyword, *opts.Keyword)
		s.Equal(limit, *opts.Limit)
	}).Return(&album.SearchResult{Items: items, Count: len(items)}, nil).Once()
}

func (s *searchUsecaseSuite) TestSearchAll() {
	s.expectTracks("night", search.DefaultLimit, []*track.Track{{Id: "t1"}})
	s.expectAlbums("night", search.DefaultLimit, []*album.Album{{Id: "a1"}})

	res, err := s.uc.Search(mockCtx, " night ", nil, 0)
	s.Require().NoError(err)
	s.Equal(domain.TxId("t1"), res.Tracks[0].Id)
	s.Equal(domain.TxId("a1"), res.Albums[0].Id)
}

func (s *searchUsecaseSuite) TestSearchFiltered() {
	s.expectAlbums("night", 5, []*album.Album{{Id: "a1"}})

	res, err := s.uc.Search(mockCtx, "night", []string{search.Album, "playlist"}, 5)
	s.Require().NoError(err)
	s.Nil(res.Tracks)
	s.Len(res.Albums, 1)
}

func (s *searchUsecaseSuite) TestSearchCapsLimit() {
	s.expectTracks("x", search.MaxLimit, []*track.Track{})

	_, err := s.uc.SearchTracks(mockCtx, "x", 1000)
	s.Require().NoError(err)
}

func (s *searchUsecaseSuite) TestSearchEmptyKeyword() {
	res, err := s.uc.Search(mockCtx, "  ", nil, 0)
	s.Require().NoError(err)
	s.Empty(res.Tracks)
	s.Empty(res.Albums)
}

func (s *searchUsecaseSuite) TestSearchNegativeLimit() {
	_, err := s.uc.Search(mockCtx, "x", nil, -1)
	s.ErrorIs(err, domain.ErrBadParamInput)
}
