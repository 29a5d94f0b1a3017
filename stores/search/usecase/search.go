package usecase

import (
	"strings"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/album"
	"github.com/arcadia-music/goapi/domain/search"
	"github.com/arcadia-music/goapi/domain/track"
)

type SearchUseCaseCfg struct {
	Track track.Usecase
	Album album.Usecase
}

type impl struct {
	track track.Usecase
	album album.Usecase
}

func New(cfg *SearchUseCaseCfg) search.Usecase {
	return &impl{track: cfg.Track, album: cfg.Album}
}

func capped(limit int) (int32, error) {
	if limit < 0 {
		return 0, domain.ErrBadParamInput
	}
	if limit == 0 {
		return search.DefaultLimit, nil
	}
	if limit > search.MaxLimit {
		return search.MaxLimit, nil
	}
	return int32(limit), nil
}

func (im *impl) Search(c ctx.Ctx, keyword string, filter []string, limit int) (*search.Result, error) {
	res := &search.Result{}
	for _, target := range filter {
		switch target {
		case search.Track:
			if tRes, err := im.SearchTracks(c, keyword, limit); err != nil {
				c.WithField("err", err).Error("SearchTracks failed")
				return nil, err
			} else {
				res.Tracks = tRes.Tracks
			}
		case search.Album:
			if aRes, err := im.SearchAlbums(c, keyword, limit); err != nil {
				c.WithField("err", err).Error("SearchAlbums failed")
				return nil, err
			} else {
				res.Albums = aRes.Albums
			}
		default:
			continue
		}
	}
	if len(filter) == 0 {
		if tRes, err := im.SearchTracks(c, keyword, limit); err != nil {
			c.WithField("err", err).Error("SearchTracks failed")
			return nil, err
		} else {
			res.Tracks = tRes.Tracks
		}
		if aRes, err := im.SearchAlbums(c, keyword, limit); err != nil {
			c.WithField("err", err).Error("SearchAlbums failed")
			return nil, err
		} else {
			res.Albums = aRes.Albums
		}
	}
	return res, nil
}

func (im *impl) SearchTracks(c ctx.Ctx, keyword string, limit int) (*search.Result, error) {
	n, err := capped(limit)
	if err != nil {
		return nil, err
	}
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return &search.Result{Tracks: []*track.Track{}}, nil
	}

	res, err := im.track.FindAll(c,
		track.WithKeyword(keyword),
		track.WithPagination(0, n),
		track.WithSort("timestamp", domain.SortDirDesc),
	)
	if err != nil {
		c.WithField("err", err).Error("track.FindAll failed")
		return nil, err
	}
	return &search.Result{Tracks: res.Items}, nil
}

func (im *impl) SearchAlbums(c ctx.Ctx, keyword string, limit int) (*search.Result, error) {
	n, err := capped(limit)
	if err != nil {
		return nil, err
	}
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return &search.Result{Albums: []*album.Album{}}, nil
	}

	res, err := im.album.FindAll(c,
		album.WithKeyword(keyword),
		album.WithPagination(0, n),
		album.WithSort("timestamp", domain.SortDirDesc),
	)
	if err != nil {
		c.WithField("err", err).Error("album.FindAll failed")
		return nil, err
	}
	return &search.Result{Albums: res.Items}, nil
}
