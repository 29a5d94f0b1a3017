package usecase

import (
	"errors"

	"github.com/viney-shih/goroutines"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/album"
	"github.com/arcadia-music/goapi/domain/track"
	"github.com/arcadia-music/goapi/service/gql"
)

const batchWorkers = 8

type AlbumUseCaseCfg struct {
	Repo        album.Repo
	Gql         gql.Client
	WebResource domain.WebResourceUseCase
	Track       track.Usecase
}

type impl struct {
	repo        album.Repo
	gql         gql.Client
	webResource domain.WebResourceUseCase
	track       track.Usecase
}

func New(cfg *AlbumUseCaseCfg) album.Usecase {
	return &impl{
		repo:        cfg.Repo,
		gql:         cfg.Gql,
		webResource: cfg.WebResource,
		track:       cfg.Track,
	}
}

func (im *impl) GetAlbum(c ctx.Ctx, id domain.TxId) (*album.Album, error) {
	a, err := im.repo.FindOne(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		a, err = im.fetch(c, id)
	}
	if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("get album failed")
		return nil, err
	}

	a.Tracks = im.loadTracks(c, a.TrackIds)
	return a, nil
}

// fetch reads an album missing from the index from the gateway
func (im *impl) fetch(c ctx.Ctx, id domain.TxId) (*album.Album, error) {
	tx, err := im.gql.Transaction(c, id)
	if err != nil {
		return nil, err
	}
	if !tx.IsAlbum() {
		return nil, domain.ErrNotAlbum
	}

	// only an album whose data was read is indexed, otherwise it would stay without tracks
	var data *album.Data
	dataRead := false
	raw, err := im.webResource.GetJson(c, id.String())
	switch {
	case err == nil:
		dataRead = true
		if data, err = album.ParseData(raw); err != nil {
			c.WithFields(log.Fields{"id": id, "err": err}).Warn("album.ParseData failed")
		}
	case errors.Is(err, domain.ErrInvalidJsonFormat):
		dataRead = true
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	a, err := album.FromTransaction(tx, data)
	if err != nil {
		return nil, err
	}
	if a.Height > 0 && dataRead {
		if err := im.repo.Upsert(c, a); err != nil {
			c.WithFields(log.Fields{"id": id, "err": err}).Warn("repo.Upsert failed")
		}
	}
	return a, nil
}

type loaded struct {
	idx   int
	track *track.Track
}

// loadTracks keeps the order of ids and drops the ones that are not tracks
func (im *impl) loadTracks(c ctx.Ctx, ids []domain.TxId) []*track.Track {
	res := []*track.Track{}
	if len(ids) == 0 {
		return res
	}

	b := goroutines.NewBatch(batchWorkers, goroutines.WithBatchSize(len(ids)))
	defer b.Close()

	for i := range ids {
		idx := i
		b.Queue(func() (interface{}, error) {
			t, err := im.track.GetTrack(c, ids[idx])
			if err != nil {
				if !errors.Is(err, domain.ErrNotTrack) && !errors.Is(err, domain.ErrNotFound) {
					c.WithFields(log.Fields{"trackId": ids[idx], "err": err}).Warn("track.GetTrack failed")
				}
				return loaded{idx, nil}, nil
			}
			return loaded{idx, t}, nil
		})
	}
	b.QueueComplete()

	tracks := make([]*track.Track, len(ids))
	for ret := range b.Results() {
		if ret.Error() != nil {
			continue
		}
		l := ret.Value().(loaded)
		tracks[l.idx] = l.track
	}

	for _, t := range tracks {
		if t != nil {
			res = append(res, t)
		}
	}
	return res
}

func (im *impl) ListByCreator(c ctx.Ctx, creator domain.Address) ([]*album.Album, error) {
	if creator.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	res, err := im.repo.FindAll(c,
		album.WithCreator(creator),
		album.WithSort("timestamp", domain.SortDirDesc),
	)
	if err != nil {
		c.WithFields(log.Fields{"creator": creator, "err": err}).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...album.FindAllOptions) (*album.SearchResult, error) {
	items, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	count, err := im.repo.Count(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.Count failed")
		return nil, err
	}
	return &album.SearchResult{Items: items, Count: count}, nil
}

func (im *impl) Upsert(c ctx.Ctx, a *album.Album) error {
	if a == nil || a.Id.IsEmpty() {
		return domain.ErrBadParamInput
	}
	return im.repo.Upsert(c, a)
}
