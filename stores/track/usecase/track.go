package usecase

import (
	"errors"

	"golang.org/x/sync/errgroup"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/base/slice"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/asset"
	"github.com/arcadia-music/goapi/domain/profile"
	"github.com/arcadia-music/goapi/domain/track"
	"github.com/arcadia-music/goapi/domain/ucm"
	"github.com/arcadia-music/goapi/service/gql"
)

const DefaultLimit = 20

type TrackUseCaseCfg struct {
	Repo    track.Repo
	Gql     gql.Client
	Asset   asset.Usecase
	Ucm     ucm.Usecase
	Profile profile.Usecase
}

type impl struct {
	repo    track.Repo
	gql     gql.Client
	asset   asset.Usecase
	ucm     ucm.Usecase
	profile profile.Usecase
}

func New(cfg *TrackUseCaseCfg) track.Usecase {
	return &impl{
		repo:    cfg.Repo,
		gql:     cfg.Gql,
		asset:   cfg.Asset,
		ucm:     cfg.Ucm,
		profile: cfg.Profile,
	}
}

func (im *impl) GetTrack(c bCtx.Ctx, id domain.TxId) (*track.Track, error) {
	t, err := im.repo.FindOne(c, id)
	if err == nil {
		return t, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("repo.FindOne failed")
		return nil, err
	}

	tx, err := im.gql.Transaction(c, id)
	if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("gql.Transaction failed")
		return nil, err
	}
	t, err = track.FromTransaction(tx)
	if err != nil {
		return nil, err
	}

	// pending transactions are not indexed yet, the indexer picks them up once mined
	if t.Height > 0 {
		if err := im.repo.Upsert(c, t); err != nil {
			c.WithFields(log.Fields{"id": id, "err": err}).Warn("repo.Upsert failed")
		}
	}
	return t, nil
}

func (im *impl) GetDetail(c bCtx.Ctx, id domain.TxId) (*track.Detail, error) {
	detail := &track.Detail{
		Owners:   []*asset.TrackAssetOwner{},
		Listings: []*ucm.Listing{},
	}

	g, gctx := errgroup.WithContext(c)
	ctx := bCtx.Ctx{Context: gctx, Logger: c.Logger}

	g.Go(func() error {
		t, err := im.GetTrack(ctx, id)
		if err != nil {
			return err
		}
		detail.Track = t
		p, err := im.profile.GetProfile(ctx, t.Creator)
		if err != nil {
			ctx.WithFields(log.Fields{"creator": t.Creator, "err": err}).Warn("profile.GetProfile failed")
			p = profile.Empty(t.Creator)
		}
		detail.Profile = p
		return nil
	})

	g.Go(func() error {
		owners, err := im.asset.GetOwners(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		} else if err != nil {
			ctx.WithFields(log.Fields{"id": id, "err": err}).Error("asset.GetOwners failed")
			return err
		}
		detail.Owners = owners
		return nil
	})

	g.Go(func() error {
		listings, err := im.ucm.GetListings(ctx, id)
		if err != nil {
			ctx.WithFields(log.Fields{"id": id, "err": err}).Error("ucm.GetListings failed")
			return err
		}
		detail.Listings = listings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

func (im *impl) ListByCreator(c bCtx.Ctx, creator domain.Address, cursor string, limit int) (*track.Page, error) {
	if creator.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	return im.list(c, cursor, limit, gql.WithOwners(creator))
}

func (im *impl) ListLatest(c bCtx.Ctx, cursor string, limit int) (*track.Page, error) {
	return im.list(c, cursor, limit)
}

func (im *impl) list(c bCtx.Ctx, cursor string, limit int, opts ...gql.QueryOptionsFunc) (*track.Page, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 0 || limit > gql.MaxPageSize {
		return nil, domain.ErrBadParamInput
	}

	opts = append(opts,
		gql.WithTag(domain.TagContentType, track.ContentTypes...),
		gql.WithFirst(limit),
		gql.WithAfter(cursor),
		gql.WithSort(gql.SortHeightDesc),
	)
	page, err := im.gql.Transactions(c, opts...)
	if err != nil {
		c.WithFields(log.Fields{"cursor": cursor, "err": err}).Error("gql.Transactions failed")
		return nil, err
	}

	items := make([]*track.Track, 0, len(page.Edges))
	for _, tx := range page.Transactions() {
		t, err := track.FromTransaction(tx)
		if err != nil {
			continue
		}
		items = append(items, t)
	}

	return &track.Page{
		Items:   slice.Dedupe(items, func(t *track.Track) domain.TxId { return t.Id }),
		Cursor:  page.EndCursor(),
		HasNext: page.HasNextPage,
	}, nil
}

func (im *impl) FindAll(c bCtx.Ctx, opts ...track.FindAllOptions) (*track.SearchResult, error) {
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
	return &track.SearchResult{Items: items, Count: count}, nil
}

func (im *impl) UpsertMany(c bCtx.Ctx, tracks []*track.Track) error {
	if len(tracks) == 0 {
		return nil
	}
	for _, t := range tracks {
		if t == nil || t.Id.IsEmpty() {
			return domain.ErrBadParamInput
		}
	}
	return im.repo.UpsertMany(c, tracks)
}
