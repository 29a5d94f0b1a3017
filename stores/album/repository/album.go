package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/album"
	"github.com/arcadia-music/goapi/service/query"
)

func makeFindQuery(optFns ...album.FindAllOptions) (bson.M, error) {
	opts, err := album.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.Creator != nil {
		query["creator"] = *opts.Creator
	}

	if opts.Keyword != nil && len(*opts.Keyword) > 0 {
		kw := primitive.Regex{Pattern: regexp.QuoteMeta(*opts.Keyword), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": kw},
			bson.M{"creatorName": kw},
		}
	}

	return query, nil
}

type albumImpl struct {
	q query.Mongo
}

func NewAlbum(q query.Mongo) album.Repo {
	return &albumImpl{q}
}

func (im *albumImpl) FindAll(c ctx.Ctx, optFns ...album.FindAllOptions) ([]*album.Album, error) {
	res := []*album.Album{}

	opts, err := album.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("album.GetFindAllOptions failed")
		return res, err
	}

	offset := 0
	limit := 0
	sort := []string{"-timestamp", "id"}

	query, err := makeFindQuery(optFns...)
	if err != nil {
		return res, err
	}

	if opts.Offset != nil {
		offset = int(*opts.Offset)
	}

	if opts.Limit != nil {
		limit = int(*opts.Limit)
	}

	if opts.SortBy != nil && opts.SortDir != nil {
		sortBy := *opts.SortBy
		if *opts.SortDir == domain.SortDirDesc {
			sortBy = "-" + sortBy
		}
		sort = []string{sortBy, "id"}
	}

	if err := im.q.SearchNSorts(c, domain.TableAlbums, offset, limit, sort, query, &res); err != nil {
		c.WithField("err", err).Error("q.SearchNSorts failed")
		return res, err
	}

	return res, nil
}

func (im *albumImpl) Count(c ctx.Ctx, opts ...album.FindAllOptions) (int, error) {
	qry, err := makeFindQuery(opts...)
	if err != nil {
		return 0, err
	}

	res, err := im.q.Count(c, domain.TableAlbums, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}

	return res, nil
}

func (im *albumImpl) FindOne(c ctx.Ctx, id domain.TxId) (*album.Album, error) {
	res := &album.Album{}

	if err := im.q.FindOne(c, domain.TableAlbums, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *albumImpl) Upsert(c ctx.Ctx, a *album.Album) error {
	if err := im.q.Upsert(c, domain.TableAlbums, bson.M{"id": a.Id}, a); err != nil {
		c.WithFields(log.Fields{"id": a.Id, "err": err}).Error("q.Upsert failed")
		return err
	}
	return nil
}
