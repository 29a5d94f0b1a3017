package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/track"
	"github.com/arcadia-music/goapi/service/query"
)

func insensitive(pattern string) primitive.Regex {
	return primitive.Regex{Pattern: pattern, Options: "i"}
}

func makeFindQuery(optFns ...track.FindAllOptions) (bson.M, error) {
	opts, err := track.GetFindAllOptions(optFns...)
	if err != nil {
		return nil, err
	}

	query := bson.M{}

	if opts.Creator != nil {
		query["creator"] = *opts.Creator
	}

	if opts.Genre != nil {
		query["genre"] = insensitive("^" + regexp.QuoteMeta(*opts.Genre) + "$")
	}

	if opts.Ids != nil {
		query["id"] = bson.M{"$in": *opts.Ids}
	}

	if opts.Keyword != nil && len(*opts.Keyword) > 0 {
		kw := insensitive(regexp.QuoteMeta(*opts.Keyword))
		query["$or"] = bson.A{
			bson.M{"title": kw},
			bson.M{"creatorName": kw},
			bson.M{"genre": kw},
		}
	}

	return query, nil
}

type trackImpl struct {
	q query.Mongo
}

func NewTrack(q query.Mongo) track.Repo {
	return &trackImpl{q}
}

func (im *trackImpl) FindAll(c ctx.Ctx, optFns ...track.FindAllOptions) ([]*track.Track, error) {
	res := []*track.Track{}

	opts, err := track.GetFindAllOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("track.GetFindAllOptions failed")
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
		// id keeps pages stable on ties
		sort = []string{sortBy, "id"}
	}

	if err := im.q.SearchNSorts(c, domain.TableTracks, offset, limit, sort, query, &res); err != nil {
		c.WithField("err", err).Error("q.SearchNSorts failed")
		return res, err
	}

	return res, nil
}

func (im *trackImpl) Count(c ctx.Ctx, opts ...track.FindAllOptions) (int, error) {
	qry, err := makeFindQuery(opts...)
	if err != nil {
		return 0, err
	}

	res, err := im.q.Count(c, domain.TableTracks, qry)
	if err != nil {
		c.WithField("err", err).Error("q.Count failed")
		return 0, err
	}

	return res, nil
}

func (im *trackImpl) FindOne(c ctx.Ctx, id domain.TxId) (*track.Track, error) {
	res := &track.Track{}

	if err := im.q.FindOne(c, domain.TableTracks, bson.M{"id": id}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"id": id, "err": err}).Error("q.FindOne failed")
		return nil, err
	}

	return res, nil
}

func (im *trackImpl) Upsert(c ctx.Ctx, t *track.Track) error {
	if err := im.q.Upsert(c, domain.TableTracks, bson.M{"id": t.Id}, t); err != nil {
		c.WithFields(log.Fields{"id": t.Id, "err": err}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *trackImpl) UpsertMany(c ctx.Ctx, tracks []*track.Track) error {
	ops := make([]query.UpsertOp, 0, len(tracks))
	for _, t := range tracks {
		ops = append(ops, query.UpsertOp{Selector: bson.M{"id": t.Id}, Updater: t})
	}
	matched, upserted, err := im.q.BulkUpsert(c, domain.TableTracks, ops)
	if err != nil {
		c.WithFields(log.Fields{"#tracks": len(tracks), "err": err}).Error("q.BulkUpsert failed")
		return err
	}
	c.WithFields(log.Fields{"matched": matched, "upserted": upserted}).Debug("tracks upserted")
	return nil
}
