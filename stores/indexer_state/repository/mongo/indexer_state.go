package mongo

import (
	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/database/mongoclient"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/service/query"
)

type indexerStateMongoRepo struct {
	m query.Mongo
}

func NewIndexerStateMongoRepo(mCon query.Mongo) domain.IndexerStateRepo {
	return &indexerStateMongoRepo{m: mCon}
}

func (r *indexerStateMongoRepo) Get(ctx bCtx.Ctx, id *domain.IndexerStateId) (*domain.IndexerState, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to make bson.M")
		return nil, err
	}

	state := &domain.IndexerState{}
	if err := r.m.FindOne(ctx, domain.TableIndexerStates, qry, state); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  qry,
		}).Error("failed to FindOne")
		return nil, err
	}
	return state, nil
}

func (r *indexerStateMongoRepo) Upsert(ctx bCtx.Ctx, state *domain.IndexerState) error {
	selector, err := mongoclient.MakeBsonM(state.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("failed to make bson.M")
		return err
	}
	if err := r.m.Upsert(ctx, domain.TableIndexerStates, selector, state); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  state.ToId(),
		}).Error("failed to upsert")
		return err
	}
	return nil
}
