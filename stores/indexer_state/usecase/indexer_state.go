package usecase

import (
	"errors"
	"time"

	bCtx "github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
)

type indexerStateUseCase struct {
	indexerStateRepo domain.IndexerStateRepo
	ctxTimeout       time.Duration
}

func NewIndexerStateUseCase(r domain.IndexerStateRepo, ctxTimeout time.Duration) domain.IndexerStateUseCase {
	return &indexerStateUseCase{
		indexerStateRepo: r,
		ctxTimeout:       ctxTimeout,
	}
}

func (u *indexerStateUseCase) Get(c bCtx.Ctx, id *domain.IndexerStateId) (*domain.IndexerState, error) {
	ctx, cancel := bCtx.WithTimeout(c, u.ctxTimeout)
	defer cancel()
	state, err := u.indexerStateRepo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.IndexerState{Tag: id.Tag}, nil
	} else if err != nil {
		return nil, err
	}
	return state, nil
}

func (u *indexerStateUseCase) Update(c bCtx.Ctx, state *domain.IndexerState) error {
	ctx, cancel := bCtx.WithTimeout(c, u.ctxTimeout)
	defer cancel()
	state.UpdatedAt = time.Now().UTC()
	return u.indexerStateRepo.Upsert(ctx, state)
}
