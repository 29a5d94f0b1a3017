package domain

import (
	"time"

	"github.com/arcadia-music/goapi/base/ctx"
)

const DefaultTag = "default"

// IndexerState is the resume point of an indexer, keyed by tag
type IndexerState struct {
	Tag        string    `bson:"tag" json:"tag"`
	Cursor     string    `bson:"cursor" json:"cursor"`
	LastHeight int64     `bson:"lastHeight" json:"lastHeight"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

type IndexerStateId struct {
	Tag string `bson:"tag"`
}

func (s *IndexerState) ToId() *IndexerStateId {
	return &IndexerStateId{Tag: s.Tag}
}

type IndexerStateRepo interface {
	Get(ctx.Ctx, *IndexerStateId) (*IndexerState, error)
	Upsert(ctx.Ctx, *IndexerState) error
}

type IndexerStateUseCase interface {
	// Get returns a zero state carrying the tag when nothing was stored yet
	Get(ctx.Ctx, *IndexerStateId) (*IndexerState, error)
	Update(ctx.Ctx, *IndexerState) error
}
