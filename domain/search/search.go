package search

import (
	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain/album"
	"github.com/arcadia-music/goapi/domain/track"
)

type Result struct {
	Tracks []*track.Track `json:"tracks,omitempty"`
	Albums []*album.Album `json:"albums,omitempty"`
}

const (
	Track = "track"
	Album = "album"
)

const (
	DefaultLimit = 10
	MaxLimit     = 50
)

type Usecase interface {
	// Search looks up indexed tracks and albums, at most limit of each.
	// An empty filter searches every kind.
	Search(c ctx.Ctx, keyword string, filter []string, limit int) (*Result, error)
	SearchTracks(c ctx.Ctx, keyword string, limit int) (*Result, error)
	SearchAlbums(c ctx.Ctx, keyword string, limit int) (*Result, error)
}
