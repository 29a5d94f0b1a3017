package track

import (
	"strconv"
	"strings"

	"github.com/arcadia-music/goapi/base/audio"
	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/asset"
	"github.com/arcadia-music/goapi/domain/profile"
	"github.com/arcadia-music/goapi/domain/ucm"
)

// ContentTypes are the audio content types queried from the gateway
var ContentTypes = []string{
	"audio/mpeg",
	"audio/mp3",
	"audio/wav",
	"audio/x-wav",
	"audio/wave",
	"audio/ogg",
	"audio/flac",
	"audio/aac",
	"audio/mp4",
	"audio/webm",
}

type Track struct {
	Id          domain.TxId    `json:"id" bson:"id"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description" bson:"description"`
	Creator     domain.Address `json:"creator" bson:"creator"`
	CreatorName string         `json:"creatorName" bson:"creatorName"`
	Genre       string         `json:"genre" bson:"genre"`
	Topics      []string       `json:"topics" bson:"topics"`
	License     domain.TxId    `json:"license" bson:"license"`
	ContentType string         `json:"contentType" bson:"contentType"`
	Thumbnail   domain.TxId    `json:"thumbnail" bson:"thumbnail"`
	// seconds, from the Duration tag when present
	Duration       *float64    `json:"duration,omitempty" bson:"duration,omitempty"`
	DurationText   string      `json:"durationText,omitempty" bson:"durationText,omitempty"`
	Collection     domain.TxId `json:"collection,omitempty" bson:"collection,omitempty"`
	CollectionCode string      `json:"collectionCode,omitempty" bson:"collectionCode,omitempty"`
	Height         int64       `json:"height" bson:"height"`
	Timestamp      int64       `json:"timestamp" bson:"timestamp"`
	Size           int64       `json:"size" bson:"size"`
}

// FromTransaction reads a track out of transaction tags.
// It returns domain.ErrNotTrack for non audio transactions.
func FromTransaction(tx *domain.Transaction) (*Track, error) {
	if !tx.IsAudio() {
		return nil, domain.ErrNotTrack
	}
	tags := tx.Tags

	t := &Track{
		Id:             tx.Id,
		Title:          tags.Value(domain.TagTitle),
		Description:    tags.Value(domain.TagDescription),
		Creator:        domain.Address(tags.Value(domain.TagCreator)),
		CreatorName:    tags.Value(domain.TagCreatorName),
		Genre:          tags.Value(domain.TagGenre),
		Topics:         tags.GetAll(domain.TagTopicPrefix),
		License:        domain.TxId(tags.Value(domain.TagLicense)),
		ContentType:    tx.ContentType(),
		Thumbnail:      domain.TxId(tags.Value(domain.TagThumbnail)),
		Collection:     domain.TxId(tags.Value(domain.TagCollection)),
		CollectionCode: tags.Value(domain.TagCollectionCode),
		Height:         tx.Height,
		Timestamp:      tx.Timestamp,
		Size:           tx.DataSize,
	}
	if t.Creator.IsEmpty() {
		t.Creator = tx.Owner
	}
	if v, ok := tags.Get(domain.TagDuration); ok {
		if d, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && audio.ValidDuration(d) {
			t.SetDuration(d)
		}
	}
	return t, nil
}

func (t *Track) SetDuration(seconds float64) {
	t.Duration = &seconds
	t.DurationText = audio.FormatDuration(seconds)
}

// Detail is a track with its ownership and market data
type Detail struct {
	*Track
	Owners   []*asset.TrackAssetOwner `json:"owners"`
	Listings []*ucm.Listing           `json:"listings"`
	Profile  *profile.Profile         `json:"profile"`
}

// Page is a cursor page of live gateway results
type Page struct {
	Items   []*Track `json:"items"`
	Cursor  string   `json:"cursor"`
	HasNext bool     `json:"hasNext"`
}

type SearchResult struct {
	Items []*Track `json:"items"`
	Count int      `json:"count"`
}

type findAllOptions struct {
	SortBy  *string
	SortDir *domain.SortDir
	Offset  *int32
	Limit   *int32
	Creator *domain.Address
	Genre   *string
	Keyword *string
	Ids     *[]domain.TxId
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSort(sortby string, sortdir domain.SortDir) FindAllOptions {
	return func(options *findAllOptions) error {
		options.SortBy = &sortby
		options.SortDir = &sortdir
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptions {
	return func(options *findAllOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithCreator(creator domain.Address) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Creator = &creator
		return nil
	}
}

func WithGenre(genre string) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Genre = &genre
		return nil
	}
}

// WithKeyword matches title, creator name or genre, case insensitive
func WithKeyword(keyword string) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Keyword = &keyword
		return nil
	}
}

func WithIds(ids ...domain.TxId) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Ids = &ids
		return nil
	}
}

type SortOption = string

const (
	SortOptionLatest    = "latest"
	SortOptionOldest    = "oldest"
	SortOptionTitleAsc  = "title_a_to_z"
	SortOptionTitleDesc = "title_z_to_a"
)

func ParseSortOption(value SortOption) (string, domain.SortDir) {
	switch value {
	case SortOptionOldest:
		return "timestamp", domain.SortDirAsc
	case SortOptionTitleAsc:
		return "title", domain.SortDirAsc
	case SortOptionTitleDesc:
		return "title", domain.SortDirDesc
	default:
		return "timestamp", domain.SortDirDesc
	}
}

type Repo interface {
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Track, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
	FindOne(c ctx.Ctx, id domain.TxId) (*Track, error)
	Upsert(c ctx.Ctx, track *Track) error
	UpsertMany(c ctx.Ctx, tracks []*Track) error
}

type Usecase interface {
	// GetTrack reads the index first and falls back to the gateway
	GetTrack(c ctx.Ctx, id domain.TxId) (*Track, error)
	GetDetail(c ctx.Ctx, id domain.TxId) (*Detail, error)
	ListByCreator(c ctx.Ctx, creator domain.Address, cursor string, limit int) (*Page, error)
	ListLatest(c ctx.Ctx, cursor string, limit int) (*Page, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) (*SearchResult, error)
	// UpsertMany writes a page of tracks in one round trip
	UpsertMany(c ctx.Ctx, tracks []*Track) error
}
