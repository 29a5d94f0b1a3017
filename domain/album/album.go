package album

import (
	"encoding/json"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/slice"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/track"
)

type Album struct {
	Id          domain.TxId    `json:"id" bson:"id"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description" bson:"description"`
	Creator     domain.Address `json:"creator" bson:"creator"`
	CreatorName string         `json:"creatorName" bson:"creatorName"`
	Thumbnail   domain.TxId    `json:"thumbnail" bson:"thumbnail"`
	TrackIds    []domain.TxId  `json:"trackIds" bson:"trackIds"`
	// loaded on read, never stored
	Tracks    []*track.Track `json:"tracks,omitempty" bson:"-"`
	Height    int64          `json:"height" bson:"height"`
	Timestamp int64          `json:"timestamp" bson:"timestamp"`
}

// Data is the json body of an album transaction
type Data struct {
	Items []domain.TxId `json:"items"`
}

func ParseData(data []byte) (*Data, error) {
	d := &Data{}
	if err := json.Unmarshal(data, d); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	return d, nil
}

// FromTransaction returns domain.ErrNotAlbum unless tx is tagged Collection-Type: album.
// Track ids are de-duplicated keeping their first position.
func FromTransaction(tx *domain.Transaction, data *Data) (*Album, error) {
	if !tx.IsAlbum() {
		return nil, domain.ErrNotAlbum
	}
	a := &Album{
		Id:          tx.Id,
		Title:       tx.Tags.Value(domain.TagTitle),
		Description: tx.Tags.Value(domain.TagDescription),
		Creator:     domain.Address(tx.Tags.Value(domain.TagCreator)),
		CreatorName: tx.Tags.Value(domain.TagCreatorName),
		Thumbnail:   domain.TxId(tx.Tags.Value(domain.TagThumbnail)),
		TrackIds:    []domain.TxId{},
		Height:      tx.Height,
		Timestamp:   tx.Timestamp,
	}
	if a.Creator.IsEmpty() {
		a.Creator = tx.Owner
	}
	if data != nil {
		ids := make([]domain.TxId, 0, len(data.Items))
		for _, id := range data.Items {
			if !id.IsEmpty() {
				ids = append(ids, id)
			}
		}
		a.TrackIds = slice.DedupeStrings(ids)
	}
	return a, nil
}

type SearchResult struct {
	Items []*Album `json:"items"`
	Count int      `json:"count"`
}

type findAllOptions struct {
	SortBy  *string
	SortDir *domain.SortDir
	Offset  *int32
	Limit   *int32
	Creator *domain.Address
	Keyword *string
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

func WithKeyword(keyword string) FindAllOptions {
	return func(options *findAllOptions) error {
		options.Keyword = &keyword
		return nil
	}
}

type Repo interface {
	FindAll(c ctx.Ctx, opts ...FindAllOptions) ([]*Album, error)
	Count(c ctx.Ctx, opts ...FindAllOptions) (int, error)
	FindOne(c ctx.Ctx, id domain.TxId) (*Album, error)
	Upsert(c ctx.Ctx, album *Album) error
}

type Usecase interface {
	// GetAlbum loads the album with its tracks. Ids that are not tracks are dropped.
	GetAlbum(c ctx.Ctx, id domain.TxId) (*Album, error)
	ListByCreator(c ctx.Ctx, creator domain.Address) ([]*Album, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptions) (*SearchResult, error)
	Upsert(c ctx.Ctx, album *Album) error
}
