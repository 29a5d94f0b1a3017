package domain

import (
	"strings"
	"time"
)

// well known tag names
const (
	TagContentType    = "Content-Type"
	TagTitle          = "Title"
	TagDescription    = "Description"
	TagCreator        = "Creator"
	TagCreatorName    = "Creator-Name"
	TagGenre          = "Genre"
	TagTopicPrefix    = "Topic:"
	TagLicense        = "License"
	TagThumbnail      = "Thumbnail"
	TagDuration       = "Duration"
	TagCollection     = "Collection"
	TagCollectionCode = "Collection-Code"
	TagCollectionType = "Collection-Type"
	TagDataProtocol   = "Data-Protocol"
	TagProtocolName   = "Protocol-Name"
	TagAppName        = "App-Name"
)

const (
	CollectionTypeAlbum    = "album"
	ProtocolNameAccount    = "Account-0"
	DataProtocolCollection = "Collection"
	AudioContentTypePrefix = "audio/"
)

// Transaction is the subset of an arweave transaction returned by the gateway
type Transaction struct {
	Id        TxId    `json:"id"`
	Owner     Address `json:"owner"`
	Tags      Tags    `json:"tags"`
	Height    int64   `json:"height"`
	Timestamp int64   `json:"timestamp"`
	DataSize  int64   `json:"dataSize"`
	DataType  string  `json:"dataType"`
}

// ContentType prefers the Content-Type tag over the gateway data type
func (t *Transaction) ContentType() string {
	if v, ok := t.Tags.Get(TagContentType); ok {
		return v
	}
	return t.DataType
}

func (t *Transaction) IsAudio() bool {
	return strings.HasPrefix(strings.ToLower(t.ContentType()), AudioContentTypePrefix)
}

func (t *Transaction) IsAlbum() bool {
	return strings.EqualFold(t.Tags.Value(TagCollectionType), CollectionTypeAlbum)
}

func (t *Transaction) Time() time.Time {
	if t.Timestamp == 0 {
		return time.Time{}
	}
	return time.Unix(t.Timestamp, 0).UTC()
}
