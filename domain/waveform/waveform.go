package waveform

import (
	"fmt"

	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/domain"
)

type Waveform struct {
	TrackId domain.TxId `json:"trackId"`
	Peaks   []float64   `json:"peaks"`
	// seconds
	Duration     float64 `json:"duration"`
	DurationText string  `json:"durationText"`
	SampleRate   int     `json:"sampleRate"`
	// public url of the archived json, empty without an archive
	Url string `json:"url,omitempty"`
}

// ArchivePath is where a waveform json is stored
func ArchivePath(trackId domain.TxId, peaks int) string {
	return fmt.Sprintf("waveforms/%s/%d.json", trackId, peaks)
}

type Usecase interface {
	// GetWaveform uses the default peak count when peaks is 0
	GetWaveform(c ctx.Ctx, trackId domain.TxId, peaks int) (*Waveform, error)
}
