package usecase

import (
	"encoding/json"
	"errors"
	"strconv"

	"golang.org/x/xerrors"

	"github.com/arcadia-music/goapi/base/audio"
	"github.com/arcadia-music/goapi/base/ctx"
	"github.com/arcadia-music/goapi/base/log"
	"github.com/arcadia-music/goapi/base/metrics"
	"github.com/arcadia-music/goapi/domain"
	"github.com/arcadia-music/goapi/domain/keys"
	"github.com/arcadia-music/goapi/domain/track"
	"github.com/arcadia-music/goapi/domain/waveform"
	"github.com/arcadia-music/goapi/service/cache"
)

const (
	DefaultPeaks = 200
	MaxPeaks     = 2000
	// DefaultMaxBytes bounds the audio decoded in memory for one waveform
	DefaultMaxBytes = int64(32 << 20)
)

type WaveformUseCaseCfg struct {
	WebResource domain.WebResourceUseCase
	// Track resolves ids so only indexed or gateway known tracks are downloaded
	Track track.Usecase
	// optional, computed waveforms are cached by track and peak count
	Cache        cache.Service
	DefaultPeaks int
	MaxPeaks     int
	MaxBytes     int64
}

type impl struct {
	webResource  domain.WebResourceUseCase
	track        track.Usecase
	cache        cache.Service
	defaultPeaks int
	maxPeaks     int
	maxBytes     int64
	met          metrics.Service
}

func New(cfg *WaveformUseCaseCfg) waveform.Usecase {
	im := &impl{
		webResource:  cfg.WebResource,
		track:        cfg.Track,
		cache:        cfg.Cache,
		defaultPeaks: cfg.DefaultPeaks,
		maxPeaks:     cfg.MaxPeaks,
		maxBytes:     cfg.MaxBytes,
		met:          metrics.New("waveform"),
	}
	if im.defaultPeaks <= 0 {
		im.defaultPeaks = DefaultPeaks
	}
	if im.maxPeaks <= 0 {
		im.maxPeaks = MaxPeaks
	}
	if im.maxBytes <= 0 {
		im.maxBytes = DefaultMaxBytes
	}
	return im
}

func (im *impl) GetWaveform(c ctx.Ctx, trackId domain.TxId, peaks int) (*waveform.Waveform, error) {
	if trackId.IsEmpty() {
		return nil, domain.ErrInvalidTxId
	}
	if peaks == 0 {
		peaks = im.defaultPeaks
	}
	if peaks < 0 || peaks > im.maxPeaks {
		return nil, domain.ErrBadParamInput
	}

	if im.cache == nil {
		return im.compute(c, trackId, peaks)
	}

	w := &waveform.Waveform{}
	key := keys.RedisKey(trackId.String(), strconv.Itoa(peaks))
	if err := im.cache.GetByFunc(c, key, w, func() (interface{}, error) {
		return im.compute(c, trackId, peaks)
	}); err != nil {
		return nil, err
	}
	return w, nil
}

func (im *impl) compute(c ctx.Ctx, trackId domain.TxId, n int) (*waveform.Waveform, error) {
	defer im.met.BumpTime("peaks.time").End()

	t, err := im.track.GetTrack(c, trackId)
	if err != nil {
		c.WithFields(log.Fields{"trackId": trackId, "err": err}).Warn("track.GetTrack failed")
		return nil, err
	}
	if t.Size > im.maxBytes {
		c.WithFields(log.Fields{"trackId": trackId, "size": t.Size, "maxBytes": im.maxBytes}).Warn("track too large")
		return nil, xerrors.Errorf("track of %d bytes: %w", t.Size, domain.ErrTooLarge)
	}

	data, err := im.webResource.Get(c, trackId.String())
	if err != nil {
		c.WithFields(log.Fields{"trackId": trackId, "err": err}).Error("webResource.Get failed")
		return nil, err
	}
	// the tagged size may be missing or wrong
	if int64(len(data)) > im.maxBytes {
		c.WithFields(log.Fields{"trackId": trackId, "size": len(data), "maxBytes": im.maxBytes}).Warn("track too large")
		return nil, xerrors.Errorf("track of %d bytes: %w", len(data), domain.ErrTooLarge)
	}

	pcm, err := audio.Decode(data)
	if err != nil {
		c.WithFields(log.Fields{"trackId": trackId, "err": err}).Warn("audio.Decode failed")
		return nil, err
	}

	peaks, err := audio.CalculatePeaks(pcm.Samples, n)
	if err != nil {
		return nil, xerrors.Errorf("audio.CalculatePeaks failed: %w", err)
	}

	seconds := pcm.Duration().Seconds()
	w := &waveform.Waveform{
		TrackId:      trackId,
		Peaks:        peaks,
		Duration:     seconds,
		DurationText: audio.FormatDuration(seconds),
		SampleRate:   pcm.SampleRate,
	}

	body, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	url, err := im.webResource.Store(c, waveform.ArchivePath(trackId, n), body, "application/json")
	if err == nil {
		w.Url = url
	} else if !errors.Is(err, domain.ErrNotFound) {
		// the waveform is still served, just not archived
		c.WithFields(log.Fields{"trackId": trackId, "err": err}).Warn("webResource.Store failed")
	}
	return w, nil
}
