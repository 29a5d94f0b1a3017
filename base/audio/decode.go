package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"golang.org/x/xerrors"

	"github.com/arcadia-music/goapi/domain"
)

// PCM holds the first channel of a decoded track, normalized to -1..1
type PCM struct {
	MimeType   string    `json:"mimeType"`
	SampleRate int       `json:"sampleRate"`
	Channels   int       `json:"channels"`
	Samples    []float64 `json:"-"`
}

func (p *PCM) Duration() time.Duration {
	if p.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(p.Samples)) * time.Second / time.Duration(p.SampleRate)
}

// DetectMimeType returns the sniffed mime type of data
func DetectMimeType(data []byte) string {
	return mimetype.Detect(data).String()
}

// Decode sniffs data and decodes mp3 or wav audio
func Decode(data []byte) (*PCM, error) {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("audio/mpeg"):
		return decodeMp3(data)
	case mtype.Is("audio/wav"):
		return decodeWav(data)
	}
	return nil, xerrors.Errorf("%s: %w", mtype.String(), domain.ErrUnsupportedAudio)
}

func decodeMp3(data []byte) (*PCM, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, xerrors.Errorf("mp3.NewDecoder failed: %w", err)
	}

	// go-mp3 always yields 16 bit little endian stereo
	const frameSize = 4
	samples := make([]float64, 0, d.Length()/frameSize)
	buf := make([]byte, 4096*frameSize)
	for {
		n, err := d.Read(buf)
		for i := 0; i+frameSize <= n; i += frameSize {
			v := int16(binary.LittleEndian.Uint16(buf[i : i+2]))
			samples = append(samples, float64(v)/32768)
		}
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, xerrors.Errorf("mp3 read failed: %w", err)
		}
	}

	return &PCM{
		MimeType:   "audio/mpeg",
		SampleRate: d.SampleRate(),
		Channels:   2,
		Samples:    samples,
	}, nil
}

func decodeWav(data []byte) (*PCM, error) {
	d := wav.NewDecoder(bytes.NewReader(data))
	if !d.IsValidFile() {
		return nil, xerrors.Errorf("invalid wav file: %w", domain.ErrUnsupportedAudio)
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, xerrors.Errorf("wav.FullPCMBuffer failed: %w", err)
	}

	channels := buf.Format.NumChannels
	if channels <= 0 {
		channels = 1
	}
	bitDepth := int(d.BitDepth)
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int(1) << (bitDepth - 1))

	samples := make([]float64, 0, len(buf.Data)/channels)
	for i := 0; i < len(buf.Data); i += channels {
		samples = append(samples, float64(buf.Data[i])/scale)
	}

	return &PCM{
		MimeType:   "audio/wav",
		SampleRate: buf.Format.SampleRate,
		Channels:   channels,
		Samples:    samples,
	}, nil
}
