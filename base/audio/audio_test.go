package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/suite"

	"github.com/arcadia-music/goapi/domain"
)

type audioSuite struct {
	suite.Suite
}

func TestAudioSuite(t *testing.T) {
	suite.Run(t, new(audioSuite))
}

func (s *audioSuite) TestCalculatePeaks() {
	cases := []struct {
		desc    string
		samples []float64
		n       int
		exp     []float64
		expErr  error
	}{
		{
			desc:   "non positive count",
			n:      0,
			expErr: domain.ErrBadParamInput,
		},
		{
			desc: "empty samples",
			n:    3,
			exp:  []float64{0, 0, 0},
		},
		{
			desc:    "fewer samples than peaks",
			samples: []float64{0.5, -0.25},
			n:       4,
			exp:     []float64{0.5, 0.25},
		},
		{
			desc:    "absolute max per bucket",
			samples: []float64{0.1, -0.9, 0.3, 0.2, -0.123456, 0.05},
			n:       3,
			exp:     []float64{0.9, 0.3, 0.1235},
		},
		{
			desc:    "remainder dropped",
			samples: []float64{0.1, 0.2, 0.3, 0.4, 1},
			n:       2,
			exp:     []float64{0.2, 0.4},
		},
	}

	for _, c := range cases {
		peaks, err := CalculatePeaks(c.samples, c.n)
		if c.expErr != nil {
			s.ErrorIs(err, c.expErr, c.desc)
			continue
		}
		s.NoError(err, c.desc)
		s.Equal(c.exp, peaks, c.desc)
	}
}

func (s *audioSuite) TestFormatDuration() {
	cases := map[float64]string{
		-1:          "0:00",
		math.NaN():  "0:00",
		math.Inf(1): "0:00",
		0:           "0:00",
		5.9:         "0:05",
		65:          "1:05",
		600:         "10:00",
		3599:        "59:59",
		3600:        "1:00:00",
		3725:        "1:02:05",
		3600000:     "1000:00:00",
		3600001:     "0:00",
		1e19:        "0:00",
		1e30:        "0:00",
	}
	for in, exp := range cases {
		s.Equal(exp, FormatDuration(in), "%v", in)
	}
}

func (s *audioSuite) TestDecodeWav() {
	data := s.writeWav(8000, []int{16384, 0, -32768, 8192})

	s.Equal("audio/wav", DetectMimeType(data))

	pcm, err := Decode(data)
	s.Require().NoError(err)
	s.Equal(8000, pcm.SampleRate)
	s.Equal(1, pcm.Channels)
	s.Equal([]float64{0.5, 0, -1, 0.25}, pcm.Samples)
	s.Equal(500*time.Microsecond, pcm.Duration())
}

func (s *audioSuite) TestDecodeMp3() {
	// 40 frames of mono 44.1kHz silence, 1152 samples each
	data, err := os.ReadFile(filepath.Join("testdata", "silence.mp3"))
	s.Require().NoError(err)

	s.Equal("audio/mpeg", DetectMimeType(data))

	pcm, err := Decode(data)
	s.Require().NoError(err)
	s.Equal("audio/mpeg", pcm.MimeType)
	s.Equal(44100, pcm.SampleRate)
	s.Equal(2, pcm.Channels)
	s.Len(pcm.Samples, 40*1152)
	s.InDelta(1.045, pcm.Duration().Seconds(), 0.001)

	peaks, err := CalculatePeaks(pcm.Samples, 4)
	s.Require().NoError(err)
	s.Equal([]float64{0, 0, 0, 0}, peaks)
}

func (s *audioSuite) TestDecodeUnsupported() {
	_, err := Decode([]byte(`{"items":[]}`))
	s.ErrorIs(err, domain.ErrUnsupportedAudio)
}

func (s *audioSuite) writeWav(sampleRate int, data []int) []byte {
	f, err := os.Create(filepath.Join(s.T().TempDir(), "test.wav"))
	s.Require().NoError(err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	s.Require().NoError(enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}))
	s.Require().NoError(enc.Close())

	out, err := os.ReadFile(f.Name())
	s.Require().NoError(err)
	return out
}
