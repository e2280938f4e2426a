package render

import (
	"fmt"
	"io"
	"math"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

const (
	// DefaultSampleRate is used when a renderer is built without one
	DefaultSampleRate = 44100

	noteAmplitude = 0.18
	attackSeconds = 0.01
	releaseDecay  = 3.0
)

// midiToFrequency converts a MIDI note number to Hz (A4 = 440)
func midiToFrequency(note int) float64 {
	return 440.0 * math.Pow(2, float64(note-69)/12.0)
}

// Synthesize renders an arrangement into stereo samples with a plain sine voice per note.
// The result is normalized so that overlapping chord tones never clip.
func Synthesize(arr *Arrangement, sampleRate int) ([][2]float64, error) {
	if arr == nil {
		return nil, fmt.Errorf("nil arrangement")
	}
	if arr.BPM <= 0 {
		return nil, fmt.Errorf("invalid tempo: %d bpm", arr.BPM)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", sampleRate)
	}

	samplesPerBeat := 60.0 / float64(arr.BPM) * float64(sampleRate)
	totalSamples := int(math.Ceil(arr.LengthBeats * samplesPerBeat))
	buffer := make([][2]float64, totalSamples)

	for _, note := range arr.Notes {
		freq := midiToFrequency(note.MidiNoteNumber)
		amp := noteAmplitude * float64(note.Velocity) / 127.0
		start := int(note.StartBeats * samplesPerBeat)
		end := int((note.StartBeats + note.DurationBeats) * samplesPerBeat)
		if end > totalSamples {
			end = totalSamples
		}

		for i := start; i < end; i++ {
			t := float64(i-start) / float64(sampleRate)
			var env float64
			if t < attackSeconds {
				env = t / attackSeconds
			} else {
				env = math.Exp(-(t - attackSeconds) * releaseDecay)
			}
			sample := math.Sin(2*math.Pi*freq*t) * env * amp
			buffer[i][0] += sample
			buffer[i][1] += sample
		}
	}

	normalize(buffer)
	return buffer, nil
}

func normalize(buffer [][2]float64) {
	peak := 0.0
	for _, frame := range buffer {
		peak = math.Max(peak, math.Max(math.Abs(frame[0]), math.Abs(frame[1])))
	}
	if peak <= 1.0 {
		return
	}
	scale := 0.95 / peak
	for i := range buffer {
		buffer[i][0] *= scale
		buffer[i][1] *= scale
	}
}

// sliceStreamer streams a slice of stereo samples as a beep.Streamer
type sliceStreamer struct {
	buf [][2]float64
	pos int
}

func (s *sliceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n = copy(samples, s.buf[s.pos:])
	s.pos += n
	return n, true
}

func (s *sliceStreamer) Err() error {
	return nil
}

// WriteWAV synthesizes an arrangement and encodes it as 16-bit stereo WAV
func WriteWAV(w io.WriteSeeker, arr *Arrangement, sampleRate int) error {
	samples, err := Synthesize(arr, sampleRate)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	if err := wav.Encode(w, &sliceStreamer{buf: samples}, format); err != nil {
		return fmt.Errorf("failed to encode WAV: %w", err)
	}
	return nil
}
