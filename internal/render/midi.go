package render

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sort"
)

const (
	// TicksPerBeat is the MIDI file division
	TicksPerBeat = 480

	midiChannel = 0
)

// midiEvent is a MIDI event at an absolute tick
type midiEvent struct {
	tick  int
	order int // note-offs sort before note-ons on the same tick
	data  []byte
}

// encodeVarLen encodes an integer as a MIDI variable-length quantity
func encodeVarLen(value int) []byte {
	buffer := []byte{byte(value & 0x7F)}
	value >>= 7
	for value > 0 {
		buffer = append([]byte{byte((value & 0x7F) | 0x80)}, buffer...)
		value >>= 7
	}
	return buffer
}

// programNumber maps a 1-based General MIDI instrument to a program change byte
func programNumber(instrument int) byte {
	switch {
	case instrument < 1:
		return 0
	case instrument > 128:
		return 127
	default:
		return byte(instrument - 1)
	}
}

func beatsToTicks(beats float64) int {
	return int(math.Round(beats * TicksPerBeat))
}

// EncodeMIDI renders an arrangement as a Type-0 Standard MIDI File
func EncodeMIDI(arr *Arrangement) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteMIDI(&buf, arr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteMIDI writes an arrangement as a Type-0 Standard MIDI File with one track:
// tempo, program change, then the note events.
func WriteMIDI(w io.Writer, arr *Arrangement) error {
	if arr == nil {
		return fmt.Errorf("nil arrangement")
	}
	if arr.BPM <= 0 {
		return fmt.Errorf("invalid tempo: %d bpm", arr.BPM)
	}

	usPerBeat := 60_000_000 / arr.BPM
	events := []midiEvent{
		{tick: 0, data: []byte{0xFF, 0x51, 0x03, byte(usPerBeat >> 16), byte(usPerBeat >> 8), byte(usPerBeat)}},
		{tick: 0, data: []byte{0xC0 | midiChannel, programNumber(arr.Instrument)}},
	}

	end := beatsToTicks(arr.LengthBeats)
	for _, note := range arr.Notes {
		if note.MidiNoteNumber < midiMin || note.MidiNoteNumber > midiMax {
			return fmt.Errorf("note number out of range: %d", note.MidiNoteNumber)
		}
		on := beatsToTicks(note.StartBeats)
		off := beatsToTicks(note.StartBeats + note.DurationBeats)
		if off <= on {
			off = on + 1
		}
		if off > end {
			end = off
		}

		key := byte(note.MidiNoteNumber)
		events = append(events,
			midiEvent{tick: on, order: 2, data: []byte{0x90 | midiChannel, key, byte(clampVelocity(note.Velocity))}},
			midiEvent{tick: off, order: 1, data: []byte{0x80 | midiChannel, key, 0}},
		)
	}
	events = append(events, midiEvent{tick: end, order: 3, data: []byte{0xFF, 0x2F, 0x00}})

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].order < events[j].order
	})

	// Absolute ticks to delta times
	var track []byte
	prevTick := 0
	for _, ev := range events {
		track = append(track, encodeVarLen(ev.tick-prevTick)...)
		track = append(track, ev.data...)
		prevTick = ev.tick
	}

	header := []byte{
		'M', 'T', 'h', 'd',
		0, 0, 0, 6,
		0, 0, // Format 0
		0, 1, // One track
		byte(TicksPerBeat >> 8), byte(TicksPerBeat & 0xFF),
	}
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write MIDI header: %w", err)
	}
	if _, err := w.Write([]byte{'M', 'T', 'r', 'k'}); err != nil {
		return fmt.Errorf("failed to write track header: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(track))); err != nil {
		return fmt.Errorf("failed to write track length: %w", err)
	}
	if _, err := w.Write(track); err != nil {
		return fmt.Errorf("failed to write track data: %w", err)
	}
	return nil
}
