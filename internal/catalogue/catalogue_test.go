package catalogue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogue(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	expected := []MoodID{"feliz", "triste", "epico", "calmo", "misterioso", "dancante_groovy"}
	assert.Equal(t, expected, c.Moods())

	for _, id := range c.Moods() {
		t.Run(string(id), func(t *testing.T) {
			desc, err := c.Describe(id)
			require.NoError(t, err)
			assert.NotEmpty(t, desc)

			templates, err := c.TemplatesFor(id)
			require.NoError(t, err)
			assert.Len(t, templates, 8)
			for _, tmpl := range templates {
				assert.Len(t, tmpl, 4)
			}

			perf, err := c.Performance(id)
			require.NoError(t, err)
			assert.Positive(t, perf.BPM)
		})
	}
}

func TestDefaultCatalogue_PerformanceSettings(t *testing.T) {
	c := MustDefault()

	tests := []struct {
		mood     MoodID
		expected Performance
	}{
		{mood: "feliz", expected: Performance{BPM: 130, Instrument: 29, Style: StyleBlock}},
		{mood: "triste", expected: Performance{BPM: 80, Instrument: 5, Style: StyleStrum}},
		{mood: "epico", expected: Performance{BPM: 100, Instrument: 30, Style: StyleBlock}},
		{mood: "calmo", expected: Performance{BPM: 60, Instrument: 2, Style: StyleStrum}},
		{mood: "misterioso", expected: Performance{BPM: 90, Instrument: 80, Style: StyleStrum}},
		{mood: "dancante_groovy", expected: Performance{BPM: 110, Instrument: 27, Style: StyleRhythmic}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			perf, err := c.Performance(tt.mood)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, perf)
		})
	}
}

func TestCatalogue_UnknownMood(t *testing.T) {
	c := MustDefault()
	unknown := MoodID("eufórico")

	_, err := c.Describe(unknown)
	assert.True(t, errors.Is(err, ErrUnknownMood))

	_, err = c.TemplatesFor(unknown)
	assert.True(t, errors.Is(err, ErrUnknownMood))

	_, err = c.Performance(unknown)
	assert.True(t, errors.Is(err, ErrUnknownMood))

	_, err = c.Mood(unknown)
	var moodErr *UnknownMoodError
	require.ErrorAs(t, err, &moodErr)
	assert.Equal(t, unknown, moodErr.Mood)

	assert.False(t, c.Has(unknown))
}

func TestCatalogue_ReturnsCopies(t *testing.T) {
	c := MustDefault()

	templates, err := c.TemplatesFor("feliz")
	require.NoError(t, err)
	templates[0][0] = "XII"

	again, err := c.TemplatesFor("feliz")
	require.NoError(t, err)
	assert.Equal(t, "I", again[0][0])
	assert.Len(t, again, 8)

	ids := c.Moods()
	ids[0] = "changed"
	assert.Equal(t, MoodID("feliz"), c.Moods()[0])
}

func TestNew_Validation(t *testing.T) {
	valid := func() Mood {
		return Mood{
			ID:          "ok",
			Description: "fine",
			Performance: Performance{BPM: 90, Instrument: 1, Style: StyleBlock},
			Templates:   []Template{{"I", "V"}},
		}
	}

	tests := []struct {
		name   string
		moods  func() []Mood
		hasErr bool
	}{
		{
			name:  "valid",
			moods: func() []Mood { return []Mood{valid()} },
		},
		{
			name:   "empty catalogue",
			moods:  func() []Mood { return nil },
			hasErr: true,
		},
		{
			name: "missing id",
			moods: func() []Mood {
				m := valid()
				m.ID = " "
				return []Mood{m}
			},
			hasErr: true,
		},
		{
			name:   "duplicate id",
			moods:  func() []Mood { return []Mood{valid(), valid()} },
			hasErr: true,
		},
		{
			name: "no templates",
			moods: func() []Mood {
				m := valid()
				m.Templates = nil
				return []Mood{m}
			},
			hasErr: true,
		},
		{
			name: "empty template",
			moods: func() []Mood {
				m := valid()
				m.Templates = []Template{{}}
				return []Mood{m}
			},
			hasErr: true,
		},
		{
			name: "blank numeral",
			moods: func() []Mood {
				m := valid()
				m.Templates = []Template{{"I", " "}}
				return []Mood{m}
			},
			hasErr: true,
		},
		{
			name: "missing performance settings",
			moods: func() []Mood {
				m := valid()
				m.Performance = Performance{}
				return []Mood{m}
			},
			hasErr: true,
		},
		{
			name: "unknown style",
			moods: func() []Mood {
				m := valid()
				m.Performance.Style = "waltz"
				return []Mood{m}
			},
			hasErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.moods())
			if tt.hasErr {
				require.ErrorIs(t, err, ErrInvalidCatalogue)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, c.Len())
		})
	}
}

func TestParseStyle(t *testing.T) {
	tests := map[string]Style{
		"block":     StyleBlock,
		"Strum":     StyleStrum,
		"rhythmic":  StyleRhythmic,
		"batido":    StyleBlock,
		"dedilhado": StyleStrum,
		"ritmico":   StyleRhythmic,
	}
	for input, expected := range tests {
		style, err := ParseStyle(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, style, input)
	}

	_, err := ParseStyle("bossa")
	assert.Error(t, err)
}

func TestLoadFile_YAML(t *testing.T) {
	c, err := LoadFile("testdata/small.yaml")
	require.NoError(t, err)

	assert.Equal(t, []MoodID{"sombrio", "brilhante"}, c.Moods())

	perf, err := c.Performance("sombrio")
	require.NoError(t, err)
	assert.Equal(t, StyleStrum, perf.Style, "legacy alias is normalized")

	templates, err := c.TemplatesFor("brilhante")
	require.NoError(t, err)
	assert.Equal(t, []Template{{"I", "IV", "I", "IV", "V", "I"}}, templates)
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 6, c.Len())

	_, err = Load("testdata/missing.yaml")
	assert.Error(t, err)

	_, err = Load("catalogue.toml")
	assert.ErrorIs(t, err, ErrInvalidCatalogue)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("{not json"), FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidCatalogue)

	_, err = Parse([]byte("moods: [unterminated"), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidCatalogue)

	_, err = Parse([]byte(`{"moods": []}`), "xml")
	assert.ErrorIs(t, err, ErrInvalidCatalogue)
}
