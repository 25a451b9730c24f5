package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCaptures(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Header
	}{
		{
			name: "bare type",
			text: "feat: add x",
			want: Header{Type: "feat", Start: 0, End: 6},
		},
		{
			name: "type and scope",
			text: "fix(parser): handle tabs",
			want: Header{Type: "fix", Scope: "parser", Start: 0, End: 13},
		},
		{
			name: "breaking marker",
			text: "feat(api)!: drop v1",
			want: Header{Type: "feat", Scope: "api", Breaking: true, Start: 0, End: 12},
		},
		{
			name: "case preserved",
			text: "Fix: x",
			want: Header{Type: "Fix", Start: 0, End: 5},
		},
		{
			name: "no trailing space",
			text: "feat:",
			want: Header{Type: "feat", Start: 0, End: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.text)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestMatchTrailingShortcodes(t *testing.T) {
	got := Match("fix: :zap: :bug: done")
	require.Len(t, got, 1)
	assert.Equal(t, []string{"zap", "bug"}, got[0].Other)
	assert.Equal(t, 0, got[0].Start)
	assert.Equal(t, len("fix: :zap: :bug: "), got[0].End)
}

func TestMatchShortcodePrefix(t *testing.T) {
	got := Match(":wip: still going")
	require.Len(t, got, 1)
	assert.Equal(t, ":wip", got[0].Type)
	assert.True(t, got[0].ShortcodePrefixed())
}

func TestMatchMultiple(t *testing.T) {
	text := "abc1234 feat: one\ndef5678 fix(core): two"
	got := Match(text)
	require.Len(t, got, 2)

	assert.Equal(t, "feat", got[0].Type)
	assert.Equal(t, 8, got[0].Start)

	assert.Equal(t, "fix", got[1].Type)
	assert.Equal(t, "core", got[1].Scope)
}

func TestMatchSpansDoNotOverlap(t *testing.T) {
	got := Match("fix: :zap: feat: y")
	require.NotEmpty(t, got)
	prevEnd := 0
	for _, h := range got {
		assert.GreaterOrEqual(t, h.Start, prevEnd)
		assert.Greater(t, h.End, h.Start)
		prevEnd = h.End
	}
}

func TestMatchRejects(t *testing.T) {
	for _, text := range []string{
		"hello world",
		"no header here either",
		"feat(: x",
		"(scope): x",
	} {
		assert.Empty(t, Match(text), "expected no match for %q", text)
	}
}

func TestMatchStopsAtNewline(t *testing.T) {
	got := Match("feat:\n\nbody line")
	require.NotEmpty(t, got)
	assert.Equal(t, len("feat:"), got[0].End, "an empty description must not pull the body into the span")
}
