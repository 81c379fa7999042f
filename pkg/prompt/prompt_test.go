package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmbedsContextAndQuestion(t *testing.T) {
	b := NewBuilder("Article 1: NPOs must register.", "")

	rendered := b.Render("How do I register?")

	assert.Contains(t, rendered, "[Article 1: NPOs must register.]")
	assert.Contains(t, rendered, "<question>\nHow do I register?\n</question>")
	assert.Contains(t, rendered, DefaultPersona)
	// No turns yet: the history block is empty.
	assert.Contains(t, rendered, "<history>\n\n</history>")
}

func TestPersonaOverride(t *testing.T) {
	b := NewBuilder("ctx", "You are a terse legal clerk.")
	rendered := b.Render("q")

	assert.Contains(t, rendered, "You are a terse legal clerk.")
	assert.NotContains(t, rendered, DefaultPersona)
}

func TestAppendTurnKeepsPairsAligned(t *testing.T) {
	b := NewBuilder("ctx", "")

	b.AppendTurn("q1", "a1")
	b.AppendTurn("q2", "a2")

	turns := b.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, Turn{Question: "q1", Answer: "a1"}, turns[0])
	assert.Equal(t, Turn{Question: "q2", Answer: "a2"}, turns[1])

	history := b.RenderHistory()
	assert.Contains(t, history, "q2")
	assert.Contains(t, history, "a2")
	// Full history is rendered, oldest first.
	assert.Less(t, strings.Index(history, "q1"), strings.Index(history, "q2"))
}

func TestRenderHistoryIsCallCountIndependent(t *testing.T) {
	b := NewBuilder("ctx", "")
	b.AppendTurn("q1", "a1")

	first := b.RenderHistory()
	second := b.RenderHistory()
	assert.Equal(t, first, second)

	// Exactly one question/answer block per recorded turn.
	assert.Equal(t, 1, strings.Count(first, "<question>"))
	b.AppendTurn("q2", "a2")
	assert.Equal(t, 2, strings.Count(b.RenderHistory(), "<question>"))
}

func TestContextIsFixedAtConstruction(t *testing.T) {
	b := NewBuilder("immutable context", "")
	b.AppendTurn("q", "a")

	assert.Equal(t, "immutable context", b.Context())
	assert.Contains(t, b.Render("next"), "[immutable context]")
}
