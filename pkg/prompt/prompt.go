// Package prompt renders the templated prompt sent to the model: a fixed
// persona, the merged document context, the conversation history and the
// new question. History is an ordered list of turns rendered on demand, so
// rendering is a pure read and safe to call any number of times.
package prompt

import (
	"fmt"
	"strings"
)

// DefaultPersona is the assistant persona shipped with the hub. It is a
// template value, not a contract: deployments override it through
// configuration.
const DefaultPersona = `Act as an AI Agent that speaks Arabic fluently.
I want you to be respectful and answer based on the context given to you which is a regulations for the non profit sector.
You should be friendly, helpful and your name is صانع.
Your mission is answer NPO representative and help them.
Your Answer Should be Actual and referencing to the number of the Articles you used to provide such accurate answer.`

// Turn is one question/answer exchange recorded in history.
type Turn struct {
	Question string
	Answer   string
}

// Builder holds the immutable retrieval context and the append-only
// conversation history. A Builder is single-owner state: concurrent turns
// on one instance need external synchronization.
type Builder struct {
	context string
	persona string
	turns   []Turn
}

// NewBuilder creates a Builder over an already-merged document context.
// The context is fixed for the Builder's lifetime.
func NewBuilder(context string, persona string) *Builder {
	if persona == "" {
		persona = DefaultPersona
	}
	return &Builder{context: context, persona: persona}
}

// Context returns the retrieval context the Builder was constructed with.
func (b *Builder) Context() string {
	return b.context
}

// Turns returns a copy of the recorded history, oldest first.
func (b *Builder) Turns() []Turn {
	out := make([]Turn, len(b.turns))
	copy(out, b.turns)
	return out
}

// AppendTurn records one completed exchange. History is append-only and
// never reordered.
func (b *Builder) AppendTurn(question, answer string) {
	b.turns = append(b.turns, Turn{Question: question, Answer: answer})
}

// RenderHistory renders every recorded turn as a question/answer block,
// oldest first. With no turns it returns the empty string.
func (b *Builder) RenderHistory() string {
	var history strings.Builder
	for _, turn := range b.turns {
		history.WriteString("\n<question>\n")
		history.WriteString(turn.Question)
		history.WriteString("\n</question>\n<answer>\n")
		history.WriteString(turn.Answer)
		history.WriteString("\n</answer>\n")
	}
	return history.String()
}

// Render produces the full prompt for one question: persona, context,
// history and the question itself. The Builder is not mutated; the turn is
// recorded only after the model answers, via AppendTurn.
func (b *Builder) Render(question string) string {
	return fmt.Sprintf(`%s
Use This Document to Answer Questions between brackets:
<context>
[%s]
</context>

<history>
%s
</history>

<question>
%s
</question>

If you cannot find an answer ask the user to rephrase the question.
answer:
`, b.persona, b.context, b.RenderHistory(), question)
}
