package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserPromptEmbedsDocument(t *testing.T) {
	got := UserPrompt("some document text", "notes.md", 50000)

	assert.Contains(t, got, `"notes.md"`)
	assert.Contains(t, got, "some document text")
	assert.NotContains(t, got, TruncationMarker)
}

func TestUserPromptTruncatesLongDocuments(t *testing.T) {
	doc := strings.Repeat("a", 200)

	got := UserPrompt(doc, "big.txt", 100)
	assert.Contains(t, got, strings.Repeat("a", 100)+TruncationMarker)
	assert.NotContains(t, got, strings.Repeat("a", 101))

	// same input, same prompt
	assert.Equal(t, got, UserPrompt(doc, "big.txt", 100))
}

func TestUserPromptZeroCapDisablesTruncation(t *testing.T) {
	doc := strings.Repeat("b", 200)

	got := UserPrompt(doc, "big.txt", 0)
	assert.Contains(t, got, doc)
	assert.NotContains(t, got, TruncationMarker)
}

func TestSystemPromptDemandsJSON(t *testing.T) {
	got := SystemPrompt()

	assert.Contains(t, got, "valid JSON")
	assert.Contains(t, got, `"comparison"`)
	assert.Contains(t, got, `"section"`)
}
