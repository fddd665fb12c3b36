package generation

import "fmt"

// TruncationMarker is appended when document text exceeds the input cap.
const TruncationMarker = "\n\n[Content truncated due to length...]"

const systemPrompt = `You are an expert presentation designer and content strategist. Your task is to analyze the provided content and create a comprehensive, rich slide deck.

Return your response as a valid JSON object with the following structure:
{
    "title": "Presentation Title",
    "slides": [
        {
            "title": "Slide Title",
            "content": ["Point 1", "Point 2", "Point 3"],
            "notes": "Detailed speaker notes with additional context, examples, and talking points",
            "type": "content"
        }
    ]
}

The "type" field can be: "content", "section", or "comparison".

Guidelines for rich, comprehensive content:
- You decide the optimal number of slides based on the content depth
- Extract all valuable information from the source
- Bullet points should be informative and detailed, not just keywords
- Include specific details: statistics, examples, definitions, explanations
- Add sub-points with additional context where appropriate (prefix with "  - " for nesting)
- Create dedicated slides for: introduction, each major topic, examples, key takeaways, conclusion
- Speaker notes should be comprehensive
- If content has comparisons, create comparison slides with type "comparison" and "left"/"right" lists
- Use "section" slides for major topic transitions (title only)

IMPORTANT: Return ONLY valid JSON, no markdown code blocks or additional text.`

// SystemPrompt returns the fixed system instructions sent with every
// generation request.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt builds the per-document instruction. Content beyond
// maxChars is truncated deterministically with an explicit marker so the
// model knows the input is incomplete.
func UserPrompt(documentText, fileName string, maxChars int) string {
	if maxChars > 0 && len(documentText) > maxChars {
		documentText = documentText[:maxChars] + TruncationMarker
	}

	return fmt.Sprintf(`Please analyze the following content from file %q and create a comprehensive presentation structure.

Extract all valuable information and create as many slides as needed to fully represent the content with rich detail.

---
%s
---

Generate a thorough, detailed presentation that captures everything important from this content.`, fileName, documentText)
}
