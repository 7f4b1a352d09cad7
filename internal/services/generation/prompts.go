package generation

import (
	"fmt"
	"strings"

	"github.com/voxcast/voxcast-api/internal/models"
)

// maxConcepts caps how many extracted concepts feed the outline prompt
const maxConcepts = 10

const (
	conceptMaxTokens  = 1000
	outlineMaxTokens  = 2000
	dialogueMaxTokens = 4000
)

// buildConceptPrompt asks for the discussion-worthy themes of the corpus.
// Content is truncated server-side so the prompt stays within model limits.
func buildConceptPrompt(docs []models.Document, maxChars int) string {
	var parts []string
	for _, doc := range docs {
		if doc.Content != nil && *doc.Content != "" {
			parts = append(parts, *doc.Content)
		}
	}
	combined := strings.Join(parts, "\n\n")
	if maxChars > 0 && len(combined) > maxChars {
		combined = combined[:maxChars] + "..."
	}

	return fmt.Sprintf(`Analyze the following documents and extract the 5-10 most important key concepts, themes, or topics that would make for an engaging podcast discussion.

Documents:
%s

Please provide a list of key concepts, one per line, that capture the essence of these documents.`, combined)
}

// parseConcepts splits the model output into trimmed concept lines,
// stripping list markers such as "-", "*", and "1."
func parseConcepts(text string) []string {
	var concepts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789. ")
		if line == "" {
			continue
		}
		concepts = append(concepts, line)
		if len(concepts) == maxConcepts {
			break
		}
	}
	return concepts
}

func describePersonas(personas []models.PersonaSnapshot, withStyle bool) string {
	lines := make([]string, 0, len(personas))
	for _, p := range personas {
		desc := fmt.Sprintf("- %s (%s): %s", p.Name, p.Role, p.Personality)
		if withStyle && p.SpeakingStyle != "" {
			desc += " - Speaking style: " + p.SpeakingStyle
		}
		lines = append(lines, desc)
	}
	return strings.Join(lines, "\n")
}

func buildOutlinePrompt(concepts []string, settings models.GenerationSettings) string {
	conceptLines := make([]string, 0, len(concepts))
	for _, c := range concepts {
		conceptLines = append(conceptLines, "- "+c)
	}

	prompt := fmt.Sprintf(`Create a detailed conversation outline for a %s minute podcast discussion between these personas:

%s

Key concepts to cover:
%s

Tone: %s
`, settings.Duration, describePersonas(settings.Personas, false), strings.Join(conceptLines, "\n"), settings.Tone)

	if len(settings.FocusAreas) > 0 {
		prompt += fmt.Sprintf("\nFocus especially on: %s\n", strings.Join(settings.FocusAreas, ", "))
	}

	prompt += `
The outline should include:
1. Opening introduction
2. 3-5 main discussion segments
3. Natural transitions between topics
4. Closing summary

Make it engaging and ensure each persona has distinct contributions based on their role and personality.`
	return prompt
}

func buildDialoguePrompt(outline string, settings models.GenerationSettings) string {
	return fmt.Sprintf(`Based on this outline, generate a natural conversation between these personas:

%s

Outline:
%s

Generate the dialogue in this format:
SPEAKER_NAME: [dialogue text]

Requirements:
- Make it sound natural and conversational
- Include interruptions, agreements, and disagreements
- Stay true to each persona's speaking style
- Include natural transitions and reactions
- Make it engaging and informative`, describePersonas(settings.Personas, true), outline)
}
