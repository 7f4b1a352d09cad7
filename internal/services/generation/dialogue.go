package generation

import (
	"strings"

	"github.com/voxcast/voxcast-api/internal/models"
	"github.com/voxcast/voxcast-api/internal/services/synthesis"
)

// ParseDialogue turns SPEAKER: text lines into ordered turns. Lines without
// a separator are dropped. Speakers are kept verbatim: names matching the
// roster map to their voices later, unmatched ones become free labels with
// the default voice.
func ParseDialogue(text string) []synthesis.Turn {
	var turns []synthesis.Turn
	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		speaker := strings.TrimSpace(line[:idx])
		content := strings.TrimSpace(line[idx+1:])
		if speaker == "" || content == "" {
			continue
		}
		turns = append(turns, synthesis.Turn{Speaker: speaker, Text: content})
	}
	return turns
}

// placeholderConcepts is the offline-mode concept list
func placeholderConcepts() []string {
	return []string{"Sample concept 1", "Sample concept 2", "Sample concept 3"}
}

// fallbackConcepts covers a configured LLM that failed mid-call
func fallbackConcepts() []string {
	return []string{"Document analysis", "Key findings", "Important insights"}
}

// placeholderOutline is the offline-mode conversation outline
const placeholderOutline = "Sample conversation outline with introduction, main discussion points, and conclusion."

// fallbackOutline covers a configured LLM that failed mid-call
const fallbackOutline = "Sample outline with introduction, discussion, and conclusion."

// placeholderDialogue is the offline-mode scripted conversation. It uses
// the first two roster personas so the transcript still reads like the
// requested show.
func placeholderDialogue(personas []models.PersonaSnapshot) []synthesis.Turn {
	first, second := "Host", "Guest"
	if len(personas) > 0 {
		first = personas[0].Name
	}
	if len(personas) > 1 {
		second = personas[1].Name
	}

	return []synthesis.Turn{
		{Speaker: first, Text: "Welcome to today's discussion! Let's dive into these fascinating topics."},
		{Speaker: second, Text: "Absolutely! I'm excited to explore these key insights with you."},
		{Speaker: first, Text: "The research presents some compelling evidence that challenges conventional thinking."},
		{Speaker: second, Text: "That's a great point. What I find particularly interesting is how this connects to broader trends."},
	}
}

// fallbackDialogue covers a configured LLM that failed mid-call
func fallbackDialogue() []synthesis.Turn {
	return []synthesis.Turn{{Speaker: "Host", Text: "Sample dialogue generated."}}
}
