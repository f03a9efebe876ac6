// Package gemini provides Google Gemini implementations of embedding,
// question answering, and token counting.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/siteqa"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// retrievalLimit is how many chunks are retrieved to ground an answer.
const retrievalLimit = 6

// Ensure Asker implements siteqa.Asker at compile time.
var _ siteqa.Asker = (*Asker)(nil)

// Asker implements siteqa.Asker using retrieval-augmented generation:
// the question is embedded, the best-matching chunks are retrieved, and
// Gemini answers from those chunks only.
type Asker struct {
	client *genai.Client
	search siteqa.SearchService
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, search siteqa.SearchService) *Asker {
	return &Asker{client: client, search: search}
}

// Ask answers a natural language question about a site's knowledgebase.
func (a *Asker) Ask(ctx context.Context, siteID, question string) (string, error) {
	if siteID == "" {
		return "", siteqa.Errorf(siteqa.EINVALID, "site ID required")
	}
	if question == "" {
		return "", siteqa.Errorf(siteqa.EINVALID, "question required")
	}

	results, err := a.search.Search(ctx, siteID, question, retrievalLimit)
	if err != nil {
		return "", err
	}

	prompt := BuildUserPrompt(results, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", siteqa.Errorf(siteqa.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about a website's content. Answer based only on the documents provided. If the answer is not in the documents, say so. Cite the source URL of the documents you relied on.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing retrieved chunks and
// the question.
func BuildUserPrompt(results []siteqa.SearchResult, question string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, result := range results {
		chunk := result.Chunk
		title := chunk.Title
		if title == "" {
			title = chunk.SourceURL
		}
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", title)
		fmt.Fprintf(&sb, "<source>%s</source>\n", chunk.SourceURL)
		fmt.Fprintf(&sb, "<content>%s</content>\n", chunk.Content)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
