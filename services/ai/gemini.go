package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"travelplans/models/booking"
	"travelplans/models/customer"
	"travelplans/models/itinerary"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash-lite"

// GeminiAssistant runs the assistant features against the Gemini API. The
// prompts ask for strict JSON so responses can be parsed into the same
// structs the mock produces.
type GeminiAssistant struct{}

func NewGeminiAssistant() *GeminiAssistant {
	return &GeminiAssistant{}
}

func (g *GeminiAssistant) generate(ctx context.Context, prompt string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := client.Models.GenerateContent(
		ctx,
		geminiModel,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.1)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	responseText := result.Candidates[0].Content.Parts[0].Text
	if responseText == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return responseText, nil
}

func (g *GeminiAssistant) CustomerSummary(ctx context.Context, cust customer.Customer, bookings []booking.Booking) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"customer": cust,
		"bookings": bookings,
	})
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	prompt := fmt.Sprintf(`You are a travel back-office assistant. Write a short plain-text
summary of this customer for an agent: travel interests inferred from the
booking history, number of completed versus active bookings, and document
readiness. Three bullet points, no markdown headings.

Customer data:
%s`, payload)

	return g.generate(ctx, prompt)
}

func (g *GeminiAssistant) ReviewCollateral(ctx context.Context, col itinerary.Collateral) (CollateralFeedback, error) {
	payload, err := json.Marshal(col)
	if err != nil {
		return CollateralFeedback{}, fmt.Errorf("marshal payload: %w", err)
	}

	prompt := fmt.Sprintf(`Review this travel marketing collateral for compliance problems,
such as promises that cannot be guaranteed or misleading claims. Return ONLY valid JSON.

Required JSON format:
{
"issuesFound": boolean,
"feedback": string
}

Collateral data:
%s`, payload)

	responseText, err := g.generate(ctx, prompt)
	if err != nil {
		return CollateralFeedback{}, err
	}

	var feedback CollateralFeedback
	jsonText := extractJSONFromMarkdown(responseText)
	if err := json.Unmarshal([]byte(jsonText), &feedback); err != nil {
		return CollateralFeedback{}, fmt.Errorf("failed to parse JSON response: %w, response: %s", err, jsonText)
	}
	return feedback, nil
}

func (g *GeminiAssistant) VerifyDocument(ctx context.Context, doc customer.Document) (DocumentVerdict, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return DocumentVerdict{}, fmt.Errorf("marshal payload: %w", err)
	}

	prompt := fmt.Sprintf(`Assess this customer travel document record. Decide a verification
status and a one-paragraph justification. Return ONLY valid JSON.

Required JSON format:
{
"status": string,   // one of: Pending, Verified, Rejected, Error
"feedback": string
}

Document data:
%s`, payload)

	responseText, err := g.generate(ctx, prompt)
	if err != nil {
		return DocumentVerdict{}, err
	}

	var verdict DocumentVerdict
	jsonText := extractJSONFromMarkdown(responseText)
	if err := json.Unmarshal([]byte(jsonText), &verdict); err != nil {
		return DocumentVerdict{}, fmt.Errorf("failed to parse JSON response: %w, response: %s", err, jsonText)
	}
	if !verdict.Status.IsValid() {
		verdict.Status = customer.DocumentError
	}
	return verdict, nil
}

// extractJSONFromMarkdown extracts JSON content from markdown code blocks.
func extractJSONFromMarkdown(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 1 {
			return strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	return text
}
