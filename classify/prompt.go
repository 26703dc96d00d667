package classify

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/veracomply/sdk/evidence"
	"github.com/veracomply/sdk/llm"
)

// systemPrompt instructs the model to emit exactly one JSON object. The
// schema mirrors evidence.Result so the response can be parsed strictly.
const systemPrompt = `You are a compliance evidence classifier. Classify the document into one of three evidentiary trust tiers:

- TIER_2: system-generated evidence (exports, logs, machine output with timestamps or structured data)
- TIER_1: formal policy or procedure documents (versioned, approved, with effective dates)
- TIER_0: self-declared evidence (informal statements with no structural markers)

Respond with a single JSON object and nothing else:
{"tier": "TIER_0|TIER_1|TIER_2", "confidence": <number 0.0-1.0>, "reason": "<one sentence>", "indicators": {"has_timestamps": <bool>, "has_version_control": <bool>, "has_approval_signatures": <bool>, "is_structured_data": <bool>}}`

// buildRequest assembles the classification request. Content is truncated
// to the same scan window the heuristic classifier uses, so both paths see
// identical input.
func buildRequest(filename, content, model string) *llm.CompletionRequest {
	excerpt := content
	if len(excerpt) > evidence.MaxScanLength {
		excerpt = excerpt[:evidence.MaxScanLength]
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf("Filename: %s\n\nContent:\n%s", filename, excerpt)},
	}

	opts := []llm.CompletionOption{
		llm.WithTemperature(0),
		llm.WithMaxTokens(300),
	}
	if model != "" {
		opts = append(opts, llm.WithModel(model))
	}
	return llm.NewCompletionRequest(messages, opts...)
}

// aiResponse mirrors the JSON schema the system prompt demands.
type aiResponse struct {
	Tier       string              `json:"tier"`
	Confidence float64             `json:"confidence"`
	Reason     string              `json:"reason"`
	Indicators evidence.Indicators `json:"indicators"`
}

// parseResponse strictly parses a model response into a classification
// result. The tier must be a known value and the confidence must be within
// [0, 1]; anything else is a parse failure.
func parseResponse(content string, classifiedAt time.Time) (*evidence.Result, error) {
	payload := extractJSON(content)
	if payload == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var resp aiResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	tier, err := evidence.ParseTier(resp.Tier)
	if err != nil {
		return nil, err
	}
	if resp.Confidence < 0 || resp.Confidence > 1 {
		return nil, fmt.Errorf("confidence %v out of range [0, 1]", resp.Confidence)
	}
	if resp.Reason == "" {
		return nil, fmt.Errorf("missing reason")
	}

	return &evidence.Result{
		Tier:         tier,
		Confidence:   resp.Confidence,
		Reason:       resp.Reason,
		Indicators:   resp.Indicators,
		ClassifiedAt: classifiedAt,
	}, nil
}

// extractJSON returns the first top-level JSON object in the content.
// Models occasionally wrap the object in prose or a code fence despite the
// prompt; anything beyond that is rejected by the caller's parse.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return content[start : end+1]
}
