package journey

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/expoflow/gulfood-journey/internal/store"
)

const evaluationTemperature = 0.3

// Evaluator turns a visitor profile plus an exhibitor sample into a scored
// evaluation. One call, no retries: a malformed response surfaces as an error
// and the whole generation request fails.
type Evaluator struct {
	caller LLMCaller
}

func NewEvaluator(caller LLMCaller) *Evaluator {
	return &Evaluator{caller: caller}
}

func (e *Evaluator) Evaluate(ctx context.Context, profile VisitorProfile, sample []store.Exhibitor) (Evaluation, error) {
	prompt := BuildEvaluationPrompt(profile, sample)
	raw, err := e.caller.GenerateJSON(ctx, prompt, evaluationTemperature)
	if err != nil {
		return Evaluation{}, err
	}
	var eval Evaluation
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &eval); err != nil {
		return Evaluation{}, fmt.Errorf("parsing evaluation response: %w", err)
	}
	repairEvaluation(&eval)
	return eval, nil
}

// repairEvaluation normalizes out-of-contract model output in place rather
// than rejecting it: score clamped to [0,100], icons coerced to a known
// value, the highlight list padded to the minimum, and the exhibitor ranking
// cut at the match cap.
func repairEvaluation(eval *Evaluation) {
	eval.OverallRelevanceScore = clamp(eval.OverallRelevanceScore, 0, 100)

	for i := range eval.Highlights {
		if !validIcon(eval.Highlights[i].Icon) {
			eval.Highlights[i].Icon = IconStar
		}
	}
	for _, h := range defaultHighlights {
		if len(eval.Highlights) >= MinHighlights {
			break
		}
		if hasHighlight(eval.Highlights, h.Title) {
			continue
		}
		eval.Highlights = append(eval.Highlights, h)
	}

	if len(eval.TopExhibitors) > MaxMatches {
		eval.TopExhibitors = eval.TopExhibitors[:MaxMatches]
	}
	for i := range eval.TopExhibitors {
		eval.TopExhibitors[i].MatchScore = clamp(eval.TopExhibitors[i].MatchScore, 0, 100)
	}
}

func hasHighlight(hs []Highlight, title string) bool {
	for _, h := range hs {
		if h.Title == title {
			return true
		}
	}
	return false
}
