package journey

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeCaller struct {
	responses []string
	err       error
	calls     int
	prompts   []string
	temps     []float64
}

func (f *fakeCaller) GenerateJSON(_ context.Context, prompt string, temperature float64) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	f.temps = append(f.temps, temperature)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("fakeCaller: no responses left")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func evalResponse(score int, highlights, exhibitors int) string {
	h := ""
	for i := 0; i < highlights; i++ {
		if i > 0 {
			h += ","
		}
		h += fmt.Sprintf(`{"icon":"map-pin","title":"Highlight %d","description":"d"}`, i+1)
	}
	e := ""
	for i := 0; i < exhibitors; i++ {
		if i > 0 {
			e += ","
		}
		e += fmt.Sprintf(`{"exhibitorId":%d,"matchScore":90,"personalizedReason":"fit"}`, i+1)
	}
	return fmt.Sprintf(`{"overallRelevanceScore":%d,"scoreReasoning":"r","highlights":[%s],"topExhibitors":[%s]}`, score, h, e)
}

func TestEvaluateParsesFencedResponse(t *testing.T) {
	caller := &fakeCaller{responses: []string{"```json\n" + evalResponse(85, 4, 3) + "\n```"}}
	ev := NewEvaluator(caller)
	got, err := ev.Evaluate(context.Background(), VisitorProfile{Organization: "Acme", Role: "CEO"}, exhibitorFixture(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OverallRelevanceScore != 85 {
		t.Fatalf("score = %d, want 85", got.OverallRelevanceScore)
	}
	if caller.temps[0] != evaluationTemperature {
		t.Fatalf("temperature = %v, want %v", caller.temps[0], evaluationTemperature)
	}
}

func TestEvaluateSingleAttempt(t *testing.T) {
	caller := &fakeCaller{responses: []string{"not json at all"}}
	ev := NewEvaluator(caller)
	_, err := ev.Evaluate(context.Background(), VisitorProfile{}, nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if caller.calls != 1 {
		t.Fatalf("expected exactly one call, got %d", caller.calls)
	}
	if IsTransportError(err) {
		t.Fatal("parse failures are not transport failures")
	}
}

func TestEvaluatePropagatesTransportError(t *testing.T) {
	caller := &fakeCaller{err: &TransportError{Err: errors.New("boom")}}
	ev := NewEvaluator(caller)
	_, err := ev.Evaluate(context.Background(), VisitorProfile{}, nil)
	if !IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestRepairEvaluationClampsScore(t *testing.T) {
	for in, want := range map[int]int{150: 100, -5: 0, 42: 42} {
		eval := Evaluation{OverallRelevanceScore: in}
		repairEvaluation(&eval)
		if eval.OverallRelevanceScore != want {
			t.Fatalf("clamp(%d) = %d, want %d", in, eval.OverallRelevanceScore, want)
		}
	}
}

func TestRepairEvaluationBackfillsHighlights(t *testing.T) {
	eval := Evaluation{Highlights: []Highlight{{Icon: IconUsers, Title: "Industry Networking Hub", Description: "x"}}}
	repairEvaluation(&eval)
	if len(eval.Highlights) != MinHighlights {
		t.Fatalf("expected %d highlights after backfill, got %d", MinHighlights, len(eval.Highlights))
	}
	// The existing title must not be duplicated by the backfill.
	seen := map[string]int{}
	for _, h := range eval.Highlights {
		seen[h.Title]++
	}
	if seen["Industry Networking Hub"] != 1 {
		t.Fatalf("backfill duplicated an existing highlight: %v", seen)
	}
}

func TestRepairEvaluationCoercesUnknownIcons(t *testing.T) {
	eval := Evaluation{Highlights: []Highlight{
		{Icon: "rocket", Title: "A", Description: "d"},
		{Icon: IconGlobe, Title: "B", Description: "d"},
		{Icon: "sparkles", Title: "C", Description: "d"},
		{Icon: IconAward, Title: "D", Description: "d"},
	}}
	repairEvaluation(&eval)
	if eval.Highlights[0].Icon != IconStar || eval.Highlights[2].Icon != IconStar {
		t.Fatalf("unknown icons should coerce to star: %v", eval.Highlights)
	}
	if eval.Highlights[1].Icon != IconGlobe || eval.Highlights[3].Icon != IconAward {
		t.Fatal("known icons should be untouched")
	}
}

func TestRepairEvaluationTruncatesRanking(t *testing.T) {
	eval := Evaluation{}
	for i := 0; i < 15; i++ {
		eval.TopExhibitors = append(eval.TopExhibitors, RankedExhibitor{ExhibitorID: int64(i + 1), MatchScore: 200})
	}
	repairEvaluation(&eval)
	if len(eval.TopExhibitors) != MaxMatches {
		t.Fatalf("expected %d ranked exhibitors, got %d", MaxMatches, len(eval.TopExhibitors))
	}
	for _, r := range eval.TopExhibitors {
		if r.MatchScore != 100 {
			t.Fatalf("per-match score not clamped: %d", r.MatchScore)
		}
	}
}
