package journey

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const goodNarrative = `{"generalOverview":"A tailored week at Gulfood.","scoreJustification":"Strong overlap.","benefits":["b1","b2","b3","b4"],"recommendations":["r1","r2","r3"]}`

func TestNarrativeUsesModelOutput(t *testing.T) {
	caller := &fakeCaller{responses: []string{goodNarrative}}
	gen := NewNarrativeGenerator(caller)
	got := gen.Generate(context.Background(), VisitorProfile{Organization: "Acme", Role: "CEO"}, 85, 8, 3)
	if got.GeneralOverview != "A tailored week at Gulfood." {
		t.Fatalf("model output not used: %v", got)
	}
	if caller.temps[0] != narrativeTemperature {
		t.Fatalf("temperature = %v, want %v", caller.temps[0], narrativeTemperature)
	}
}

func TestNarrativeFallsBackOnTransportError(t *testing.T) {
	caller := &fakeCaller{err: &TransportError{Err: errors.New("down")}}
	gen := NewNarrativeGenerator(caller)
	got := gen.Generate(context.Background(), VisitorProfile{Organization: "Acme Foods", Role: "Buyer"}, 62, 7, 4)
	if got.GeneralOverview == "" || got.ScoreJustification == "" {
		t.Fatal("fallback narrative incomplete")
	}
	if !strings.Contains(got.ScoreJustification, "62") {
		t.Fatalf("fallback should cite the score: %q", got.ScoreJustification)
	}
	if !strings.Contains(got.ScoreJustification, "good") {
		t.Fatalf("fallback should cite the fit band: %q", got.ScoreJustification)
	}
	if len(got.Benefits) != 4 || len(got.Recommendations) != 3 {
		t.Fatalf("fallback shape wrong: %d benefits, %d recommendations", len(got.Benefits), len(got.Recommendations))
	}
}

func TestNarrativeFallsBackOnBadJSON(t *testing.T) {
	caller := &fakeCaller{responses: []string{"sorry, I cannot do that"}}
	gen := NewNarrativeGenerator(caller)
	got := gen.Generate(context.Background(), VisitorProfile{Organization: "Acme", Role: "CEO"}, 10, 2, 1)
	if !strings.Contains(got.ScoreJustification, "limited") {
		t.Fatalf("expected limited band in fallback: %q", got.ScoreJustification)
	}
}

func TestNarrativeFallsBackOnIncompleteOutput(t *testing.T) {
	// Too few benefits.
	caller := &fakeCaller{responses: []string{`{"generalOverview":"x","scoreJustification":"y","benefits":["b1"],"recommendations":["r1","r2","r3"]}`}}
	gen := NewNarrativeGenerator(caller)
	got := gen.Generate(context.Background(), VisitorProfile{Organization: "Acme", Role: "CEO"}, 85, 5, 2)
	if got.GeneralOverview == "x" {
		t.Fatal("incomplete model output should be replaced by fallback")
	}
	if len(got.Benefits) < 4 {
		t.Fatalf("fallback benefits too few: %d", len(got.Benefits))
	}
}
