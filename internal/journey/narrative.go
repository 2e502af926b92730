package journey

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

const narrativeTemperature = 0.7

// NarrativeGenerator writes the prose sections of a journey plan. It never
// fails: any provider or parse problem falls back to deterministic copy built
// from the profile, so a plan always ships with a narrative.
type NarrativeGenerator struct {
	caller LLMCaller
}

func NewNarrativeGenerator(caller LLMCaller) *NarrativeGenerator {
	return &NarrativeGenerator{caller: caller}
}

func (n *NarrativeGenerator) Generate(ctx context.Context, profile VisitorProfile, score, matchCount, categoryCount int) Narrative {
	prompt := BuildNarrativePrompt(profile, score, matchCount, categoryCount)
	raw, err := n.caller.GenerateJSON(ctx, prompt, narrativeTemperature)
	if err != nil {
		log.Printf("narrative generation failed, using fallback: %v", err)
		return FallbackNarrative(profile, score, matchCount, categoryCount)
	}
	var nar Narrative
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &nar); err != nil {
		log.Printf("narrative response unparseable, using fallback: %v", err)
		return FallbackNarrative(profile, score, matchCount, categoryCount)
	}
	if !narrativeComplete(nar) {
		log.Printf("narrative response incomplete, using fallback")
		return FallbackNarrative(profile, score, matchCount, categoryCount)
	}
	return nar
}

func narrativeComplete(n Narrative) bool {
	if n.GeneralOverview == "" || n.ScoreJustification == "" {
		return false
	}
	if len(n.Benefits) < 4 || len(n.Benefits) > 5 {
		return false
	}
	if len(n.Recommendations) < 3 || len(n.Recommendations) > 4 {
		return false
	}
	return true
}

// FallbackNarrative produces the deterministic copy used when the model is
// unavailable or off-contract.
func FallbackNarrative(profile VisitorProfile, score, matchCount, categoryCount int) Narrative {
	return Narrative{
		GeneralOverview: fmt.Sprintf(
			"Gulfood 2026 brings together thousands of food and beverage exhibitors from over 120 countries at the Dubai World Trade Centre. For %s, the show offers a concentrated week of product discovery, supplier meetings and market intelligence across every major F&B category.",
			profile.Organization),
		ScoreJustification: fmt.Sprintf(
			"Based on your profile as a %s at %s, your relevance score is %d out of 100, reflecting a %s fit between your stated interests and the exhibitor lineup.",
			profile.Role, profile.Organization, score, scoreBand(score)),
		Benefits: []string{
			fmt.Sprintf("Meet %d exhibitors matched to your interests face to face in a single venue.", matchCount),
			fmt.Sprintf("Compare offerings across %d product categories relevant to %s.", categoryCount, profile.Organization),
			"Discover new products and innovations before they reach your market.",
			"Build regional supplier and distributor relationships in the MENA trade hub.",
		},
		Recommendations: []string{
			"Book meetings with your top-matched exhibitors before the show to secure their time.",
			"Plan each day around one or two halls to cut walking time between stands.",
			"Leave open slots in your schedule for the discoveries you have not planned for.",
		},
	}
}
