package capability

import (
	"regexp"
	"strings"
)

// KeywordIntentClassifier matches a transcription against regular
// expressions to decide its IntentAction, falling back to a configured
// cooking menu lookup for cooking_task utterances. Swap for an
// LLM-backed IntentClassifier when keyword coverage isn't enough.
type KeywordIntentClassifier struct {
	patterns []classifierRule
	menus    map[string]string // menu keyword -> menu template code
}

type classifierRule struct {
	regex  *regexp.Regexp
	intent string
}

// NewKeywordIntentClassifier builds the default keyword classifier.
func NewKeywordIntentClassifier() *KeywordIntentClassifier {
	return &KeywordIntentClassifier{
		patterns: []classifierRule{
			{regexp.MustCompile(`(?i)^(turn on|switch on)\b`), "turn_on"},
			{regexp.MustCompile(`(?i)^(turn off|switch off)\b`), "turn_off"},
			{regexp.MustCompile(`(?i)^(buy|purchase|order)\b`), "purchase"},
			{regexp.MustCompile(`(?i)^(cancel|stop|never mind)$`), "cancel"},
			{regexp.MustCompile(`(?i)^(what do you see|what.?s that|look)\??$`), "what_you_see"},
			{regexp.MustCompile(`(?i)^(cook|make|let'?s (cook|make))\b`), "cooking_task"},
			{regexp.MustCompile(`(?i)^(yes|yeah|confirm|sure|ok|okay)$`), "confirm"},
			{regexp.MustCompile(`(?i)^(next|done|continue)$`), "next"},
			{regexp.MustCompile(`(?i)^(repeat|again|what\??|say that again)$`), "repeat"},
		},
		menus: map[string]string{
			"carrot": "carrot_salad",
			"potato": "potato_salad",
		},
	}
}

// Classify matches text against the configured patterns, attaching the
// recognized menu keyword as the payload when the intent is cooking_task.
func (c *KeywordIntentClassifier) Classify(text string) Inference {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Inference{Understood: false}
	}

	for _, rule := range c.patterns {
		if !rule.regex.MatchString(trimmed) {
			continue
		}
		slots := map[string]string{}
		if rule.intent == "cooking_task" {
			lower := strings.ToLower(trimmed)
			for keyword, menu := range c.menus {
				if strings.Contains(lower, keyword) {
					slots["menu"] = menu
					break
				}
			}
		}
		return Inference{Understood: true, Intent: rule.intent, Slots: slots}
	}

	return Inference{Understood: false}
}
