package capability

import (
	"context"
	"time"

	"github.com/noxowl/smartspeaker/internal/gpt"
)

// GPTIntentClassifier falls back to an LLM when a primary classifier
// fails to recognize an utterance. Satisfies IntentClassifier.
type GPTIntentClassifier struct {
	primary    IntentClassifier
	classifier *gpt.Classifier
	timeout    time.Duration
}

// NewGPTIntentClassifier wraps primary with an LLM fallback: primary runs
// first, and the GPT classifier is only consulted when primary reports
// Understood=false.
func NewGPTIntentClassifier(primary IntentClassifier, classifier *gpt.Classifier) *GPTIntentClassifier {
	return &GPTIntentClassifier{primary: primary, classifier: classifier, timeout: 5 * time.Second}
}

func (c *GPTIntentClassifier) Classify(text string) Inference {
	if inf := c.primary.Classify(text); inf.Understood {
		return inf
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	result, err := c.classifier.Classify(ctx, text)
	if err != nil || result.Intent == "" || result.Intent == "none" {
		return Inference{Understood: false}
	}

	slots := map[string]string{}
	if result.Menu != "" {
		slots["menu"] = result.Menu
	}
	return Inference{Understood: true, Intent: result.Intent, Slots: slots}
}
