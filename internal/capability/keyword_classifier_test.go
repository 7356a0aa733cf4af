package capability

import "testing"

func TestKeywordIntentClassifierCookingTask(t *testing.T) {
	c := NewKeywordIntentClassifier()
	inf := c.Classify("let's cook the carrot salad")
	if !inf.Understood || inf.Intent != "cooking_task" {
		t.Fatalf("got %+v, want cooking_task", inf)
	}
	if inf.Slots["menu"] != "carrot_salad" {
		t.Fatalf("got menu %q, want carrot_salad", inf.Slots["menu"])
	}
}

func TestKeywordIntentClassifierConfirm(t *testing.T) {
	c := NewKeywordIntentClassifier()
	inf := c.Classify("yes")
	if !inf.Understood || inf.Intent != "confirm" {
		t.Fatalf("got %+v, want confirm", inf)
	}
}

func TestKeywordIntentClassifierUnmatched(t *testing.T) {
	c := NewKeywordIntentClassifier()
	inf := c.Classify("the weather is nice today")
	if inf.Understood {
		t.Fatalf("expected unmatched utterance to be not understood, got %+v", inf)
	}
}

func TestKeywordIntentClassifierEmpty(t *testing.T) {
	c := NewKeywordIntentClassifier()
	if inf := c.Classify("   "); inf.Understood {
		t.Fatal("expected empty input to be not understood")
	}
}
