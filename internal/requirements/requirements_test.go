package requirements

import (
	"reflect"
	"testing"

	"github.com/oslerlabs/osler/internal/patterns"
)

func TestGenerate_KnownSubtopic(t *testing.T) {
	req := Generate("Preeclampsia pathophysiology", "Preeclampsia")
	if !req.HasExpectedConcepts() {
		t.Fatal("known subtopic should have expected concepts")
	}
	if req.MaxQuestions <= 0 {
		t.Error("question budget must be positive")
	}
	if req.Nature != patterns.NatureMechanism {
		t.Errorf("got nature %q, want mechanism", req.Nature)
	}
}

func TestGenerate_UnknownTopicFallsBack(t *testing.T) {
	req := Generate("History of the Ottoman Empire", "World History")
	if req.HasExpectedConcepts() {
		t.Error("generic profile should have no expected concepts")
	}
	if req.MaxQuestions != patterns.DefaultMaxQuestions {
		t.Errorf("got budget %d, want default %d", req.MaxQuestions, patterns.DefaultMaxQuestions)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("DKA management", "Diabetic ketoacidosis")
	b := Generate("DKA management", "Diabetic ketoacidosis")
	if !reflect.DeepEqual(a, b) {
		t.Error("same inputs must produce identical requirements")
	}
}

func TestCache_IdempotentWithinSession(t *testing.T) {
	c := NewCache()
	a := c.Get("Preeclampsia management", "Preeclampsia")
	b := c.Get("Preeclampsia management", "Preeclampsia")
	if !reflect.DeepEqual(a, b) {
		t.Error("cache must return identical requirements for the same pair")
	}
	if c.Len() != 1 {
		t.Errorf("got %d entries, want 1", c.Len())
	}
}

func TestCache_DistinctPairs(t *testing.T) {
	c := NewCache()
	c.Get("Preeclampsia management", "Preeclampsia")
	c.Get("Preeclampsia diagnosis", "Preeclampsia")
	if c.Len() != 2 {
		t.Errorf("got %d entries, want 2", c.Len())
	}
}
