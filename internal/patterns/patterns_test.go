package patterns

import "testing"

func TestNormalize(t *testing.T) {
	got := Normalize("BP is 140/90, with proteinuria!")
	want := " bp is 140 90 with proteinuria "
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestContainsTerm_WholeWord(t *testing.T) {
	norm := Normalize("the patient has hypertension")
	if !ContainsTerm(norm, "hypertension") {
		t.Error("expected hypertension to match")
	}
	if ContainsTerm(norm, "tension") {
		t.Error("partial word should not match")
	}
}

func TestContainsTerm_Phrase(t *testing.T) {
	norm := Normalize("Managed with magnesium sulfate.")
	if !ContainsTerm(norm, "magnesium sulfate") {
		t.Error("expected phrase to match")
	}
}

func TestMatchTerms_PreservesOrder(t *testing.T) {
	matched := MatchTerms("edema and hypertension", []string{"hypertension", "edema", "sepsis"})
	if len(matched) != 2 {
		t.Fatalf("got %d matches, want 2", len(matched))
	}
	if matched[0] != "hypertension" || matched[1] != "edema" {
		t.Errorf("got %v, want table order", matched)
	}
}

func TestClassifyNature(t *testing.T) {
	tests := []struct {
		title string
		want  SubtopicNature
	}{
		{"Preeclampsia pathophysiology", NatureMechanism},
		{"DKA diagnosis and workup", NatureDiagnosis},
		{"Acute management of asthma", NatureManagement},
		{"Risk factors and prevention", NatureRisk},
		{"Overview", NatureGeneral},
	}
	for _, tt := range tests {
		if got := ClassifyNature(tt.title); got != tt.want {
			t.Errorf("ClassifyNature(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestCategoriesForNature_GeneralCoversAll(t *testing.T) {
	cats := CategoriesForNature(NatureGeneral)
	if len(cats) != 5 {
		t.Errorf("general nature should score against all 5 categories, got %d", len(cats))
	}
}

func TestFindTopicProfile(t *testing.T) {
	tests := []struct {
		topic string
		want  string
		ok    bool
	}{
		{"Preeclampsia", "Preeclampsia", true},
		{"preeclampsia in pregnancy", "Preeclampsia", true},
		{"DKA", "Diabetic ketoacidosis", true},
		{"pneumonia", "Community-acquired pneumonia", true},
		{"quantum chromodynamics", "", false},
	}
	for _, tt := range tests {
		tp, ok := FindTopicProfile(tt.topic)
		if ok != tt.ok {
			t.Errorf("FindTopicProfile(%q) ok = %v, want %v", tt.topic, ok, tt.ok)
			continue
		}
		if ok && tp.Topic != tt.want {
			t.Errorf("FindTopicProfile(%q) = %q, want %q", tt.topic, tp.Topic, tt.want)
		}
	}
}

func TestFindSubtopicProfile_ExactTitle(t *testing.T) {
	sp, ok := FindSubtopicProfile("Preeclampsia pathophysiology", "Preeclampsia")
	if !ok {
		t.Fatal("expected profile")
	}
	found := false
	for _, c := range sp.ExpectedConcepts {
		if c == "placental dysfunction" {
			found = true
		}
	}
	if !found {
		t.Error("pathophysiology profile should expect placental dysfunction")
	}
}

func TestFindSubtopicProfile_KeywordFallback(t *testing.T) {
	sp, ok := FindSubtopicProfile("How is preeclampsia treated? (management)", "Preeclampsia")
	if !ok {
		t.Fatal("expected keyword match")
	}
	if sp.Title != "Preeclampsia management" {
		t.Errorf("got %q, want management profile", sp.Title)
	}
}

func TestFindSubtopicProfile_UnknownTopic(t *testing.T) {
	if _, ok := FindSubtopicProfile("anything", "basket weaving"); ok {
		t.Error("unknown topic should not resolve a profile")
	}
}
