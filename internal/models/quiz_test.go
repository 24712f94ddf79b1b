package models

import "testing"

func sampleMCQs() []MCQ {
	return []MCQ{
		{Question: "Q1", Choices: []string{"a", "b", "c", "d"}, Answer: "b"},
		{Question: "Q2", Choices: []string{"a", "b", "c", "d"}, Answer: "d"},
		{Question: "Q3", Choices: []string{"a", "b", "c", "d"}, Answer: "a"},
	}
}

func strPtr(s string) *string { return &s }

func TestGrade(t *testing.T) {
	mcqs := sampleMCQs()

	answers, correct := Grade(mcqs, []*string{strPtr("b"), strPtr("a"), strPtr("a")})
	if correct != 2 {
		t.Fatalf("correct = %d, want 2", correct)
	}
	if len(answers) != 3 {
		t.Fatalf("got %d answer records, want 3", len(answers))
	}
	if answers[1].SelectedAnswer != "a" || answers[1].CorrectAnswer != "d" {
		t.Errorf("record = %+v, want selected a / correct d", answers[1])
	}
}

func TestGradeUnanswered(t *testing.T) {
	mcqs := sampleMCQs()

	answers, correct := Grade(mcqs, []*string{nil, strPtr("d"), nil})
	if correct != 1 {
		t.Fatalf("correct = %d, want 1", correct)
	}
	if answers[0].SelectedAnswer != "" {
		t.Errorf("unanswered question should record an empty selection, got %q", answers[0].SelectedAnswer)
	}
}

func TestGradeShortSelection(t *testing.T) {
	mcqs := sampleMCQs()

	answers, correct := Grade(mcqs, []*string{strPtr("b")})
	if correct != 1 {
		t.Fatalf("correct = %d, want 1", correct)
	}
	if len(answers) != 3 {
		t.Fatalf("got %d answer records, want one per question", len(answers))
	}
}

func TestSanitizeBlanksAnswersWithoutMutating(t *testing.T) {
	mcqs := sampleMCQs()

	out := Sanitize(mcqs)
	for i, q := range out {
		if q.Answer != "" {
			t.Errorf("question %d still carries answer %q", i, q.Answer)
		}
	}
	if mcqs[0].Answer != "b" {
		t.Error("Sanitize mutated the original slice")
	}
}

func TestSanitizeSets(t *testing.T) {
	sets := []ScenarioSet{
		{Scenario: "s1", Questions: sampleMCQs()},
		{Scenario: "s2", Questions: sampleMCQs()[:1]},
	}

	out := SanitizeSets(sets)
	if out[0].Scenario != "s1" || out[1].Scenario != "s2" {
		t.Error("scenarios should be preserved")
	}
	for _, s := range out {
		for _, q := range s.Questions {
			if q.Answer != "" {
				t.Fatalf("answer leaked in set %q", s.Scenario)
			}
		}
	}
}

func TestCountQuestions(t *testing.T) {
	sets := []ScenarioSet{
		{Scenario: "s1", Questions: sampleMCQs()},
		{Scenario: "s2", Questions: sampleMCQs()[:2]},
	}
	if got := CountQuestions(sets); got != 5 {
		t.Errorf("CountQuestions = %d, want 5", got)
	}
	if got := CountQuestions(nil); got != 0 {
		t.Errorf("CountQuestions(nil) = %d, want 0", got)
	}
}
