package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"aiquizzer/internal/models"
)

func TestStripFences(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare json", `[{"scenario":"s"}]`, `[{"scenario":"s"}]`},
		{"fenced with language", "```json\n[1,2]\n```", "[1,2]"},
		{"fenced without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n[]\n```\n ", "[]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripFences(tc.input); got != tc.expected {
				t.Errorf("stripFences(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

const sampleQuestionJSON = `[
  {
    "scenario": "A small business faces repeated intrusion attempts.",
    "questions": [
      {
        "question": "What is the most immediate risk?",
        "choices": ["a) Weak passwords", "b) Old hardware", "c) Slow network", "d) Staff turnover"],
        "answer": "a) Weak passwords"
      },
      {
        "question": "Which control mitigates credential reuse?",
        "choices": ["a) Longer passwords", "b) MFA", "c) VPN", "d) Firewall"],
        "answer": "b) MFA"
      }
    ]
  }
]`

func TestParseGeneratedQuestions(t *testing.T) {
	fenced := "```json\n" + sampleQuestionJSON + "\n```"

	var sets []models.ScenarioSet
	if err := json.Unmarshal([]byte(stripFences(fenced)), &sets); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("expected 1 scenario set, got %d", len(sets))
	}
	if models.CountQuestions(sets) != 2 {
		t.Errorf("expected 2 questions, got %d", models.CountQuestions(sets))
	}
	if sets[0].Questions[1].Answer != "b) MFA" {
		t.Errorf("unexpected answer text: %q", sets[0].Questions[1].Answer)
	}
}

func TestParseGeneratedFeedback(t *testing.T) {
	// Counts come back as strings from some providers and numbers from others.
	inputs := []string{
		`{"overall_performance":"Good","correct_vs_incorrect":{"correct_count":"8","incorrect_count":"2","analysis":"Struggled with hard questions."},"areas_of_improvement":"Protocols","topic_specific_feedback":"Study firewalls","next_steps":"Practice"}`,
		`{"overall_performance":"Good","correct_vs_incorrect":{"correct_count":8,"incorrect_count":2,"analysis":"Struggled with hard questions."},"areas_of_improvement":"Protocols","topic_specific_feedback":"Study firewalls","next_steps":"Practice"}`,
	}

	for _, input := range inputs {
		var fb models.Feedback
		if err := json.Unmarshal([]byte(input), &fb); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if fb.OverallPerformance != "Good" {
			t.Errorf("overall_performance = %q", fb.OverallPerformance)
		}
		if fb.CorrectVsIncorrect.Analysis == "" {
			t.Error("analysis should not be empty")
		}
	}
}

func TestBuildQuestionPrompt(t *testing.T) {
	prompt := BuildQuestionPrompt([]string{"SQL", "NETWORKING"}, "medium")
	for _, want := range []string{"SQL, NETWORKING", "Difficulty: medium", "JSON array"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildFeedbackPrompt(t *testing.T) {
	prompt := BuildFeedbackPrompt(FeedbackInput{
		Topic:                 "Cybersecurity",
		TotalScore:            8,
		TotalQuestions:        10,
		CorrectCount:          8,
		IncorrectCount:        2,
		Difficulty:            "medium",
		DifficultyPerformance: "Moderate performance on hard questions",
	})
	for _, want := range []string{"Cybersecurity", "Total Questions: 10", "Incorrect Answers: 2", "JSON object"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
