package engine

import (
	"strings"
	"testing"
)

func TestAnswerQuestionClassification(t *testing.T) {
	cases := []struct {
		name     string
		question string
		want     Branch
	}{
		{
			name:     "rumus_keyword",
			question: "Tolong tuliskan rumus kecepatan",
			want:     BranchComputational,
		},
		{
			name:     "rumus_uppercase_still_computational",
			question: "Apa RUMUS pythagoras",
			want:     BranchComputational,
		},
		{
			name:     "luas_with_question_mark_stays_computational",
			question: "Berapa luas lingkaran?",
			want:     BranchComputational,
		},
		{
			name:     "keliling_keyword",
			question: "hitung keliling persegi",
			want:     BranchComputational,
		},
		{
			name:     "trailing_question_mark",
			question: "Apa itu fotosintesis?",
			want:     BranchInterrogative,
		},
		{
			name:     "trimmed_before_suffix_check",
			question: "  Apa itu fotosintesis?  ",
			want:     BranchInterrogative,
		},
		{
			name:     "plain_statement",
			question: "jelaskan proses fotosintesis",
			want:     BranchDefault,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AnswerQuestion(tc.question, "umum")
			if got.Branch != tc.want {
				t.Fatalf("AnswerQuestion(%q) branch=%q, want %q", tc.question, got.Branch, tc.want)
			}
			if len(got.Steps) != 4 {
				t.Fatalf("branch %q has %d steps, want 4", got.Branch, len(got.Steps))
			}
		})
	}
}

func TestAnswerQuestionTipsConstant(t *testing.T) {
	a := AnswerQuestion("Berapa luas lingkaran?", "smp")
	b := AnswerQuestion("Apa itu hujan?", "sd")
	c := AnswerQuestion("jelaskan gravitasi", "umum")

	for _, answer := range []TutorAnswer{a, b, c} {
		if len(answer.Tips) != 3 {
			t.Fatalf("got %d tips, want 3", len(answer.Tips))
		}
		for i := range answer.Tips {
			if answer.Tips[i] != a.Tips[i] {
				t.Fatalf("tips differ across branches: %q vs %q", answer.Tips[i], a.Tips[i])
			}
		}
	}
}

func TestAnswerQuestionEchoesTopic(t *testing.T) {
	got := AnswerQuestion("  Apa itu hujan?  ", "sd")
	if !strings.HasPrefix(got.Answer, "Menjawab: 'Apa itu hujan?'. ") {
		t.Fatalf("answer %q does not echo trimmed question", got.Answer)
	}
}

func TestAnswerQuestionTruncatesLongTopic(t *testing.T) {
	long := strings.Repeat("a", 200) + "?"
	got := AnswerQuestion(long, "umum")

	echoed := strings.TrimPrefix(got.Answer, "Menjawab: '")
	end := strings.Index(echoed, "'. ")
	if end < 0 {
		t.Fatalf("answer %q missing topic echo delimiter", got.Answer)
	}
	if end != 80 {
		t.Fatalf("echoed topic has %d chars, want 80", end)
	}
}

func TestAnswerQuestionLevelInert(t *testing.T) {
	for _, level := range []string{"sd", "smp", "sma", "umum", ""} {
		got := AnswerQuestion("Apa itu hujan?", level)
		if got.Branch != BranchInterrogative {
			t.Fatalf("level %q changed branch to %q", level, got.Branch)
		}
	}
}
