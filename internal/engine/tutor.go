package engine

import (
	"strings"
)

// Branch identifies which tutoring rule matched a question.
type Branch string

const (
	BranchComputational Branch = "computational"
	BranchInterrogative Branch = "interrogative"
	BranchDefault       Branch = "default"
)

const topicEchoLimit = 80

// TutorAnswer is the rule engine output for a single question.
type TutorAnswer struct {
	Branch Branch   `json:"-"`
	Answer string   `json:"answer"`
	Steps  []string `json:"steps"`
	Tips   []string `json:"tips"`
}

var computationalKeywords = []string{"rumus", "formula", "luas", "keliling"}

// classificationRules is evaluated top to bottom, first match wins. The
// keyword check intentionally pre-empts the trailing-"?" check so that
// "Berapa luas lingkaran?" lands in the computational branch.
var classificationRules = []struct {
	match  func(q string) bool
	branch Branch
}{
	{matchComputational, BranchComputational},
	{matchInterrogative, BranchInterrogative},
	{func(string) bool { return true }, BranchDefault},
}

func matchComputational(q string) bool {
	lower := strings.ToLower(q)
	for _, keyword := range computationalKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func matchInterrogative(q string) bool {
	return strings.HasSuffix(q, "?")
}

var branchSteps = map[Branch][]string{
	BranchComputational: {
		"Identifikasi besaran yang diketahui",
		"Tulis rumus yang sesuai",
		"Substitusi nilai, hitung tahap demi tahap",
		"Tulis jawaban dengan satuan yang benar",
	},
	BranchInterrogative: {
		"Pahami pertanyaan",
		"Cari konsep utama",
		"Berikan contoh sederhana",
		"Simpulkan",
	},
	BranchDefault: {
		"Pecah persoalan",
		"Cari definisi",
		"Hubungkan dengan contoh",
		"Simpulkan",
	},
}

var branchAnswers = map[Branch]string{
	BranchComputational: "Untuk soal berhitung, gunakan rumus yang tepat lalu hitung tahap demi tahap.",
	BranchInterrogative: "Berikut penjelasan singkat dengan bahasa sederhana sesuai pertanyaanmu.",
	BranchDefault:       "Ini adalah jawaban ringkas yang mudah diikuti.",
}

// generalTips is identical across all branches and all calls.
var generalTips = []string{
	"Baca soal perlahan dan tandai kata kunci.",
	"Ubah pertanyaan menjadi kalimat pernyataan untuk membantu memahami.",
	"Coba jelaskan kembali dengan bahasamu sendiri.",
}

// AnswerQuestion classifies a question and renders the matched branch's
// fixed answer, steps and tips. The level parameter is accepted for
// forward compatibility but does not alter the output yet.
func AnswerQuestion(question, level string) TutorAnswer {
	_ = level

	q := strings.TrimSpace(question)

	branch := BranchDefault
	for _, rule := range classificationRules {
		if rule.match(q) {
			branch = rule.branch
			break
		}
	}

	topic := q
	if runes := []rune(q); len(runes) > topicEchoLimit {
		topic = string(runes[:topicEchoLimit])
	}

	return TutorAnswer{
		Branch: branch,
		Answer: "Menjawab: '" + topic + "'. " + branchAnswers[branch],
		Steps:  branchSteps[branch],
		Tips:   generalTips,
	}
}
