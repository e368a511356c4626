package engine

import (
	"fmt"
	"strings"
)

// Tier is one of the three fixed proficiency bands.
type Tier string

const (
	TierDasar    Tier = "dasar"
	TierMenengah Tier = "menengah"
	TierLanjutan Tier = "lanjutan"
)

// PathItem is a single step in a learning plan.
type PathItem struct {
	Title     string `json:"title"`
	Objective string `json:"objective"`
	Activity  string `json:"activity"`
}

// PathwayPlan is the tiered learning plan for one topic.
type PathwayPlan struct {
	Level       Tier       `json:"level"`
	Plan        []PathItem `json:"plan"`
	Recommended []string   `json:"recommended"`
}

// tierTemplate holds the fixed plan shape for a tier. The first item's
// title interpolates the topic; the second item is constant.
type tierTemplate struct {
	titleFormat    string
	firstObjective string
	firstActivity  string
	second         PathItem
	recommended    []string
}

var tierTemplates = map[Tier]tierTemplate{
	TierDasar: {
		titleFormat:    "Pengenalan %s",
		firstObjective: "Memahami konsep inti",
		firstActivity:  "Baca ringkasan + 3 contoh",
		second: PathItem{
			Title:     "Latihan ringan",
			Objective: "Menguatkan pemahaman",
			Activity:  "Kerjakan 5 soal pilihan ganda",
		},
		recommended: []string{"Video pengantar 5 menit", "Kartu ringkas istilah"},
	},
	TierMenengah: {
		titleFormat:    "Pendalaman %s",
		firstObjective: "Menghubungkan konsep",
		firstActivity:  "Buat peta konsep sederhana",
		second: PathItem{
			Title:     "Latihan terarah",
			Objective: "Terapan dasar",
			Activity:  "Kerjakan 5 soal cerita",
		},
		recommended: []string{"Artikel ringkas", "Latihan interaktif"},
	},
	TierLanjutan: {
		titleFormat:    "Aplikasi %s",
		firstObjective: "Pemecahan masalah",
		firstActivity:  "Proyek mini 1 halaman",
		second: PathItem{
			Title:     "Refleksi",
			Objective: "Menjelaskan ke orang lain",
			Activity:  "Tulis ringkasan 150 kata",
		},
		recommended: []string{"Bank soal tingkat lanjut", "Topik terkait untuk eksplorasi"},
	},
}

// tierFor maps a proficiency score to its band. Scores outside [1,5]
// are clamped rather than rejected; range validation belongs to the
// request binding layer.
func tierFor(proficiency int) Tier {
	switch {
	case proficiency <= 2:
		return TierDasar
	case proficiency == 3:
		return TierMenengah
	default:
		return TierLanjutan
	}
}

// PlanPath builds the fixed two-item learning plan for a topic at the
// tier selected by proficiency. The topic is interpolated verbatim into
// the first item; callers must sanitize it for their rendering context.
func PlanPath(topic string, proficiency int) PathwayPlan {
	topic = strings.TrimSpace(topic)
	tier := tierFor(proficiency)
	tpl := tierTemplates[tier]

	return PathwayPlan{
		Level: tier,
		Plan: []PathItem{
			{
				Title:     fmt.Sprintf(tpl.titleFormat, topic),
				Objective: tpl.firstObjective,
				Activity:  tpl.firstActivity,
			},
			tpl.second,
		},
		Recommended: tpl.recommended,
	}
}
