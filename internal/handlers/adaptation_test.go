package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gramtop961/aiduc-backend/internal/logger"
	"github.com/gramtop961/aiduc-backend/internal/services"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	handler := NewAdaptationHandler(services.NewAdaptationService(log))

	router := gin.New()
	router.POST("/neotutor/ask", handler.Ask)
	router.POST("/flexa/convert", handler.Convert)
	router.POST("/eyeread/scan", handler.Scan)
	router.POST("/pathly/plan", handler.Plan)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAskEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "/neotutor/ask", `{"question":"Berapa luas lingkaran?","level":"smp"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Answer string   `json:"answer"`
		Steps  []string `json:"steps"`
		Tips   []string `json:"tips"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.HasPrefix(resp.Answer, "Menjawab: 'Berapa luas lingkaran?'. ") {
		t.Fatalf("answer=%q", resp.Answer)
	}
	if len(resp.Steps) != 4 || len(resp.Tips) != 3 {
		t.Fatalf("got %d steps and %d tips", len(resp.Steps), len(resp.Tips))
	}
}

func TestAskEndpointRejectsShortQuestion(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "/neotutor/ask", `{"question":"ab"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
	var envelope ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Error.Code != "invalid_request" {
		t.Fatalf("error code=%q", envelope.Error.Code)
	}
}

func TestConvertEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "/flexa/convert", `{"text":"Halo dunia\napa kabar"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		AudioURL  *string  `json:"audio_url"`
		LargeText string   `json:"large_text"`
		Summary   string   `json:"summary"`
		SignGloss []string `json:"sign_gloss"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.AudioURL != nil {
		t.Fatalf("audio_url=%v, want null", resp.AudioURL)
	}
	want := []string{"HALO", "DUNIA", "APA", "KABAR"}
	if len(resp.SignGloss) != len(want) {
		t.Fatalf("sign_gloss=%v, want %v", resp.SignGloss, want)
	}
	for i := range want {
		if resp.SignGloss[i] != want[i] {
			t.Fatalf("sign_gloss[%d]=%q, want %q", i, resp.SignGloss[i], want[i])
		}
	}
}

func TestScanEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "/eyeread/scan", `{"text":"Satu. Dua. Tiga."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Text     string  `json:"text"`
		Summary  string  `json:"summary"`
		AudioURL *string `json:"audio_url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Summary != "Satu. Dua..." {
		t.Fatalf("summary=%q", resp.Summary)
	}
	if resp.AudioURL != nil {
		t.Fatalf("audio_url=%v, want null", resp.AudioURL)
	}
}

func TestPlanEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "/pathly/plan", `{"topic":"Pecahan","proficiency":5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Level string `json:"level"`
		Plan  []struct {
			Title string `json:"title"`
		} `json:"plan"`
		Recommended []string `json:"recommended"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Level != "lanjutan" {
		t.Fatalf("level=%q, want lanjutan", resp.Level)
	}
	if len(resp.Plan) != 2 || len(resp.Recommended) != 2 {
		t.Fatalf("got %d plan items and %d recommendations", len(resp.Plan), len(resp.Recommended))
	}
	if !strings.Contains(resp.Plan[0].Title, "Pecahan") {
		t.Fatalf("first plan title=%q", resp.Plan[0].Title)
	}
}

func TestPlanEndpointDefaultProficiency(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, "/pathly/plan", `{"topic":"Pecahan"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Level string `json:"level"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Level != "menengah" {
		t.Fatalf("level=%q, want menengah", resp.Level)
	}
}

func TestPlanEndpointRejectsExplicitZeroProficiency(t *testing.T) {
	router := newTestRouter(t)

	// an explicit 0 is out of range, not an omitted field
	rec := doJSON(t, router, "/pathly/plan", `{"topic":"Pecahan","proficiency":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400, body=%s", rec.Code, rec.Body.String())
	}
	var envelope ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Error.Code != "invalid_request" {
		t.Fatalf("error code=%q", envelope.Error.Code)
	}
}

func TestPlanEndpointRejectsOutOfRangeProficiency(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{
		`{"topic":"Pecahan","proficiency":0}`,
		`{"topic":"Pecahan","proficiency":6}`,
		`{"topic":"Pecahan","proficiency":-1}`,
		`{"topic":"P"}`,
	} {
		rec := doJSON(t, router, "/pathly/plan", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: status=%d, want 400", body, rec.Code)
		}
	}
}
