package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	reply string
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string, tier domain.Tier) (string, error) {
	return s.reply, s.err
}

type stubExtractor struct {
	text string
}

func (s *stubExtractor) ExtractText(ctx context.Context, image []byte) (string, error) {
	return s.text, nil
}

func newTestHandler(gen domain.TextGenerator, ext domain.TextExtractor) *Handler {
	return NewHandler(
		usecase.NewSimulationService(gen, nil, nil),
		usecase.NewReportService(gen),
		usecase.NewDiagnosisService(ext, gen),
		"", "", "",
	)
}

func doJSON(t *testing.T, handler echo.HandlerFunc, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestRoot(t *testing.T) {
	h := newTestHandler(&stubGenerator{}, &stubExtractor{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Root(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Safeguard AI Server is running.")
}

func TestAdaptiveTurnEndpoint(t *testing.T) {
	gen := &stubGenerator{reply: `{"next_speech":"계약금부터 보내시죠","options":[{"text":"거절한다","verdict":"safe"},{"text":"고민한다","verdict":"risky"},{"text":"보낸다","verdict":"unsafe"}]}`}
	h := newTestHandler(gen, &stubExtractor{})

	rec, body := doJSON(t, h.AdaptiveTurn, `{
		"crime_type": "전세사기",
		"dialogue_history": [{"role":"agent","text":"좋은 매물이 있어요"}],
		"highest_vulnerability_axis": "urgency",
		"user_info": {"user_name": "김철수"}
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "계약금부터 보내시죠", body["next_speech"])
	assert.Len(t, body["options"], 3)
	_, hasError := body["error"]
	assert.False(t, hasError)
}

func TestAdaptiveTurnEndpointFallback(t *testing.T) {
	h := newTestHandler(&stubGenerator{err: domain.ErrModelUnavailable}, &stubExtractor{})

	rec, body := doJSON(t, h.AdaptiveTurn, `{"crime_type":"보이스피싱","dialogue_history":[],"highest_vulnerability_axis":"fear","user_info":{"user_name":"x"}}`)

	// Generation failure still answers 200; the error travels in the payload.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "오류 발생", body["next_speech"])
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, []interface{}{}, body["options"])
}

func TestVoiceTurnEndpoint(t *testing.T) {
	h := newTestHandler(&stubGenerator{reply: "AI: 서울중앙지검입니다."}, &stubExtractor{})

	rec, body := doJSON(t, h.VoiceTurn, `{"user_message":"여보세요","dialogue_history":[],"user_info":{"user_name":"x"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "서울중앙지검입니다.", body["ai_message"])
	_, hasAudio := body["ai_audio"]
	assert.False(t, hasAudio)
}

func TestBasicReportEndpointRepairsGrade(t *testing.T) {
	h := newTestHandler(&stubGenerator{reply: `{"grade":"Z","summary":"s","caution_point":"c","guide":"g"}`}, &stubExtractor{})

	rec, body := doJSON(t, h.BasicReport, `{"crime_type":"보이스피싱","dialogue_history":[{"role":"user","text":"네"}]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "C", body["grade"])
	assert.Equal(t, "s", body["summary"])
}

func TestPremiumReportEndpointShape(t *testing.T) {
	h := newTestHandler(&stubGenerator{reply: `{"overall_evaluation":{"grade":"A","summary":"훌륭함"},"critical_moments":[],"recommended_action":"권고","references":["뉴스"]}`}, &stubExtractor{})

	rec, body := doJSON(t, h.PremiumReport, `{"crime_type":"보이스피싱","dialogue_history":[]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	eval, ok := body["overall_evaluation"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "A", eval["grade"])
	// references are always emptied server-side regardless of model output.
	assert.Equal(t, []interface{}{}, body["references"])
}

func TestDiagnoseImageEndpointNoText(t *testing.T) {
	h := newTestHandler(&stubGenerator{}, &stubExtractor{text: ""})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image_file", "screenshot.png")
	require.NoError(t, err)
	part.Write([]byte("not-really-a-png"))
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	require.NoError(t, h.DiagnoseImage(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "안전", body["risk_level"])
	assert.Equal(t, "", body["extracted_text"])
	assert.Equal(t, []interface{}{}, body["detected_keywords"])
}

func TestDiagnoseImageEndpointMissingFile(t *testing.T) {
	h := newTestHandler(&stubGenerator{}, &stubExtractor{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.DiagnoseImage(e.NewContext(req, rec))
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestJWTMiddlewareDisabledPassesThrough(t *testing.T) {
	h := newTestHandler(&stubGenerator{}, &stubExtractor{})

	called := false
	next := func(c echo.Context) error {
		called = true
		return nil
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.JWTMiddleware(next)(e.NewContext(req, rec)))
	assert.True(t, called)
}

func TestJWTMiddlewareEnabledRejectsMissingToken(t *testing.T) {
	h := NewHandler(nil, nil, nil, "secret", "key", "secret2")

	next := func(c echo.Context) error { return nil }

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()

	err := h.JWTMiddleware(next)(e.NewContext(req, rec))
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestGenerateJWTRoundTrip(t *testing.T) {
	h := NewHandler(nil, nil, nil, "test-secret", "backend-key", "backend-secret")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	req.Header.Set("X-API-Key", "backend-key")
	req.Header.Set("X-API-Secret", "backend-secret")
	rec := httptest.NewRecorder()
	require.NoError(t, h.GenerateJWT(e.NewContext(req, rec)))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])

	// The minted token must pass the guard, and the guard must expose the
	// caller identity for downstream handlers.
	called := false
	next := func(c echo.Context) error {
		called = true
		assert.Equal(t, "backend", c.Get("caller"))
		return nil
	}
	req2 := httptest.NewRequest(http.MethodPost, "/", nil)
	req2.Header.Set("Authorization", "Bearer "+body["token"])
	rec2 := httptest.NewRecorder()
	require.NoError(t, h.JWTMiddleware(next)(e.NewContext(req2, rec2)))
	assert.True(t, called)
}

func TestGenerateJWTRejectsBadCredentials(t *testing.T) {
	h := NewHandler(nil, nil, nil, "test-secret", "backend-key", "backend-secret")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/token", nil)
	req.Header.Set("X-API-Key", "wrong")
	req.Header.Set("X-API-Secret", "wrong")
	rec := httptest.NewRecorder()

	err := h.GenerateJWT(e.NewContext(req, rec))
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
