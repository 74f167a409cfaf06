package http

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/usecase"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

const (
	jwtExpiry = 24 * time.Hour

	// MaxImageSize caps the diagnose upload.
	MaxImageSize = 10 * 1024 * 1024
)

// Handler serves the backend-facing REST surface. The calling backend is the
// only client; it owns users, persistence and scoring, and sends transcripts
// here purely for prompt orchestration.
type Handler struct {
	simulation *usecase.SimulationService
	reports    *usecase.ReportService
	diagnosis  *usecase.DiagnosisService

	// jwtSecret empty means open routes; the default deployment sits on a
	// private network next to the backend.
	jwtSecret []byte
	apiKey    string
	apiSecret string
}

func NewHandler(
	simulation *usecase.SimulationService,
	reports *usecase.ReportService,
	diagnosis *usecase.DiagnosisService,
	jwtSecret, apiKey, apiSecret string,
) *Handler {
	return &Handler{
		simulation: simulation,
		reports:    reports,
		diagnosis:  diagnosis,
		jwtSecret:  []byte(jwtSecret),
		apiKey:     apiKey,
		apiSecret:  apiSecret,
	}
}

// UserInfo is the caller-supplied trainee identity, used only for log
// correlation.
type UserInfo struct {
	UserName string `json:"user_name"`
}

type AdaptiveTurnRequest struct {
	CrimeType                string            `json:"crime_type"`
	DialogueHistory          domain.Transcript `json:"dialogue_history"`
	HighestVulnerabilityAxis string            `json:"highest_vulnerability_axis"`
	UserInfo                 UserInfo          `json:"user_info"`
}

type VoiceTurnRequest struct {
	UserMessage     string            `json:"user_message"`
	DialogueHistory domain.Transcript `json:"dialogue_history"`
	UserInfo        UserInfo          `json:"user_info"`
}

type ReportRequest struct {
	CrimeType       string            `json:"crime_type"`
	DialogueHistory domain.Transcript `json:"dialogue_history"`
}

type VoiceTurnResponse struct {
	AIMessage string `json:"ai_message"`
	AIAudio   string `json:"ai_audio,omitempty"` // base64 MP3, present only with TTS
}

type JWTClaims struct {
	Caller string `json:"caller"`
	jwt.RegisteredClaims
}

// Root is the liveness probe the backend polls.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Safeguard AI Server is running.",
	})
}

func (h *Handler) AdaptiveTurn(c echo.Context) error {
	var req AdaptiveTurnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := requestContext(c, "adaptive_turn", req.CrimeType, req.UserInfo.UserName)
	result := h.simulation.AdaptiveTurn(ctx, req.CrimeType, req.DialogueHistory, req.HighestVulnerabilityAxis)

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) VoiceTurn(c echo.Context) error {
	var req VoiceTurnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := requestContext(c, "voice_turn", "", req.UserInfo.UserName)
	turn := h.simulation.VoiceTurn(ctx, req.DialogueHistory, req.UserMessage)

	resp := VoiceTurnResponse{AIMessage: turn.Message}
	if len(turn.Audio) > 0 {
		resp.AIAudio = base64.StdEncoding.EncodeToString(turn.Audio)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) BasicReport(c echo.Context) error {
	var req ReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := requestContext(c, "basic_report", req.CrimeType, "")
	return c.JSON(http.StatusOK, h.reports.Basic(ctx, req.CrimeType, req.DialogueHistory))
}

func (h *Handler) PremiumReport(c echo.Context) error {
	var req ReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := requestContext(c, "premium_report", req.CrimeType, "")
	return c.JSON(http.StatusOK, h.reports.Premium(ctx, req.CrimeType, req.DialogueHistory))
}

// DiagnoseImage takes a multipart upload (field "image_file"), OCRs it and
// grades the extracted text.
func (h *Handler) DiagnoseImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image_file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image_file is required")
	}
	if fileHeader.Size > MaxImageSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not open uploaded file")
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read uploaded file")
	}

	ctx := requestContext(c, "diagnose_image", "", "")
	return c.JSON(http.StatusOK, h.diagnosis.DiagnoseImage(ctx, image))
}

// GenerateJWT mints a backend token from the configured key/secret pair.
// Returns 404-like behavior when auth is disabled so the open deployment
// never advertises a token endpoint.
func (h *Handler) GenerateJWT(c echo.Context) error {
	if len(h.jwtSecret) == 0 {
		return echo.NewHTTPError(http.StatusNotFound, "auth is disabled")
	}

	key := c.Request().Header.Get("X-API-Key")
	secret := c.Request().Header.Get("X-API-Secret")
	if key == "" || key != h.apiKey || secret != h.apiSecret {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	claims := &JWTClaims{
		Caller: "backend",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "safeguard-agentic",
			Subject:   "prompt-orchestration",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.jwtSecret)
	if err != nil {
		log.With().Error("signing JWT", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"token": tokenString,
		"type":  "Bearer",
	})
}

// JWTMiddleware guards the orchestration routes when a secret is configured.
// Without one every route is open and the surface is exactly the caller
// contract.
func (h *Handler) JWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if len(h.jwtSecret) == 0 {
			return next(c)
		}

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
		}

		token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return h.jwtSecret, nil
		})
		if err != nil {
			log.With().Warn("JWT validation failed", zap.Error(err))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
			c.Set("caller", claims.Caller)
			return next(c)
		}

		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
}

// requestContext threads log correlation fields through the service layer.
func requestContext(c echo.Context, endpoint, crimeType, userName string) context.Context {
	ctx := c.Request().Context()
	ctx = context.WithValue(ctx, "endpoint", endpoint)
	if crimeType != "" {
		ctx = context.WithValue(ctx, "crime_type", crimeType)
	}
	if userName != "" {
		ctx = context.WithValue(ctx, "user_name", userName)
	}
	return ctx
}
