package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/jwt"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

//go:generate mockgen -source=response.go -destination=response_mock.go -package=handlers

// Tokener resolves the caller of an authenticated request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// callerID returns the user id carried by the request's access token.
// On failure it answers 401 and returns false.
func callerID(w http.ResponseWriter, r *http.Request, tokener Tokener) (uuid.UUID, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("unauthorized request: missing or invalid token", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}

	return claims.UserID, true
}
