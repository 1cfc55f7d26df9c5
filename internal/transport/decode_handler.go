// Package transport exposes the HTTP decode API.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txlens7000/internal/metrics"
	"github.com/goodnatureofminers/txlens7000/internal/report"
	"github.com/goodnatureofminers/txlens7000/internal/wire"
)

const maxRequestBody = 8 << 20 // raw txs top out well below 8 MiB of hex

// DecodeRequest is the POST /v1/decode payload.
type DecodeRequest struct {
	Hex string `json:"hex"`
}

// ErrorResponse reports a failed decode with its error kind.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// DecodeHandler serves decode requests over HTTP.
type DecodeHandler struct {
	logger *zap.Logger
	rl     ratelimit.Limiter
}

// NewDecodeHandler constructs a handler limited to rps decode requests
// per second.
func NewDecodeHandler(logger *zap.Logger, rps int) *DecodeHandler {
	return &DecodeHandler{
		logger: logger,
		rl:     ratelimit.New(rps),
	}
}

// Register mounts the handler's routes on mux.
func (h *DecodeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/decode", h.decode)
	mux.HandleFunc("GET /healthz", h.health)
}

func (h *DecodeHandler) decode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed request body", Kind: "bad_request"})
		return
	}

	h.rl.Take()

	started := time.Now()
	tx, err := wire.DecodeHex(req.Hex)
	metrics.ObserveDecode("decode_hex", err, started)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, wire.ErrInvalidHex) {
			status = http.StatusBadRequest
		}
		h.logger.Debug("decode failed", zap.String("kind", wire.ErrorKind(err)), zap.Error(err))
		writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: wire.ErrorKind(err)})
		return
	}

	rep, err := report.Build(tx)
	if err != nil {
		h.logger.Error("build report", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error", Kind: "internal"})
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (h *DecodeHandler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
