// Package harness hosts the two discount function variants over HTTP for
// local development, standing in for the host platform's sandbox.
package harness

import (
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/volume-discounts/internal/common"
	"github.com/noah-isme/volume-discounts/internal/engine"
	"github.com/noah-isme/volume-discounts/internal/obs"
)

// Handler serves function invocations posted as raw host payloads.
type Handler struct {
	Logger  zerolog.Logger
	Metrics *obs.EvalMetrics
	Options engine.Options
	// TraceEnabled attaches a per-invocation trace logger to evaluations.
	TraceEnabled bool
}

// RunOrderDiscount evaluates the order-level function.
func (h *Handler) RunOrderDiscount(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, engine.VariantOrder)
}

// RunProductDiscount evaluates the line-level function.
func (h *Handler) RunProductDiscount(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, engine.VariantLine)
}

// run mirrors the runner semantics: a body that decodes to nothing usable
// still evaluates to a valid empty result with status 200. Only a failed
// body read is a request error.
func (h *Handler) run(w http.ResponseWriter, r *http.Request, variant engine.Variant) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "unreadable request body")
		return
	}

	ctx := r.Context()
	if h.TraceEnabled {
		trace := h.Logger.With().
			Str("variant", string(variant)).
			Str("invocation_id", uuid.NewString()).
			Logger()
		ctx = obs.WithTrace(ctx, trace)
	}

	start := time.Now()
	result := engine.Run(ctx, variant, payload, h.Options)
	h.Metrics.Observe(string(variant), len(result.Discounts), time.Since(start))

	common.JSON(w, http.StatusOK, result)
}
