package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/internal/core/port"
)

// POST /v1/search JSON {"query" string} (200 OK, 400 Bad request, 503)
// POST /v1/outfit JSON {"anchor", "pool", "occasion", "budget"} (200 OK, 400)
// POST /v1/views JSON {"product"} (202 Accepted, 400)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, FailureResponse{Success: false, Error: msg})
}

type SearchHandler struct {
	searcher port.ProductsSearcher
}

func RegisterSearch(mux *http.ServeMux, searcher port.ProductsSearcher) {
	h := SearchHandler{searcher}
	mux.HandleFunc("POST /v1/search", h.PostSearch)
}

func (h SearchHandler) PostSearch(w http.ResponseWriter, r *http.Request) {
	const op = "SearchHandler.PostSearch"
	log := slog.With("op", op)

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	result, err := h.searcher.Search(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyQuery) {
			writeFailure(w, http.StatusBadRequest, "query is empty")
			return
		}
		writeFailure(w, http.StatusServiceUnavailable, "search is unavailable")
		log.Error("failed to search", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Success:             true,
		Products:            fromDomainProducts(result.Products),
		Reasoning:           result.Reasoning,
		PersonalizedMessage: result.PersonalizedMessage,
	})
	log.Info("resolved", "query", req.Query, "nProducts", len(result.Products))
}

type OutfitHandler struct {
	suggester port.OutfitSuggester
}

func RegisterOutfit(mux *http.ServeMux, suggester port.OutfitSuggester) {
	h := OutfitHandler{suggester}
	mux.HandleFunc("POST /v1/outfit", h.PostOutfit)
}

func (h OutfitHandler) PostOutfit(w http.ResponseWriter, r *http.Request) {
	const op = "OutfitHandler.PostOutfit"
	log := slog.With("op", op)

	var req OutfitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	suggestion, err := h.suggester.SuggestOutfit(
		r.Context(),
		toDomainProduct(req.Anchor),
		toDomainProducts(req.Pool),
		req.Occasion,
		req.Budget,
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProduct) {
			writeFailure(w, http.StatusBadRequest, "invalid anchor product")
			return
		}
		writeFailure(w, http.StatusServiceUnavailable, "failed to build outfit")
		log.Error("failed to suggest outfit", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, OutfitResponse{
		Success:       true,
		Anchor:        fromDomainProduct(suggestion.Anchor),
		Complements:   fromDomainComplements(suggestion.Complements),
		TotalPrice:    suggestion.TotalPrice,
		StylingTips:   suggestion.StylingTips,
		OccasionMatch: suggestion.OccasionMatch,
	})
	log.Info("suggested", "anchorID", req.Anchor.ID)
}

type ViewsHandler struct {
	recorder port.ProductViewRecorder
}

func RegisterViews(mux *http.ServeMux, recorder port.ProductViewRecorder) {
	h := ViewsHandler{recorder}
	mux.HandleFunc("POST /v1/views", h.PostView)
}

func (h ViewsHandler) PostView(w http.ResponseWriter, r *http.Request) {
	const op = "ViewsHandler.PostView"
	log := slog.With("op", op)

	var req ViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	err := h.recorder.RecordView(r.Context(), toDomainProduct(req.Product))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProduct) {
			writeFailure(w, http.StatusBadRequest, "invalid product")
			return
		}
		writeFailure(w, http.StatusServiceUnavailable, "failed to record view")
		log.Error("failed to record view", "err", err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	log.Info("accepted", "productID", req.Product.ID)
}
