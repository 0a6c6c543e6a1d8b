package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sitebazaar/sitebazaar-api/internal/entity"
	"github.com/sitebazaar/sitebazaar-api/internal/infra/http/middleware"
	"github.com/sitebazaar/sitebazaar-api/internal/usecase"
)

type InterestHandler struct {
	SubmitUC  *usecase.SubmitInterestUseCase
	ListUC    *usecase.ListInterestsUseCase
	AdvanceUC *usecase.AdvanceInterestUseCase
}

// Submit is the one public write endpoint: buyers do not log in to
// ask about a listing.
func (h *InterestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitInterestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	interest, err := h.SubmitUC.Execute(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.RecordInterest()
	respondJSON(w, http.StatusCreated, interest)
}

func (h *InterestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter usecase.InterestFilter
	filter.ListingID = q.Get("listing_id")
	if s := q.Get("status"); s != "" {
		status, err := entity.ParseInterestStatus(s)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown funnel status"})
			return
		}
		filter.Status = &status
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	out, err := h.ListUC.Execute(r.Context(), filter, middleware.ActorFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *InterestHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	status := entity.InterestStatus(strings.ToUpper(strings.TrimSpace(input.Status)))
	interest, err := h.AdvanceUC.Execute(r.Context(), chi.URLParam(r, "id"), status, middleware.ActorFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, interest)
}
