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

type ListingHandler struct {
	CreateUC   *usecase.CreateListingUseCase
	UpdateUC   *usecase.UpdateListingUseCase
	SubmitUC   *usecase.SubmitListingUseCase
	ModerateUC *usecase.ModerateListingUseCase
	ArchiveUC  *usecase.ArchiveListingUseCase
	ReopenUC   *usecase.ReopenListingUseCase
	DeleteUC   *usecase.DeleteListingUseCase
	GetUC      *usecase.GetListingUseCase
	ListUC     *usecase.ListListingsUseCase
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFrom(r.Context())
	if !actor.Authenticated() {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "authentication required"})
		return
	}

	var input usecase.CreateListingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	listing, err := h.CreateUC.Execute(r.Context(), actor.UserID, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, listing)
}

func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateListingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	listing, err := h.UpdateUC.Execute(r.Context(), chi.URLParam(r, "id"), input, middleware.ActorFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	listing, err := h.SubmitUC.Execute(r.Context(), chi.URLParam(r, "id"), middleware.ActorFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	var input usecase.ModerateListingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	listing, err := h.ModerateUC.Execute(r.Context(), chi.URLParam(r, "id"), input, middleware.ActorFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	middleware.RecordModeration(strings.ToUpper(strings.TrimSpace(input.Action)))
	respondJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) Archive(w http.ResponseWriter, r *http.Request) {
	listing, err := h.ArchiveUC.Execute(r.Context(), chi.URLParam(r, "id"), middleware.ActorFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) Reopen(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Target string `json:"target"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	target := entity.ListingStatus(strings.ToUpper(strings.TrimSpace(input.Target)))
	listing, err := h.ReopenUC.Execute(r.Context(), chi.URLParam(r, "id"), target, middleware.ActorFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.DeleteUC.Execute(r.Context(), chi.URLParam(r, "id"), middleware.ActorFrom(r.Context())); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	listing, err := h.GetUC.Execute(r.Context(), chi.URLParam(r, "id"), middleware.ActorFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter usecase.ListingFilter
	if s := q.Get("status"); s != "" {
		status := entity.ListingStatus(strings.ToUpper(s))
		filter.Status = &status
	}
	if c := q.Get("category"); c != "" {
		category, err := entity.ParseCategory(c)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown category"})
			return
		}
		filter.Category = &category
	}
	filter.OwnerID = q.Get("owner_id")
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	out, err := h.ListUC.Execute(r.Context(), filter, middleware.ActorFrom(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}
