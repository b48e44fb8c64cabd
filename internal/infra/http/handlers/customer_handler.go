package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/raffasdev/neocustomers/internal/entity"
	"github.com/raffasdev/neocustomers/internal/infra/http/middleware"
	"github.com/raffasdev/neocustomers/internal/usecase"
)

type CustomerHandler struct {
	UseCase *usecase.CustomerUseCase
}

func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{UseCase: uc}
}

type customerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CPF       string `json:"cpf"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
}

type customerPageResponse struct {
	Content       []customerResponse `json:"content"`
	Page          int                `json:"page"`
	Size          int                `json:"size"`
	TotalElements int64              `json:"total_elements"`
	TotalPages    int                `json:"total_pages"`
}

func toCustomerResponse(c *entity.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID().String(),
		Name:      c.Name(),
		Email:     c.Email(),
		CPF:       c.CPF(),
		Phone:     c.Phone(),
		BirthDate: c.BirthDate().Format(time.DateOnly),
	}
}

// Create handles POST /customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, problemResponse{
			Status: http.StatusBadRequest,
			Error:  "invalid json",
			Detail: err.Error(),
		})
		return
	}

	customer, err := h.UseCase.Register(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordCustomerRegistered()
	writeJSON(w, http.StatusCreated, toCustomerResponse(customer))
}

// List handles GET /customers. An optional name query switches between the
// full listing and the case-insensitive substring search; a blank name counts
// as absent.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	req := pageRequest(r)
	name := r.URL.Query().Get("name")

	var (
		page *usecase.CustomerPage
		err  error
	)
	if strings.TrimSpace(name) != "" {
		page, err = h.UseCase.SearchByName(r.Context(), name, req)
	} else {
		page, err = h.UseCase.FindAll(r.Context(), req)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	content := make([]customerResponse, 0, len(page.Content))
	for _, c := range page.Content {
		content = append(content, toCustomerResponse(c))
	}

	writeJSON(w, http.StatusOK, customerPageResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	})
}

// Get handles GET /customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	customer, err := h.UseCase.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(customer))
}

// Update handles PUT /customers/{id} with merge-on-present semantics.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input usecase.UpdateCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, problemResponse{
			Status: http.StatusBadRequest,
			Error:  "invalid json",
			Detail: err.Error(),
		})
		return
	}

	if err := h.UseCase.UpdateByID(r.Context(), id, input); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.UseCase.DeleteByID(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, problemResponse{
			Status: http.StatusBadRequest,
			Error:  "invalid id",
			Detail: "id must be a UUID",
		})
		return uuid.Nil, false
	}
	return id, true
}

func pageRequest(r *http.Request) usecase.PageRequest {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	return usecase.PageRequest{Page: page, Size: size}
}
