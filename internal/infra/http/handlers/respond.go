package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/raffasdev/neocustomers/internal/entity"
	"github.com/raffasdev/neocustomers/internal/usecase"
)

type problemResponse struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// writeError maps the usecase error taxonomy onto HTTP statuses: validation
// 400, not found 404, conflicts 409, anything else 500. Credential errors are
// handled by the auth handler itself so it can collapse them.
func writeError(w http.ResponseWriter, err error) {
	var validation entity.ValidationError
	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, problemResponse{
			Status: http.StatusBadRequest,
			Error:  "validation failed",
			Detail: err.Error(),
		})
	case usecase.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, problemResponse{
			Status: http.StatusNotFound,
			Error:  "not found",
			Detail: err.Error(),
		})
	case usecase.IsConflict(err):
		writeJSON(w, http.StatusConflict, problemResponse{
			Status: http.StatusConflict,
			Error:  "conflict",
			Detail: err.Error(),
		})
	default:
		log.Error().Err(err).Msg("internal error")
		writeJSON(w, http.StatusInternalServerError, problemResponse{
			Status: http.StatusInternalServerError,
			Error:  "internal server error",
			Detail: "unexpected failure",
		})
	}
}
