package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type squareRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type renameRequest struct {
	Name string `json:"name"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	state, err := that.gameManager.GetOrCreateGame(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		that.writeError(w, "handleGetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *Server) handleSelectSquare(w http.ResponseWriter, r *http.Request) {
	var body squareRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	state, err := that.gameManager.SelectSquare(r.Context(), sessionFromContext(r.Context()), body.Row, body.Col)
	if err != nil {
		that.writeError(w, "handleSelectSquare", err)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *Server) handleRename(w http.ResponseWriter, r *http.Request) {
	var body renameRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	state, err := that.gameManager.RenamePlayer(r.Context(), sessionFromContext(r.Context()), entity.Mark(chi.URLParam(r, "mark")), body.Name)
	if err != nil {
		that.writeError(w, "handleRename", err)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	state, err := that.gameManager.Restart(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		that.writeError(w, "handleRestart", err)
		return
	}

	that.writeJSON(w, http.StatusOK, state)
}

func (that *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handlePage")

	state, err := that.gameManager.GetOrCreateGame(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		log.Error("failed to get game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = renderPage(w, state); err != nil {
		log.Error("failed to render page", "error", err)
	}
}

func (that *Server) handleSelectSquareForm(w http.ResponseWriter, r *http.Request) {
	row, rowErr := strconv.Atoi(r.FormValue("row"))
	col, colErr := strconv.Atoi(r.FormValue("col"))

	// malformed coordinates are treated like any other rejected move
	if rowErr == nil && colErr == nil {
		if _, err := that.gameManager.SelectSquare(r.Context(), sessionFromContext(r.Context()), row, col); err != nil {
			that.logger.Error("failed to select square", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Server) handleRenameForm(w http.ResponseWriter, r *http.Request) {
	mark := entity.Mark(chi.URLParam(r, "mark"))

	_, err := that.gameManager.RenamePlayer(r.Context(), sessionFromContext(r.Context()), mark, r.FormValue("name"))
	if err != nil && !isValidationError(err) {
		that.logger.Error("failed to rename player", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Server) handleRestartForm(w http.ResponseWriter, r *http.Request) {
	if _, err := that.gameManager.Restart(r.Context(), sessionFromContext(r.Context())); err != nil {
		that.logger.Error("failed to restart game", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Server) writeError(w http.ResponseWriter, method string, err error) {
	if isValidationError(err) {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	that.logger.Error("request failed", "method", method, "error", err)
	that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, apperror.ErrEmptyName) || errors.Is(err, apperror.ErrUnknownMark)
}
