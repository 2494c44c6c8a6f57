package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/graw/pkg/domain/interfaces"
	"github.com/secmon-lab/graw/pkg/domain/model"
	"github.com/secmon-lab/graw/pkg/domain/types"
)

// UserHeader names the chat user a configuration change is made for. The
// user must be allowed to manage the tenant.
const UserHeader = "X-Graw-User"

// maxConfigBody bounds the config request body.
const maxConfigBody = 16 * 1024

type statusResponse struct {
	State   string `json:"state"`
	Message string `json:"message"`
}

type revisionResponse struct {
	Text string `json:"text"`
}

func tenantID(r *http.Request) types.TenantID {
	return types.TenantID(chi.URLParam(r, "tenantID"))
}

func getStatus(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, msg, err := uc.TenantStatus(r.Context(), tenantID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, statusResponse{State: state.String(), Message: msg})
	}
}

func getLatestRevision(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := uc.LatestRevision(r.Context(), tenantID(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, revisionResponse{Text: text})
	}
}

func getRevision(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "revision")
		number, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "revision must be an integer", goerr.V("revision", raw)))
			return
		}

		text, err := uc.Revision(r.Context(), tenantID(r), number)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, revisionResponse{Text: text})
	}
}

// putConfig applies a partial configuration on behalf of the user named in
// UserHeader and responds with the committed configuration.
func putConfig(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := types.UserID(r.Header.Get(UserHeader))
		if userID == "" {
			writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "user header is missing", goerr.V("header", UserHeader)))
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxConfigBody))
		if err != nil {
			writeError(w, r, goerr.Wrap(err, "failed to read request body"))
			return
		}

		var patch model.ConfigPatch
		if err := json.Unmarshal(body, &patch); err != nil {
			writeError(w, r, goerr.Wrap(types.ErrValidationFailed, "malformed config request", goerr.V("error", err.Error())))
			return
		}

		cfg, err := uc.UpdateTenantConfig(r.Context(), tenantID(r), userID, &patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, cfg)
	}
}
