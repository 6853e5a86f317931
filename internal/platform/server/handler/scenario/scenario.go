package scenario

import (
	"io"
	"net/http"

	"TxVisualizer/internal/application/service"
	"TxVisualizer/internal/domain"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"
)

type ScenarioHandler struct {
	runService      *service.RunScenarioService
	accountsService *service.GetAccountsService
	listService     *service.ListScenariosService
	logger          *zap.Logger
}

func NewScenarioHandler(runService *service.RunScenarioService,
	accountsService *service.GetAccountsService,
	listService *service.ListScenariosService,
	logger *zap.Logger) *ScenarioHandler {
	return &ScenarioHandler{
		runService:      runService,
		accountsService: accountsService,
		listService:     listService,
		logger:          logger,
	}
}

func (h *ScenarioHandler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MapToScenarioResponses(h.listService.Execute()))
}

func (h *ScenarioHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	result, err := h.accountsService.Execute(r.Context(), service.GetAccountsQuery{
		Scenario: chi.URLParam(r, "name"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MapToAccountResponses(result.Accounts))
}

func (h *ScenarioHandler) RunScenario(w http.ResponseWriter, r *http.Request) {
	var request RunScenarioRequest
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &request); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
	}
	result, err := h.runService.Execute(r.Context(), service.RunScenarioCommand{
		Scenario: chi.URLParam(r, "name"),
		Amounts:  request.Amounts,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MapToRunScenarioResponse(result))
}

func (h *ScenarioHandler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrScenarioNotFound) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	h.logger.Error("request failed", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	output, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(output)
}
