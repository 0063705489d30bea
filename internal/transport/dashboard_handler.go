// Package transport exposes the dashboard to presentation clients over HTTP
// and reports its health over gRPC.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/goodnatureofminers/paychain-dashboard/internal/ledger"
	"github.com/goodnatureofminers/paychain-dashboard/internal/model"
	"github.com/goodnatureofminers/paychain-dashboard/internal/mutation"
	"github.com/goodnatureofminers/paychain-dashboard/internal/readmodel"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const maxRequestBytes = 1 << 20

// DashboardHandler serves the dashboard JSON API.
type DashboardHandler struct {
	readModel ReadModel
	form      FormStore
	mutations Mutations
	logger    *zap.Logger
	mux       *http.ServeMux
}

// NewDashboardHandler wires the API routes.
func NewDashboardHandler(readModel ReadModel, form FormStore, mutations Mutations, logger *zap.Logger) (*DashboardHandler, error) {
	if readModel == nil {
		return nil, errors.New("dashboard read model is required")
	}
	if form == nil {
		return nil, errors.New("dashboard form store is required")
	}
	if mutations == nil {
		return nil, errors.New("dashboard mutations are required")
	}

	h := &DashboardHandler{
		readModel: readModel,
		form:      form,
		mutations: mutations,
		logger:    logger.Named("http"),
		mux:       http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /api/state", h.state)
	h.mux.HandleFunc("GET /api/form", h.getForm)
	h.mux.HandleFunc("PUT /api/form", h.putForm)
	h.mux.HandleFunc("POST /api/transfer", h.transfer)
	h.mux.HandleFunc("POST /api/faucet", h.faucet)
	h.mux.HandleFunc("POST /api/balance/refresh", h.refreshBalance)
	return h, nil
}

// ServeHTTP implements http.Handler.
func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// WithCORS allows browser clients from any origin, as the dashboard is read-mostly.
func WithCORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	}).Handler(next)
}

func (h *DashboardHandler) state(w http.ResponseWriter, _ *http.Request) {
	fields := h.form.Snapshot()

	mutations := make(map[string]mutationView, 2)
	for _, kind := range []mutation.Kind{mutation.Transfer, mutation.Faucet} {
		mv := mutationView{State: string(h.mutations.State(kind))}
		if last, ok := h.mutations.Last(kind); ok {
			nv := newNotificationView(last)
			mv.Last = &nv
		}
		mutations[string(kind)] = mv
	}

	h.writeJSON(w, http.StatusOK, stateView{
		Chain:   newEntryView(mapEntry(h.readModel.Chain(), newBlockViews)),
		Pending: newEntryView(mapEntry(h.readModel.Pending(), newTransactionViews)),
		Balance: newEntryView(mapEntry(h.readModel.Balance(fields.User), func(b model.Balance) balanceView {
			return balanceView{User: b.User, Balance: b.Balance}
		})),
		Form:      newFormView(fields),
		Mutations: mutations,
	})
}

func (h *DashboardHandler) getForm(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, newFormView(h.form.Snapshot()))
}

func (h *DashboardHandler) putForm(w http.ResponseWriter, r *http.Request) {
	var patch formPatch
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&patch); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form body"})
		return
	}

	if patch.From != nil {
		h.form.SetFrom(*patch.From)
	}
	if patch.To != nil {
		h.form.SetTo(*patch.To)
	}
	if patch.Amount != nil {
		h.form.SetAmount(*patch.Amount)
	}
	if patch.User != nil {
		h.form.SetUser(*patch.User)
		// Reading the new user's entry creates its key.
		h.readModel.Balance(*patch.User)
	}
	h.writeJSON(w, http.StatusOK, newFormView(h.form.Snapshot()))
}

func (h *DashboardHandler) transfer(w http.ResponseWriter, r *http.Request) {
	h.runMutation(w, r, h.mutations.Transfer)
}

func (h *DashboardHandler) faucet(w http.ResponseWriter, r *http.Request) {
	h.runMutation(w, r, h.mutations.Faucet)
}

func (h *DashboardHandler) runMutation(w http.ResponseWriter, r *http.Request, trigger func(context.Context) (mutation.Notification, error)) {
	// The write outlives a disconnected client; the ledger client's timeout bounds it.
	n, err := trigger(context.WithoutCancel(r.Context()))
	switch {
	case errors.Is(err, mutation.ErrPending):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case err != nil:
		h.writeJSON(w, mutationFailureStatus(err), newNotificationView(n))
	default:
		h.writeJSON(w, http.StatusAccepted, newNotificationView(n))
	}
}

func (h *DashboardHandler) refreshBalance(w http.ResponseWriter, _ *http.Request) {
	user := h.form.Snapshot().User
	h.readModel.Invalidate(readmodel.BalanceKey(user))
	w.WriteHeader(http.StatusNoContent)
}

func mutationFailureStatus(err error) int {
	kind, ok := ledger.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case ledger.KindValidation:
		return http.StatusUnprocessableEntity
	case ledger.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func (h *DashboardHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
