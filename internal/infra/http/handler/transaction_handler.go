package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/BrigitteMendez1302/transactions-microservice/internal/domain"
	"github.com/BrigitteMendez1302/transactions-microservice/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// TransactionHandler exposes the movement operations over HTTP.
type TransactionHandler struct {
	deposit  *usecase.DepositUseCase
	withdraw *usecase.WithdrawUseCase
	transfer *usecase.TransferUseCase
	history  *usecase.HistoryUseCase
}

// NewTransactionHandler creates a new instance.
func NewTransactionHandler(
	deposit *usecase.DepositUseCase,
	withdraw *usecase.WithdrawUseCase,
	transfer *usecase.TransferUseCase,
	history *usecase.HistoryUseCase,
) *TransactionHandler {
	return &TransactionHandler{
		deposit:  deposit,
		withdraw: withdraw,
		transfer: transfer,
		history:  history,
	}
}

// Request/response DTOs. JSON tags map the API's snake_case.

type DepositRequest struct {
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type WithdrawRequest struct {
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type TransferRequest struct {
	SourceAccountID      string          `json:"source_account_id"`
	DestinationAccountID string          `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount"`
}

type MovementResponse struct {
	ID                   string          `json:"id"`
	Kind                 string          `json:"kind"`
	Amount               decimal.Decimal `json:"amount"`
	RecordedAt           time.Time       `json:"recorded_at"`
	SourceAccountID      string          `json:"source_account_id,omitempty"`
	DestinationAccountID string          `json:"destination_account_id,omitempty"`
}

func toMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		ID:                   m.ID,
		Kind:                 string(m.Kind),
		Amount:               m.Amount,
		RecordedAt:           m.RecordedAt,
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
	}
}

// Deposit handles POST /api/transactions/deposit.
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req DepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	movement, err := h.deposit.Execute(r.Context(), usecase.DepositInput{
		AccountID: req.AccountID,
		Amount:    req.Amount,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toMovementResponse(movement))
}

// Withdraw handles POST /api/transactions/withdraw.
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req WithdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	movement, err := h.withdraw.Execute(r.Context(), usecase.WithdrawInput{
		AccountID: req.AccountID,
		Amount:    req.Amount,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toMovementResponse(movement))
}

// Transfer handles POST /api/transactions/transfer.
func (h *TransactionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	movement, err := h.transfer.Execute(r.Context(), usecase.TransferInput{
		SourceAccountID:      req.SourceAccountID,
		DestinationAccountID: req.DestinationAccountID,
		Amount:               req.Amount,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toMovementResponse(movement))
}

// GlobalHistory handles GET /api/transactions, optionally filtered with ?kind=.
func (h *TransactionHandler) GlobalHistory(w http.ResponseWriter, r *http.Request) {
	var (
		movements []domain.Movement
		err       error
	)

	if kind := r.URL.Query().Get("kind"); kind != "" {
		movements, err = h.history.ByKind(r.Context(), domain.MovementKind(kind))
	} else {
		movements, err = h.history.Global(r.Context())
	}
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondMovements(w, movements)
}

// AccountHistory handles GET /api/transactions/account/{accountId}.
func (h *TransactionHandler) AccountHistory(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")

	movements, err := h.history.ByAccount(r.Context(), accountID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondMovements(w, movements)
}

func respondMovements(w http.ResponseWriter, movements []domain.Movement) {
	responses := make([]MovementResponse, 0, len(movements))
	for i := range movements {
		responses = append(responses, toMovementResponse(&movements[i]))
	}
	respondJSON(w, http.StatusOK, responses)
}

// respondDomainError maps domain failures to HTTP status codes. The two
// inconsistency classes get their own messages so operators can tell a clean
// failure from one that needs reconciliation.
func respondDomainError(w http.ResponseWriter, err error) {
	var partial *domain.PartialTransferError
	var persistence *domain.PersistenceError

	switch {
	// The inconsistency classes first: they may wrap the plain sentinels
	// below and must never be mistaken for a clean abort.
	case errors.As(err, &partial):
		log.Error().Err(err).Msg("partial transfer failure")
		respondError(w, http.StatusBadGateway, partial.Error())

	case errors.As(err, &persistence):
		log.Error().Err(err).Msg("movement effected but not recorded")
		respondError(w, http.StatusInternalServerError, "movement was effected but could not be recorded")

	case errors.Is(err, domain.ErrInvalidAccountID),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrInvalidMovementKind):
		respondError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, domain.ErrAccountNotFound):
		respondError(w, http.StatusNotFound, "account not found")

	case errors.Is(err, domain.ErrInsufficientFunds):
		respondError(w, http.StatusUnprocessableEntity, "insufficient funds")

	case errors.Is(err, domain.ErrAuthorityUnavailable):
		log.Error().Err(err).Msg("account authority unavailable")
		respondError(w, http.StatusBadGateway, "account authority unavailable")

	default:
		log.Error().Err(err).Msg("internal error processing transaction")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// JSON response helpers.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
