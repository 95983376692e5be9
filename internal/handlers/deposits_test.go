package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/middleware"
	"github.com/wastebank/ledger/internal/mocks/service_mocks"
	"github.com/wastebank/ledger/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// asOfficer stamps the request context the way the auth middleware does.
func asOfficer(r *http.Request, officerID int64) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.OfficerIDKey, officerID)
	return r.WithContext(ctx)
}

func TestHandler_RecordDeposit(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		officerID  int64
		noOfficer  bool
		mockSetup  func(m *service_mocks.MockDepositService)
		wantStatus int
	}{
		{
			name:      "deposit recorded",
			body:      `{"customer_id":10,"waste_type_id":7,"weight":"5.0"}`,
			officerID: 20,
			mockSetup: func(m *service_mocks.MockDepositService) {
				m.EXPECT().RecordDeposit(gomock.Any(), int64(10), int64(20), int64(7), dec("5.0")).
					Return(&models.Deposit{ID: 1, CustomerID: 10, OfficerID: 20, WasteTypeID: 7, Weight: dec("5.0"), Value: dec("10000")}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "no authenticated officer",
			body:       `{"customer_id":10,"waste_type_id":7,"weight":"5.0"}`,
			noOfficer:  true,
			mockSetup:  func(m *service_mocks.MockDepositService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed body",
			body:       `{"customer_id":`,
			officerID:  20,
			mockSetup:  func(m *service_mocks.MockDepositService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "non-positive weight",
			body:      `{"customer_id":10,"waste_type_id":7,"weight":"0"}`,
			officerID: 20,
			mockSetup: func(m *service_mocks.MockDepositService) {
				m.EXPECT().RecordDeposit(gomock.Any(), int64(10), int64(20), int64(7), dec("0")).
					Return(nil, apperrors.ErrValidation)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "unknown customer",
			body:      `{"customer_id":99,"waste_type_id":7,"weight":"5.0"}`,
			officerID: 20,
			mockSetup: func(m *service_mocks.MockDepositService) {
				m.EXPECT().RecordDeposit(gomock.Any(), int64(99), int64(20), int64(7), dec("5.0")).
					Return(nil, apperrors.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:      "store down",
			body:      `{"customer_id":10,"waste_type_id":7,"weight":"5.0"}`,
			officerID: 20,
			mockSetup: func(m *service_mocks.MockDepositService) {
				m.EXPECT().RecordDeposit(gomock.Any(), int64(10), int64(20), int64(7), dec("5.0")).
					Return(nil, apperrors.ErrStoreUnavailable)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			depositSvc := service_mocks.NewMockDepositService(ctrl)
			tt.mockSetup(depositSvc)
			h := NewHandler(Services{Deposits: depositSvc})

			req := httptest.NewRequest(http.MethodPost, "/api/deposits", bytes.NewBufferString(tt.body))
			if !tt.noOfficer {
				req = asOfficer(req, tt.officerID)
			}
			rec := httptest.NewRecorder()

			h.RecordDeposit(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var got models.Deposit
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.True(t, got.Value.Equal(dec("10000")))
			}
		})
	}
}

func TestHandler_GetDeposits(t *testing.T) {
	t.Run("all deposits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		depositSvc := service_mocks.NewMockDepositService(ctrl)
		depositSvc.EXPECT().GetDeposits(gomock.Any()).Return([]models.Deposit{{ID: 1}, {ID: 2}}, nil)
		h := NewHandler(Services{Deposits: depositSvc})

		req := httptest.NewRequest(http.MethodGet, "/api/deposits", nil)
		rec := httptest.NewRecorder()
		h.GetDeposits(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []models.Deposit
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got, 2)
	})

	t.Run("filtered by customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		depositSvc := service_mocks.NewMockDepositService(ctrl)
		depositSvc.EXPECT().GetCustomerDeposits(gomock.Any(), int64(10)).Return([]models.Deposit{{ID: 1, CustomerID: 10}}, nil)
		h := NewHandler(Services{Deposits: depositSvc})

		req := httptest.NewRequest(http.MethodGet, "/api/deposits?customer_id=10", nil)
		rec := httptest.NewRecorder()
		h.GetDeposits(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad customer_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := NewHandler(Services{Deposits: service_mocks.NewMockDepositService(ctrl)})

		req := httptest.NewRequest(http.MethodGet, "/api/deposits?customer_id=abc", nil)
		rec := httptest.NewRecorder()
		h.GetDeposits(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
