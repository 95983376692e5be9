package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wastebank/ledger/internal/apperrors"
	"github.com/wastebank/ledger/internal/mocks/service_mocks"
	"github.com/wastebank/ledger/internal/models"
)

func TestHandler_RecordSale(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *service_mocks.MockSaleService)
		wantStatus int
	}{
		{
			name: "sale recorded",
			body: `{"collector_id":3,"waste_type_id":7,"weight":"3.0","sale_price":"2500"}`,
			mockSetup: func(m *service_mocks.MockSaleService) {
				m.EXPECT().RecordSale(gomock.Any(), int64(3), int64(7), dec("3.0"), dec("2500")).
					Return(&models.CollectorSale{ID: 11, Total: dec("7500")}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "unknown collector",
			body: `{"collector_id":99,"waste_type_id":7,"weight":"3.0","sale_price":"2500"}`,
			mockSetup: func(m *service_mocks.MockSaleService) {
				m.EXPECT().RecordSale(gomock.Any(), int64(99), int64(7), dec("3.0"), dec("2500")).
					Return(nil, apperrors.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "non-positive price",
			body: `{"collector_id":3,"waste_type_id":7,"weight":"3.0","sale_price":"0"}`,
			mockSetup: func(m *service_mocks.MockSaleService) {
				m.EXPECT().RecordSale(gomock.Any(), int64(3), int64(7), dec("3.0"), dec("0")).
					Return(nil, apperrors.ErrValidation)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"collector_id":}`,
			mockSetup:  func(m *service_mocks.MockSaleService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			saleSvc := service_mocks.NewMockSaleService(ctrl)
			tt.mockSetup(saleSvc)
			h := NewHandler(Services{Sales: saleSvc})

			req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.RecordSale(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var got models.CollectorSale
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.True(t, got.Total.Equal(dec("7500")))
			}
		})
	}
}

func TestHandler_GetSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saleSvc := service_mocks.NewMockSaleService(ctrl)
	saleSvc.EXPECT().GetSales(gomock.Any()).Return([]models.CollectorSale{{ID: 11}}, nil)
	h := NewHandler(Services{Sales: saleSvc})

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	rec := httptest.NewRecorder()

	h.GetSales(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
