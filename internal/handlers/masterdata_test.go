package handlers

import (
	"bytes"
	"context"
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

func TestHandler_CreateCustomer(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *service_mocks.MockCustomerService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"code":"C001","name":"Siti","address":"Jl. Melati 4"}`,
			mockSetup: func(m *service_mocks.MockCustomerService) {
				m.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&models.Customer{})).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate code",
			body: `{"code":"C001","name":"Siti"}`,
			mockSetup: func(m *service_mocks.MockCustomerService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrConflict)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "missing name",
			body: `{"code":"C001"}`,
			mockSetup: func(m *service_mocks.MockCustomerService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrValidation)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"code":`,
			mockSetup:  func(m *service_mocks.MockCustomerService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			customerSvc := service_mocks.NewMockCustomerService(ctrl)
			tt.mockSetup(customerSvc)
			h := NewHandler(Services{Customers: customerSvc})

			req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			h.CreateCustomer(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_UpdateWasteType(t *testing.T) {
	t.Run("price patch applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		wasteTypeSvc := service_mocks.NewMockWasteTypeService(ctrl)
		wasteTypeSvc.EXPECT().Update(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, patch models.WasteTypePatch) error {
				require.NotNil(t, patch.BuyPrice)
				assert.True(t, patch.BuyPrice.Equal(dec("2100")))
				assert.Nil(t, patch.SellPrice)
				return nil
			})
		h := NewHandler(Services{WasteTypes: wasteTypeSvc})

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/waste-types/7", bytes.NewBufferString(`{"buy_price":"2100"}`)), "id", "7")
		rec := httptest.NewRecorder()

		h.UpdateWasteType(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown waste type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		wasteTypeSvc := service_mocks.NewMockWasteTypeService(ctrl)
		wasteTypeSvc.EXPECT().Update(gomock.Any(), int64(99), gomock.Any()).Return(apperrors.ErrNotFound)
		h := NewHandler(Services{WasteTypes: wasteTypeSvc})

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/waste-types/99", bytes.NewBufferString(`{"name":"Glass"}`)), "id", "99")
		rec := httptest.NewRecorder()

		h.UpdateWasteType(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_DeleteCollector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collectorSvc := service_mocks.NewMockCollectorService(ctrl)
	collectorSvc.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
	h := NewHandler(Services{Collectors: collectorSvc})

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/collectors/3", nil), "id", "3")
	rec := httptest.NewRecorder()

	h.DeleteCollector(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_GetWasteType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wasteTypeSvc := service_mocks.NewMockWasteTypeService(ctrl)
	wasteTypeSvc.EXPECT().Get(gomock.Any(), int64(7)).Return(&models.WasteType{
		ID: 7, Code: "PLS", Name: "Plastic", BuyPrice: dec("2000"), SellPrice: dec("2500"),
	}, nil)
	h := NewHandler(Services{WasteTypes: wasteTypeSvc})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/waste-types/7", nil), "id", "7")
	rec := httptest.NewRecorder()

	h.GetWasteType(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got models.WasteType
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Plastic", got.Name)
	assert.True(t, got.BuyPrice.Equal(dec("2000")))
}
