package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wastebank/ledger/internal/mocks/service_mocks"
	"github.com/wastebank/ledger/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, officerID int64, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"officer_id": officerID,
		"role":       role,
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestRouter_Auth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	depositSvc := service_mocks.NewMockDepositService(ctrl)
	ts := httptest.NewServer(NewRouter(NewHandler(Services{Deposits: depositSvc}), testSecret))
	defer ts.Close()

	t.Run("no token", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/deposits")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/deposits", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token reaches the handler", func(t *testing.T) {
		depositSvc.EXPECT().GetDeposits(gomock.Any()).Return([]models.Deposit{}, nil)

		req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/deposits", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 20, "officer"))
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown path", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRouter_AdminGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerSvc := service_mocks.NewMockCustomerService(ctrl)
	ts := httptest.NewServer(NewRouter(NewHandler(Services{Customers: customerSvc}), testSecret))
	defer ts.Close()

	body := `{"code":"C001","name":"Siti"}`

	t.Run("officer role cannot create catalog entries", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/customers", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 20, "officer"))
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin role can", func(t *testing.T) {
		customerSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/customers", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+signToken(t, 20, "admin"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("officer role can still read the catalog", func(t *testing.T) {
		customerSvc.EXPECT().List(gomock.Any()).Return([]models.Customer{}, nil)

		req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/customers", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, 20, "officer"))
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
