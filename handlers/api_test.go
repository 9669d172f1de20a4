package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gashadrift/database"
	reservationRepo "gashadrift/database/repository/reservation"
	vehicleRepo "gashadrift/database/repository/vehicle"
	"gashadrift/handlers"
	"gashadrift/models"
	"gashadrift/routes"
	"gashadrift/services/auth"
	ai "gashadrift/services/intelligence"
	"gashadrift/services/inventory"
	"gashadrift/services/rental"
	"gashadrift/utils"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogRepo := vehicleRepo.NewSeededVehicleRepo(database.SeedFleet())
	ledgerRepo := reservationRepo.NewMemoryReservationRepo()

	bookingService := &rental.DefaultBookingService{VehicleRepo: catalogRepo, LedgerRepo: ledgerRepo}
	inventoryService := &inventory.DefaultInventoryService{VehicleRepo: catalogRepo, LedgerRepo: ledgerRepo}
	authService := &auth.DefaultAuthService{TokenTTL: time.Hour}
	aiService := ai.NewDefaultAIService("", catalogRepo)

	router := gin.New()
	routes.RegisterRoutes(router, &routes.HandlerBundle{
		Auth:      handlers.NewAuthHandler(authService),
		Vehicles:  handlers.NewVehicleHandler(catalogRepo, bookingService),
		Bookings:  handlers.NewBookingHandler(bookingService, utils.GetLogger()),
		Inventory: handlers.NewInventoryHandler(inventoryService),
		AI:        handlers.NewAIHandler(aiService),
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func userToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("Abebe", models.RoleUser, time.Hour)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("staff", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	return token
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignInIssuesToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", `{"name":"Abebe","password":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var session models.AuthSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, models.RoleUser, session.Role)
	assert.NotEmpty(t, session.Token)
}

func TestAvailableVehiclesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/vehicles/available?location=Gerji%20Office&startDate=2024-06-01&endDate=2024-06-03", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Location string           `json:"location"`
		Vehicles []models.Vehicle `json:"vehicles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Gerji Office", resp.Location)
	// The whole seed fleet is bookable: no ledger entries yet, and no seed
	// vehicle is rented or in maintenance.
	assert.Len(t, resp.Vehicles, 6)
}

func TestAvailableVehiclesRejectsBadDates(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/vehicles/available?startDate=soon&endDate=2024-06-03", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/vehicles/available?startDate=2024-06-01", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingFlow(t *testing.T) {
	router := newTestRouter(t)
	token := userToken(t)

	quoteBody := `{"vehicleId":"5","startDate":"2024-06-10","endDate":"2024-06-12"}`
	w := doJSON(t, router, http.MethodPost, "/api/bookings/quote", token, quoteBody)
	require.Equal(t, http.StatusOK, w.Code)

	var quote rental.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, 2, quote.Days)
	assert.Equal(t, 160.0, quote.TotalPrice) // Elantra at 80 Birr/day

	confirmBody := `{
		"vehicleId":"5","startDate":"2024-06-10","endDate":"2024-06-12",
		"pickupLocation":"Gerji Office",
		"verification":{"name":"Abebe","phone":"+251911123456","kebeleId":"KB-1","transactionId":"TXN-1"}
	}`
	w = doJSON(t, router, http.MethodPost, "/api/bookings", token, confirmBody)
	require.Equal(t, http.StatusOK, w.Code)

	var res models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, models.ReservationConfirmed, res.Status)
	assert.Equal(t, 160.0, res.TotalPrice)

	// The booked window now excludes the vehicle.
	w = doJSON(t, router, http.MethodGet, "/api/vehicles/available?startDate=2024-06-10&endDate=2024-06-12", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var avail struct {
		Vehicles []models.Vehicle `json:"vehicles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &avail))
	for _, v := range avail.Vehicles {
		assert.NotEqual(t, "5", v.ID)
	}
}

func TestBookingUnknownVehicleReturns404(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"vehicleId":"ghost","startDate":"2024-06-10","endDate":"2024-06-12",
		"pickupLocation":"Kechene",
		"verification":{"name":"A","phone":"B","kebeleId":"C","transactionId":"D"}
	}`
	w := doJSON(t, router, http.MethodPost, "/api/bookings", userToken(t), body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRejectUserToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/admin/vehicles", userToken(t), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/admin/vehicles", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminVehicleCRUD(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t)

	// Add.
	draft := `{"make":"Suzuki","model":"Jimny","year":2023,"type":"SUV","pricePerDay":90,
		"status":"available","location":"Kechene","transmission":"Manual","seats":4,
		"fuelType":"Petrol","licensePlate":"AA-2-77777"}`
	w := doJSON(t, router, http.MethodPost, "/api/admin/vehicles", token, draft)
	require.Equal(t, http.StatusCreated, w.Code)

	var added models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &added))
	require.NotEmpty(t, added.ID)

	// Patch.
	w = doJSON(t, router, http.MethodPatch, "/api/admin/vehicles/"+added.ID, token, `{"pricePerDay":110}`)
	require.Equal(t, http.StatusOK, w.Code)
	var patched models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patched))
	assert.Equal(t, 110.0, patched.PricePerDay)
	assert.Equal(t, "Suzuki", patched.Make)

	// Search finds it.
	w = doJSON(t, router, http.MethodGet, "/api/admin/vehicles?search=jimny", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var found struct {
		Vehicles []models.Vehicle `json:"vehicles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &found))
	require.Len(t, found.Vehicles, 1)
	assert.Equal(t, added.ID, found.Vehicles[0].ID)

	// Delete, then the patch target is gone.
	w = doJSON(t, router, http.MethodDelete, "/api/admin/vehicles/"+added.ID, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPatch, "/api/admin/vehicles/"+added.ID, token, `{"pricePerDay":120}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminStats(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/admin/stats", adminToken(t), "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats inventory.FleetStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 6, stats.TotalCars)
	assert.Equal(t, 0, stats.ActiveRents)
}

func TestAIRecommendFallsBackWithoutKey(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/ai/recommend", userToken(t), `{"needs":"family car"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AI assistance is currently unavailable. Please browse our fleet manually.", resp.Recommendation)
}
