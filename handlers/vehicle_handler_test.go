package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autohub/models"
	"autohub/repositories"
	"autohub/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memVehicleRepo struct {
	vehicles []models.Vehicle
	nextID   uint
}

func (m *memVehicleRepo) Create(vehicle *models.Vehicle) error {
	m.nextID++
	vehicle.ID = m.nextID
	vehicle.CreatedAt = time.Now()
	m.vehicles = append(m.vehicles, *vehicle)
	return nil
}

func (m *memVehicleRepo) GetByID(id uint) (*models.Vehicle, error) {
	for i := range m.vehicles {
		if m.vehicles[i].ID == id {
			v := m.vehicles[i]
			return &v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memVehicleRepo) GetList(filter repositories.VehicleFilter) ([]models.Vehicle, error) {
	return append([]models.Vehicle(nil), m.vehicles...), nil
}

func (m *memVehicleRepo) Update(vehicle *models.Vehicle) error {
	for i := range m.vehicles {
		if m.vehicles[i].ID == vehicle.ID {
			m.vehicles[i] = *vehicle
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memVehicleRepo) UpdateStatus(id uint, status models.VehicleStatus) error {
	for i := range m.vehicles {
		if m.vehicles[i].ID == id {
			m.vehicles[i].Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memVehicleRepo) Delete(id uint) error {
	for i := range m.vehicles {
		if m.vehicles[i].ID == id {
			m.vehicles = append(m.vehicles[:i], m.vehicles[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func submissionRouter() (*gin.Engine, *memVehicleRepo) {
	gin.SetMode(gin.TestMode)

	repo := &memVehicleRepo{}
	handler := NewVehicleHandler(services.NewVehicleService(repo))

	router := gin.New()
	router.POST("/vehicles", handler.CreateVehicle)
	return router, repo
}

const mustangBody = `{
	"name": "Mustang",
	"model": "GT500",
	"year": 2020,
	"mileage": "25000",
	"color": "Red",
	"gear_type": "Automatic",
	"type": "Sport",
	"price": 45000,
	"seller_email": "a@b.com"`

func postVehicle(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/vehicles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateVehicleMalformedImagesNormalized(t *testing.T) {
	router, repo := submissionRouter()

	// a malformed image field never rejects the submission
	w := postVehicle(router, mustangBody+`, "images": "not-a-list"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, []string{}, created.Images)
	require.Len(t, repo.vehicles, 1)
	assert.Equal(t, []string{}, repo.vehicles[0].Images)
}

func TestCreateVehicleMixedImageListNormalized(t *testing.T) {
	router, _ := submissionRouter()

	w := postVehicle(router, mustangBody+`, "images": ["/uploads/a.jpg", 42]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, []string{}, created.Images)
}

func TestCreateVehicleProperImageListKept(t *testing.T) {
	router, _ := submissionRouter()

	w := postVehicle(router, mustangBody+`, "images": ["/uploads/front.jpg", "/uploads/rear.jpg"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, []string{"/uploads/front.jpg", "/uploads/rear.jpg"}, created.Images)
}

func TestCreateVehicleMissingFieldsStillRejected(t *testing.T) {
	router, repo := submissionRouter()

	w := postVehicle(router, `{"name": "Mustang", "images": "not-a-list"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, repo.vehicles)
}
