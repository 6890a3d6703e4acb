package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kisanmitra/kisan-service/internal/domain/model"
	"github.com/kisanmitra/kisan-service/internal/mocks"
	"github.com/kisanmitra/kisan-service/internal/service"
)

func newCropRouter(svc *mocks.MockCropService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewCropHandler(svc)
	router.GET("/crops", handler.ListCrops)
	router.POST("/crops/add", handler.AddCrop)
	router.PATCH("/crops/:id/stage", handler.UpdateCropStage)
	router.DELETE("/crops/:id", handler.DeleteCrop)
	return router
}

func TestCropHandler_ListCrops(t *testing.T) {
	svc := new(mocks.MockCropService)
	svc.On("List", mock.Anything).Return([]model.Crop{{Crop: "Tomato"}, {Crop: "Onion"}}, nil)
	router := newCropRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/crops", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var crops []model.Crop
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &crops))
	assert.Len(t, crops, 2)
}

func TestCropHandler_AddCrop(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockCropService)
		expectedStatus int
	}{
		{
			name: "valid crop",
			body: `{"crop": "Tomato", "plot": "North field"}`,
			setupMocks: func(svc *mocks.MockCropService) {
				svc.On("Add", mock.Anything, mock.AnythingOfType("*dto.CropCreateRequest")).
					Return(&model.Crop{Crop: "Tomato", Plot: "North field", Stage: model.StageSown}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing plot",
			body:           `{"crop": "Tomato"}`,
			setupMocks:     func(svc *mocks.MockCropService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"crop": `,
			setupMocks:     func(svc *mocks.MockCropService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid stage",
			body: `{"crop": "Tomato", "plot": "North field", "stage": "Sprouting"}`,
			setupMocks: func(svc *mocks.MockCropService) {
				svc.On("Add", mock.Anything, mock.AnythingOfType("*dto.CropCreateRequest")).
					Return(nil, service.ErrInvalidStage)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockCropService)
			tt.setupMocks(svc)
			router := newCropRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/crops/add", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestCropHandler_UpdateCropStage(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("valid update", func(t *testing.T) {
		svc := new(mocks.MockCropService)
		svc.On("UpdateStage", mock.Anything, id, "Flowering").
			Return(&model.Crop{ID: id, Stage: "Flowering"}, nil)
		router := newCropRouter(svc)

		req := httptest.NewRequest(http.MethodPatch, "/crops/"+id.Hex()+"/stage",
			bytes.NewBufferString(`{"stage": "Flowering"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		router := newCropRouter(new(mocks.MockCropService))

		req := httptest.NewRequest(http.MethodPatch, "/crops/not-hex/stage",
			bytes.NewBufferString(`{"stage": "Flowering"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown crop", func(t *testing.T) {
		svc := new(mocks.MockCropService)
		svc.On("UpdateStage", mock.Anything, id, "Flowering").Return(nil, service.ErrCropNotFound)
		router := newCropRouter(svc)

		req := httptest.NewRequest(http.MethodPatch, "/crops/"+id.Hex()+"/stage",
			bytes.NewBufferString(`{"stage": "Flowering"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCropHandler_DeleteCrop(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("deletes", func(t *testing.T) {
		svc := new(mocks.MockCropService)
		svc.On("Delete", mock.Anything, id).Return(nil)
		router := newCropRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/crops/"+id.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown crop", func(t *testing.T) {
		svc := new(mocks.MockCropService)
		svc.On("Delete", mock.Anything, id).Return(service.ErrCropNotFound)
		router := newCropRouter(svc)

		req := httptest.NewRequest(http.MethodDelete, "/crops/"+id.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
