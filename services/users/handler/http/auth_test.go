package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/users/mocks"
)

func TestRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{
		"fullname": "Budi Santoso",
		"email": "budi@example.com",
		"phone": "081234567890",
		"password": "rahasia123",
		"role": "customer"
	}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(&models.User{
			ID:       uuid.New(),
			FullName: "Budi Santoso",
			Email:    "budi@example.com",
			Role:     models.RoleCustomer,
		}, nil)

	// Act
	err := authHandler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "User registered successfully", response["message"])

	// password hash must never leak
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{"fullname": "B", "email": "budi@example.com", "phone": "081234567890", "password": "rahasia123", "role": "customer"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, domainerrors.Validation("name must be between 2 and 100 characters"))

	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "name must be between 2 and 100 characters", response["error"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{"fullname": "Budi Santoso", "email": "budi@example.com", "phone": "081234567890", "password": "rahasia123", "role": "customer"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, domainerrors.Conflict("email already registered"))

	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{"fullname": "Budi Santoso", "email": "budi@example.com", "phone": "081234567890", "password": "rahasia123", "role": "customer"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// internal detail must not leak to the client
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{"email": "budi@example.com", "password": "rahasia123"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	mockUserUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{
			Token:  "signed.jwt.token",
			UserID: userID.String(),
			Role:   "customer",
		}, nil)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "signed.jwt.token", data["token"])
	assert.Equal(t, "customer", data["role"])
}

func TestLogin_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{"email": "", "password": ""}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{"email": "budi@example.com", "password": "wrong-password1"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, domainerrors.Unauthorized("incorrect email or password"))

	err := authHandler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
