package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	domainerrors "github.com/montirku/montirku/internal/pkg/errors"
	"github.com/montirku/montirku/internal/pkg/models"
	"github.com/montirku/montirku/services/rescue/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{
			SearchRadiusKm: 20.0,
		},
	}
}

func customerUser(id uuid.UUID) *models.User {
	return &models.User{
		ID:       id,
		FullName: "Budi Santoso",
		Phone:    "081234567890",
		Role:     models.RoleCustomer,
	}
}

func mechanicUser(id uuid.UUID) *models.User {
	lat, lng := -6.2088, 106.8456
	return &models.User{
		ID:          id,
		FullName:    "Agus Wijaya",
		Phone:       "089876543210",
		Role:        models.RoleMechanic,
		IsAvailable: true,
		Latitude:    &lat,
		Longitude:   &lng,
	}
}

func TestCreateRequest_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	customerID := uuid.New()
	payload := &models.CreateRequestPayload{
		VehicleType: "car",
		ProblemDesc: "Engine won't start",
		Lat:         -6.2088,
		Lng:         106.8456,
	}

	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), customerID).Return(customerUser(customerID), nil)
	mockRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.ServiceRequest) error {
			req.ID = uuid.New()
			req.Status = models.RequestStatusPending
			return nil
		})
	mockGW.EXPECT().PublishRequestCreated(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	req, err := uc.CreateRequest(context.Background(), customerID, payload)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, req)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.Equal(t, customerID, req.CustomerID)
	assert.Equal(t, models.VehicleTypeCar, req.VehicleType)
}

func TestCreateRequest_MechanicForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), mechanicID).Return(mechanicUser(mechanicID), nil)

	req, err := uc.CreateRequest(context.Background(), mechanicID, &models.CreateRequestPayload{
		VehicleType: "bike",
		ProblemDesc: "Flat tire on the highway",
		Lat:         -6.2,
		Lng:         106.8,
	})

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestCreateRequest_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	customerID := uuid.New()
	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), customerID).Return(customerUser(customerID), nil)
	mockRepo.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *models.ServiceRequest) error {
			req.ID = uuid.New()
			req.Status = models.RequestStatusPending
			return nil
		})
	mockGW.EXPECT().PublishRequestCreated(gomock.Any(), gomock.Any()).Return(errors.New("nsq unavailable"))

	req, err := uc.CreateRequest(context.Background(), customerID, &models.CreateRequestPayload{
		VehicleType: "truck",
		ProblemDesc: "Brakes are not responding",
		Lat:         -6.2,
		Lng:         106.8,
	})

	assert.NoError(t, err)
	assert.NotNil(t, req)
}

func TestCancelRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	customerID := uuid.New()
	requestID := uuid.New()
	pending := &models.ServiceRequest{
		ID:         requestID,
		CustomerID: customerID,
		Status:     models.RequestStatusPending,
	}

	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(pending, nil)
	mockRepo.EXPECT().CancelRequest(gomock.Any(), requestID).Return(nil)
	mockGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	req, err := uc.CancelRequest(context.Background(), customerID, requestID)

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusCancelled, req.Status)
}

func TestCancelRequest_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	requestID := uuid.New()
	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		Status:     models.RequestStatusPending,
	}, nil)

	req, err := uc.CancelRequest(context.Background(), uuid.New(), requestID)

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestCancelRequest_AlreadyProcessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	customerID := uuid.New()
	requestID := uuid.New()
	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: customerID,
		Status:     models.RequestStatusAccepted,
	}, nil)

	req, err := uc.CancelRequest(context.Background(), customerID, requestID)

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsInvalidState(err))
}

func TestCancelRequest_LostRaceSurfacesInvalidState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	customerID := uuid.New()
	requestID := uuid.New()
	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: customerID,
		Status:     models.RequestStatusPending,
	}, nil)
	mockRepo.EXPECT().CancelRequest(gomock.Any(), requestID).
		Return(domainerrors.Conflict("request already taken"))

	req, err := uc.CancelRequest(context.Background(), customerID, requestID)

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsInvalidState(err))
}

func TestAcceptRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	requestID := uuid.New()

	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), mechanicID).Return(mechanicUser(mechanicID), nil)
	mockRepo.EXPECT().GetActiveRequestByMechanic(gomock.Any(), mechanicID).Return(nil, nil)
	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		Status:     models.RequestStatusPending,
	}, nil)
	mockRepo.EXPECT().AcceptRequest(gomock.Any(), requestID, mechanicID).Return(nil)
	mockGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	req, err := uc.AcceptRequest(context.Background(), mechanicID, requestID)

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, req.Status)
	assert.NotNil(t, req.MechanicID)
	assert.Equal(t, mechanicID, *req.MechanicID)
}

func TestAcceptRequest_CustomerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	customerID := uuid.New()
	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), customerID).Return(customerUser(customerID), nil)

	req, err := uc.AcceptRequest(context.Background(), customerID, uuid.New())

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestAcceptRequest_AlreadyHasActiveJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), mechanicID).Return(mechanicUser(mechanicID), nil)
	mockRepo.EXPECT().GetActiveRequestByMechanic(gomock.Any(), mechanicID).Return(&models.ServiceRequest{
		ID:     uuid.New(),
		Status: models.RequestStatusEnRoute,
	}, nil)

	req, err := uc.AcceptRequest(context.Background(), mechanicID, uuid.New())

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsInvalidState(err))
}

func TestAcceptRequest_AlreadyTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	requestID := uuid.New()
	otherMechanic := uuid.New()

	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), mechanicID).Return(mechanicUser(mechanicID), nil)
	mockRepo.EXPECT().GetActiveRequestByMechanic(gomock.Any(), mechanicID).Return(nil, nil)
	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		MechanicID: &otherMechanic,
		Status:     models.RequestStatusAccepted,
	}, nil)

	req, err := uc.AcceptRequest(context.Background(), mechanicID, requestID)

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsConflict(err))
}

func TestAcceptRequest_LostRacePropagatesConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	requestID := uuid.New()

	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), mechanicID).Return(mechanicUser(mechanicID), nil)
	mockRepo.EXPECT().GetActiveRequestByMechanic(gomock.Any(), mechanicID).Return(nil, nil)
	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		Status:     models.RequestStatusPending,
	}, nil)
	mockRepo.EXPECT().AcceptRequest(gomock.Any(), requestID, mechanicID).
		Return(domainerrors.Conflict("request already taken"))

	req, err := uc.AcceptRequest(context.Background(), mechanicID, requestID)

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsConflict(err))
}

func TestRejectRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	requestID := uuid.New()

	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), mechanicID).Return(mechanicUser(mechanicID), nil)
	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		Status:     models.RequestStatusPending,
	}, nil)
	mockRepo.EXPECT().RejectRequest(gomock.Any(), requestID, mechanicID).Return(nil)
	mockGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	req, err := uc.RejectRequest(context.Background(), mechanicID, requestID)

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, req.Status)
}

func TestRejectRequest_AlreadyProcessed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	requestID := uuid.New()

	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), mechanicID).Return(mechanicUser(mechanicID), nil)
	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		Status:     models.RequestStatusCancelled,
	}, nil)

	req, err := uc.RejectRequest(context.Background(), mechanicID, requestID)

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsInvalidState(err))
}

func TestStartTrip_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	requestID := uuid.New()

	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		MechanicID: &mechanicID,
		Status:     models.RequestStatusAccepted,
	}, nil)
	mockRepo.EXPECT().StartRequest(gomock.Any(), requestID, mechanicID).Return(nil)
	mockGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	req, err := uc.StartTrip(context.Background(), mechanicID, requestID)

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusEnRoute, req.Status)
}

func TestStartTrip_NotAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	otherMechanic := uuid.New()
	requestID := uuid.New()

	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		MechanicID: &otherMechanic,
		Status:     models.RequestStatusAccepted,
	}, nil)

	req, err := uc.StartTrip(context.Background(), uuid.New(), requestID)

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestStartTrip_WrongStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	requestID := uuid.New()

	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		MechanicID: &mechanicID,
		Status:     models.RequestStatusEnRoute,
	}, nil)

	req, err := uc.StartTrip(context.Background(), mechanicID, requestID)

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsInvalidState(err))
}

func TestCompleteJob_SuccessFromEnRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	requestID := uuid.New()

	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		MechanicID: &mechanicID,
		Status:     models.RequestStatusEnRoute,
	}, nil)
	mockRepo.EXPECT().CompleteRequest(gomock.Any(), requestID, mechanicID).Return(nil)
	mockGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	req, err := uc.CompleteJob(context.Background(), mechanicID, requestID)

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, req.Status)
}

func TestCompleteJob_SuccessFromAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	requestID := uuid.New()

	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		MechanicID: &mechanicID,
		Status:     models.RequestStatusAccepted,
	}, nil)
	mockRepo.EXPECT().CompleteRequest(gomock.Any(), requestID, mechanicID).Return(nil)
	mockGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	req, err := uc.CompleteJob(context.Background(), mechanicID, requestID)

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, req.Status)
}

func TestCompleteJob_WrongStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	requestID := uuid.New()

	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		MechanicID: &mechanicID,
		Status:     models.RequestStatusCompleted,
	}, nil)

	req, err := uc.CompleteJob(context.Background(), mechanicID, requestID)

	assert.Nil(t, req)
	assert.True(t, domainerrors.IsInvalidState(err))
}

func TestGetActiveJob_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), mechanicID).Return(mechanicUser(mechanicID), nil)
	mockRepo.EXPECT().GetActiveRequestByMechanic(gomock.Any(), mechanicID).Return(nil, nil)

	detail, err := uc.GetActiveJob(context.Background(), mechanicID)

	assert.NoError(t, err)
	assert.Nil(t, detail)
}

func TestGetActiveJob_ReturnsDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	customerID := uuid.New()
	requestID := uuid.New()

	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), mechanicID).Return(mechanicUser(mechanicID), nil).Times(2)
	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), customerID).Return(customerUser(customerID), nil)
	mockRepo.EXPECT().GetActiveRequestByMechanic(gomock.Any(), mechanicID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: customerID,
		MechanicID: &mechanicID,
		Status:     models.RequestStatusEnRoute,
	}, nil)

	detail, err := uc.GetActiveJob(context.Background(), mechanicID)

	assert.NoError(t, err)
	assert.NotNil(t, detail)
	assert.Equal(t, requestID, detail.ID)
	assert.Equal(t, "Agus Wijaya", detail.Mechanic.FullName)
	assert.Equal(t, "Budi Santoso", detail.Customer.FullName)
}

func TestGetRequestDetail_StrangerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	requestID := uuid.New()
	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: uuid.New(),
		Status:     models.RequestStatusPending,
	}, nil)

	detail, err := uc.GetRequestDetail(context.Background(), uuid.New(), requestID)

	assert.Nil(t, detail)
	assert.True(t, domainerrors.IsUnauthorized(err))
}

func TestGetRequestDetail_AssignedMechanicAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	mechanicID := uuid.New()
	customerID := uuid.New()
	requestID := uuid.New()

	mockRepo.EXPECT().GetRequestByID(gomock.Any(), requestID).Return(&models.ServiceRequest{
		ID:         requestID,
		CustomerID: customerID,
		MechanicID: &mechanicID,
		Status:     models.RequestStatusAccepted,
	}, nil)
	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), mechanicID).Return(mechanicUser(mechanicID), nil)
	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), customerID).Return(customerUser(customerID), nil)

	detail, err := uc.GetRequestDetail(context.Background(), mechanicID, requestID)

	assert.NoError(t, err)
	assert.NotNil(t, detail)
	assert.Equal(t, "081234567890", detail.Customer.Phone)
}

func TestListMyRequests_ReturnsDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRequestRepo(ctrl)
	mockUserRepo := mocks.NewMockUserRepo(ctrl)
	mockGW := mocks.NewMockRescueGW(ctrl)

	uc := NewRescueUC(testConfig(), mockRepo, mockUserRepo, mockGW)

	customerID := uuid.New()
	mockRepo.EXPECT().ListRequestsByCustomer(gomock.Any(), customerID).Return([]*models.ServiceRequest{
		{ID: uuid.New(), CustomerID: customerID, Status: models.RequestStatusCompleted},
		{ID: uuid.New(), CustomerID: customerID, Status: models.RequestStatusPending},
	}, nil)
	mockUserRepo.EXPECT().GetUserByID(gomock.Any(), customerID).Return(customerUser(customerID), nil).Times(2)

	details, err := uc.ListMyRequests(context.Background(), customerID)

	assert.NoError(t, err)
	assert.Len(t, details, 2)
}
