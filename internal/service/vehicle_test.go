package service_test

import (
	"testing"
	"time"

	"pev-registry-backend/internal/database/models"
	apperrors "pev-registry-backend/internal/errors"
	"pev-registry-backend/internal/mocks"
	"pev-registry-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// VehicleServiceTestSuite defines the test suite for VehicleService
type VehicleServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockVehicleRepo *mocks.MockVehicleRepositoryInterface
	vehicleService  *service.VehicleService
	validator       *validator.Validate
}

// SetupTest sets up the test suite
func (suite *VehicleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockVehicleRepo = mocks.NewMockVehicleRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.vehicleService = service.NewVehicleService(suite.mockVehicleRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *VehicleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validVehicleRequest() *service.VehicleRequest {
	return &service.VehicleRequest{
		Make:         "Segway",
		Model:        "Ninebot Max G30",
		Year:         2023,
		VIN:          "5YJSA1E26MF100001",
		LicensePlate: "PEV-1001",
	}
}

// TestCreateVehicle tests registering a vehicle
func (suite *VehicleServiceTestSuite) TestCreateVehicle() {
	callerID := uuid.New()
	req := validVehicleRequest()

	suite.mockVehicleRepo.EXPECT().
		VINExists(req.VIN, nil).
		Return(false, nil).
		Times(1)

	suite.mockVehicleRepo.EXPECT().
		LicensePlateExists(req.LicensePlate, nil).
		Return(false, nil).
		Times(1)

	suite.mockVehicleRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(vehicle *models.Vehicle) error {
			assert.Equal(suite.T(), callerID, vehicle.OwnerID)
			assert.Equal(suite.T(), models.VehicleStatusActive, vehicle.Status)
			return nil
		}).
		Times(1)

	response, err := suite.vehicleService.Create(callerID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.VIN, response.VIN)
	assert.Equal(suite.T(), callerID, response.OwnerID)
	assert.Equal(suite.T(), models.VehicleStatusActive, response.Status)
}

// TestCreateVehicleValidationError tests registering with a malformed VIN
func (suite *VehicleServiceTestSuite) TestCreateVehicleValidationError() {
	req := validVehicleRequest()
	req.VIN = "TOO-SHORT"

	response, err := suite.vehicleService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateVehicleYearTooFarAhead tests the model year ceiling
func (suite *VehicleServiceTestSuite) TestCreateVehicleYearTooFarAhead() {
	req := validVehicleRequest()
	req.Year = time.Now().Year() + 3

	response, err := suite.vehicleService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateVehicleDuplicateVIN tests registering a VIN that already exists
func (suite *VehicleServiceTestSuite) TestCreateVehicleDuplicateVIN() {
	req := validVehicleRequest()

	suite.mockVehicleRepo.EXPECT().
		VINExists(req.VIN, nil).
		Return(true, nil).
		Times(1)

	response, err := suite.vehicleService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVINExists)
}

// TestCreateVehicleDuplicateLicensePlate tests registering a plate that already exists
func (suite *VehicleServiceTestSuite) TestCreateVehicleDuplicateLicensePlate() {
	req := validVehicleRequest()

	suite.mockVehicleRepo.EXPECT().
		VINExists(req.VIN, nil).
		Return(false, nil).
		Times(1)

	suite.mockVehicleRepo.EXPECT().
		LicensePlateExists(req.LicensePlate, nil).
		Return(true, nil).
		Times(1)

	response, err := suite.vehicleService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLicensePlateExists)
}

// TestGetVehicleByID tests fetching an owned vehicle with its history
func (suite *VehicleServiceTestSuite) TestGetVehicleByID() {
	callerID := uuid.New()
	vehicleID := uuid.New()

	vehicle := &models.Vehicle{
		BaseModel: models.BaseModel{ID: vehicleID},
		OwnerID:   callerID,
		Make:      "Onewheel",
		Model:     "GT S-Series",
		Year:      2024,
		VIN:       "5YJSA1E26MF100003",
		Status:    models.VehicleStatusActive,
		Owner: models.User{
			BaseModel: models.BaseModel{ID: callerID},
			Name:      "Jordan Reyes",
			Email:     "jordan.reyes@example.com",
		},
		Transfers: []models.PevTransfer{
			{
				BaseModel:   models.BaseModel{ID: uuid.New()},
				VehicleID:   vehicleID,
				FromUserID:  callerID,
				Status:      models.TransferStatusCancelled,
				InitiatedAt: time.Now(),
			},
		},
	}

	suite.mockVehicleRepo.EXPECT().
		GetWithHistory(vehicleID).
		Return(vehicle, nil).
		Times(1)

	response, err := suite.vehicleService.GetByID(callerID, vehicleID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), vehicleID, response.ID)
	assert.NotNil(suite.T(), response.Owner)
	assert.Len(suite.T(), response.Transfers, 1)
}

// TestGetVehicleByIDNotOwner tests that only the owner may read a vehicle
func (suite *VehicleServiceTestSuite) TestGetVehicleByIDNotOwner() {
	vehicleID := uuid.New()
	vehicle := &models.Vehicle{
		BaseModel: models.BaseModel{ID: vehicleID},
		OwnerID:   uuid.New(),
	}

	suite.mockVehicleRepo.EXPECT().
		GetWithHistory(vehicleID).
		Return(vehicle, nil).
		Times(1)

	response, err := suite.vehicleService.GetByID(uuid.New(), vehicleID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotVehicleOwner)
}

// TestGetVehicleByIDNotFound tests fetching a missing vehicle
func (suite *VehicleServiceTestSuite) TestGetVehicleByIDNotFound() {
	vehicleID := uuid.New()

	suite.mockVehicleRepo.EXPECT().
		GetWithHistory(vehicleID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.vehicleService.GetByID(uuid.New(), vehicleID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVehicleNotFound)
}

// TestUpdateVehicle tests replacing a vehicle's editable fields
func (suite *VehicleServiceTestSuite) TestUpdateVehicle() {
	callerID := uuid.New()
	vehicleID := uuid.New()

	existing := &models.Vehicle{
		BaseModel:    models.BaseModel{ID: vehicleID},
		OwnerID:      callerID,
		Make:         "Segway",
		Model:        "Ninebot Max G30",
		Year:         2023,
		VIN:          "5YJSA1E26MF100001",
		LicensePlate: "PEV-1001",
		Status:       models.VehicleStatusActive,
	}

	req := validVehicleRequest()
	req.Model = "Ninebot Max G2"
	req.LicensePlate = "PEV-2001"

	suite.mockVehicleRepo.EXPECT().
		GetByID(vehicleID).
		Return(existing, nil).
		Times(1)

	suite.mockVehicleRepo.EXPECT().
		VINExists(req.VIN, &vehicleID).
		Return(false, nil).
		Times(1)

	suite.mockVehicleRepo.EXPECT().
		LicensePlateExists(req.LicensePlate, &vehicleID).
		Return(false, nil).
		Times(1)

	suite.mockVehicleRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.vehicleService.Update(callerID, vehicleID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "Ninebot Max G2", response.Model)
	assert.Equal(suite.T(), "PEV-2001", response.LicensePlate)
}

// TestUpdateVehicleNotOwner tests updating someone else's vehicle
func (suite *VehicleServiceTestSuite) TestUpdateVehicleNotOwner() {
	vehicleID := uuid.New()
	existing := &models.Vehicle{
		BaseModel: models.BaseModel{ID: vehicleID},
		OwnerID:   uuid.New(),
	}

	suite.mockVehicleRepo.EXPECT().
		GetByID(vehicleID).
		Return(existing, nil).
		Times(1)

	response, err := suite.vehicleService.Update(uuid.New(), vehicleID, validVehicleRequest())

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotVehicleOwner)
}

// TestDeleteVehicle tests removing an owned vehicle
func (suite *VehicleServiceTestSuite) TestDeleteVehicle() {
	callerID := uuid.New()
	vehicleID := uuid.New()

	suite.mockVehicleRepo.EXPECT().
		GetByID(vehicleID).
		Return(&models.Vehicle{
			BaseModel: models.BaseModel{ID: vehicleID},
			OwnerID:   callerID,
		}, nil).
		Times(1)

	suite.mockVehicleRepo.EXPECT().
		Delete(vehicleID).
		Return(nil).
		Times(1)

	err := suite.vehicleService.Delete(callerID, vehicleID)

	assert.NoError(suite.T(), err)
}

// TestDeleteVehicleNotFound tests removing a missing vehicle
func (suite *VehicleServiceTestSuite) TestDeleteVehicleNotFound() {
	vehicleID := uuid.New()

	suite.mockVehicleRepo.EXPECT().
		GetByID(vehicleID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.vehicleService.Delete(uuid.New(), vehicleID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVehicleNotFound)
}

// TestListByOwner tests the paginated owner listing
func (suite *VehicleServiceTestSuite) TestListByOwner() {
	callerID := uuid.New()
	vehicles := []models.Vehicle{
		{BaseModel: models.BaseModel{ID: uuid.New()}, OwnerID: callerID, Make: "Segway"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, OwnerID: callerID, Make: "Onewheel"},
	}

	suite.mockVehicleRepo.EXPECT().
		GetByOwnerID(callerID, "", 10, 0).
		Return(vehicles, int64(12), nil).
		Times(1)

	response, err := suite.vehicleService.ListByOwner(callerID, "", 1)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Len(suite.T(), response.Vehicles, 2)
	assert.Equal(suite.T(), int64(12), response.Total)
	assert.Equal(suite.T(), 1, response.Page)
	assert.Equal(suite.T(), 10, response.PageSize)
}

// TestListByOwnerSecondPage tests offset math and page clamping
func (suite *VehicleServiceTestSuite) TestListByOwnerSecondPage() {
	callerID := uuid.New()

	suite.mockVehicleRepo.EXPECT().
		GetByOwnerID(callerID, "ninebot", 10, 10).
		Return([]models.Vehicle{}, int64(12), nil).
		Times(1)

	response, err := suite.vehicleService.ListByOwner(callerID, "ninebot", 2)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, response.Page)

	// A non-positive page falls back to page 1
	suite.mockVehicleRepo.EXPECT().
		GetByOwnerID(callerID, "", 10, 0).
		Return([]models.Vehicle{}, int64(0), nil).
		Times(1)

	response, err = suite.vehicleService.ListByOwner(callerID, "", 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, response.Page)
}

// TestVehicleServiceTestSuite runs the test suite
func TestVehicleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleServiceTestSuite))
}
