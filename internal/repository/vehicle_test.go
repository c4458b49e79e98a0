//go:build integration
// +build integration

package repository

import (
	"testing"

	"pev-registry-backend/internal/database/models"
	apperrors "pev-registry-backend/internal/errors"
	"pev-registry-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// VehicleRepositoryTestSuite tests the VehicleRepository
type VehicleRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *VehicleRepository
	userFactory    *testutils.UserFactory
	vehicleFactory *testutils.VehicleFactory
}

// SetupSuite runs before all tests in the suite
func (suite *VehicleRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewVehicleRepository(suite.baseTestSuite.DB)
	suite.userFactory = testutils.NewUserFactory()
	suite.vehicleFactory = testutils.NewVehicleFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *VehicleRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *VehicleRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *VehicleRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a user directly via gorm
func (suite *VehicleRepositoryTestSuite) createUser() *models.User {
	user := suite.userFactory.Create()
	err := suite.baseTestSuite.DB.Create(user).Error
	suite.NoError(err)
	return user
}

// helper to insert a vehicle for the given owner
func (suite *VehicleRepositoryTestSuite) createVehicle(ownerID uuid.UUID) *models.Vehicle {
	vehicle := suite.vehicleFactory.WithOwner(ownerID)
	err := suite.baseTestSuite.DB.Create(vehicle).Error
	suite.NoError(err)
	return vehicle
}

// TestCreate tests registering a vehicle
func (suite *VehicleRepositoryTestSuite) TestCreate() {
	owner := suite.createUser()
	vehicle := suite.vehicleFactory.WithOwner(owner.ID)

	err := suite.repo.Create(vehicle)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(vehicle.ID)
	suite.NoError(err)
	suite.Equal(vehicle.VIN, retrieved.VIN)
	suite.Equal(models.VehicleStatusActive, retrieved.Status)
}

// TestCreateDuplicateVIN tests that the unique index maps to the typed error
func (suite *VehicleRepositoryTestSuite) TestCreateDuplicateVIN() {
	owner := suite.createUser()
	first := suite.createVehicle(owner.ID)

	duplicate := suite.vehicleFactory.WithOwner(owner.ID)
	duplicate.VIN = first.VIN

	err := suite.repo.Create(duplicate)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrVINExists)
}

// TestCreateDuplicateLicensePlate tests the license plate unique index mapping
func (suite *VehicleRepositoryTestSuite) TestCreateDuplicateLicensePlate() {
	owner := suite.createUser()
	first := suite.createVehicle(owner.ID)

	duplicate := suite.vehicleFactory.WithOwner(owner.ID)
	duplicate.LicensePlate = first.LicensePlate

	err := suite.repo.Create(duplicate)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrLicensePlateExists)
}

// TestGetByIDNotFound tests retrieving a non-existent vehicle
func (suite *VehicleRepositoryTestSuite) TestGetByIDNotFound() {
	vehicle, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(vehicle)
}

// TestGetWithHistory tests preloading the owner and transfer history
func (suite *VehicleRepositoryTestSuite) TestGetWithHistory() {
	owner := suite.createUser()
	recipient := suite.createUser()
	vehicle := suite.createVehicle(owner.ID)

	transfer := testutils.NewTransferFactory().Between(vehicle.ID, owner.ID, recipient.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(transfer).Error)

	retrieved, err := suite.repo.GetWithHistory(vehicle.ID)

	suite.NoError(err)
	suite.Equal(owner.ID, retrieved.Owner.ID)
	suite.Len(retrieved.Transfers, 1)
	suite.Equal(transfer.ID, retrieved.Transfers[0].ID)
	suite.Equal(owner.ID, retrieved.Transfers[0].FromUser.ID)
	suite.NotNil(retrieved.Transfers[0].ToUser)
	suite.Equal(recipient.ID, retrieved.Transfers[0].ToUser.ID)
}

// TestGetByOwnerID tests that listing is scoped to the owner
func (suite *VehicleRepositoryTestSuite) TestGetByOwnerID() {
	owner := suite.createUser()
	other := suite.createUser()
	suite.createVehicle(owner.ID)
	suite.createVehicle(owner.ID)
	suite.createVehicle(other.ID)

	vehicles, total, err := suite.repo.GetByOwnerID(owner.ID, "", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(vehicles, 2)
	for _, v := range vehicles {
		suite.Equal(owner.ID, v.OwnerID)
	}
}

// TestGetByOwnerIDSearch tests the case-insensitive substring filter
func (suite *VehicleRepositoryTestSuite) TestGetByOwnerIDSearch() {
	owner := suite.createUser()

	scooter := suite.vehicleFactory.WithOwner(owner.ID)
	scooter.Make = "Segway"
	scooter.Model = "Ninebot Max G30"
	suite.NoError(suite.baseTestSuite.DB.Create(scooter).Error)

	board := suite.vehicleFactory.WithOwner(owner.ID)
	board.Make = "Onewheel"
	board.Model = "GT S-Series"
	suite.NoError(suite.baseTestSuite.DB.Create(board).Error)

	vehicles, total, err := suite.repo.GetByOwnerID(owner.ID, "onewheel", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(vehicles, 1)
	suite.Equal("Onewheel", vehicles[0].Make)
}

// TestGetByOwnerIDPagination tests paging through an owner's vehicles
func (suite *VehicleRepositoryTestSuite) TestGetByOwnerIDPagination() {
	owner := suite.createUser()
	for i := 0; i < 12; i++ {
		suite.createVehicle(owner.ID)
	}

	firstPage, total, err := suite.repo.GetByOwnerID(owner.ID, "", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(12), total)
	suite.Len(firstPage, 10)

	secondPage, total, err := suite.repo.GetByOwnerID(owner.ID, "", 10, 10)
	suite.NoError(err)
	suite.Equal(int64(12), total)
	suite.Len(secondPage, 2)
}

// TestSearchActive tests that public search never surfaces inactive vehicles
func (suite *VehicleRepositoryTestSuite) TestSearchActive() {
	owner := suite.createUser()

	active := suite.vehicleFactory.WithOwner(owner.ID)
	active.LicensePlate = "PEV-ACTIVE"
	suite.NoError(suite.baseTestSuite.DB.Create(active).Error)

	inactive := suite.vehicleFactory.WithOwner(owner.ID)
	inactive.LicensePlate = "PEV-PARKED"
	inactive.Status = models.VehicleStatusInactive
	suite.NoError(suite.baseTestSuite.DB.Create(inactive).Error)

	vehicles, err := suite.repo.SearchActive(SearchFieldLicensePlate, "PEV-", 10)

	suite.NoError(err)
	suite.Len(vehicles, 1)
	suite.Equal("PEV-ACTIVE", vehicles[0].LicensePlate)
	// Owner comes preloaded for display
	suite.Equal(owner.ID, vehicles[0].Owner.ID)
}

// TestSearchActiveByMakeModel tests matching against make and model columns
func (suite *VehicleRepositoryTestSuite) TestSearchActiveByMakeModel() {
	owner := suite.createUser()

	vehicle := suite.vehicleFactory.WithOwner(owner.ID)
	vehicle.Make = "Boosted"
	vehicle.Model = "Stealth"
	suite.NoError(suite.baseTestSuite.DB.Create(vehicle).Error)

	byMake, err := suite.repo.SearchActive(SearchFieldMakeModel, "boosted", 10)
	suite.NoError(err)
	suite.Len(byMake, 1)

	byModel, err := suite.repo.SearchActive(SearchFieldMakeModel, "stealth", 10)
	suite.NoError(err)
	suite.Len(byModel, 1)
}

// TestSearchActiveLimit tests the result cap
func (suite *VehicleRepositoryTestSuite) TestSearchActiveLimit() {
	owner := suite.createUser()
	for i := 0; i < 12; i++ {
		suite.createVehicle(owner.ID)
	}

	vehicles, err := suite.repo.SearchActive(SearchFieldLicensePlate, "PEV-", 10)

	suite.NoError(err)
	suite.Len(vehicles, 10)
}

// TestCountByOwner tests the dashboard counters
func (suite *VehicleRepositoryTestSuite) TestCountByOwner() {
	owner := suite.createUser()
	suite.createVehicle(owner.ID)
	suite.createVehicle(owner.ID)

	inactive := suite.vehicleFactory.WithOwner(owner.ID)
	inactive.Status = models.VehicleStatusInactive
	suite.NoError(suite.baseTestSuite.DB.Create(inactive).Error)

	total, active, err := suite.repo.CountByOwner(owner.ID)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Equal(int64(2), active)
}

// TestLatestActiveByOwner tests the recent-vehicles panel query
func (suite *VehicleRepositoryTestSuite) TestLatestActiveByOwner() {
	owner := suite.createUser()
	for i := 0; i < 7; i++ {
		suite.createVehicle(owner.ID)
	}
	inactive := suite.vehicleFactory.WithOwner(owner.ID)
	inactive.Status = models.VehicleStatusInactive
	suite.NoError(suite.baseTestSuite.DB.Create(inactive).Error)

	vehicles, err := suite.repo.LatestActiveByOwner(owner.ID, 5)

	suite.NoError(err)
	suite.Len(vehicles, 5)
	for _, v := range vehicles {
		suite.Equal(models.VehicleStatusActive, v.Status)
	}
}

// TestVINExists tests the pre-check with and without an excluded record
func (suite *VehicleRepositoryTestSuite) TestVINExists() {
	owner := suite.createUser()
	vehicle := suite.createVehicle(owner.ID)

	exists, err := suite.repo.VINExists(vehicle.VIN, nil)
	suite.NoError(err)
	suite.True(exists)

	// Excluding the record itself, as the update path does
	exists, err = suite.repo.VINExists(vehicle.VIN, &vehicle.ID)
	suite.NoError(err)
	suite.False(exists)

	exists, err = suite.repo.VINExists("5YJSA1E26MF999999", nil)
	suite.NoError(err)
	suite.False(exists)
}

// TestLicensePlateExists tests the license plate pre-check
func (suite *VehicleRepositoryTestSuite) TestLicensePlateExists() {
	owner := suite.createUser()
	vehicle := suite.createVehicle(owner.ID)

	exists, err := suite.repo.LicensePlateExists(vehicle.LicensePlate, nil)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.LicensePlateExists(vehicle.LicensePlate, &vehicle.ID)
	suite.NoError(err)
	suite.False(exists)
}

// TestUpdate tests saving changed vehicle fields
func (suite *VehicleRepositoryTestSuite) TestUpdate() {
	owner := suite.createUser()
	vehicle := suite.createVehicle(owner.ID)

	vehicle.Model = "Ninebot Max G2"
	vehicle.Status = models.VehicleStatusInactive
	err := suite.repo.Update(vehicle)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(vehicle.ID)
	suite.NoError(err)
	suite.Equal("Ninebot Max G2", retrieved.Model)
	suite.Equal(models.VehicleStatusInactive, retrieved.Status)
}

// TestDeleteCascadesTransfers tests that transfer records go with the vehicle
func (suite *VehicleRepositoryTestSuite) TestDeleteCascadesTransfers() {
	owner := suite.createUser()
	vehicle := suite.createVehicle(owner.ID)

	transfer := testutils.NewTransferFactory().ForVehicle(vehicle.ID, owner.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(transfer).Error)

	err := suite.repo.Delete(vehicle.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(vehicle.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.PevTransfer{}).
		Where("pev_id = ?", vehicle.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestVehicleRepositoryTestSuite runs the test suite
func TestVehicleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(VehicleRepositoryTestSuite))
}
