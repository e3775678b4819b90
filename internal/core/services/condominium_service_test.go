package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/apperrors"
	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	portssvc "github.com/CondoSphere/condo_management_app/internal/core/ports/services"
	"github.com/CondoSphere/condo_management_app/internal/core/services"
	"github.com/CondoSphere/condo_management_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CondominiumServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockCondominiumRepository
	service       portssvc.CondominiumSvcFacade
	condominiumID string
	userID        string
}

func (suite *CondominiumServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCondominiumRepository)
	suite.service = services.NewCondominiumService(suite.mockRepo)
	suite.condominiumID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *CondominiumServiceTestSuite) expectMembership(role domain.CondominiumRole) {
	suite.mockRepo.On("FindUserCondominiumRole", mock.Anything, suite.userID, suite.condominiumID).
		Return(&domain.CondominiumMember{
			UserID:        suite.userID,
			CondominiumID: suite.condominiumID,
			Role:          role,
			JoinedAt:      time.Now(),
		}, nil).Once()
}

func (suite *CondominiumServiceTestSuite) TestCreateCondominium_CreatorBecomesAdmin() {
	ctx := context.Background()
	req := dto.CreateCondominiumRequest{
		Name: "Torre Norte",
		City: "Guadalajara",
	}

	suite.mockRepo.On("SaveCondominium", mock.Anything, mock.MatchedBy(func(c domain.Condominium) bool {
		return c.Name == req.Name && c.AdminID == suite.userID && c.Status == domain.StatusActive
	})).Return(nil).Once()
	suite.mockRepo.On("AddUserToCondominium", mock.Anything, mock.MatchedBy(func(m domain.CondominiumMember) bool {
		return m.UserID == suite.userID && m.Role == domain.RoleAdmin
	})).Return(nil).Once()

	condominium, err := suite.service.CreateCondominium(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(condominium)
	suite.Equal(suite.userID, condominium.AdminID)
	suite.NotNil(condominium.Amenities, "amenities should default to an empty slice")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CondominiumServiceTestSuite) TestGetCondominiumByID_MemberSucceeds() {
	ctx := context.Background()
	suite.expectMembership(domain.RoleReadOnly)
	expected := &domain.Condominium{CondominiumID: suite.condominiumID, Name: "Torre Norte"}
	suite.mockRepo.On("FindCondominiumByID", mock.Anything, suite.condominiumID).Return(expected, nil).Once()

	condominium, err := suite.service.GetCondominiumByID(ctx, suite.condominiumID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(expected, condominium)
}

func (suite *CondominiumServiceTestSuite) TestGetCondominiumByID_NonMemberGetsNotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserCondominiumRole", mock.Anything, suite.userID, suite.condominiumID).
		Return(nil, apperrors.ErrNotFound).Once()

	condominium, err := suite.service.GetCondominiumByID(ctx, suite.condominiumID, suite.userID)

	suite.Nil(condominium)
	// Existence must stay hidden from non-members.
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCondominiumByID", mock.Anything, mock.Anything)
}

func (suite *CondominiumServiceTestSuite) TestGetCondominiumByID_RemovedMemberGetsNotFound() {
	ctx := context.Background()
	suite.expectMembership(domain.RoleRemoved)

	condominium, err := suite.service.GetCondominiumByID(ctx, suite.condominiumID, suite.userID)

	suite.Nil(condominium)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CondominiumServiceTestSuite) TestUpdateCondominium_ResidentForbidden() {
	ctx := context.Background()
	suite.expectMembership(domain.RoleResident)

	name := "New Name"
	_, err := suite.service.UpdateCondominium(ctx, suite.condominiumID, dto.UpdateCondominiumRequest{Name: &name}, suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCondominium", mock.Anything, mock.Anything)
}

func (suite *CondominiumServiceTestSuite) TestAddUserToCondominium_AdminAddsMember() {
	ctx := context.Background()
	targetUserID := uuid.NewString()
	suite.expectMembership(domain.RoleAdmin)

	suite.mockRepo.On("AddUserToCondominium", mock.Anything, mock.MatchedBy(func(m domain.CondominiumMember) bool {
		return m.UserID == targetUserID && m.Role == domain.RoleResident
	})).Return(nil).Once()

	err := suite.service.AddUserToCondominium(ctx, suite.userID, targetUserID, suite.condominiumID, domain.RoleResident)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CondominiumServiceTestSuite) TestAddUserToCondominium_ResidentCannotAddOthers() {
	ctx := context.Background()
	targetUserID := uuid.NewString()
	suite.expectMembership(domain.RoleResident)

	err := suite.service.AddUserToCondominium(ctx, suite.userID, targetUserID, suite.condominiumID, domain.RoleResident)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddUserToCondominium", mock.Anything, mock.Anything)
}

func (suite *CondominiumServiceTestSuite) TestUpdateUserCondominiumRole_DesignatedAdminCannotDemoteSelf() {
	ctx := context.Background()
	suite.expectMembership(domain.RoleAdmin)
	suite.mockRepo.On("FindCondominiumByID", mock.Anything, suite.condominiumID).
		Return(&domain.Condominium{CondominiumID: suite.condominiumID, AdminID: suite.userID}, nil).Once()

	err := suite.service.UpdateUserCondominiumRole(ctx, suite.userID, suite.userID, suite.condominiumID, domain.RoleResident)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserCondominiumRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CondominiumServiceTestSuite) TestUpdateUserCondominiumRole_NonDesignatedAdminMayStepDown() {
	ctx := context.Background()
	suite.expectMembership(domain.RoleAdmin)
	// Another user holds the designated admin seat.
	suite.mockRepo.On("FindCondominiumByID", mock.Anything, suite.condominiumID).
		Return(&domain.Condominium{CondominiumID: suite.condominiumID, AdminID: uuid.NewString()}, nil).Once()
	suite.mockRepo.On("UpdateUserCondominiumRole", mock.Anything, suite.userID, suite.condominiumID, domain.RoleResident).Return(nil).Once()

	err := suite.service.UpdateUserCondominiumRole(ctx, suite.userID, suite.userID, suite.condominiumID, domain.RoleResident)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CondominiumServiceTestSuite) TestRemoveUserFromCondominium_MarksRemoved() {
	ctx := context.Background()
	targetUserID := uuid.NewString()
	suite.expectMembership(domain.RoleAdmin)
	suite.mockRepo.On("UpdateUserCondominiumRole", mock.Anything, targetUserID, suite.condominiumID, domain.RoleRemoved).Return(nil).Once()

	err := suite.service.RemoveUserFromCondominium(ctx, suite.userID, targetUserID, suite.condominiumID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCondominiumServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CondominiumServiceTestSuite))
}
