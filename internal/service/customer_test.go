package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	cacheMocks "github.com/umalmyha/crmtrack/internal/cache/mocks"
	apperrors "github.com/umalmyha/crmtrack/internal/errors"
	"github.com/umalmyha/crmtrack/internal/model"
	rpsMocks "github.com/umalmyha/crmtrack/internal/repository/mocks"
)

type customerTestData struct {
	ctx      context.Context
	ownerID  string
	customer *model.Customer
}

type customerServiceTestSuite struct {
	suite.Suite
	customerSvc       CustomerService
	customerRpsMock   *rpsMocks.CustomerRepository
	customerCacheMock *cacheMocks.CustomerCacheRepository
	testData          *customerTestData
}

func (s *customerServiceTestSuite) SetupSuite() {
	email := "ada.lovelace@analytical.engines"
	s.testData = &customerTestData{
		ctx:     context.Background(),
		ownerID: "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792",
		customer: &model.Customer{
			ID:      "ecc770d9-4576-4f72-affa-8b1454246692",
			OwnerID: "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792",
			Name:    "Ada Lovelace",
			Email:   &email,
			Status:  model.StatusLead,
		},
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.customerCacheMock = cacheMocks.NewCustomerCacheRepository(t)
	s.customerSvc = NewCustomerService(s.customerRpsMock, s.customerCacheMock)
}

func (s *customerServiceTestSuite) TestFindByIDFromCache() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()

	s.T().Log("customer must be found in cache")
	{
		_, err := s.customerSvc.FindByID(ctx, ownerID, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, ownerID, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestFindByIDCachedForeignOwner() {
	ctx := s.testData.ctx
	customer := s.testData.customer
	foreignOwnerID := "461b07b5-3373-495d-b26b-d689a0c8a557"

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(customer, nil).Once()

	s.T().Log("cached customer of another owner must look absent")
	{
		_, err := s.customerSvc.FindByID(ctx, foreignOwnerID, customer.ID)
		s.Assert().Error(err, "foreign customer was requested but no error raised")
		s.Assert().IsType(&apperrors.NotFoundErr{}, err, "error must be not found error")
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, foreignOwnerID, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestFindByIDNotFound() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, ownerID, customer.ID).Return(nil, nil).Once()

	s.T().Log("customer is missing in cache and in primary datasource")
	{
		_, err := s.customerSvc.FindByID(ctx, ownerID, customer.ID)
		s.Assert().Error(err, "customer is absent but no error raised")
		s.Assert().IsType(&apperrors.NotFoundErr{}, err, "error must be not found error")
		s.customerCacheMock.AssertNotCalled(s.T(), "Create", mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestFindByIDCached() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID
	customer := s.testData.customer

	s.customerCacheMock.On("FindByID", ctx, customer.ID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, ownerID, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("Create", ctx, customer).Return(nil).Once()

	s.T().Log("customer is not in cache, found in primary datasource and cached")
	{
		c, err := s.customerSvc.FindByID(ctx, ownerID, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotNil(c, "customer must be found")
		s.customerCacheMock.AssertCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestCreateEmptyName() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID

	s.T().Log("create customer with blank name")
	{
		_, err := s.customerSvc.Create(ctx, ownerID, &model.NewCustomer{Name: "   "})
		s.Assert().Error(err, "name is blank but no error raised")
		s.Assert().IsType(&apperrors.ValidationErr{}, err, "error must be validation error")
		s.customerRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestCreateInvalidStatus() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID

	s.T().Log("create customer with unknown status")
	{
		_, err := s.customerSvc.Create(ctx, ownerID, &model.NewCustomer{Name: "Ada Lovelace", Status: "Prospect"})
		s.Assert().Error(err, "status is unknown but no error raised")
		s.Assert().IsType(&apperrors.ValidationErr{}, err, "error must be validation error")
	}
}

func (s *customerServiceTestSuite) TestCreateDefaultsToLead() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID

	s.customerRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Customer")).Return(nil).Once()

	s.T().Log("create customer without status, it must default to lead")
	{
		c, err := s.customerSvc.Create(ctx, ownerID, &model.NewCustomer{Name: "  Ada Lovelace  "})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(model.StatusLead, c.Status, "status must default to lead")
		s.Assert().Equal("Ada Lovelace", c.Name, "name must be trimmed")
		s.Assert().Equal(ownerID, c.OwnerID, "customer must belong to the acting user")
		s.Assert().NotEmpty(c.ID, "id must be generated")
	}
}

func (s *customerServiceTestSuite) TestUpdateNotFound() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID
	customer := s.testData.customer
	name := "Augusta Ada King"

	s.customerRpsMock.On("FindByID", ctx, ownerID, customer.ID).Return(nil, nil).Once()

	s.T().Log("update absent customer")
	{
		_, err := s.customerSvc.Update(ctx, ownerID, customer.ID, &model.CustomerPatch{Name: &name})
		s.Assert().Error(err, "customer is absent but no error raised")
		s.Assert().IsType(&apperrors.NotFoundErr{}, err, "error must be not found error")
	}
}

func (s *customerServiceTestSuite) TestUpdateSuccessfully() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID
	customer := s.testData.customer
	name := "Augusta Ada King"
	status := model.StatusActive

	s.customerRpsMock.On("FindByID", ctx, ownerID, customer.ID).Return(customer, nil).Once()
	s.customerRpsMock.On("Update", ctx, mock.AnythingOfType("*model.Customer")).Return(true, nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(nil).Once()

	s.T().Log("patch name and status, untouched fields must survive")
	{
		c, err := s.customerSvc.Update(ctx, ownerID, customer.ID, &model.CustomerPatch{Name: &name, Status: &status})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(name, c.Name, "name must be patched")
		s.Assert().Equal(model.StatusActive, c.Status, "status must be patched")
		s.Assert().Equal(customer.Email, c.Email, "email was not patched and must survive")
		s.customerCacheMock.AssertCalled(s.T(), "DeleteByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestUpdateCacheFailed() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID
	customer := s.testData.customer
	name := "Augusta Ada King"

	s.customerRpsMock.On("FindByID", ctx, ownerID, customer.ID).Return(customer, nil).Once()
	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(errors.New("cache err")).Once()

	s.T().Log("eviction failure must keep the stored row untouched")
	{
		_, err := s.customerSvc.Update(ctx, ownerID, customer.ID, &model.CustomerPatch{Name: &name})
		s.Assert().Error(err, "cache raised error - error must be raised up")
		s.Assert().IsType(&apperrors.StoreErr{}, err, "error must be store error")
		s.customerRpsMock.AssertNotCalled(s.T(), "Update", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDCacheFailed() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID
	customer := s.testData.customer

	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(errors.New("cache err")).Once()

	s.T().Log("delete customer from cache failed")
	{
		err := s.customerSvc.DeleteByID(ctx, ownerID, customer.ID)
		s.Assert().Error(err, "cache raised error - error must be raised up")
		s.Assert().IsType(&apperrors.StoreErr{}, err, "error must be store error")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDNotFound() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID
	customer := s.testData.customer

	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, ownerID, customer.ID).Return(false, nil).Once()

	s.T().Log("delete absent customer")
	{
		err := s.customerSvc.DeleteByID(ctx, ownerID, customer.ID)
		s.Assert().Error(err, "customer is absent but no error raised")
		s.Assert().IsType(&apperrors.NotFoundErr{}, err, "error must be not found error")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDSuccessfully() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID
	customer := s.testData.customer

	s.customerCacheMock.On("DeleteByID", ctx, customer.ID).Return(nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, ownerID, customer.ID).Return(true, nil).Once()

	s.T().Log("deleted successfully")
	{
		err := s.customerSvc.DeleteByID(ctx, ownerID, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *customerServiceTestSuite) TestSearch() {
	ctx := s.testData.ctx
	ownerID := s.testData.ownerID

	adaEmail := "ada.lovelace@analytical.engines"
	graceEmail := "grace@hopper.navy"
	customers := []*model.Customer{
		{ID: "1f0ffe54-ad8c-45a8-a5bf-370739896b81", OwnerID: ownerID, Name: "Ada Lovelace", Email: &adaEmail, Status: model.StatusLead},
		{ID: "54d31ad9-0bbb-4bd4-ae57-32bfb4a09e26", OwnerID: ownerID, Name: "Grace Hopper", Email: &graceEmail, Status: model.StatusActive},
		{ID: "73ed2ab8-97ba-4baf-83bb-b94b33a5c414", OwnerID: ownerID, Name: "Alan Turing", Email: nil, Status: model.StatusClosed},
	}

	s.customerRpsMock.On("FindAllByOwner", ctx, ownerID).Return(customers, nil).Times(4)

	s.T().Log("empty query returns the full list")
	{
		found, err := s.customerSvc.Search(ctx, ownerID, "   ")
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(found, 3, "all customers must be returned")
	}

	s.T().Log("query matches name case-insensitively")
	{
		found, err := s.customerSvc.Search(ctx, ownerID, "aDa")
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(found, 1, "single customer must match")
		s.Assert().Equal("Ada Lovelace", found[0].Name, "wrong customer matched")
	}

	s.T().Log("query matches email as well")
	{
		found, err := s.customerSvc.Search(ctx, ownerID, "hopper.navy")
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(found, 1, "single customer must match")
		s.Assert().Equal("Grace Hopper", found[0].Name, "wrong customer matched")
	}

	s.T().Log("query without matches returns empty list")
	{
		found, err := s.customerSvc.Search(ctx, ownerID, "babbage")
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Empty(found, "no customer must match")
	}
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
