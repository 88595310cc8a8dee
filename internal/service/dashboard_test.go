package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/crmtrack/internal/model"
	rpsMocks "github.com/umalmyha/crmtrack/internal/repository/mocks"
)

type dashboardServiceTestSuite struct {
	suite.Suite
	dashboardSvc       DashboardService
	customerRpsMock    *rpsMocks.CustomerRepository
	interactionRpsMock *rpsMocks.InteractionRepository
	ownerID            string
}

func (s *dashboardServiceTestSuite) SetupSuite() {
	s.ownerID = "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792"
}

func (s *dashboardServiceTestSuite) SetupTest() {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.interactionRpsMock = rpsMocks.NewInteractionRepository(t)
	s.dashboardSvc = NewDashboardService(s.customerRpsMock, s.interactionRpsMock)
}

func (s *dashboardServiceTestSuite) TestStatsNoCustomers() {
	ctx := context.Background()

	s.customerRpsMock.On("FindAllByOwner", ctx, s.ownerID).Return([]*model.Customer{}, nil).Once()

	s.T().Log("stats over empty customer set")
	{
		stats, err := s.dashboardSvc.Stats(ctx, s.ownerID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(&model.Stats{}, stats, "all counters must be zero")
	}
}

func (s *dashboardServiceTestSuite) TestStatsPartitionsByStatus() {
	ctx := context.Background()

	customers := []*model.Customer{
		{ID: "1f0ffe54-ad8c-45a8-a5bf-370739896b81", OwnerID: s.ownerID, Name: "Ada Lovelace", Status: model.StatusLead},
		{ID: "54d31ad9-0bbb-4bd4-ae57-32bfb4a09e26", OwnerID: s.ownerID, Name: "Grace Hopper", Status: model.StatusActive},
		{ID: "73ed2ab8-97ba-4baf-83bb-b94b33a5c414", OwnerID: s.ownerID, Name: "Alan Turing", Status: model.StatusActive},
		{ID: "0be2c807-6c1b-4d9e-b62c-96c6375e2923", OwnerID: s.ownerID, Name: "Charles Babbage", Status: model.StatusClosed},
	}

	s.customerRpsMock.On("FindAllByOwner", ctx, s.ownerID).Return(customers, nil).Once()

	s.T().Log("stats must partition customers by status and total must be their sum")
	{
		stats, err := s.dashboardSvc.Stats(ctx, s.ownerID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(4, stats.Total, "total is incorrect")
		s.Assert().Equal(1, stats.Leads, "leads count is incorrect")
		s.Assert().Equal(2, stats.Active, "active count is incorrect")
		s.Assert().Equal(1, stats.Closed, "closed count is incorrect")
		s.Assert().Equal(stats.Total, stats.Leads+stats.Active+stats.Closed, "total must equal sum of buckets")
	}
}

func (s *dashboardServiceTestSuite) TestUpcomingFollowUpsLimitClamped() {
	ctx := context.Background()

	s.interactionRpsMock.On(
		"FindUpcomingByOwner", ctx, s.ownerID, mock.AnythingOfType("time.Time"), DefaultFollowUpsLimit,
	).Return([]*model.FollowUp{}, nil).Twice()

	s.T().Log("non-positive limit falls back to default")
	{
		_, err := s.dashboardSvc.UpcomingFollowUps(ctx, s.ownerID, 0)
		s.Assert().NoError(err, "no error must be raised")
	}

	s.T().Log("limit above the cap is clamped to default")
	{
		_, err := s.dashboardSvc.UpcomingFollowUps(ctx, s.ownerID, 100)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *dashboardServiceTestSuite) TestUpcomingFollowUps() {
	ctx := context.Background()
	due := time.Now().UTC().Add(48 * time.Hour)

	followUps := []*model.FollowUp{
		{
			InteractionID: "af1adce5-51a4-4d2e-a6ba-da0e7009a1bf",
			CustomerID:    "1f0ffe54-ad8c-45a8-a5bf-370739896b81",
			CustomerName:  "Ada Lovelace",
			Type:          model.InteractionCall,
			FollowUpDate:  due,
		},
	}

	s.interactionRpsMock.On(
		"FindUpcomingByOwner", ctx, s.ownerID, mock.AnythingOfType("time.Time"), 3,
	).Return(followUps, nil).Once()

	s.T().Log("follow-ups within the cap are passed through with customer name attached")
	{
		found, err := s.dashboardSvc.UpcomingFollowUps(ctx, s.ownerID, 3)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(found, 1, "single follow-up must be returned")
		s.Assert().Equal("Ada Lovelace", found[0].CustomerName, "customer name must be joined in")
	}
}

// start dashboard service test suite
func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(dashboardServiceTestSuite))
}
