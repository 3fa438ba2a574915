package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"perfcore/internal/core/domain"
	"perfcore/internal/core/port"
)

// MockAnalyticsRepository is a testify mock of port.AnalyticsRepository.
type MockAnalyticsRepository struct {
	mock.Mock
}

var _ port.AnalyticsRepository = (*MockAnalyticsRepository)(nil)

// NewMockAnalyticsRepository creates a mock and registers a cleanup that
// asserts every expectation was met.
func NewMockAnalyticsRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAnalyticsRepository {
	m := &MockAnalyticsRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockAnalyticsRepository_Expecter registers expectations by method name.
type MockAnalyticsRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockAnalyticsRepository) EXPECT() *MockAnalyticsRepository_Expecter {
	return &MockAnalyticsRepository_Expecter{mock: &m.Mock}
}

func (m *MockAnalyticsRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	ret := m.Called(ctx)
	var r0 []domain.Campaign
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Campaign)
	}
	return r0, ret.Error(1)
}

func (e *MockAnalyticsRepository_Expecter) ListCampaigns(ctx interface{}) *mock.Call {
	return e.mock.On("ListCampaigns", ctx)
}

func (m *MockAnalyticsRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	ret := m.Called(ctx, id)
	var r0 *domain.Campaign
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Campaign)
	}
	return r0, ret.Error(1)
}

func (e *MockAnalyticsRepository_Expecter) GetCampaign(ctx, id interface{}) *mock.Call {
	return e.mock.On("GetCampaign", ctx, id)
}

func (m *MockAnalyticsRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return m.Called(ctx, c).Error(0)
}

func (e *MockAnalyticsRepository_Expecter) CreateCampaign(ctx, c interface{}) *mock.Call {
	return e.mock.On("CreateCampaign", ctx, c)
}

func (m *MockAnalyticsRepository) FindGA4Connection(ctx context.Context, campaignID string) (*domain.GA4Connection, error) {
	ret := m.Called(ctx, campaignID)
	var r0 *domain.GA4Connection
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.GA4Connection)
	}
	return r0, ret.Error(1)
}

func (e *MockAnalyticsRepository_Expecter) FindGA4Connection(ctx, campaignID interface{}) *mock.Call {
	return e.mock.On("FindGA4Connection", ctx, campaignID)
}

func (m *MockAnalyticsRepository) CreateGA4Connection(ctx context.Context, conn *domain.GA4Connection) error {
	return m.Called(ctx, conn).Error(0)
}

func (e *MockAnalyticsRepository_Expecter) CreateGA4Connection(ctx, conn interface{}) *mock.Call {
	return e.mock.On("CreateGA4Connection", ctx, conn)
}

func (m *MockAnalyticsRepository) FindLinkedInConnection(ctx context.Context, campaignID string) (*domain.LinkedInConnection, error) {
	ret := m.Called(ctx, campaignID)
	var r0 *domain.LinkedInConnection
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.LinkedInConnection)
	}
	return r0, ret.Error(1)
}

func (e *MockAnalyticsRepository_Expecter) FindLinkedInConnection(ctx, campaignID interface{}) *mock.Call {
	return e.mock.On("FindLinkedInConnection", ctx, campaignID)
}

func (m *MockAnalyticsRepository) CreateLinkedInConnection(ctx context.Context, conn *domain.LinkedInConnection) error {
	return m.Called(ctx, conn).Error(0)
}

func (e *MockAnalyticsRepository_Expecter) CreateLinkedInConnection(ctx, conn interface{}) *mock.Call {
	return e.mock.On("CreateLinkedInConnection", ctx, conn)
}

func (m *MockAnalyticsRepository) InsertPerformanceData(ctx context.Context, row *domain.PerformanceData) error {
	return m.Called(ctx, row).Error(0)
}

func (e *MockAnalyticsRepository_Expecter) InsertPerformanceData(ctx, row interface{}) *mock.Call {
	return e.mock.On("InsertPerformanceData", ctx, row)
}

func (m *MockAnalyticsRepository) InsertLinkedInImportMetric(ctx context.Context, row *domain.LinkedInImportMetric) error {
	return m.Called(ctx, row).Error(0)
}

func (e *MockAnalyticsRepository_Expecter) InsertLinkedInImportMetric(ctx, row interface{}) *mock.Call {
	return e.mock.On("InsertLinkedInImportMetric", ctx, row)
}

func (m *MockAnalyticsRepository) InsertLinkedInAdPerformance(ctx context.Context, row *domain.LinkedInAdPerformance) error {
	return m.Called(ctx, row).Error(0)
}

func (e *MockAnalyticsRepository_Expecter) InsertLinkedInAdPerformance(ctx, row interface{}) *mock.Call {
	return e.mock.On("InsertLinkedInAdPerformance", ctx, row)
}

func (m *MockAnalyticsRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	ret := m.Called(ctx, req)
	var r0 *port.StatsResp
	if v := ret.Get(0); v != nil {
		r0 = v.(*port.StatsResp)
	}
	return r0, ret.Error(1)
}

func (e *MockAnalyticsRepository_Expecter) GetStats(ctx, req interface{}) *mock.Call {
	return e.mock.On("GetStats", ctx, req)
}
