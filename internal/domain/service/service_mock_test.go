package service

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-attendance-bot/internal/domain/contract"
	"github.com/diegoclair/slack-attendance-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockReportRepo  *mocks.MockReportRepo
	mockSecretStore *mocks.MockSecretStore
	mockSlackClient *mocks.MockSlackClient
}

// fixed clock used by report tests: mid January 2024, UTC
var testNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	reportRepo := mocks.NewMockReportRepo(ctrl)
	dm.EXPECT().Report().Return(reportRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockReportRepo:  reportRepo,
		mockSecretStore: mocks.NewMockSecretStore(ctrl),
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
	}

	// validate service creation
	reportService := newTestReport(m, dm)
	require.NotNil(t, reportService)

	return
}

func newTestReport(m allMocks, dm contract.DataManager) *reportService {
	factory := func(token string) contract.SlackClient {
		return m.mockSlackClient
	}

	return newReport(m.mockSecretStore, factory, dm, ReportOptions{
		Location: time.UTC,
		Now:      func() time.Time { return testNow },
	})
}
