package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/workforce-hrms/admin-ui/internal/domain/auth"
	"github.com/workforce-hrms/admin-ui/internal/domain/model"
	mockhrms "github.com/workforce-hrms/admin-ui/internal/mocks/hrms"
)

func TestReportService_ClampsQueryParameters(t *testing.T) {
	var gotLimit, gotMonths int
	var gotThreshold float64
	api := &mockhrms.MockReportAPI{
		GetTopEarnersFunc: func(_ context.Context, _ domainauth.Credential, limit int) ([]model.Employee, error) {
			gotLimit = limit
			return nil, nil
		},
		GetRecentJoinersFunc: func(_ context.Context, _ domainauth.Credential, months int) ([]model.Employee, error) {
			gotMonths = months
			return nil, nil
		},
		GetHighSalaryDepartmentsFunc: func(_ context.Context, _ domainauth.Credential, threshold float64) (model.HighSalaryDepartments, error) {
			gotThreshold = threshold
			return nil, nil
		},
	}
	svc := NewReportService(ReportServiceOptions{API: api})
	cred := domainauth.NewCredential("ceo", "pw")
	ctx := context.Background()

	_, err := svc.TopEarners(ctx, cred, 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTopEarnerLimit, gotLimit)

	_, err = svc.TopEarners(ctx, cred, 10_000)
	require.NoError(t, err)
	assert.Equal(t, maxTopEarnerLimit, gotLimit)

	_, err = svc.RecentJoiners(ctx, cred, -3)
	require.NoError(t, err)
	assert.Equal(t, defaultRecentJoinMonths, gotMonths)

	_, err = svc.HighSalaryDepartments(ctx, cred, 0)
	require.NoError(t, err)
	assert.Equal(t, float64(defaultSalaryThresholdRs), gotThreshold)

	_, err = svc.HighSalaryDepartments(ctx, cred, 75000)
	require.NoError(t, err)
	assert.Equal(t, float64(75000), gotThreshold)
}
