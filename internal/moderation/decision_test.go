package moderation

import (
	"testing"

	"github.com/jobboardly/backend/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DecideJobStatus_WithoutReason_UsesDefaultForRejectedAndSuspended(t *testing.T) {

	cases := []struct {
		target   entities.JobStatus
		expected string
	}{
		{entities.JobRejected, "Rejected by admin"},
		{entities.JobSuspended, "Suspended by admin"},
	}

	for _, c := range cases {
		decision := DecideJobStatus(c.target, "")
		assert.Equal(t, c.target, decision.Status)
		require.NotNil(t, decision.Reason)
		assert.Equal(t, c.expected, *decision.Reason)
	}
}

func Test_DecideJobStatus_ExplicitReason_IsKeptVerbatim(t *testing.T) {

	decision := DecideJobStatus(entities.JobRejected, "spam posting")
	require.NotNil(t, decision.Reason)
	assert.Equal(t, "spam posting", *decision.Reason)

	decision = DecideJobStatus(entities.JobApproved, "verified manually")
	require.NotNil(t, decision.Reason)
	assert.Equal(t, "verified manually", *decision.Reason)
}

func Test_DecideJobStatus_ApprovedWithoutReason_ClearsReason(t *testing.T) {

	decision := DecideJobStatus(entities.JobApproved, "")
	assert.Equal(t, entities.JobApproved, decision.Status)
	assert.Nil(t, decision.Reason)

	decision = DecideJobStatus(entities.JobApproved, "   ")
	assert.Nil(t, decision.Reason)
}

func Test_DecideCompanyStatus_ActiveIntent_BecomesApproved(t *testing.T) {

	decision := DecideCompanyStatus(entities.CompanyActive, "")
	assert.Equal(t, entities.CompanyApproved, decision.Status)
	assert.Nil(t, decision.Reason)
}

func Test_DecideCompanyStatus_Deleted_TracksReason(t *testing.T) {

	decision := DecideCompanyStatus(entities.CompanyDeleted, "policy violation")
	assert.Equal(t, entities.CompanyDeleted, decision.Status)
	require.NotNil(t, decision.Reason)
	assert.Equal(t, "policy violation", *decision.Reason)

	decision = DecideCompanyStatus(entities.CompanyDeleted, "")
	require.NotNil(t, decision.Reason)
	assert.Equal(t, "Deleted by admin", *decision.Reason)
}

func Test_DecideCompanyStatus_SuspendedWithoutReason_UsesDefault(t *testing.T) {

	decision := DecideCompanyStatus(entities.CompanySuspended, "")
	require.NotNil(t, decision.Reason)
	assert.Equal(t, "Suspended by admin", *decision.Reason)
}

func Test_DecideUserStatus_IsUnconditional(t *testing.T) {

	for _, status := range []entities.UserStatus{entities.UserActive, entities.UserSuspended, entities.UserDeleted} {
		decision := DecideUserStatus(status)
		assert.Equal(t, status, decision.Status)
	}
}
