// Package moderation computes the persisted field set for admin status changes
// on jobs, companies and users. All functions are pure and total; persisting
// the result is the caller's job.
package moderation

import (
	"strings"

	"github.com/jobboardly/backend/internal/entities"
)

type JobDecision struct {
	Status entities.JobStatus
	Reason *string
}

type CompanyDecision struct {
	Status entities.CompanyStatus
	Reason *string
}

type UserDecision struct {
	Status entities.UserStatus
}

// DecideJobStatus maps an admin-requested target status and an optional
// free-text reason to the exact fields to persist. Rejections and suspensions
// always carry a reason, defaulted to "<Status> by admin" when none is given;
// approving without a reason clears any prior one.
func DecideJobStatus(target entities.JobStatus, reason string) JobDecision {
	reason = strings.TrimSpace(reason)

	switch target {
	case entities.JobRejected, entities.JobSuspended:
		if reason == "" {
			reason = defaultReason(string(target))
		}
		return JobDecision{Status: target, Reason: &reason}
	case entities.JobApproved:
		if reason != "" {
			return JobDecision{Status: target, Reason: &reason}
		}
		return JobDecision{Status: target, Reason: nil}
	default:
		return JobDecision{Status: target, Reason: nil}
	}
}

// DecideCompanyStatus mirrors DecideJobStatus for companies, with two extras:
// the intended status "active" is normalized to "approved" so "active" never
// persists, and "deleted" tracks a reason like rejections do.
func DecideCompanyStatus(intended entities.CompanyStatus, reason string) CompanyDecision {
	reason = strings.TrimSpace(reason)

	final := intended
	if final == entities.CompanyActive {
		final = entities.CompanyApproved
	}

	switch final {
	case entities.CompanyRejected, entities.CompanySuspended, entities.CompanyDeleted:
		if reason == "" {
			reason = defaultReason(string(final))
		}
		return CompanyDecision{Status: final, Reason: &reason}
	case entities.CompanyApproved:
		if reason != "" {
			return CompanyDecision{Status: final, Reason: &reason}
		}
		return CompanyDecision{Status: final, Reason: nil}
	default:
		return CompanyDecision{Status: final, Reason: nil}
	}
}

// DecideUserStatus is unconditional: user status changes carry no reason.
func DecideUserStatus(status entities.UserStatus) UserDecision {
	return UserDecision{Status: status}
}

func defaultReason(status string) string {
	if status == "" {
		return ""
	}
	return strings.ToUpper(status[:1]) + status[1:] + " by admin"
}
