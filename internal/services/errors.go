package services

import "errors"

var (
	// ErrNotFound means a referenced entity does not exist at read time.
	// Callers should treat it as "not available", not as a failure.
	ErrNotFound = errors.New("entity not found")
	// ErrAlreadyApplied means an application for the (job, applicant) pair exists.
	ErrAlreadyApplied = errors.New("application already exists for this job")
	// ErrJobNotOpen means the job is not in the approved status and cannot
	// accept applications.
	ErrJobNotOpen = errors.New("job is not open for applications")
	// ErrCompanyNotApproved means the owning company has not passed moderation
	// and cannot post jobs yet.
	ErrCompanyNotApproved = errors.New("company is not approved")
	// ErrBadAIResponse means the model's reply could not be parsed into the
	// expected result schema.
	ErrBadAIResponse = errors.New("ai response does not match expected schema")
)
