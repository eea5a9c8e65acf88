package ats

import "github.com/merge-api/merge-go-client/shared"

// CandidateListParams filters the candidate list.
type CandidateListParams struct {
	shared.ListParams

	FirstName      string `url:"first_name,omitempty"`
	LastName       string `url:"last_name,omitempty"`
	EmailAddresses string `url:"email_addresses,omitempty"`
	Tags           string `url:"tags,omitempty"`
}

// ApplicationListParams filters the application list.
type ApplicationListParams struct {
	shared.ListParams

	CandidateID  string `url:"candidate_id,omitempty"`
	JobID        string `url:"job_id,omitempty"`
	CurrentStage string `url:"current_stage_id,omitempty"`
	RejectReason string `url:"reject_reason_id,omitempty"`
	Source       string `url:"source,omitempty"`
}
