package domain

import "fmt"

// Error is a domain failure with a stable machine-readable code. Handlers map
// codes to HTTP statuses; the code is part of the API contract.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrRecruitmentNotFound = &Error{Code: "RECRUITMENT_NOT_FOUND", Message: "recruitment not found"}
	ErrApplicationNotFound = &Error{Code: "APPLICATION_NOT_FOUND", Message: "application not found"}
	ErrMatchingNotFound    = &Error{Code: "MATCHING_NOT_FOUND", Message: "matching not found"}

	ErrInvalidWindow        = &Error{Code: "INVALID_WINDOW", Message: "recruitment window end must be after start"}
	ErrRecruitmentNotOpen   = &Error{Code: "RECRUITMENT_NOT_OPEN", Message: "recruitment is not open for applications"}
	ErrDuplicateApplication = &Error{Code: "APPLICATION_ALREADY_EXISTS", Message: "account already has an active application for this recruitment"}
	ErrInvalidRole          = &Error{Code: "INVALID_ROLE", Message: "role must be MENTOR or MENTEE"}

	ErrRejectReasonRequired = &Error{Code: "REJECT_REASON_REQUIRED", Message: "reject reason is required"}
	ErrReviewStateInvalid   = &Error{Code: "REVIEW_STATE_INVALID", Message: "application is in a terminal state and cannot be reviewed"}

	ErrBatchAlreadyCommitted = &Error{Code: "BATCH_ALREADY_COMMITTED", Message: "recruitment matching batch has already been committed"}
	ErrAssignmentsRequired   = &Error{Code: "ASSIGNMENTS_REQUIRED", Message: "at least one assignment is required"}
	ErrMenteeAppNotFound     = &Error{Code: "MENTEE_APP_NOT_FOUND", Message: "mentee application not found"}
	ErrMentorAppNotFound     = &Error{Code: "MENTOR_APP_NOT_FOUND", Message: "mentor application not found"}
	ErrRecruitmentMismatch   = &Error{Code: "RECRUITMENT_MISMATCH", Message: "application does not belong to this recruitment"}
	ErrRoleMismatch          = &Error{Code: "ROLE_MISMATCH", Message: "application role does not match its assignment slot"}
	ErrNotApproved           = &Error{Code: "NOT_APPROVED", Message: "application is not in APPROVED status"}

	ErrInvalidMessageType = &Error{Code: "INVALID_MESSAGE_TYPE", Message: "message type must be QUESTION or ANSWER"}
	ErrMessageRequired    = &Error{Code: "MESSAGE_REQUIRED", Message: "message content is required"}
)

// AssignmentError marks which assignment of a batch commit failed validation,
// 1-based, so the operator does not have to resubmit blind.
type AssignmentError struct {
	Index int
	Err   error
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("assignment %d: %v", e.Index, e.Err)
}

func (e *AssignmentError) Unwrap() error { return e.Err }
