package models

type UserRole string
type VerificationStatus string
type JobStatus string
type JobType string
type ApplicationStatus string

const (
	UserRoleJobSeeker         UserRole = "job_seeker"
	UserRoleBusiness          UserRole = "business"
	UserRoleFreelancer        UserRole = "freelancer"
	UserRoleAdmin             UserRole = "admin"
	UserRoleStaffVerification UserRole = "staff_verification"
	UserRoleCEO               UserRole = "ceo"

	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"

	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"

	JobTypeFullTime JobType = "full_time"
	JobTypePartTime JobType = "part_time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"

	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffer     ApplicationStatus = "offer"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// SignupRoles are the roles a user can pick at registration.
// Staff roles are assigned by an existing admin, never self-selected.
var SignupRoles = map[UserRole]bool{
	UserRoleJobSeeker:  true,
	UserRoleBusiness:   true,
	UserRoleFreelancer: true,
}

// StaffRoles may review verification requests and access admin endpoints.
var StaffRoles = map[UserRole]bool{
	UserRoleAdmin:             true,
	UserRoleStaffVerification: true,
	UserRoleCEO:               true,
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusReviewing,
		ApplicationStatusInterview, ApplicationStatusOffer, ApplicationStatusRejected:
		return true
	}
	return false
}

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}
