package services

// ServiceContainer holds every service instance wired at startup.
type ServiceContainer struct {
	AuthService         AuthService
	VerificationService VerificationService
	JobService          JobService
	ApplicationService  ApplicationService
	SavedJobService     SavedJobService
	AdminService        AdminService
	UploadService       *UploadService
}
