package handlers

// AppHandlers holds every HTTP handler wired at startup.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	VerificationHandler *VerificationHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	SavedJobHandler     *SavedJobHandler
	AdminHandler        *AdminHandler
	UploadHandler       *UploadHandler
}
