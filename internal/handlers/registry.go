package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	ProfileHandler   *ProfileHandler
	CategoryHandler  *CategoryHandler
	DashboardHandler *DashboardHandler
}
