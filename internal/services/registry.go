package services

// ServiceContainer bundles every service for wiring in internal/app.
type ServiceContainer struct {
	AuthService      AuthService
	UserService      UserService
	ProfileService   ProfileService
	CategoryService  CategoryService
	DashboardService DashboardService
}
