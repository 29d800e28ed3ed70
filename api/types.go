package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	adminHandler         adminHandler
	projectHandler       projectHandler
	skillHandler         skillHandler
	educationHandler     educationHandler
	certificationHandler certificationHandler
	contactHandler       contactHandler
	dashboardHandler     dashboardHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"Invalid project ID format"`
	Error      string `json:"error,omitempty" example:"Invalid project ID format"`
	Success    bool   `json:"success" example:"false"`
}
