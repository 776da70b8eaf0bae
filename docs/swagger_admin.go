package docs

// @title           Administration API
// @version         1.0
// @description     Read-only administration API: guest and user listings, dashboard KPIs and weekly chart series computed from the ride database.

// @host      localhost:3004
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. The access_token cookie is accepted as well.
