package model

// Scope identifies the actor behind a request. Role is the permission tag the
// upstream gateway resolved for the user.
type Scope struct {
	UserID string
	Role   string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentProduction  Environment = "production"
	EnvironmentStaging     Environment = "staging"
	EnvironmentDevelopment Environment = "development"
)
