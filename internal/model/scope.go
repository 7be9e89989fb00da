package model

// Scope carries the caller identity through the request pipeline.
// Every tool execution is scoped to Scope.UserID; tools never accept a
// caller-supplied identity override.
type Scope struct {
	UserID   string
	Username string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
