package utils

const (
	OrganizationName = "Poof"

	// LoadFailedMessage is the single banner shown when any collection fetch fails.
	LoadFailedMessage = "Failed to load portfolio data"
)
