package models

// Keyring constants for the GitHub personal access token
const (
	KeyringServiceName    = "vibe-kanban"
	KeyringGitHubTokenKey = "github-token"
)

// GitHubTokenEnvVar overrides the keyring when set.
const GitHubTokenEnvVar = "VK_GITHUB_TOKEN"
