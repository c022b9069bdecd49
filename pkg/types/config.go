package types

// ConfigRecord is the persisted user configuration. It is read once at
// startup by the CLI and written on an explicit save; the conversion
// pipeline never touches it. The credential is stored encrypted, every
// other field as plain text.
type ConfigRecord struct {
	// PandocPath is the pandoc executable to invoke.
	PandocPath string `json:"pandoc_path" yaml:"pandoc_path"`

	// LastWikiRoot is the wiki root used on the previous run.
	LastWikiRoot string `json:"last_wiki_root" yaml:"last_wiki_root"`

	// RemoteEndpoint is the Azure OpenAI-compatible service base URL.
	RemoteEndpoint string `json:"remote_endpoint" yaml:"remote_endpoint"`

	// EncryptedCredential is the service API key, sealed with the local
	// encryption key. Never stored or logged in the clear.
	EncryptedCredential string `json:"encrypted_credential" yaml:"encrypted_credential"`

	// DeploymentID is the model deployment for the remote rewrite stage.
	DeploymentID string `json:"deployment_id" yaml:"deployment_id"`

	// RemoteRewriteEnabled turns the AI rewrite stage on by default.
	RemoteRewriteEnabled bool `json:"remote_rewrite_enabled" yaml:"remote_rewrite_enabled"`

	// Prompt is the saved editing instruction for the rewrite stage.
	Prompt string `json:"prompt" yaml:"prompt"`
}
