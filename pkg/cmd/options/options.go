package options

const (
	// WorkspaceID flag sets the target workspace (group)
	WorkspaceID = "workspace-id"
	// DatasetID flag sets the target dataset
	DatasetID = "dataset-id"
	// DatasetName flag selects the target dataset by display name
	DatasetName = "dataset-name"
	// MyWorkspace flag targets the service principal's own workspace
	MyWorkspace = "my-workspace"
	// Top flag limits the number of refresh history entries
	Top = "top"
	// Output flag selects the output format
	Output = "output"
	// ClientID flag sets the service principal application (client) ID
	ClientID = "client-id"
	// ClientSecret flag sets the service principal client secret
	ClientSecret = "client-secret"
	// TenantID flag sets the AAD tenant ID
	TenantID = "tenant-id"
	// AuthorityHost flag sets the AAD authority host
	AuthorityHost = "authority-host"
	// EnvFile flag loads environment variables from a file before reading them
	EnvFile = "env-file"
)
