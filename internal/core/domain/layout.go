package domain

const (
	// StoreFileName is the name of the workspace index file in the workspace root.
	StoreFileName = ".wcw.db"

	// ConfigFileName is the name of the optional workspace configuration file.
	ConfigFileName = ".wcw.yaml"

	// ConfigEnvVar names the environment variable that overrides the config file path.
	ConfigEnvVar = "WCW_CONFIG"

	// ManifestFileName is the package manifest read from every component.
	ManifestFileName = "bower.json"

	// StagedManifestFileName is the manifest bower writes next to installed components.
	StagedManifestFileName = ".bower.json"

	// ComponentsDirName is the directory the stager installs packages into.
	ComponentsDirName = "bower_components"

	// VCSMetadataDirName marks a directory as a version-controlled checkout.
	VCSMetadataDirName = ".git"

	// ScratchDirPrefix is the prefix of the process-lifetime scratch directory.
	ScratchDirPrefix = "wcw"

	// DefaultStashLabel is the message used for stashes created by update.
	DefaultStashLabel = "wcwstash"

	// DefaultRemote is the remote merged from during update.
	DefaultRemote = "origin"

	// DefaultBranch is the local branch updated during update.
	DefaultBranch = "master"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
