package manifest

// cargoManifest is the subset of Cargo.toml that carries pinned versions.
// Keys outside this schema are ignored.
type cargoManifest struct {
	Workspace *workspaceTable `toml:"workspace"`
}

type workspaceTable struct {
	Metadata metadataTable `toml:"metadata"`
}

type metadataTable struct {
	CLI        cliTable          `toml:"cli"`
	Toolchains map[string]string `toml:"toolchains"`
}

type cliTable struct {
	Solana string `toml:"solana"`
}
