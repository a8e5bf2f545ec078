package config

// File represents the structure of the toolpin.yaml configuration file.
type File struct {
	Manifest string  `yaml:"manifest"`
	Channel  string  `yaml:"channel"`
	Env      EnvDTO  `yaml:"env"`
	Rust     RustDTO `yaml:"rust"`
	JS       JSDTO   `yaml:"js"`
}

// EnvDTO configures the CI environment file.
type EnvDTO struct {
	File          string `yaml:"file"`
	SolanaVersion string `yaml:"solanaVersion"`
	Toolchain     string `yaml:"toolchain"`
}

// RustDTO configures the cargo driver.
type RustDTO struct {
	Cargo string `yaml:"cargo"`
}

// JSDTO configures the JS client wrappers.
type JSDTO struct {
	PackageManager string `yaml:"packageManager"`
	Dir            string `yaml:"dir"`
}
