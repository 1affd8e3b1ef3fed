package config

// DatasetConfig describes one input file and how its records are laid out.
type DatasetConfig struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path" validate:"required"`
	Layout string `yaml:"layout" validate:"required,oneof=minimal headered"`
}

// ReportConfig controls how much of each ranking is emitted and in which
// output format.
type ReportConfig struct {
	TopZones int    `yaml:"topZones" validate:"gte=0"`
	TopSlots int    `yaml:"topSlots" validate:"gte=0"`
	Format   string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Dataset  DatasetConfig   `yaml:"dataset"`
	Datasets []DatasetConfig `yaml:"datasets"`
	Report   ReportConfig    `yaml:"report"`
}
