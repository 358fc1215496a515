package config

// Catalog sources
const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceFile     = "file"
	CatalogSourceDatabase = "database"
)

// CatalogConfig selects where recipes are read from
type CatalogConfig struct {
	// Source: builtin (embedded), file (YAML at Path) or database
	Source string `mapstructure:"source" validate:"required,oneof=builtin file database"`

	// Path of the YAML catalog; required when Source is "file"
	Path string `mapstructure:"path" validate:"required_if=Source file"`
}
