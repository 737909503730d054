package configs

import "strings"

// Storage drivers.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Storage selects where campaign records live. The file driver keeps them
// in a single JSON document at FilePath; the postgres driver uses the PSQL_
// section.
type Storage struct {
	Driver   string `env:"DRIVER" envDefault:"file"`
	FilePath string `env:"FILE_PATH" envDefault:"data/campaigns.json"`
	// Seed inserts the demo campaigns on startup.
	Seed bool `env:"SEED" envDefault:"false"`
}

// NormalizedDriver returns the lower-cased driver, defaulting unknown values
// to the file driver.
func (s Storage) NormalizedDriver() string {
	if strings.EqualFold(s.Driver, StoragePostgres) {
		return StoragePostgres
	}
	return StorageFile
}
