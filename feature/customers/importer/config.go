package importer

// Config holds configuration for customer imports.
type Config struct {
	// DefaultCount is the number of records requested when none is given.
	DefaultCount int `mapstructure:"default_count" default:"100" validate:"gt=0"`
	// PasswordCost is the bcrypt cost used to hash imported passwords.
	PasswordCost int `mapstructure:"password_cost" default:"10" validate:"min=4,max=31"`
	// Archive stores every fetched batch in object storage.
	Archive bool `mapstructure:"archive" default:"false"`
	// ArchivePrefix is the object name prefix for archived batches.
	ArchivePrefix string `mapstructure:"archive_prefix" default:"imports"`
}
