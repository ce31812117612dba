package roster

// Config holds the roster data locations.
type Config struct {
	// Backend selects where the directory is persisted: file, storage or database.
	Backend string `mapstructure:"backend" default:"file"`
	// PlayersFile is the roster JSON file used by the file backend.
	PlayersFile string `mapstructure:"players_file" default:"data/players_id.json"`
	// TeamsFile is the team registry (JSON or YAML).
	TeamsFile string `mapstructure:"teams_file" default:"data/teams_id.json"`
	// ReferenceFile is an optional local copy of the reference player directory.
	// When empty the directory is fetched from the stats API.
	ReferenceFile string `mapstructure:"reference_file" default:""`
	// ObjectName is the object key used by the storage backend.
	ObjectName string `mapstructure:"object_name" default:"rosters/players_id.json"`
}

// Persistence backends accepted by Config.Backend.
const (
	BackendFile     = "file"
	BackendStorage  = "storage"
	BackendDatabase = "database"
)
