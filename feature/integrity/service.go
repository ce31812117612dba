package integrity

import (
	"context"
	"errors"
	"fmt"

	"roster-manager/core/database"
	"roster-manager/core/roster"
	"roster-manager/core/storage"
	"roster-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrStorageUnavailable is returned by bucket checks when no storage client is configured.
	ErrStorageUnavailable = errors.New("object storage is not configured")
	// ErrDatabaseUnavailable is returned by the schema check when no database is configured.
	ErrDatabaseUnavailable = errors.New("database is not configured")
)

// Dependencies groups the collaborators of the integrity service. Client and
// DB may be nil; the checks that need them then report unavailable.
type Dependencies struct {
	Client       storage.Client
	Storage      storage.Config
	RosterObject string
	Repository   roster.Repository
	Registry     *roster.Registry
	DB           *gorm.DB
}

// Service handles integrity checks.
type Service struct {
	deps   Dependencies
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(deps Dependencies, logger *zap.Logger) *Service {
	return &Service{deps: deps, logger: logger}
}

// Logger returns the service logger.
func (s *Service) Logger() *zap.Logger {
	return s.logger
}

// Folders returns the bucket folders checked by CheckStructure.
func (s *Service) Folders() []string {
	return checks.RequiredFolders(s.deps.Storage, s.deps.RosterObject)
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.deps.Client == nil {
		return nil, ErrStorageUnavailable
	}
	return checks.CheckStructure(ctx, s.deps.Client, s.deps.Storage.Bucket, s.Folders())
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.deps.Client == nil {
		return ErrStorageUnavailable
	}
	return checks.FixStructure(ctx, s.deps.Client, s.deps.Storage.Bucket, s.logger, missing)
}

// CheckAssets compares stored headshots and logos with the current rosters.
func (s *Service) CheckAssets(ctx context.Context) (*checks.AssetReport, error) {
	if s.deps.Client == nil {
		return nil, ErrStorageUnavailable
	}

	dir, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	codes := dir.Codes()
	if s.deps.Registry.Len() > 0 {
		codes = make([]string, 0, s.deps.Registry.Len())
		for _, info := range s.deps.Registry.Teams() {
			codes = append(codes, info.Code)
		}
	}

	layout := checks.AssetLayout{
		RosterObject:      s.deps.RosterObject,
		PlayerImagePrefix: s.deps.Storage.PlayerImagePrefix,
		LogoPrefix:        s.deps.Storage.LogoPrefix,
	}
	return checks.CheckAssets(ctx, s.deps.Client, s.deps.Storage.Bucket, layout, dir, codes)
}

// CheckRosters reports duplicates, team mismatches and nameless players.
func (s *Service) CheckRosters(ctx context.Context) (*checks.RosterReport, error) {
	dir, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return checks.CheckRosters(dir, s.deps.Registry), nil
}

// CheckServer validates the roster tables against the gorm models.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	if s.deps.DB == nil {
		return nil, ErrDatabaseUnavailable
	}
	return checks.CheckServerIntegrity(s.deps.DB, database.Models())
}

// Report runs every check. Failures are reported per check instead of
// aborting the others.
func (s *Service) Report(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if missing, err := s.CheckStructure(ctx); err != nil {
		report["structure"] = errorEntry(err)
	} else {
		report["structure"] = map[string]any{"status": "ok", "missing": missing}
	}

	if assets, err := s.CheckAssets(ctx); err != nil {
		report["assets"] = errorEntry(err)
	} else {
		report["assets"] = assets
	}

	if rosters, err := s.CheckRosters(ctx); err != nil {
		report["rosters"] = errorEntry(err)
	} else {
		report["rosters"] = rosters
	}

	if server, err := s.CheckServer(); err != nil {
		report["server"] = errorEntry(err)
	} else {
		report["server"] = server
	}

	return report
}

func (s *Service) load(ctx context.Context) (*roster.Directory, error) {
	if s.deps.Repository == nil {
		return nil, fmt.Errorf("roster repository is not configured")
	}
	dir, err := s.deps.Repository.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rosters: %w", err)
	}
	return dir, nil
}

func errorEntry(err error) map[string]any {
	status := "error"
	if errors.Is(err, ErrStorageUnavailable) || errors.Is(err, ErrDatabaseUnavailable) {
		status = "skipped"
	}
	return map[string]any{"status": status, "error": err.Error()}
}
