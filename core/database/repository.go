package database

import (
	"context"
	"fmt"

	"roster-manager/core/roster"

	"gorm.io/gorm"
)

const insertBatchSize = 500

// Migrate creates or updates the roster tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&TeamRecord{}, &PlayerRecord{}); err != nil {
		return fmt.Errorf("failed to migrate roster tables: %w", err)
	}
	return nil
}

// RosterRepository persists the roster directory in two tables.
type RosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository returns a repository over db.
func NewRosterRepository(db *gorm.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

// Load reads teams by position and players by team sequence.
func (r *RosterRepository) Load(ctx context.Context) (*roster.Directory, error) {
	var teams []TeamRecord
	if err := r.db.WithContext(ctx).Order("position").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}

	var players []PlayerRecord
	if err := r.db.WithContext(ctx).Order("team_code").Order("seq").Find(&players).Error; err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}

	byTeam := make(map[string][]roster.Player, len(teams))
	for _, p := range players {
		player := roster.Player{ID: p.PlayerID, Name: p.Name, Position: p.Position}
		if p.Number != nil {
			player.Number = roster.ParseJersey(*p.Number)
		}
		byTeam[p.TeamCode] = append(byTeam[p.TeamCode], player)
	}

	dir := roster.NewDirectory()
	for _, t := range teams {
		dir.Put(&roster.Team{Code: t.Code, Name: t.Name, Players: byTeam[t.Code]})
	}
	return dir, nil
}

// Save replaces both tables inside one transaction.
func (r *RosterRepository) Save(ctx context.Context, dir *roster.Directory) error {
	teams, players := toRecords(dir)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&PlayerRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear players: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&TeamRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear teams: %w", err)
		}
		if len(teams) > 0 {
			if err := tx.CreateInBatches(teams, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert teams: %w", err)
			}
		}
		if len(players) > 0 {
			if err := tx.CreateInBatches(players, insertBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert players: %w", err)
			}
		}
		return nil
	})
}

func toRecords(dir *roster.Directory) ([]TeamRecord, []PlayerRecord) {
	var (
		teams   []TeamRecord
		players []PlayerRecord
	)
	for pos, team := range dir.Teams() {
		teams = append(teams, TeamRecord{Code: team.Code, Name: team.Name, Position: pos})
		for seq, p := range team.Players {
			rec := PlayerRecord{
				TeamCode: team.Code,
				Seq:      seq,
				PlayerID: p.ID,
				Name:     p.Name,
				Position: p.Position,
			}
			if p.Number != nil {
				n := p.Number.String()
				rec.Number = &n
			}
			players = append(players, rec)
		}
	}
	return teams, players
}
