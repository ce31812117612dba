package database

// TeamRecord is one row of the roster_teams table.
type TeamRecord struct {
	Code     string `gorm:"column:code;primaryKey;type:varchar(16)"`
	Name     string `gorm:"column:name;type:varchar(128);not null"`
	Position int    `gorm:"column:position;type:int;not null"`
}

// TableName overrides the table name used by TeamRecord.
func (TeamRecord) TableName() string {
	return "roster_teams"
}

// PlayerRecord is one row of the roster_players table. Player ids are not
// unique here: duplicates across teams are detected and reported, not rejected.
type PlayerRecord struct {
	RowID    uint    `gorm:"column:row_id;primaryKey;autoIncrement"`
	TeamCode string  `gorm:"column:team_code;type:varchar(16);index;not null"`
	Seq      int     `gorm:"column:seq;type:int;not null"`
	PlayerID int     `gorm:"column:player_id;type:int;index;not null"`
	Name     string  `gorm:"column:name;type:varchar(128)"`
	Number   *string `gorm:"column:number;type:varchar(16)"`
	Position string  `gorm:"column:position;type:varchar(16)"`
}

// TableName overrides the table name used by PlayerRecord.
func (PlayerRecord) TableName() string {
	return "roster_players"
}

// Models lists the persisted models, in creation order.
func Models() []any {
	return []any{TeamRecord{}, PlayerRecord{}}
}
