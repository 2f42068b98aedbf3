package models

import "time"

// CommandRun is one row of the command history database.
type CommandRun struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Command    string    `gorm:"type:text;not null" json:"command"`
	WorkingDir string    `gorm:"size:1024" json:"workingDir"`
	Succeeded  bool      `gorm:"not null;index" json:"succeeded"`
	ErrorKind  string    `gorm:"size:64" json:"errorKind,omitempty"`
	Output     string    `gorm:"type:text" json:"output"`
	DurationMs int64     `gorm:"not null;default:0" json:"durationMs"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}
