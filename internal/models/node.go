package models

import "time"

// Node is one child of a users/{owner}/{collection} node in the SQL record
// store. Value holds the child's JSON encoding.
type Node struct {
	OwnerID    string    `gorm:"primaryKey;size:64"`
	Collection string    `gorm:"primaryKey;size:32"`
	Key        string    `gorm:"column:node_key;primaryKey;size:64"`
	Value      string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName pins the table name used by migrations.
func (Node) TableName() string { return "nodes" }
