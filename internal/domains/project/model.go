package project

import "time"

// Project is a portfolio entry. IDs are timestamp-derived and stable
// for the lifetime of the document; delete is permanent.
type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies"`
	GitHub       string    `json:"github"`
	Live         string    `json:"live"`
	Featured     bool      `json:"featured"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultImage is used when a project is created without one
const DefaultImage = "/placeholder.svg?height=300&width=500"
