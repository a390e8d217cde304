// Package snapshot models the read-mostly dashboard documents that provider
// syncs overwrite wholesale: applicants, the guild directory, the council
// roster and the community team-lead list.
package snapshot

import (
	"time"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
)

// Applicant is one row synced from the recruitment sheet.
type Applicant struct {
	Name      string `json:"name"`
	Class     string `json:"class,omitempty"`
	ItemLevel string `json:"itemLevel,omitempty"`
	IOScore   string `json:"ioScore,omitempty"`
	Date      string `json:"date,omitempty"`
	Message   string `json:"message,omitempty"`
}

// GuildListing is one recruiting guild from the directory sync.
type GuildListing struct {
	Name        string `json:"name"`
	Realm       string `json:"realm,omitempty"`
	Region      string `json:"region,omitempty"`
	Progression string `json:"progression,omitempty"`
	Members     int    `json:"members,omitempty"`
	IOScore     int    `json:"ioScore,omitempty"`
	Source      string `json:"source,omitempty"`
	URL         string `json:"url,omitempty"`
}

type Applicants struct {
	Applicants  []Applicant `json:"applicants"`
	LastUpdated *time.Time  `json:"lastUpdated"`
}

type Guilds struct {
	Guilds      []GuildListing `json:"guilds"`
	LastUpdated *time.Time     `json:"lastUpdated"`
}

type Council struct {
	Council     []roster.Player `json:"council"`
	LastUpdated *time.Time      `json:"lastUpdated"`
	Source      string          `json:"source,omitempty"`
}

type Community struct {
	TeamLeads   []roster.Player `json:"teamLeads"`
	LastUpdated *time.Time      `json:"lastUpdated"`
	Source      string          `json:"source,omitempty"`
}

// Status reports which snapshot documents currently exist.
type Status struct {
	Applicants bool `json:"applicants"`
	Guilds     bool `json:"guilds"`
	Council    bool `json:"council"`
	Community  bool `json:"community"`
}
