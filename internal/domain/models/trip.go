package models

import "strings"

// JobType of the transported equipment. Stored by stable key; legacy rows
// carry the Portuguese display labels and are normalized on load.
type JobType string

const (
	JobMRI   JobType = "MRI"
	JobCT    JobType = "CT"
	JobOther JobType = "OTHER"
)

func (j JobType) Valid() bool {
	return j == JobMRI || j == JobCT || j == JobOther
}

func (j JobType) Label() string {
	switch j {
	case JobMRI:
		return "Ressonância Magnética"
	case JobCT:
		return "Tomografia"
	case JobOther:
		return "Outro"
	default:
		return string(j)
	}
}

func ParseJobType(s string) (JobType, bool) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "mri", "ressonância magnética", "ressonancia magnetica":
		return JobMRI, true
	case "ct", "tomografia":
		return JobCT, true
	case "other", "outro":
		return JobOther, true
	default:
		return "", false
	}
}

type TripStatus string

const (
	StatusOpen       TripStatus = "OPEN"
	StatusInProgress TripStatus = "IN_PROGRESS"
	StatusFinished   TripStatus = "FINISHED"
)

func (s TripStatus) Valid() bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusFinished
}

func (s TripStatus) Label() string {
	switch s {
	case StatusOpen:
		return "Em Aberto"
	case StatusInProgress:
		return "Em Andamento"
	case StatusFinished:
		return "Finalizado"
	default:
		return string(s)
	}
}

func ParseTripStatus(s string) (TripStatus, bool) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "open", "em aberto":
		return StatusOpen, true
	case "in_progress", "em andamento":
		return StatusInProgress, true
	case "finished", "finalizado":
		return StatusFinished, true
	default:
		return "", false
	}
}

// Trip is one freight job. BaseValue, DriverKmCost and TotalCost are
// snapshots frozen at save time; later rate changes never rewrite them.
type Trip struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"` // YYYY-MM-DD
	ClientName  string     `json:"clientName"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	DistanceKm  float64    `json:"distanceKm"`
	JobType     JobType    `json:"jobType"`
	Status      TripStatus `json:"status"`

	DriverIDs []string `json:"driverIds"`
	// LegacyDriverID is the deprecated single-driver column. Read-only: it is
	// honored when DriverIDs is empty and never written for new trips.
	LegacyDriverID string   `json:"driverId,omitempty"`
	HelperIDs      []string `json:"helperIds"`

	IsWeekend    bool    `json:"isWeekend"`
	BaseValue    float64 `json:"baseValue"`
	DriverKmCost float64 `json:"driverKmCost"`
	TotalCost    float64 `json:"totalCost"`
	Notes        string  `json:"notes,omitempty"`
}

// DriverSet returns the normalized driver id list, falling back to the
// legacy single-id field for rows written before multi-driver support.
func (t Trip) DriverSet() []string {
	if len(t.DriverIDs) > 0 {
		return t.DriverIDs
	}
	if strings.TrimSpace(t.LegacyDriverID) != "" {
		return []string{t.LegacyDriverID}
	}
	return nil
}

func (t Trip) HasDriver(staffID string) bool {
	for _, id := range t.DriverSet() {
		if id == staffID {
			return true
		}
	}
	return false
}

func (t Trip) HasHelper(staffID string) bool {
	for _, id := range t.HelperIDs {
		if id == staffID {
			return true
		}
	}
	return false
}
