package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Status is the delivery status of a project.
type Status int

const (
	// StatusPlanning represents a project still in planning.
	StatusPlanning Status = iota + 1
	// StatusActive represents a project currently being delivered.
	StatusActive
	// StatusCompleted represents a finished project.
	StatusCompleted
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusPlanning:
		return "Planning"
	case StatusActive:
		return "Active"
	case StatusCompleted:
		return "Completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ParseStatus parses a display name into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Planning":
		return StatusPlanning, nil
	case "Active":
		return StatusActive, nil
	case "Completed":
		return StatusCompleted, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// Lesson is a lesson learned recorded against a project.
// Lessons are append-only: the engine creates them but never deletes them.
type Lesson struct {
	Id     ID
	Text   string
	Phase  string
	Author string
	Date   time.Time
}

// NewLesson creates a lesson from user input.
// Text is trimmed and must be non-empty. An empty phase defaults to
// "General" and an empty author to "Anonymous". The lesson ID is derived
// from its content so identical submissions produce identical IDs.
func NewLesson(text, phase, author string) (*Lesson, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyLessonText
	}
	if phase == "" {
		phase = "General"
	}
	if author == "" {
		author = "Anonymous"
	}
	date := time.Now().UTC()
	return &Lesson{
		Id:     IDFromContent(text + "|" + author + "|" + date.Format(time.RFC3339Nano)),
		Text:   text,
		Phase:  phase,
		Author: author,
		Date:   date,
	}, nil
}

// Project is a single record in the project knowledge corpus.
type Project struct {
	Id              ID
	ProjectNumber   string
	ProjectName     string
	Description     string
	Client          string
	Region          string
	Category        string
	Phase           string
	Budget          string
	Status          Status
	RiskLevel       string
	Disciplines     []string
	Tags            []string
	TrustScore      float64 // Query-independent reliability score in [0,1]
	SimilarityScore float64 // Precomputed relevance score in [0,1], used verbatim by the local fetcher
	ProjectLeader   string
	ProjectReviewer string
	Lessons         []Lesson  // Insertion order is chronological
	InsertedAt      time.Time // When the record was inserted into the store
	UpdatedAt       time.Time // When the record was last updated
}

// Expert is a read-only profile of an engineer in the expertise directory.
type Expert struct {
	Name             string
	Role             string
	Email            string
	Slack            string
	Expertise        []string
	ProjectsLed      int
	ProjectsReviewed int
	AvgTrustScore    float64
	RecentProjects   []string
}

// FilterState holds the facet filters applied to a search.
// Empty category and region sets mean no constraint. Filters persist
// across queries until explicitly cleared.
type FilterState struct {
	MinTrustScore float64 // Trust-score floor in [0,1]
	Categories    []string
	Regions       []string
}

// AllowsCategory reports whether the category passes the filter.
func (f FilterState) AllowsCategory(category string) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, c := range f.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// AllowsRegion reports whether the region passes the filter.
func (f FilterState) AllowsRegion(region string) bool {
	if len(f.Regions) == 0 {
		return true
	}
	for _, r := range f.Regions {
		if r == region {
			return true
		}
	}
	return false
}

// SearchResult pairs a project with its query-relative relevance score.
// The score is only meaningful for the query that produced it and is
// never written back to the project record.
type SearchResult struct {
	Project *Project
	Score   float64
}

// FeedbackEvent is a user relevance judgment on a project.
// A nil Positive represents retraction of prior feedback.
type FeedbackEvent struct {
	Id        string // Client-generated event ID
	ProjectId ID
	Positive  *bool
	Timestamp time.Time
}
