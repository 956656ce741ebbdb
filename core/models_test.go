package core

import (
	"strings"
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "stormwater detention",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "Comprehensive stormwater detention and treatment system for coastal development",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusPlanning, "Planning"},
		{StatusActive, "Active"},
		{StatusCompleted, "Completed"},
		{Status(42), "Status(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("Status.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, status := range []Status{StatusPlanning, StatusActive, StatusCompleted} {
		got, err := ParseStatus(status.String())
		if err != nil {
			t.Errorf("ParseStatus(%q) error = %v", status.String(), err)
		}
		if got != status {
			t.Errorf("ParseStatus(%q) = %v, want %v", status.String(), got, status)
		}
	}

	if _, err := ParseStatus("Archived"); err == nil {
		t.Errorf("ParseStatus() error = nil for unknown status")
	}
}

func TestNewLesson(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		phase      string
		author     string
		wantErr    bool
		wantPhase  string
		wantAuthor string
	}{
		{
			name:       "all fields provided",
			text:       "Early stakeholder engagement crucial",
			phase:      "Planning",
			author:     "Sarah Mitchell",
			wantPhase:  "Planning",
			wantAuthor: "Sarah Mitchell",
		},
		{
			name:       "defaults applied",
			text:       "Buffer time for weather",
			wantPhase:  "General",
			wantAuthor: "Anonymous",
		},
		{
			name:       "text is trimmed",
			text:       "  padded text  ",
			wantPhase:  "General",
			wantAuthor: "Anonymous",
		},
		{
			name:    "empty text rejected",
			text:    "",
			wantErr: true,
		},
		{
			name:    "whitespace-only text rejected",
			text:    "   \t\n ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lesson, err := NewLesson(tt.text, tt.phase, tt.author)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewLesson() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLesson() error = %v", err)
			}
			if lesson.Phase != tt.wantPhase {
				t.Errorf("NewLesson() phase = %v, want %v", lesson.Phase, tt.wantPhase)
			}
			if lesson.Author != tt.wantAuthor {
				t.Errorf("NewLesson() author = %v, want %v", lesson.Author, tt.wantAuthor)
			}
			if lesson.Id == 0 {
				t.Errorf("NewLesson() produced zero ID")
			}
			if lesson.Text != strings.TrimSpace(tt.text) {
				t.Errorf("NewLesson() text = %q, want trimmed %q", lesson.Text, strings.TrimSpace(tt.text))
			}
			if lesson.Date.IsZero() {
				t.Errorf("NewLesson() date is zero")
			}
		})
	}
}

func TestFilterState_Allows(t *testing.T) {
	empty := FilterState{}
	if !empty.AllowsCategory("Water Infrastructure") {
		t.Errorf("empty filter should allow any category")
	}
	if !empty.AllowsRegion("Victoria") {
		t.Errorf("empty filter should allow any region")
	}

	constrained := FilterState{
		Categories: []string{"Water Infrastructure", "Energy Infrastructure"},
		Regions:    []string{"Victoria"},
	}
	if !constrained.AllowsCategory("Water Infrastructure") {
		t.Errorf("filter should allow listed category")
	}
	if constrained.AllowsCategory("Transport Infrastructure") {
		t.Errorf("filter should reject unlisted category")
	}
	if !constrained.AllowsRegion("Victoria") {
		t.Errorf("filter should allow listed region")
	}
	if constrained.AllowsRegion("Queensland") {
		t.Errorf("filter should reject unlisted region")
	}
}
