package storage

import (
	"testing"
	"time"

	"github.com/poiesic/profind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("stormwater detention")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalProject(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name    string
		project *core.Project
	}{
		{
			name: "minimal project",
			project: &core.Project{
				Id:          core.ID(1),
				ProjectName: "Minimal",
				Status:      core.StatusPlanning,
				InsertedAt:  now,
				UpdatedAt:   now,
			},
		},
		{
			name: "full project",
			project: &core.Project{
				Id:              core.ID(2),
				ProjectNumber:   "TKN-2024-SW-089",
				ProjectName:     "Sydney Waterfront Stormwater Management System",
				Description:     "Comprehensive stormwater detention and treatment system",
				Client:          "Sydney Water Corporation",
				Region:          "New South Wales",
				Category:        "Water Infrastructure",
				Phase:           "Construction",
				Budget:          "$12M",
				Status:          core.StatusActive,
				RiskLevel:       "Low",
				Disciplines:     []string{"Civil", "Hydraulic", "Environmental"},
				Tags:            []string{"stormwater", "detention", "coastal"},
				TrustScore:      0.92,
				SimilarityScore: 0.89,
				ProjectLeader:   "James Wilson",
				ProjectReviewer: "Sarah Mitchell",
				Lessons: []core.Lesson{
					{
						Id:     core.ID(2),
						Text:   "Integration with existing systems requires detailed coordination",
						Author: "James Wilson",
						Phase:  "Design",
						Date:   now,
					},
				},
				InsertedAt: now,
				UpdatedAt:  now,
			},
		},
		{
			name: "unicode fields",
			project: &core.Project{
				Id:          core.ID(3),
				ProjectName: "Café Precinct Upgrade 世界",
				Status:      core.StatusCompleted,
				InsertedAt:  now,
				UpdatedAt:   now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalProject(tt.project)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalProject(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.project.Id, decoded.Id)
			assert.Equal(t, tt.project.ProjectNumber, decoded.ProjectNumber)
			assert.Equal(t, tt.project.ProjectName, decoded.ProjectName)
			assert.Equal(t, tt.project.Status, decoded.Status)
			assert.Equal(t, tt.project.TrustScore, decoded.TrustScore)
			assert.Equal(t, tt.project.SimilarityScore, decoded.SimilarityScore)
			assert.True(t, tt.project.InsertedAt.Equal(decoded.InsertedAt))
			assert.True(t, tt.project.UpdatedAt.Equal(decoded.UpdatedAt))
			if len(tt.project.Lessons) == 0 {
				assert.Empty(t, decoded.Lessons)
			} else {
				require.Len(t, decoded.Lessons, len(tt.project.Lessons))
				assert.Equal(t, tt.project.Lessons[0].Text, decoded.Lessons[0].Text)
				assert.True(t, tt.project.Lessons[0].Date.Equal(decoded.Lessons[0].Date))
			}
			if len(tt.project.Tags) == 0 {
				assert.Empty(t, decoded.Tags)
			} else {
				assert.Equal(t, tt.project.Tags, decoded.Tags)
			}
		})
	}
}

func TestUnmarshalProject_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalProject(tt.data)
			assert.Error(t, err)
		})
	}
}
