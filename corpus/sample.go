package corpus

import (
	"time"

	"github.com/poiesic/profind/core"
)

// Categories lists the facet values available for the category filter.
var Categories = []string{
	"Industrial Infrastructure",
	"Water Infrastructure",
	"Transport Infrastructure",
	"Energy Infrastructure",
	"Smart Infrastructure",
	"Building Services",
}

// Regions lists the facet values available for the region filter.
var Regions = []string{
	"Victoria",
	"New South Wales",
	"Queensland",
	"South Australia",
	"Western Australia",
	"Tasmania",
	"Northern Territory",
	"Australian Capital Territory",
}

// SampleProjects returns a fresh copy of the reference corpus.
// Callers receive their own records and may mutate them freely.
func SampleProjects() []*core.Project {
	return []*core.Project{
		{
			Id:              1,
			ProjectNumber:   "TKN-2024-MP-150",
			ProjectName:     "Melbourne Port Infrastructure Upgrade",
			Description:     "Major upgrade to port facilities including new container terminal and improved logistics infrastructure",
			Client:          "Development Victoria",
			Region:          "Victoria",
			Category:        "Industrial Infrastructure",
			Phase:           "Design Complete",
			Budget:          "$45M",
			Status:          core.StatusActive,
			RiskLevel:       "Medium",
			Disciplines:     []string{"Civil", "Electrical", "Environmental", "Transport"},
			Tags:            []string{"port", "logistics", "container terminal", "infrastructure"},
			TrustScore:      0.87,
			SimilarityScore: 0.94,
			ProjectLeader:   "Sarah Mitchell",
			ProjectReviewer: "David Chen",
			Lessons: []core.Lesson{
				{
					Id:     1,
					Text:   "Early stakeholder engagement crucial for port projects",
					Author: "Sarah Mitchell",
					Date:   day(2024, 3, 10),
					Phase:  "Planning",
				},
			},
		},
		{
			Id:              2,
			ProjectNumber:   "TKN-2024-SW-089",
			ProjectName:     "Sydney Waterfront Stormwater Management System",
			Description:     "Comprehensive stormwater detention and treatment system for coastal development",
			Client:          "Sydney Water Corporation",
			Region:          "New South Wales",
			Category:        "Water Infrastructure",
			Phase:           "Construction",
			Budget:          "$12M",
			Status:          core.StatusActive,
			RiskLevel:       "Low",
			Disciplines:     []string{"Civil", "Hydraulic", "Environmental"},
			Tags:            []string{"stormwater", "detention", "coastal", "water treatment"},
			TrustScore:      0.92,
			SimilarityScore: 0.89,
			ProjectLeader:   "James Wilson",
			ProjectReviewer: "Sarah Mitchell",
			Lessons: []core.Lesson{
				{
					Id:     2,
					Text:   "Integration with existing systems requires detailed coordination",
					Author: "James Wilson",
					Date:   day(2024, 4, 15),
					Phase:  "Design",
				},
			},
		},
		{
			Id:              3,
			ProjectNumber:   "TKN-2023-BR-045",
			ProjectName:     "Brisbane Gateway Bridge Expansion",
			Description:     "Bridge widening and structural strengthening project to increase traffic capacity",
			Client:          "Queensland Department of Transport",
			Region:          "Queensland",
			Category:        "Transport Infrastructure",
			Phase:           "Completed",
			Budget:          "$28M",
			Status:          core.StatusCompleted,
			RiskLevel:       "High",
			Disciplines:     []string{"Structural", "Civil", "Traffic Engineering", "Geotechnical"},
			Tags:            []string{"bridge", "structural", "expansion", "traffic"},
			TrustScore:      0.95,
			SimilarityScore: 0.78,
			ProjectLeader:   "Emma Thompson",
			ProjectReviewer: "David Chen",
			Lessons: []core.Lesson{
				{
					Id:     3,
					Text:   "Traffic management during construction is critical for public acceptance",
					Author: "Emma Thompson",
					Date:   day(2023, 9, 20),
					Phase:  "Construction",
				},
				{
					Id:     4,
					Text:   "Weather-dependent activities need significant buffer time",
					Author: "David Chen",
					Date:   day(2023, 11, 5),
					Phase:  "Construction",
				},
			},
		},
		{
			Id:              4,
			ProjectNumber:   "TKN-2024-EN-112",
			ProjectName:     "Adelaide Renewable Energy Hub",
			Description:     "Solar farm and battery storage facility for commercial and industrial users",
			Client:          "SA Power Networks",
			Region:          "South Australia",
			Category:        "Energy Infrastructure",
			Phase:           "Feasibility",
			Budget:          "$65M",
			Status:          core.StatusPlanning,
			RiskLevel:       "Medium",
			Disciplines:     []string{"Electrical", "Environmental", "Civil"},
			Tags:            []string{"solar", "renewable", "battery storage", "energy"},
			TrustScore:      0.78,
			SimilarityScore: 0.85,
			ProjectLeader:   "Michael O'Brien",
			ProjectReviewer: "Emma Thompson",
		},
		{
			Id:              5,
			ProjectNumber:   "TKN-2024-WT-078",
			ProjectName:     "Perth Water Treatment Facility Modernization",
			Description:     "Upgrade of existing water treatment plant with advanced filtration technology",
			Client:          "Water Corporation WA",
			Region:          "Western Australia",
			Category:        "Water Infrastructure",
			Phase:           "Design",
			Budget:          "$32M",
			Status:          core.StatusActive,
			RiskLevel:       "Medium",
			Disciplines:     []string{"Chemical", "Civil", "Mechanical", "Process Engineering"},
			Tags:            []string{"water treatment", "filtration", "modernization", "process"},
			TrustScore:      0.89,
			SimilarityScore: 0.82,
			ProjectLeader:   "Lisa Anderson",
			ProjectReviewer: "James Wilson",
			Lessons: []core.Lesson{
				{
					Id:     5,
					Text:   "Phased implementation allows continuous operation during upgrade",
					Author: "Lisa Anderson",
					Date:   day(2024, 5, 20),
					Phase:  "Design",
				},
			},
		},
		{
			Id:              6,
			ProjectNumber:   "TKN-2023-SC-033",
			ProjectName:     "Melbourne Smart City IoT Network",
			Description:     "City-wide sensor network for traffic, environmental, and infrastructure monitoring",
			Client:          "City of Melbourne",
			Region:          "Victoria",
			Category:        "Smart Infrastructure",
			Phase:           "Implementation",
			Budget:          "$18M",
			Status:          core.StatusActive,
			RiskLevel:       "Low",
			Disciplines:     []string{"Electrical", "Data Science", "Civil", "IT"},
			Tags:            []string{"smart city", "IoT", "sensors", "monitoring"},
			TrustScore:      0.83,
			SimilarityScore: 0.76,
			ProjectLeader:   "David Chen",
			ProjectReviewer: "Michael O'Brien",
			Lessons: []core.Lesson{
				{
					Id:     6,
					Text:   "Data security and privacy must be designed in from the start",
					Author: "David Chen",
					Date:   day(2024, 1, 12),
					Phase:  "Design",
				},
			},
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
