package corpus

import "github.com/poiesic/profind/core"

// Directory is a read-only lookup over the expert profiles.
// The engine never mutates expert records.
type Directory struct {
	experts []*core.Expert
}

// NewDirectory creates a directory over the given profiles.
// A nil slice falls back to the built-in reference profiles.
func NewDirectory(experts []*core.Expert) *Directory {
	if experts == nil {
		experts = ExpertProfiles()
	}
	return &Directory{experts: experts}
}

// FindByName returns the expert with the given name, or nil if unknown.
// Names are the unique key of the directory.
func (d *Directory) FindByName(name string) *core.Expert {
	for _, e := range d.experts {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// All returns every profile in the directory.
func (d *Directory) All() []*core.Expert {
	return d.experts
}

// ProjectsFor returns the projects the expert leads or reviews.
func (d *Directory) ProjectsFor(expert *core.Expert, projects []*core.Project) []*core.Project {
	if expert == nil {
		return nil
	}
	var out []*core.Project
	for _, p := range projects {
		if p.ProjectLeader == expert.Name || p.ProjectReviewer == expert.Name {
			out = append(out, p)
		}
	}
	return out
}

// ExpertProfiles returns a fresh copy of the reference expert directory.
func ExpertProfiles() []*core.Expert {
	return []*core.Expert{
		{
			Name:             "Sarah Mitchell",
			Role:             "Senior Infrastructure Lead",
			Email:            "sarah.mitchell@tonkin.com.au",
			Slack:            "@smitchell",
			Expertise:        []string{"Industrial Infrastructure", "Port Engineering", "Project Management"},
			ProjectsLed:      12,
			ProjectsReviewed: 28,
			AvgTrustScore:    0.91,
			RecentProjects:   []string{"TKN-2024-MP-150", "TKN-2024-SW-089"},
		},
		{
			Name:             "David Chen",
			Role:             "Bridge & Structural Expert",
			Email:            "david.chen@tonkin.com.au",
			Slack:            "@dchen",
			Expertise:        []string{"Structural Engineering", "Bridge Design", "Smart Infrastructure"},
			ProjectsLed:      8,
			ProjectsReviewed: 34,
			AvgTrustScore:    0.93,
			RecentProjects:   []string{"TKN-2023-BR-045", "TKN-2023-SC-033"},
		},
		{
			Name:             "James Wilson",
			Role:             "Water Infrastructure Specialist",
			Email:            "james.wilson@tonkin.com.au",
			Slack:            "@jwilson",
			Expertise:        []string{"Stormwater Management", "Hydraulic Engineering", "Water Treatment"},
			ProjectsLed:      15,
			ProjectsReviewed: 22,
			AvgTrustScore:    0.88,
			RecentProjects:   []string{"TKN-2024-SW-089", "TKN-2024-WT-078"},
		},
		{
			Name:             "Emma Thompson",
			Role:             "Transport & Bridge Lead",
			Email:            "emma.thompson@tonkin.com.au",
			Slack:            "@ethompson",
			Expertise:        []string{"Bridge Engineering", "Traffic Engineering", "Structural Analysis"},
			ProjectsLed:      10,
			ProjectsReviewed: 19,
			AvgTrustScore:    0.94,
			RecentProjects:   []string{"TKN-2023-BR-045", "TKN-2024-EN-112"},
		},
		{
			Name:             "Michael O'Brien",
			Role:             "Renewable Energy Expert",
			Email:            "michael.obrien@tonkin.com.au",
			Slack:            "@mobrien",
			Expertise:        []string{"Renewable Energy", "Electrical Systems", "Battery Storage"},
			ProjectsLed:      7,
			ProjectsReviewed: 15,
			AvgTrustScore:    0.86,
			RecentProjects:   []string{"TKN-2024-EN-112", "TKN-2023-SC-033"},
		},
		{
			Name:             "Lisa Anderson",
			Role:             "Process Engineering Lead",
			Email:            "lisa.anderson@tonkin.com.au",
			Slack:            "@landerson",
			Expertise:        []string{"Water Treatment", "Chemical Engineering", "Process Design"},
			ProjectsLed:      11,
			ProjectsReviewed: 25,
			AvgTrustScore:    0.90,
			RecentProjects:   []string{"TKN-2024-WT-078"},
		},
	}
}
