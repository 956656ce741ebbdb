package api

import (
	"time"

	"github.com/poiesic/profind/core"
)

// dateLayout is how the service writes lesson dates.
const dateLayout = "2006-01-02"

type searchRequest struct {
	Query         string   `json:"query"`
	TopK          int      `json:"top_k"`
	MinTrustScore float64  `json:"min_trust_score"`
	Categories    []string `json:"categories"`
	Regions       []string `json:"regions"`
}

type searchResponse struct {
	Results []projectPayload `json:"results"`
}

type feedbackRequest struct {
	ProjectId  core.ID `json:"project_id"`
	IsPositive *bool   `json:"is_positive"`
	Timestamp  string  `json:"timestamp"`
}

type lessonRequest struct {
	ProjectId core.ID `json:"project_id"`
	Text      string  `json:"text"`
	Phase     string  `json:"phase"`
	Author    string  `json:"author"`
	Date      string  `json:"date"`
}

type statsResponse struct {
	TotalProjects int `json:"total_projects"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type lessonPayload struct {
	Id     core.ID `json:"id"`
	Text   string  `json:"text"`
	Phase  string  `json:"phase"`
	Author string  `json:"author"`
	Date   string  `json:"date"`
}

type projectPayload struct {
	Id              core.ID         `json:"id"`
	ProjectNumber   string          `json:"projectNumber"`
	ProjectName     string          `json:"projectName"`
	Description     string          `json:"description"`
	Client          string          `json:"client"`
	Region          string          `json:"region"`
	Category        string          `json:"category"`
	Phase           string          `json:"phase"`
	Budget          string          `json:"budget"`
	Status          string          `json:"status"`
	RiskLevel       string          `json:"riskLevel"`
	Disciplines     []string        `json:"disciplines"`
	Tags            []string        `json:"tags"`
	TrustScore      float64         `json:"trustScore"`
	SimilarityScore float64         `json:"similarityScore"`
	ProjectLeader   string          `json:"projectLeader"`
	ProjectReviewer string          `json:"projectReviewer"`
	Lessons         []lessonPayload `json:"lessons"`
}

// toProject converts a wire payload into a core record.
// Unknown statuses and unparseable dates degrade to zero values rather
// than failing the whole result set.
func (p *projectPayload) toProject() *core.Project {
	status, err := core.ParseStatus(p.Status)
	if err != nil {
		status = core.StatusActive
	}

	lessons := make([]core.Lesson, 0, len(p.Lessons))
	for _, l := range p.Lessons {
		lessons = append(lessons, core.Lesson{
			Id:     l.Id,
			Text:   l.Text,
			Phase:  l.Phase,
			Author: l.Author,
			Date:   parseDate(l.Date),
		})
	}

	return &core.Project{
		Id:              p.Id,
		ProjectNumber:   p.ProjectNumber,
		ProjectName:     p.ProjectName,
		Description:     p.Description,
		Client:          p.Client,
		Region:          p.Region,
		Category:        p.Category,
		Phase:           p.Phase,
		Budget:          p.Budget,
		Status:          status,
		RiskLevel:       p.RiskLevel,
		Disciplines:     p.Disciplines,
		Tags:            p.Tags,
		TrustScore:      p.TrustScore,
		SimilarityScore: p.SimilarityScore,
		ProjectLeader:   p.ProjectLeader,
		ProjectReviewer: p.ProjectReviewer,
		Lessons:         lessons,
	}
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
