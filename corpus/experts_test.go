package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleProjects_FreshCopies(t *testing.T) {
	a := SampleProjects()
	b := SampleProjects()

	require.Len(t, a, 6)
	a[0].ProjectName = "mutated"
	assert.NotEqual(t, a[0].ProjectName, b[0].ProjectName)
}

func TestDirectory_FindByName(t *testing.T) {
	dir := NewDirectory(nil)

	expert := dir.FindByName("James Wilson")
	require.NotNil(t, expert)
	assert.Equal(t, "Water Infrastructure Specialist", expert.Role)

	assert.Nil(t, dir.FindByName("Nobody Here"))
}

func TestDirectory_ProjectsFor(t *testing.T) {
	dir := NewDirectory(nil)
	projects := SampleProjects()

	expert := dir.FindByName("Sarah Mitchell")
	require.NotNil(t, expert)

	led := dir.ProjectsFor(expert, projects)
	// Leads the port upgrade, reviews the stormwater system.
	require.Len(t, led, 2)
	assert.Equal(t, "Melbourne Port Infrastructure Upgrade", led[0].ProjectName)
	assert.Equal(t, "Sydney Waterfront Stormwater Management System", led[1].ProjectName)

	assert.Nil(t, dir.ProjectsFor(nil, projects))
}
