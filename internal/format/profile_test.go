package format

import (
	"strings"
	"testing"

	"github.com/jobboardly/backend/internal/entities"
	"github.com/stretchr/testify/assert"
)

func Test_Experiences_Empty_ReturnsPlaceholder(t *testing.T) {
	assert.Equal(t, "No work experience listed.", Experiences(nil))
	assert.Equal(t, "No work experience listed.", Experiences([]entities.ExperienceEntry{}))
	// repeated calls stay identical
	assert.Equal(t, Experiences(nil), Experiences(nil))
}

func Test_Experiences_RendersFixedFieldOrder(t *testing.T) {

	ctc := 1500000.0
	entries := []entities.ExperienceEntry{
		{
			CompanyName:      "Acme Corp",
			Role:             "Backend Engineer",
			StartDate:        "Jan 2020",
			CurrentlyWorking: true,
			AnnualCTC:        &ctc,
			Description:      "Built services",
		},
		{
			Role:      "Intern",
			StartDate: "Jun 2019",
			EndDate:   "Dec 2019",
		},
	}

	out := Experiences(entries)
	segments := strings.Split(out, "; ")
	assert.Len(t, segments, 2)

	assert.Equal(t, "Acme Corp as Backend Engineer (Jan 2020 to Present), Annual CTC: ₹15L. Description: Built services", segments[0])
	// missing company and description render as N/A, compensation clause is omitted
	assert.Equal(t, "N/A as Intern (Jun 2019 to Dec 2019). Description: N/A", segments[1])
}

func Test_Educations_RendersWithPlaceholders(t *testing.T) {

	assert.Equal(t, "No education details listed.", Educations(nil))

	entries := []entities.EducationEntry{
		{Level: "Bachelors", Degree: "B.Tech", Institute: "IIT Delhi", StartYear: "2015", EndYear: "2019"},
	}
	out := Educations(entries)
	assert.Equal(t, "Bachelors in B.Tech from IIT Delhi (2015 to 2019), Specialization: N/A, Course Type: N/A", out)
}

func Test_Languages_RendersReadWriteSpeakFlags(t *testing.T) {

	assert.Equal(t, "No languages listed.", Languages(nil))

	entries := []entities.LanguageEntry{
		{Name: "Hindi", Proficiency: "Native", CanRead: true, CanWrite: true, CanSpeak: true},
		{Name: "English", Proficiency: "Professional", CanRead: true, CanSpeak: true},
	}
	out := Languages(entries)
	assert.Equal(t, "Hindi (Proficiency: Native, Read: Y, Write: Y, Speak: Y); "+
		"English (Proficiency: Professional, Read: Y, Write: N, Speak: Y)", out)
}

func Test_JobPostings_TagsEveryLineWithJobID(t *testing.T) {

	assert.Equal(t, "No job postings available.", JobPostings(nil))

	jobs := []entities.Job{
		*entities.NewJob("job-1", "c1", "Go Developer", "Backend work", "Remote", []string{"go", "sql"}),
		*entities.NewJob("job-2", "c1", "SRE", "", "", nil),
	}

	out := JobPostings(jobs)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ID: job-1")
	assert.Contains(t, lines[0], "Skills: go, sql")
	assert.Contains(t, lines[1], "ID: job-2")
	assert.Contains(t, lines[1], "Salary: N/A to N/A")
}

func Test_SeekerProfile_ComposesAllBlocks(t *testing.T) {

	profile := entities.NewUserProfile("u1", "Asha", "asha@example.com", entities.RoleJobSeeker)
	out := SeekerProfile(profile)

	assert.Contains(t, out, "Candidate: Asha")
	assert.Contains(t, out, "No work experience listed.")
	assert.Contains(t, out, "No education details listed.")
	assert.Contains(t, out, "No languages listed.")
}
