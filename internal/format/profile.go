package format

import (
	"fmt"
	"strings"

	"github.com/jobboardly/backend/internal/entities"
	"github.com/samber/lo"
)

const notAvailable = "N/A"

// Experiences renders a seeker's work history as one semicolon-joined line.
// Compensation is included only when present; every other missing field shows
// as "N/A" so the segment shape never varies.
func Experiences(entries []entities.ExperienceEntry) string {
	if len(entries) == 0 {
		return "No work experience listed."
	}

	segments := lo.Map(entries, func(e entities.ExperienceEntry, _ int) string {
		end := orNA(e.EndDate)
		if e.CurrentlyWorking {
			end = "Present"
		}

		segment := fmt.Sprintf("%s as %s (%s to %s)", orNA(e.CompanyName), orNA(e.Role), orNA(e.StartDate), end)
		if e.AnnualCTC != nil {
			segment += ", Annual CTC: " + INR(e.AnnualCTC)
		}
		return segment + ". Description: " + orNA(e.Description)
	})

	return strings.Join(segments, "; ")
}

func Educations(entries []entities.EducationEntry) string {
	if len(entries) == 0 {
		return "No education details listed."
	}

	segments := lo.Map(entries, func(e entities.EducationEntry, _ int) string {
		return fmt.Sprintf("%s in %s from %s (%s to %s), Specialization: %s, Course Type: %s",
			orNA(e.Level), orNA(e.Degree), orNA(e.Institute),
			orNA(e.StartYear), orNA(e.EndYear),
			orNA(e.Specialization), orNA(e.CourseType))
	})

	return strings.Join(segments, "; ")
}

func Languages(entries []entities.LanguageEntry) string {
	if len(entries) == 0 {
		return "No languages listed."
	}

	segments := lo.Map(entries, func(e entities.LanguageEntry, _ int) string {
		return fmt.Sprintf("%s (Proficiency: %s, Read: %s, Write: %s, Speak: %s)",
			orNA(e.Name), orNA(e.Proficiency), yn(e.CanRead), yn(e.CanWrite), yn(e.CanSpeak))
	})

	return strings.Join(segments, "; ")
}

// SeekerProfile composes the full profile text block for a matching prompt.
func SeekerProfile(profile *entities.UserProfile) string {
	var b strings.Builder
	b.WriteString("Candidate: " + orNA(profile.Name) + "\n")
	b.WriteString("Work Experience: " + Experiences(profile.Experiences) + "\n")
	b.WriteString("Education: " + Educations(profile.Educations) + "\n")
	b.WriteString("Languages: " + Languages(profile.Languages))
	return b.String()
}

// JobPostings renders one ID-tagged line per job so the model can cite job IDs
// back in its ranking.
func JobPostings(jobs []entities.Job) string {
	if len(jobs) == 0 {
		return "No job postings available."
	}

	lines := lo.Map(jobs, func(j entities.Job, _ int) string {
		skills := notAvailable
		if len(j.SkillsAsArray()) > 0 {
			skills = strings.Join(j.SkillsAsArray(), ", ")
		}
		return fmt.Sprintf("ID: %s | Title: %s | Location: %s | Skills: %s | Salary: %s to %s | Description: %s",
			j.ID, orNA(j.Title), orNA(j.Location), skills,
			INR(j.SalaryMin), INR(j.SalaryMax), orNA(j.Description))
	})

	return strings.Join(lines, "\n")
}

// CandidateProfiles renders one ID-tagged block per candidate for the reverse
// matching direction.
func CandidateProfiles(profiles []entities.UserProfile) string {
	if len(profiles) == 0 {
		return "No candidate profiles available."
	}

	blocks := lo.Map(profiles, func(p entities.UserProfile, _ int) string {
		return "ID: " + p.ID + "\n" + SeekerProfile(&p)
	})

	return strings.Join(blocks, "\n\n")
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func yn(flag bool) string {
	if flag {
		return "Y"
	}
	return "N"
}
