package entities

import (
	"errors"
	"strings"
	"time"
)

type UserRole string

const (
	RoleJobSeeker UserRole = "jobSeeker"
	RoleEmployer  UserRole = "employer"
	RoleAdmin     UserRole = "admin"
)

func ToUserRole(s string) (UserRole, error) {
	switch s {
	case string(RoleJobSeeker):
		return RoleJobSeeker, nil
	case string(RoleEmployer):
		return RoleEmployer, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", errors.New("invalid user role")
	}
}

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
	UserDeleted   UserStatus = "deleted"
)

func ToUserStatus(s string) (UserStatus, error) {
	switch s {
	case string(UserActive):
		return UserActive, nil
	case string(UserSuspended):
		return UserSuspended, nil
	case string(UserDeleted):
		return UserDeleted, nil
	default:
		return "", errors.New("invalid user status")
	}
}

type UserProfile struct {
	ID            string `gorm:"primaryKey"`
	Role          UserRole
	Status        UserStatus
	Name          string
	Email         string
	AppliedJobIDs string
	SavedJobIDs   string
	Experiences   []ExperienceEntry `gorm:"foreignKey:UserID"`
	Educations    []EducationEntry  `gorm:"foreignKey:UserID"`
	Languages     []LanguageEntry   `gorm:"foreignKey:UserID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewUserProfile(id, name, email string, role UserRole) *UserProfile {
	return &UserProfile{
		ID:     id,
		Name:   name,
		Email:  email,
		Role:   role,
		Status: UserActive,
	}
}

func (u *UserProfile) AppliedJobIDsAsArray() []string {
	return splitUids(u.AppliedJobIDs)
}

func (u *UserProfile) SavedJobIDsAsArray() []string {
	return splitUids(u.SavedJobIDs)
}

func (u *UserProfile) HasApplied(jobID string) bool {
	for _, id := range u.AppliedJobIDsAsArray() {
		if id == jobID {
			return true
		}
	}
	return false
}

// ExperienceEntry is one position in a seeker's work history. Ordinal keeps the
// order the seeker entered them in.
type ExperienceEntry struct {
	ID               int `gorm:"primaryKey;autoIncrement"`
	UserID           string
	Ordinal          int
	CompanyName      string
	Role             string
	StartDate        string
	EndDate          string
	CurrentlyWorking bool
	AnnualCTC        *float64
	Description      string
}

type EducationEntry struct {
	ID             int `gorm:"primaryKey;autoIncrement"`
	UserID         string
	Ordinal        int
	Level          string
	Degree         string
	Institute      string
	StartYear      string
	EndYear        string
	Specialization string
	CourseType     string
}

type LanguageEntry struct {
	ID          int `gorm:"primaryKey;autoIncrement"`
	UserID      string
	Ordinal     int
	Name        string
	Proficiency string
	CanRead     bool
	CanWrite    bool
	CanSpeak    bool
}

func appendID(csv, id string) string {
	if csv == "" {
		return id
	}
	return csv + "," + id
}

// AddAppliedJob records jobID in the applied set, keeping it duplicate-free.
func (u *UserProfile) AddAppliedJob(jobID string) {
	if !u.HasApplied(jobID) {
		u.AppliedJobIDs = appendID(u.AppliedJobIDs, jobID)
	}
}

// AddSavedJob records jobID in the saved set, keeping it duplicate-free.
func (u *UserProfile) AddSavedJob(jobID string) {
	for _, id := range u.SavedJobIDsAsArray() {
		if id == jobID {
			return
		}
	}
	u.SavedJobIDs = appendID(u.SavedJobIDs, jobID)
}

// RemoveSavedJob drops jobID from the saved set.
func (u *UserProfile) RemoveSavedJob(jobID string) {
	kept := make([]string, 0)
	for _, id := range u.SavedJobIDsAsArray() {
		if id != jobID {
			kept = append(kept, id)
		}
	}
	u.SavedJobIDs = strings.Join(kept, ",")
}
