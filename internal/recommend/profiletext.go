// Package recommend implements mentor and career-path recommendations with
// embedding-based ranking and a deterministic rule-based fallback.
package recommend

import (
	"fmt"
	"strings"

	"github.com/jonathan/alumni-connect/internal/careers"
	"github.com/jonathan/alumni-connect/internal/db"
)

// ProfileText builds a descriptive text representation of a user's profile
// for embedding input. Attributes are emitted in a fixed order as labeled
// fragments joined by ". "; absent or empty attributes are omitted entirely
// so sparsely filled profiles are not padded toward artificial similarity.
func ProfileText(u *db.User) string {
	var parts []string

	switch u.Role {
	case db.RoleStudent:
		parts = append(parts, "Student profile")
	case db.RoleAlumni:
		parts = append(parts, "Alumni profile")
	}

	if u.Course != "" {
		parts = append(parts, "Course: "+u.Course)
	}
	if u.GraduationYear != 0 {
		parts = append(parts, fmt.Sprintf("Graduation year: %d", u.GraduationYear))
	}
	if u.CurrentPosition != "" {
		parts = append(parts, "Current position: "+u.CurrentPosition)
	}
	if u.Company != "" {
		parts = append(parts, "Company: "+u.Company)
	}
	if len(u.Skills) > 0 {
		parts = append(parts, "Skills: "+strings.Join(u.Skills, ", "))
	}
	if len(u.Interests) > 0 {
		parts = append(parts, "Interests: "+strings.Join(u.Interests, ", "))
	}
	if u.Location != "" {
		parts = append(parts, "Location: "+u.Location)
	}
	if u.Bio != "" {
		parts = append(parts, "Bio: "+u.Bio)
	}

	return strings.Join(parts, ". ")
}

// CareerPathText builds the embedding input text for a career path.
func CareerPathText(p careers.CareerPath) string {
	return fmt.Sprintf("%s. %s. Recommended skills: %s",
		p.Name, p.Description, strings.Join(p.RecommendedSkills, ", "))
}
