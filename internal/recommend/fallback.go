package recommend

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/alumni-connect/internal/careers"
	"github.com/jonathan/alumni-connect/internal/db"
)

// Rule-based scoring weights for mentor matching.
const (
	courseMatchPoints   = 3
	locationMatchPoints = 1
	skillOverlapPoints  = 2
)

// ScoredMentor is a rule-scored mentor candidate.
type ScoredMentor struct {
	User  db.User
	Score int
}

// ScoredCareerPath is a rule-scored career path. Score is the raw count of
// recommended skills present in the user's skill set; ratio views of the
// same overlap are a presentation concern.
type ScoredCareerPath struct {
	Path          careers.CareerPath
	Score         int
	MatchedSkills []string
}

// normalizeAttr lowercases a free-text attribute and strips all whitespace,
// so "Computer Science" and "computerscience" compare equal.
func normalizeAttr(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		if !unicode.IsSpace(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// ScoreMentors ranks alumni candidates against a student profile using
// attribute overlap: +3 for a shared (or contained) course, +1 for an equal
// location, +2 per overlapping skill (exact, case-sensitive). Every candidate
// is scored; ties keep input order; at most limit results are returned.
func ScoreMentors(query *db.User, alumni []db.User, limit int) []ScoredMentor {
	querySkills := make(map[string]struct{}, len(query.Skills))
	for _, s := range query.Skills {
		querySkills[s] = struct{}{}
	}
	queryCourse := normalizeAttr(query.Course)
	queryLocation := normalizeAttr(query.Location)

	scored := make([]ScoredMentor, 0, len(alumni))
	for _, alum := range alumni {
		score := 0

		course := normalizeAttr(alum.Course)
		if queryCourse != "" && course != "" &&
			(course == queryCourse ||
				strings.Contains(course, queryCourse) ||
				strings.Contains(queryCourse, course)) {
			score += courseMatchPoints
		}

		location := normalizeAttr(alum.Location)
		if queryLocation != "" && location != "" && location == queryLocation {
			score += locationMatchPoints
		}

		for _, s := range alum.Skills {
			if _, ok := querySkills[s]; ok {
				score += skillOverlapPoints
			}
		}

		scored = append(scored, ScoredMentor{User: alum, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// ScoreCareerPaths ranks career paths by the number of recommended skills the
// user already has (exact, case-sensitive match). Ties keep catalog order;
// at most limit results are returned.
func ScoreCareerPaths(query *db.User, paths []careers.CareerPath, limit int) []ScoredCareerPath {
	userSkills := make(map[string]struct{}, len(query.Skills))
	for _, s := range query.Skills {
		userSkills[s] = struct{}{}
	}

	scored := make([]ScoredCareerPath, 0, len(paths))
	for _, path := range paths {
		var matched []string
		for _, s := range path.RecommendedSkills {
			if _, ok := userSkills[s]; ok {
				matched = append(matched, s)
			}
		}
		scored = append(scored, ScoredCareerPath{
			Path:          path,
			Score:         len(matched),
			MatchedSkills: matched,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
