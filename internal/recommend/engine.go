package recommend

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/alumni-connect/internal/careers"
	"github.com/jonathan/alumni-connect/internal/db"
	"github.com/jonathan/alumni-connect/internal/embedding"
	"github.com/jonathan/alumni-connect/internal/similarity"
)

const (
	// TopMentors is the maximum number of mentor recommendations returned.
	TopMentors = 10
	// TopCareerPaths is the maximum number of career-path recommendations returned.
	TopCareerPaths = 5

	// embedConcurrency bounds per-candidate embedding fan-out so a large
	// alumni set does not overwhelm the provider.
	embedConcurrency = 4
)

// Reason tags attached to rule-based results.
const (
	mentorRuleReason = "Rule-based match (course/location/skills overlap)"
	careerRuleReason = "Rule-based match based on overlapping skills"
)

// ProfileStore is the narrow view of the user store the engine needs.
// SaveProfileEmbedding is the engine's only write.
type ProfileStore interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]db.User, error)
	SaveProfileEmbedding(ctx context.Context, userID uuid.UUID, vector []float64) error
}

// Engine orchestrates mentor and career-path recommendations. It prefers
// embedding-based ranking and silently degrades to rule-based scoring when
// embeddings cannot be produced. Career-path vectors are cached in memory
// for the life of the process; profile vectors are cached on the user record.
type Engine struct {
	store    ProfileStore
	provider embedding.Provider
	paths    []careers.CareerPath

	mu          sync.RWMutex
	pathVectors map[string][]float64
}

// NewEngine creates a recommendation engine over the given collaborators.
func NewEngine(store ProfileStore, provider embedding.Provider, paths []careers.CareerPath) *Engine {
	return &Engine{
		store:       store,
		provider:    provider,
		paths:       paths,
		pathVectors: make(map[string][]float64),
	}
}

// MentorRecommendation is one ranked mentor candidate.
type MentorRecommendation struct {
	Mentor db.User `json:"mentor"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason,omitempty"`
}

// MentorResult is the outcome of a mentor recommendation request.
type MentorResult struct {
	Recommendations []MentorRecommendation `json:"recommendations"`
	RuleBased       bool                   `json:"rule_based"`
	Message         string                 `json:"message"`
}

// CareerPathRecommendation is one ranked career path. Score is the cosine
// similarity on the embedding path and the raw skill-overlap count on the
// rule-based path; MatchRatio is the derived overlap fraction for display.
type CareerPathRecommendation struct {
	careers.CareerPath
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills,omitempty"`
	MatchRatio    float64  `json:"match_ratio,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

// CareerPathResult is the outcome of a career-path recommendation request.
type CareerPathResult struct {
	Recommendations []CareerPathRecommendation `json:"recommendations"`
	RuleBased       bool                       `json:"rule_based"`
	Message         string                     `json:"message"`
}

// loadRequester resolves the requesting identity to a stored profile.
func (e *Engine) loadRequester(ctx context.Context, userID uuid.UUID) (*db.User, error) {
	if userID == uuid.Nil {
		return nil, &ErrUnauthenticated{}
	}
	user, err := e.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load requesting user: %w", err)
	}
	if user == nil {
		return nil, &ErrProfileNotFound{UserID: userID}
	}
	return user, nil
}

// identityError reports whether err must surface to the caller: the requester
// is unauthenticated or has no stored profile. Every other failure inside the
// two recommendation operations degrades instead of propagating.
func identityError(err error) bool {
	var unauthenticated *ErrUnauthenticated
	var notFound *ErrProfileNotFound
	return errors.As(err, &unauthenticated) || errors.As(err, &notFound)
}

// RecommendMentors returns up to TopMentors ranked alumni mentors for the
// given user. Identity failures are returned as errors; every embedding or
// store failure degrades silently to rule-based, partial, or empty results.
func (e *Engine) RecommendMentors(ctx context.Context, userID uuid.UUID) (*MentorResult, error) {
	user, err := e.loadRequester(ctx, userID)
	if err != nil {
		if identityError(err) {
			return nil, err
		}
		log.Printf("[recommend] degrading mentor recommendations: %v", err)
		return &MentorResult{
			Recommendations: []MentorRecommendation{},
			Message:         "Unable to generate mentor recommendations at the moment",
		}, nil
	}

	queryRes := e.provider.Embed(ctx, ProfileText(user))

	alumni, err := e.store.ListUsersByRole(ctx, db.RoleAlumni)
	if err != nil {
		log.Printf("[recommend] degrading mentor recommendations: failed to load alumni candidates: %v", err)
		return &MentorResult{
			Recommendations: []MentorRecommendation{},
			Message:         "Unable to generate mentor recommendations at the moment",
		}, nil
	}
	if len(alumni) == 0 {
		return &MentorResult{
			Recommendations: []MentorRecommendation{},
			Message:         "No alumni mentors available yet",
		}, nil
	}

	if !queryRes.Available() {
		log.Printf("[recommend] embeddings unavailable (%s); using rule-based mentor matching", queryRes.Reason)
		scored := ScoreMentors(user, alumni, TopMentors)
		recs := make([]MentorRecommendation, 0, len(scored))
		for _, s := range scored {
			recs = append(recs, MentorRecommendation{
				Mentor: s.User,
				Score:  float64(s.Score),
				Reason: mentorRuleReason,
			})
		}
		return &MentorResult{
			Recommendations: recs,
			RuleBased:       true,
			Message:         "Mentor recommendations generated using rule-based matching (embeddings not configured)",
		}, nil
	}

	// Gather candidate vectors: cached ones are used as-is, missing ones are
	// produced with bounded fan-out. Candidates whose vector remains
	// unobtainable are excluded from ranking, not penalized.
	vectors := make([][]float64, len(alumni))
	var g errgroup.Group
	g.SetLimit(embedConcurrency)
	for i := range alumni {
		if len(alumni[i].ProfileEmbedding) > 0 {
			vectors[i] = alumni[i].ProfileEmbedding
			continue
		}
		g.Go(func() error {
			res := e.provider.Embed(ctx, ProfileText(&alumni[i]))
			if res.Available() {
				vectors[i] = res.Vector
			} else {
				log.Printf("[recommend] no embedding for candidate %s: %s", alumni[i].ID, res.Reason)
			}
			return nil
		})
	}
	_ = g.Wait()

	type cacheFill struct {
		userID uuid.UUID
		vector []float64
	}
	var fills []cacheFill
	candidates := make([]similarity.Candidate, 0, len(alumni))
	byID := make(map[string]*db.User, len(alumni))
	for i := range alumni {
		if len(vectors[i]) == 0 {
			continue
		}
		id := alumni[i].ID.String()
		candidates = append(candidates, similarity.Candidate{ID: id, Vector: vectors[i]})
		byID[id] = &alumni[i]
		if len(alumni[i].ProfileEmbedding) == 0 {
			fills = append(fills, cacheFill{userID: alumni[i].ID, vector: vectors[i]})
		}
	}

	if len(candidates) == 0 {
		return &MentorResult{
			Recommendations: []MentorRecommendation{},
			Message:         "No mentors with valid embeddings available yet",
		}, nil
	}

	ranked := similarity.Rank(queryRes.Vector, candidates)
	if len(ranked) > TopMentors {
		ranked = ranked[:TopMentors]
	}

	recs := make([]MentorRecommendation, 0, len(ranked))
	for _, r := range ranked {
		recs = append(recs, MentorRecommendation{
			Mentor: *byID[r.ID],
			Score:  r.Score,
		})
	}

	// Write-back of freshly computed vectors happens after ranking so
	// persistence latency never delays the ranking itself. Failures are
	// logged and the vector is simply recomputed next time.
	for _, f := range fills {
		if err := e.store.SaveProfileEmbedding(ctx, f.userID, f.vector); err != nil {
			log.Printf("[recommend] failed to cache embedding for %s: %v", f.userID, err)
		}
	}

	return &MentorResult{
		Recommendations: recs,
		Message:         "Mentor recommendations generated successfully",
	}, nil
}

// RecommendCareerPaths returns up to TopCareerPaths ranked career paths for
// the given user. Identity failures are returned as errors; anything else
// degrades to an empty result with an explanatory message.
func (e *Engine) RecommendCareerPaths(ctx context.Context, userID uuid.UUID) (*CareerPathResult, error) {
	user, err := e.loadRequester(ctx, userID)
	if err != nil {
		if identityError(err) {
			return nil, err
		}
		log.Printf("[recommend] degrading career recommendations: %v", err)
		return &CareerPathResult{
			Recommendations: []CareerPathRecommendation{},
			Message:         "Unable to generate career recommendations at the moment",
		}, nil
	}

	queryRes := e.provider.Embed(ctx, ProfileText(user))

	if !queryRes.Available() {
		log.Printf("[recommend] embeddings unavailable (%s); using rule-based career matching", queryRes.Reason)
		scored := ScoreCareerPaths(user, e.paths, TopCareerPaths)
		recs := make([]CareerPathRecommendation, 0, len(scored))
		for _, s := range scored {
			rec := CareerPathRecommendation{
				CareerPath:    s.Path,
				Score:         float64(s.Score),
				MatchedSkills: s.MatchedSkills,
				Reason:        careerRuleReason,
			}
			if n := len(s.Path.RecommendedSkills); n > 0 {
				rec.MatchRatio = float64(s.Score) / float64(n)
			}
			recs = append(recs, rec)
		}
		return &CareerPathResult{
			Recommendations: recs,
			RuleBased:       true,
			Message:         "Career path recommendations generated using rule-based matching (embeddings not configured)",
		}, nil
	}

	candidates := make([]similarity.Candidate, 0, len(e.paths))
	byKey := make(map[string]careers.CareerPath, len(e.paths))
	for _, path := range e.paths {
		vector := e.pathVector(ctx, path)
		if len(vector) == 0 {
			continue
		}
		candidates = append(candidates, similarity.Candidate{ID: path.Key, Vector: vector})
		byKey[path.Key] = path
	}

	if len(candidates) == 0 {
		return &CareerPathResult{
			Recommendations: []CareerPathRecommendation{},
			Message:         "Unable to generate career recommendations at the moment",
		}, nil
	}

	ranked := similarity.Rank(queryRes.Vector, candidates)
	if len(ranked) > TopCareerPaths {
		ranked = ranked[:TopCareerPaths]
	}

	recs := make([]CareerPathRecommendation, 0, len(ranked))
	for _, r := range ranked {
		recs = append(recs, CareerPathRecommendation{
			CareerPath: byKey[r.ID],
			Score:      r.Score,
		})
	}

	return &CareerPathResult{
		Recommendations: recs,
		Message:         "Career path recommendations generated successfully",
	}, nil
}

// pathVector returns the cached embedding for a career path, computing and
// caching it on first use. Concurrent fills of the same key race benignly:
// recomputation is idempotent, last write wins.
func (e *Engine) pathVector(ctx context.Context, path careers.CareerPath) []float64 {
	e.mu.RLock()
	vector, ok := e.pathVectors[path.Key]
	e.mu.RUnlock()
	if ok {
		return vector
	}

	res := e.provider.Embed(ctx, CareerPathText(path))
	if !res.Available() {
		log.Printf("[recommend] no embedding for career path %s: %s", path.Key, res.Reason)
		return nil
	}

	e.mu.Lock()
	e.pathVectors[path.Key] = res.Vector
	e.mu.Unlock()
	return res.Vector
}
