package recommend

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/alumni-connect/internal/careers"
	"github.com/jonathan/alumni-connect/internal/db"
	"github.com/jonathan/alumni-connect/internal/embedding"
)

// fakeStore is an in-memory ProfileStore recording embedding write-backs.
// getUserErr and listErr, when set, simulate store outages.
type fakeStore struct {
	mu         sync.Mutex
	users      map[uuid.UUID]*db.User
	alumni     []db.User
	saved      map[uuid.UUID][]float64
	getUserErr error
	listErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users: make(map[uuid.UUID]*db.User),
		saved: make(map[uuid.UUID][]float64),
	}
}

func (s *fakeStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	if s.getUserErr != nil {
		return nil, s.getUserErr
	}
	u, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *fakeStore) ListUsersByRole(_ context.Context, role string) ([]db.User, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []db.User
	for _, u := range s.alumni {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (s *fakeStore) SaveProfileEmbedding(_ context.Context, userID uuid.UUID, vector []float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved[userID] = vector
	return nil
}

// fakeProvider returns canned vectors keyed by input text and counts calls.
type fakeProvider struct {
	mu         sync.Mutex
	configured bool
	vectors    map[string][]float64
	calls      map[string]int
}

func newFakeProvider(configured bool) *fakeProvider {
	return &fakeProvider{
		configured: configured,
		vectors:    make(map[string][]float64),
		calls:      make(map[string]int),
	}
}

func (p *fakeProvider) Configured() bool { return p.configured }

func (p *fakeProvider) Embed(_ context.Context, text string) embedding.Result {
	p.mu.Lock()
	p.calls[text]++
	vector, ok := p.vectors[text]
	p.mu.Unlock()

	if !p.configured {
		return embedding.Result{Reason: "provider not configured"}
	}
	if !ok {
		return embedding.Result{Reason: "no canned vector"}
	}
	return embedding.Result{Vector: vector}
}

func (p *fakeProvider) callCount(text string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[text]
}

func alumniUser(name string, vector []float64) db.User {
	return db.User{
		ID:               uuid.New(),
		Name:             name,
		Role:             db.RoleAlumni,
		ProfileEmbedding: db.Vector(vector),
	}
}

func TestRecommendMentors_Identity(t *testing.T) {
	engine := NewEngine(newFakeStore(), newFakeProvider(false), nil)

	t.Run("nil user ID is unauthenticated", func(t *testing.T) {
		_, err := engine.RecommendMentors(context.Background(), uuid.Nil)
		var unauth *ErrUnauthenticated
		require.ErrorAs(t, err, &unauth)
	})

	t.Run("unknown user ID is profile not found", func(t *testing.T) {
		missing := uuid.New()
		_, err := engine.RecommendMentors(context.Background(), missing)
		var notFound *ErrProfileNotFound
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, missing, notFound.UserID)
	})
}

func TestRecommendMentors_StoreFailureDegrades(t *testing.T) {
	t.Run("requester load failure", func(t *testing.T) {
		store := newFakeStore()
		store.getUserErr = errors.New("connection reset by peer")

		engine := NewEngine(store, newFakeProvider(false), nil)
		result, err := engine.RecommendMentors(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, result.Recommendations)
		assert.Equal(t, "Unable to generate mentor recommendations at the moment", result.Message)
	})

	t.Run("candidate list failure", func(t *testing.T) {
		store := newFakeStore()
		student := &db.User{ID: uuid.New(), Role: db.RoleStudent}
		store.users[student.ID] = student
		store.listErr = errors.New("connection reset by peer")

		engine := NewEngine(store, newFakeProvider(false), nil)
		result, err := engine.RecommendMentors(context.Background(), student.ID)
		require.NoError(t, err)
		assert.Empty(t, result.Recommendations)
		assert.Equal(t, "Unable to generate mentor recommendations at the moment", result.Message)
	})
}

func TestRecommendMentors_NoAlumni(t *testing.T) {
	store := newFakeStore()
	student := &db.User{ID: uuid.New(), Role: db.RoleStudent}
	store.users[student.ID] = student

	engine := NewEngine(store, newFakeProvider(false), nil)
	result, err := engine.RecommendMentors(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Recommendations)
	assert.False(t, result.RuleBased)
	assert.Equal(t, "No alumni mentors available yet", result.Message)
}

func TestRecommendMentors_RuleBasedFallback(t *testing.T) {
	store := newFakeStore()
	student := &db.User{
		ID:     uuid.New(),
		Role:   db.RoleStudent,
		Course: "Computer Science",
		Skills: db.StringArray{"Python"},
	}
	store.users[student.ID] = student
	store.alumni = []db.User{
		{ID: uuid.New(), Name: "weak", Role: db.RoleAlumni},
		{ID: uuid.New(), Name: "strong", Role: db.RoleAlumni, Course: "Computer Science", Skills: db.StringArray{"Python"}},
	}

	engine := NewEngine(store, newFakeProvider(false), nil)
	result, err := engine.RecommendMentors(context.Background(), student.ID)
	require.NoError(t, err)

	assert.True(t, result.RuleBased)
	assert.Equal(t, "Mentor recommendations generated using rule-based matching (embeddings not configured)", result.Message)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "strong", result.Recommendations[0].Mentor.Name)
	assert.Equal(t, 5.0, result.Recommendations[0].Score)
	assert.NotEmpty(t, result.Recommendations[0].Reason)
	assert.Empty(t, store.saved, "fallback mode must not write embeddings")
}

func TestRecommendMentors_EmbeddingPath(t *testing.T) {
	store := newFakeStore()
	student := &db.User{ID: uuid.New(), Role: db.RoleStudent, Course: "CS"}
	store.users[student.ID] = student

	cached := alumniUser("cached", []float64{1, 0})
	uncached := alumniUser("uncached", nil)
	uncached.Company = "Acme"
	broken := alumniUser("broken", nil)
	broken.Bio = "no vector available"
	store.alumni = []db.User{cached, uncached, broken}

	provider := newFakeProvider(true)
	provider.vectors[ProfileText(student)] = []float64{1, 0.2}
	provider.vectors[ProfileText(&uncached)] = []float64{0.5, 0.5}
	// broken's profile text has no canned vector, so it is excluded

	engine := NewEngine(store, provider, nil)
	result, err := engine.RecommendMentors(context.Background(), student.ID)
	require.NoError(t, err)

	assert.False(t, result.RuleBased)
	assert.Equal(t, "Mentor recommendations generated successfully", result.Message)
	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, "cached", result.Recommendations[0].Mentor.Name)
	assert.Equal(t, "uncached", result.Recommendations[1].Mentor.Name)
	assert.Greater(t, result.Recommendations[0].Score, result.Recommendations[1].Score)

	// cached candidate must not be re-embedded
	assert.Equal(t, 0, provider.callCount(ProfileText(&cached)))
	// freshly computed vector is written back, cached one is not rewritten
	assert.Equal(t, []float64{0.5, 0.5}, store.saved[uncached.ID])
	_, rewrote := store.saved[cached.ID]
	assert.False(t, rewrote)
}

func TestRecommendMentors_NoValidCandidates(t *testing.T) {
	store := newFakeStore()
	student := &db.User{ID: uuid.New(), Role: db.RoleStudent, Course: "CS"}
	store.users[student.ID] = student
	store.alumni = []db.User{alumniUser("no-vector", nil)}

	provider := newFakeProvider(true)
	provider.vectors[ProfileText(student)] = []float64{1, 0}

	engine := NewEngine(store, provider, nil)
	result, err := engine.RecommendMentors(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, "No mentors with valid embeddings available yet", result.Message)
}

func TestRecommendMentors_TruncatesToTopTen(t *testing.T) {
	store := newFakeStore()
	student := &db.User{ID: uuid.New(), Role: db.RoleStudent, Course: "CS"}
	store.users[student.ID] = student
	for i := 0; i < TopMentors+3; i++ {
		store.alumni = append(store.alumni, alumniUser("a", []float64{1, float64(i) / 100}))
	}

	provider := newFakeProvider(true)
	provider.vectors[ProfileText(student)] = []float64{1, 0}

	engine := NewEngine(store, provider, nil)
	result, err := engine.RecommendMentors(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Len(t, result.Recommendations, TopMentors)
}

func TestRecommendCareerPaths(t *testing.T) {
	paths := []careers.CareerPath{
		{Key: "backend", Name: "Backend Engineer", Description: "Servers.", RecommendedSkills: []string{"Go", "SQL"}},
		{Key: "frontend", Name: "Frontend Engineer", Description: "Browsers.", RecommendedSkills: []string{"React", "CSS"}},
	}

	t.Run("unauthenticated", func(t *testing.T) {
		engine := NewEngine(newFakeStore(), newFakeProvider(false), paths)
		_, err := engine.RecommendCareerPaths(context.Background(), uuid.Nil)
		var unauth *ErrUnauthenticated
		require.ErrorAs(t, err, &unauth)
	})

	t.Run("store failure degrades to empty result", func(t *testing.T) {
		store := newFakeStore()
		store.getUserErr = errors.New("connection reset by peer")

		engine := NewEngine(store, newFakeProvider(false), paths)
		result, err := engine.RecommendCareerPaths(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Empty(t, result.Recommendations)
		assert.False(t, result.RuleBased)
		assert.Equal(t, "Unable to generate career recommendations at the moment", result.Message)
	})

	t.Run("rule-based fallback computes match ratio", func(t *testing.T) {
		store := newFakeStore()
		student := &db.User{ID: uuid.New(), Role: db.RoleStudent, Skills: db.StringArray{"Go"}}
		store.users[student.ID] = student

		engine := NewEngine(store, newFakeProvider(false), paths)
		result, err := engine.RecommendCareerPaths(context.Background(), student.ID)
		require.NoError(t, err)

		assert.True(t, result.RuleBased)
		require.Len(t, result.Recommendations, 2)
		top := result.Recommendations[0]
		assert.Equal(t, "backend", top.Key)
		assert.Equal(t, 1.0, top.Score)
		assert.Equal(t, []string{"Go"}, top.MatchedSkills)
		assert.InDelta(t, 0.5, top.MatchRatio, 1e-9)
	})

	t.Run("embedding path ranks and caches path vectors", func(t *testing.T) {
		store := newFakeStore()
		student := &db.User{ID: uuid.New(), Role: db.RoleStudent, Skills: db.StringArray{"Go"}}
		store.users[student.ID] = student

		provider := newFakeProvider(true)
		provider.vectors[ProfileText(student)] = []float64{1, 0}
		provider.vectors[CareerPathText(paths[0])] = []float64{0.2, 1}
		provider.vectors[CareerPathText(paths[1])] = []float64{1, 0.1}

		engine := NewEngine(store, provider, paths)
		result, err := engine.RecommendCareerPaths(context.Background(), student.ID)
		require.NoError(t, err)

		assert.False(t, result.RuleBased)
		require.Len(t, result.Recommendations, 2)
		assert.Equal(t, "frontend", result.Recommendations[0].Key)
		assert.Equal(t, "backend", result.Recommendations[1].Key)

		// second request reuses the in-memory path vectors
		_, err = engine.RecommendCareerPaths(context.Background(), student.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, provider.callCount(CareerPathText(paths[0])))
		assert.Equal(t, 1, provider.callCount(CareerPathText(paths[1])))
	})

	t.Run("no usable path vectors degrades to empty result", func(t *testing.T) {
		store := newFakeStore()
		student := &db.User{ID: uuid.New(), Role: db.RoleStudent}
		store.users[student.ID] = student

		provider := newFakeProvider(true)
		provider.vectors[ProfileText(student)] = []float64{1, 0}
		// no canned vectors for any career path

		engine := NewEngine(store, provider, paths)
		result, err := engine.RecommendCareerPaths(context.Background(), student.ID)
		require.NoError(t, err)
		assert.Empty(t, result.Recommendations)
		assert.Equal(t, "Unable to generate career recommendations at the moment", result.Message)
	})
}

func TestErrorsUnwrap(t *testing.T) {
	wrapped := errors.New("wrapped")
	assert.False(t, errors.As(wrapped, new(*ErrUnauthenticated)))
	assert.Equal(t, "no authenticated user", (&ErrUnauthenticated{}).Error())

	id := uuid.New()
	assert.Contains(t, (&ErrProfileNotFound{UserID: id}).Error(), id.String())
}
