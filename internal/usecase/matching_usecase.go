package usecase

import (
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/jobmatch/internal/config"
	"github.com/fadilmartias/jobmatch/internal/model"
	"github.com/fadilmartias/jobmatch/internal/service"
	"github.com/google/uuid"
)

// Store interfaces keep the pipeline testable without a database; the GORM
// repositories satisfy them.
type UserStore interface {
	FindUserByID(id string) (*model.User, error)
	ActiveUsers() ([]model.User, error)
}

type JobStore interface {
	ActiveJobs() ([]model.Job, error)
}

type ApplicationStore interface {
	RecentByUser(userID uuid.UUID, since time.Time) ([]model.Application, error)
}

type RecommendationStore interface {
	ReplaceForUser(userID uuid.UUID, recs []model.Recommendation) error
	FindByUser(userID uuid.UUID) ([]model.Recommendation, error)
}

type MatchingUsecase struct {
	userStore UserStore
	jobStore  JobStore
	appStore  ApplicationStore
	recStore  RecommendationStore

	scoring    *service.ScoringEngine
	dedup      *service.DuplicateControlService
	selection  *service.SectionSelectionService
	supplement *service.SupplementLogicService
	cfg        *config.MatchingConfig

	mu sync.Mutex // scoring engine reuses column buffers
}

func NewMatchingUsecase(
	userStore UserStore,
	jobStore JobStore,
	appStore ApplicationStore,
	recStore RecommendationStore,
	cfg *config.MatchingConfig,
) *MatchingUsecase {
	return &MatchingUsecase{
		userStore:  userStore,
		jobStore:   jobStore,
		appStore:   appStore,
		recStore:   recStore,
		scoring:    service.NewScoringEngine(cfg),
		dedup:      service.NewDuplicateControlService(cfg.DedupWindow),
		selection:  service.NewSectionSelectionService(cfg),
		supplement: service.NewSupplementLogicService(cfg),
		cfg:        cfg,
	}
}

// Assemble runs the whole per-user pipeline: score, dedupe by job id, drop
// recently-applied employers, bucket into sections, pad with fallbacks, then
// sort the flat result score-desc and truncate to target. The returned
// assignment only contains jobs that survived truncation.
func (uc *MatchingUsecase) Assemble(prefs service.Preferences, jobs []model.Job, apps []model.Application, now time.Time) (*service.Assignment, []service.Candidate) {
	uc.mu.Lock()
	cands := uc.scoring.ScoreAll(jobs, prefs, now)
	uc.mu.Unlock()

	cands = dedupeByID(cands)
	blocked := uc.dedup.RecentEmployers(apps, now)
	cands = uc.dedup.Filter(cands, blocked)

	assignment := uc.selection.Assign(cands, prefs, now)
	uc.supplement.Supplement(assignment, prefs, uc.cfg.TargetCount, now)

	flat := assignment.Flatten()
	sort.SliceStable(flat, func(i, j int) bool {
		return flat[i].Score > flat[j].Score
	})
	if len(flat) > uc.cfg.TargetCount {
		flat = flat[:uc.cfg.TargetCount]
	}
	// potongan skor-desc bisa membuang kategori minoritas; tegakkan minimum
	// keragaman pada hasil akhir, bukan cuma saat section assignment
	flat = uc.selection.RebalanceCategories(flat, cands)

	kept := make(map[string]struct{}, len(flat))
	for _, c := range flat {
		kept[c.JobID] = struct{}{}
	}
	for si := range assignment.Sections {
		jobs := assignment.Sections[si].Jobs[:0]
		for _, j := range assignment.Sections[si].Jobs {
			if _, ok := kept[j.JobID]; ok {
				jobs = append(jobs, j)
			}
		}
		assignment.Sections[si].Jobs = jobs
	}

	// kandidat hasil rebalance belum terdaftar di section manapun
	if other := assignment.Bucket(config.SectionOther); other != nil {
		sectionIDs := assignment.JobIDs()
		for _, c := range flat {
			if _, ok := sectionIDs[c.JobID]; !ok {
				other.Jobs = append(other.Jobs, c)
			}
		}
	}
	return assignment, flat
}

// BuildForUser assembles one user's result and converts it to rows ready for
// persistence. Fails only on malformed input (missing id, broken preferences);
// an empty candidate pool yields an all-fallback result.
func (uc *MatchingUsecase) BuildForUser(user *model.User, jobs []model.Job, batchRunID uuid.UUID, now time.Time) ([]model.Recommendation, *service.Assignment, error) {
	if user.ID == uuid.Nil {
		return nil, nil, ErrMalformedUser
	}
	prefs, err := service.ParsePreferences(user.Preferences)
	if err != nil {
		return nil, nil, err
	}

	apps, err := uc.appStore.RecentByUser(user.ID, now.Add(-uc.cfg.DedupWindow))
	if err != nil {
		return nil, nil, err
	}

	assignment, flat := uc.Assemble(prefs, jobs, apps, now)

	position := make(map[string]int, len(flat))
	for i, c := range flat {
		position[c.JobID] = i
	}

	recs := make([]model.Recommendation, 0, len(flat))
	for _, sec := range assignment.Sections {
		for _, j := range sec.Jobs {
			recs = append(recs, model.Recommendation{
				UserID:     user.ID,
				BatchRunID: batchRunID,
				JobKey:     j.JobID,
				Section:    sec.Name,
				Position:   position[j.JobID],
				Score:      j.Score,
				Category:   j.Category,
				Location:   j.Location,
				IsFallback: j.IsFallback,
				CreatedAt:  now,
			})
		}
	}
	return recs, assignment, nil
}

// RefreshUser reruns the pipeline for a single user on demand and persists
// the result, outside any batch run.
func (uc *MatchingUsecase) RefreshUser(userID string) (*service.Assignment, error) {
	user, err := uc.userStore.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	jobs, err := uc.jobStore.ActiveJobs()
	if err != nil {
		return nil, err
	}
	recs, assignment, err := uc.BuildForUser(user, jobs, uuid.Nil, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.recStore.ReplaceForUser(user.ID, recs); err != nil {
		return nil, err
	}
	return assignment, nil
}

// GetStored returns the persisted result grouped back into section order.
func (uc *MatchingUsecase) GetStored(userID string) ([]model.Recommendation, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	return uc.recStore.FindByUser(uid)
}

// SectionOrder exposes the configured section names for response shaping.
func (uc *MatchingUsecase) SectionOrder() []string {
	names := make([]string, len(uc.cfg.Sections))
	for i, s := range uc.cfg.Sections {
		names[i] = s.Name
	}
	return names
}

// dedupeByID drops duplicate job ids, last occurrence wins.
func dedupeByID(cands []service.Candidate) []service.Candidate {
	seen := make(map[string]int, len(cands))
	out := make([]service.Candidate, 0, len(cands))
	for _, c := range cands {
		if idx, ok := seen[c.JobID]; ok {
			out[idx] = c
			continue
		}
		seen[c.JobID] = len(out)
		out = append(out, c)
	}
	return out
}
