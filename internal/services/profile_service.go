package services

import (
	"context"
	"log"
	"sync"

	"simconnect/internal/models/response_models"
	"simconnect/internal/repositories"
	"simconnect/pkg/utils"
)

// Level ladder. The top tier is fixed at 1000 points; the intermediate steps
// widen as they climb.
var levelThresholds = []struct {
	Points int
	Name   string
}{
	{0, "Novice"},
	{100, "Explorer"},
	{300, "Expert"},
	{600, "Master"},
	{1000, "Legend"},
}

// Milestone badges, awarded at most once each.
const (
	BadgeFirstSteps    = "First Steps"
	BadgeReviewer      = "Reviewer"
	BadgePathfinder    = "Pathfinder"
	BadgeWorldExplorer = "World Explorer"
	BadgeLegend        = "Legend"
)

// ActivityKind tells the milestone pass which kind of write just happened.
type ActivityKind string

const (
	ActivityReview   ActivityKind = "review"
	ActivityOperator ActivityKind = "operator"
	ActivityPlan     ActivityKind = "plan"
)

// ProfileUpdate is pushed to subscribers after every contribution, so
// collaborating surfaces do not need to poll the profile.
type ProfileUpdate struct {
	Points        int
	Level         string
	Contributions int
	Badges        []string
}

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context) (response_models.ProfileResponse, error)
	RecordActivity(ctx context.Context, kind ActivityKind)
	Subscribe() (<-chan ProfileUpdate, func())
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository

	mu      sync.Mutex
	subs    map[int]chan ProfileUpdate
	nextSub int
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
		subs:        make(map[int]chan ProfileUpdate),
	}
}

func (s *ProfileService) GetProfile(ctx context.Context) (response_models.ProfileResponse, error) {
	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}

	badges := profile.Badges
	if badges == nil {
		badges = []string{}
	}

	return response_models.ProfileResponse{
		Name:          profile.Name,
		Points:        profile.Points,
		Level:         LevelForPoints(profile.Points),
		PointsToNext:  pointsToNextLevel(profile.Points),
		Badges:        badges,
		Contributions: profile.Contributions,
	}, nil
}

// RecordActivity runs the milestone pass after a contribution has been
// persisted: award any badges the new tallies unlock, then notify
// subscribers. Badge failures are logged, not surfaced; the contribution
// itself already committed.
func (s *ProfileService) RecordActivity(ctx context.Context, kind ActivityKind) {
	profile, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		log.Printf("Milestone pass: could not read profile: %v", err)
		return
	}

	var earned []string
	if kind == ActivityReview {
		earned = append(earned, BadgeReviewer)
	}
	if profile.Contributions >= 1 {
		earned = append(earned, BadgeFirstSteps)
	}
	if profile.Contributions >= 5 {
		earned = append(earned, BadgePathfinder)
	}
	if profile.Contributions >= 10 {
		earned = append(earned, BadgeWorldExplorer)
	}
	if profile.Points >= 1000 {
		earned = append(earned, BadgeLegend)
	}

	for _, badge := range earned {
		if err := s.profileRepo.AppendBadge(ctx, badge); err != nil {
			log.Printf("Milestone pass: could not award badge %q: %v", badge, err)
		}
	}

	updated, err := s.profileRepo.GetProfile(ctx)
	if err != nil {
		log.Printf("Milestone pass: could not re-read profile: %v", err)
		return
	}
	s.notify(ProfileUpdate{
		Points:        updated.Points,
		Level:         LevelForPoints(updated.Points),
		Contributions: updated.Contributions,
		Badges:        updated.Badges,
	})
}

// Subscribe registers an observer for profile updates. The returned cancel
// function must be called to release the subscription. Slow subscribers drop
// updates rather than blocking the writer.
func (s *ProfileService) Subscribe() (<-chan ProfileUpdate, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan ProfileUpdate, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (s *ProfileService) notify(update ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- update:
		default:
		}
	}
}

// LevelForPoints maps a point total onto its tier label.
func LevelForPoints(points int) string {
	level := levelThresholds[0].Name
	for _, t := range levelThresholds {
		if points >= t.Points {
			level = t.Name
		}
	}
	return level
}

func pointsToNextLevel(points int) int {
	for _, t := range levelThresholds {
		if points < t.Points {
			return t.Points - points
		}
	}
	return 0
}
