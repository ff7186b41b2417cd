// Package store owns the raw in-memory collections behind the admin
// dashboard. Every mutation is a functional update applied under one
// mutex, so concurrent dashboard callbacks compose instead of clobbering
// each other's snapshots. Commits to grant-watched collections re-run
// the auto-grant engine before returning.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/lingohub/admind/internal/grant"
	"github.com/lingohub/admind/internal/models"
)

// State is a copy-out snapshot of every collection
type State struct {
	Users             []models.User
	UserStreaks       []models.UserStreak
	UserUsage         []models.UserUsage
	Posts             []models.Post
	Comments          []models.Comment
	PostLikes         []models.PostLike
	PostViews         []models.PostView
	Violations        []models.Violation
	ViolationRules    []models.ViolationRule
	CommunityRules    []models.CommunityRule
	Appeals           []models.Appeal
	Achievements      []models.Achievement
	UserAchievements  []models.UserAchievement
	BadgeLevels       []models.BadgeLevel
	Notifications     []models.Notification
	Exams             []models.Exam
	Subscriptions     []models.Subscription
	UserSubscriptions []models.UserSubscription
	Payments          []models.Payment
	Refunds           []models.Refund
	AuditLog          []models.AuditEntry
}

// Store holds all raw collections
type Store struct {
	mu    sync.Mutex
	state State
	now   func() time.Time
}

// New creates an empty store
func New() *Store {
	return &Store{now: time.Now}
}

// NewWithClock creates a store with a fixed clock, for tests
func NewWithClock(now func() time.Time) *Store {
	return &Store{now: now}
}

// Seed replaces the entire state, then re-evaluates grants once
func (s *Store) Seed(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = cloneState(state)
	slices.SortStableFunc(s.state.BadgeLevels, func(a, b models.BadgeLevel) int {
		return a.MinPoints - b.MinPoints
	})
	s.evaluateGrantsLocked()
}

// Snapshot returns a deep-enough copy of the current state; callers
// never alias the store's internal slices.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// UpdateUsers applies fn to the users collection. Watched: triggers
// grant re-evaluation.
func (s *Store) UpdateUsers(fn func([]models.User) []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Users = fn(s.state.Users)
	s.evaluateGrantsLocked()
}

// UpdateUserStreaks applies fn to the streak collection. Watched.
func (s *Store) UpdateUserStreaks(fn func([]models.UserStreak) []models.UserStreak) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UserStreaks = fn(s.state.UserStreaks)
	s.evaluateGrantsLocked()
}

// UpdateUserUsage applies fn to the usage collection. Watched.
func (s *Store) UpdateUserUsage(fn func([]models.UserUsage) []models.UserUsage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UserUsage = fn(s.state.UserUsage)
	s.evaluateGrantsLocked()
}

// UpdateAchievements applies fn to the achievements collection. Watched.
func (s *Store) UpdateAchievements(fn func([]models.Achievement) []models.Achievement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Achievements = fn(s.state.Achievements)
	s.evaluateGrantsLocked()
}

// UpdateUserAchievements applies fn to the grant collection. Watched.
func (s *Store) UpdateUserAchievements(fn func([]models.UserAchievement) []models.UserAchievement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UserAchievements = fn(s.state.UserAchievements)
	s.evaluateGrantsLocked()
}

// UpdatePosts applies fn to the posts collection
func (s *Store) UpdatePosts(fn func([]models.Post) []models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Posts = fn(s.state.Posts)
}

// UpdateComments applies fn to the comments collection
func (s *Store) UpdateComments(fn func([]models.Comment) []models.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Comments = fn(s.state.Comments)
}

// UpdatePostLikes applies fn to the like rows
func (s *Store) UpdatePostLikes(fn func([]models.PostLike) []models.PostLike) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PostLikes = fn(s.state.PostLikes)
}

// UpdatePostViews applies fn to the view rows
func (s *Store) UpdatePostViews(fn func([]models.PostView) []models.PostView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PostViews = fn(s.state.PostViews)
}

// UpdateModeration applies fn to violations and their rule joins in
// one pass, so cascades can capture ids before filtering.
func (s *Store) UpdateModeration(fn func([]models.Violation, []models.ViolationRule) ([]models.Violation, []models.ViolationRule)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Violations, s.state.ViolationRules = fn(s.state.Violations, s.state.ViolationRules)
}

// UpdateCommunityRules applies fn to the rule definitions
func (s *Store) UpdateCommunityRules(fn func([]models.CommunityRule) []models.CommunityRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CommunityRules = fn(s.state.CommunityRules)
}

// UpdateAppeals applies fn to the appeals collection
func (s *Store) UpdateAppeals(fn func([]models.Appeal) []models.Appeal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Appeals = fn(s.state.Appeals)
}

// UpdateBadgeLevels applies fn to the badge ladder. The ladder is
// re-sorted ascending by min_points on every commit; the lowest-badge
// enrichment fallback depends on that order.
func (s *Store) UpdateBadgeLevels(fn func([]models.BadgeLevel) []models.BadgeLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.BadgeLevels = fn(s.state.BadgeLevels)
	slices.SortStableFunc(s.state.BadgeLevels, func(a, b models.BadgeLevel) int {
		return a.MinPoints - b.MinPoints
	})
}

// UpdateNotifications applies fn to the notifications collection
func (s *Store) UpdateNotifications(fn func([]models.Notification) []models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Notifications = fn(s.state.Notifications)
}

// UpdateExams applies fn to the exams collection
func (s *Store) UpdateExams(fn func([]models.Exam) []models.Exam) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Exams = fn(s.state.Exams)
}

// UpdateSubscriptions applies fn to the plan collection
func (s *Store) UpdateSubscriptions(fn func([]models.Subscription) []models.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Subscriptions = fn(s.state.Subscriptions)
}

// UpdateUserSubscriptions applies fn to the user-subscription rows
func (s *Store) UpdateUserSubscriptions(fn func([]models.UserSubscription) []models.UserSubscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.UserSubscriptions = fn(s.state.UserSubscriptions)
}

// UpdatePayments applies fn to the payments collection
func (s *Store) UpdatePayments(fn func([]models.Payment) []models.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Payments = fn(s.state.Payments)
}

// UpdateRefunds applies fn to the refunds collection
func (s *Store) UpdateRefunds(fn func([]models.Refund) []models.Refund) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Refunds = fn(s.state.Refunds)
}

// AppendAudit appends one entry to the audit log
func (s *Store) AppendAudit(entry models.AuditEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AuditLog = append(s.state.AuditLog, entry)
}

// evaluateGrantsLocked runs the auto-grant engine against the latest
// committed state and batch-appends new grants. One append per pass,
// not one per grant. Caller must hold s.mu.
func (s *Store) evaluateGrantsLocked() {
	batch := grant.Evaluate(
		s.state.Users,
		s.state.Achievements,
		s.state.UserAchievements,
		s.state.UserStreaks,
		s.state.UserUsage,
		s.now(),
	)
	if len(batch) > 0 {
		s.state.UserAchievements = append(s.state.UserAchievements, batch...)
	}
}

func cloneState(in State) State {
	return State{
		Users:             slices.Clone(in.Users),
		UserStreaks:       slices.Clone(in.UserStreaks),
		UserUsage:         slices.Clone(in.UserUsage),
		Posts:             slices.Clone(in.Posts),
		Comments:          slices.Clone(in.Comments),
		PostLikes:         slices.Clone(in.PostLikes),
		PostViews:         slices.Clone(in.PostViews),
		Violations:        slices.Clone(in.Violations),
		ViolationRules:    slices.Clone(in.ViolationRules),
		CommunityRules:    slices.Clone(in.CommunityRules),
		Appeals:           slices.Clone(in.Appeals),
		Achievements:      slices.Clone(in.Achievements),
		UserAchievements:  slices.Clone(in.UserAchievements),
		BadgeLevels:       slices.Clone(in.BadgeLevels),
		Notifications:     slices.Clone(in.Notifications),
		Exams:             slices.Clone(in.Exams),
		Subscriptions:     slices.Clone(in.Subscriptions),
		UserSubscriptions: slices.Clone(in.UserSubscriptions),
		Payments:          slices.Clone(in.Payments),
		Refunds:           slices.Clone(in.Refunds),
		AuditLog:          slices.Clone(in.AuditLog),
	}
}
