package handler

import (
	"log"

	"edushare/model"
	"edushare/repository"
	"edushare/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	userRepo       *repository.UserRepo
	notesRepo      *repository.NotesRepo
	ratingsRepo    *repository.RatingsRepo
	categoriesRepo *repository.CategoriesRepo
	reputationRepo *repository.ReputationRepo
}

func NewStatsHandler(
	userRepo *repository.UserRepo,
	notesRepo *repository.NotesRepo,
	ratingsRepo *repository.RatingsRepo,
	categoriesRepo *repository.CategoriesRepo,
	reputationRepo *repository.ReputationRepo,
) *StatsHandler {
	return &StatsHandler{
		userRepo:       userRepo,
		notesRepo:      notesRepo,
		ratingsRepo:    ratingsRepo,
		categoriesRepo: categoriesRepo,
		reputationRepo: reputationRepo,
	}
}

const dashboardListSize = 5

// GetDashboard builds the public site overview: headline counts, notes
// per category, top and recent public notes, and the top users by
// reputation.
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	var stats model.DashboardStats
	var err error

	if stats.NoteCount, err = h.notesRepo.CountNotes(ctx); err != nil {
		log.Printf("Error counting notes: %v", err)
		utils.InternalError(c, "Failed to build dashboard")
		return
	}
	if stats.CategoryCount, err = h.categoriesRepo.CountCategories(ctx); err != nil {
		log.Printf("Error counting categories: %v", err)
		utils.InternalError(c, "Failed to build dashboard")
		return
	}
	if stats.UserCount, err = h.userRepo.CountActiveUsers(ctx); err != nil {
		log.Printf("Error counting users: %v", err)
		utils.InternalError(c, "Failed to build dashboard")
		return
	}

	categories, err := h.categoriesRepo.GetAllCategories(ctx)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		utils.InternalError(c, "Failed to build dashboard")
		return
	}
	counts, err := h.notesRepo.CountNotesByCategory(ctx)
	if err != nil {
		log.Printf("Error counting notes by category: %v", err)
		utils.InternalError(c, "Failed to build dashboard")
		return
	}
	stats.NotesPerCategory = make([]model.CategoryNoteCount, 0, len(categories))
	for _, category := range categories {
		stats.NotesPerCategory = append(stats.NotesPerCategory, model.CategoryNoteCount{
			Name:  category.Name,
			Count: counts[category.ID],
		})
	}

	if stats.TopNotes, err = h.notesRepo.TopRatedPublicNotes(ctx, dashboardListSize); err != nil {
		log.Printf("Error listing top notes: %v", err)
		utils.InternalError(c, "Failed to build dashboard")
		return
	}
	if stats.RecentNotes, err = h.notesRepo.RecentPublicNotes(ctx, dashboardListSize); err != nil {
		log.Printf("Error listing recent notes: %v", err)
		utils.InternalError(c, "Failed to build dashboard")
		return
	}

	topUsers, err := h.userRepo.TopByReputation(ctx, dashboardListSize)
	if err != nil {
		log.Printf("Error listing top users: %v", err)
		utils.InternalError(c, "Failed to build dashboard")
		return
	}
	stats.Leaderboard = make([]model.LeaderboardEntry, 0, len(topUsers))
	for _, user := range topUsers {
		stats.Leaderboard = append(stats.Leaderboard, model.LeaderboardEntry{
			Username:   user.Username,
			UserType:   user.UserType,
			Reputation: user.Reputation,
		})
	}

	utils.Success(c, stats)
}

// GetUploaderStats summarizes the authenticated user's notes, ratings
// received and reputation state.
func (h *StatsHandler) GetUploaderStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	user, err := h.userRepo.FindUser(ctx, userID)
	if err != nil {
		log.Printf("Error fetching user %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch user details")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	var stats model.UploaderStats

	stats.NotesStats.Total, err = h.notesRepo.CountUserNotes(ctx, userID)
	if err != nil {
		log.Printf("Error counting notes: %v", err)
		utils.InternalError(c, "Failed to count notes")
		return
	}

	notes, err := h.notesRepo.GetUserNotes(ctx, userID)
	if err != nil {
		log.Printf("Error listing notes: %v", err)
		utils.InternalError(c, "Failed to list notes")
		return
	}
	for _, note := range notes {
		if note.IsPublic {
			stats.NotesStats.Public++
		}
		if note.TotalRatings > 0 {
			stats.NotesStats.TotalRated++
			stats.NotesStats.RatingsRecv += note.TotalRatings
		}
	}

	eventsCount, err := h.reputationRepo.CountByUser(ctx, userID)
	if err != nil {
		log.Printf("Error counting reputation events: %v", err)
		utils.InternalError(c, "Failed to count reputation events")
		return
	}
	stats.Reputation.Current = user.Reputation
	stats.Reputation.EventsCount = eventsCount

	stats.ActivityStats.LastActive = user.LastLoginAt
	stats.ActivityStats.AccountCreated = user.CreatedAt

	utils.Success(c, stats)
}

// GetSystemStats exposes host health for operators.
func GetSystemStats(c *gin.Context) {
	utils.Success(c, utils.GetSystemStats())
}
