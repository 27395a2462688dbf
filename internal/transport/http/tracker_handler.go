package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blaizn/internal/application/usecase"
)

type TrackerHandler struct {
	tracker *usecase.TrackerUseCase
}

func NewTrackerHandler(tracker *usecase.TrackerUseCase) *TrackerHandler {
	return &TrackerHandler{tracker: tracker}
}

type onboardingReq struct {
	SelectedTracks []int  `json:"selectedTracks"`
	UserGoal       string `json:"userGoal"`
}

// POST /api/v1/onboarding
func (h *TrackerHandler) CompleteOnboarding(c *gin.Context) {
	var req onboardingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.tracker.CompleteOnboarding(c, sessionFrom(c), req.SelectedTracks, req.UserGoal)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.Redacted()})
}

// GET /api/v1/tasks/today
func (h *TrackerHandler) TodayTasks(c *gin.Context) {
	tasks, err := h.tracker.TodayTasks(c, sessionFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// POST /api/v1/tasks/:id/toggle
func (h *TrackerHandler) ToggleTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return
	}

	tasks, err := h.tracker.ToggleTask(c, sessionFrom(c), taskID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// GET /api/v1/suggestion?track=N
func (h *TrackerHandler) Suggestion(c *gin.Context) {
	trackID := 0
	if raw := c.Query("track"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid track"})
			return
		}
		trackID = id
	}

	suggestion, err := h.tracker.Suggestion(c, sessionFrom(c), trackID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// GET /api/v1/dashboard
func (h *TrackerHandler) Dashboard(c *gin.Context) {
	snapshot, err := h.tracker.Snapshot(c, sessionFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
