package stubapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/verilearn/verilearn/core"
)

type (
	submitRequest struct {
		Text    string `json:"text"`
		Subject string `json:"subject"`
	}
	analysisResponse struct {
		AssignmentID int        `json:"assignment_id"`
		Questions    []Question `json:"followup_questions"`
	}
	followupRequest struct {
		AssignmentID int               `json:"assignment_id"`
		Responses    map[string]string `json:"responses"`
	}
	scoresPayload struct {
		ConceptClarity     float64 `json:"concept_clarity"`
		Application        float64 `json:"application"`
		LogicalConsistency float64 `json:"logical_consistency"`
		Depth              float64 `json:"depth"`
		FinalScore         float64 `json:"final_score"`
	}
	radarPayload struct {
		Clarity          float64 `json:"clarity"`
		Application      float64 `json:"application"`
		Logic            float64 `json:"logic"`
		CriticalThinking float64 `json:"critical_thinking"`
		Retention        float64 `json:"retention"`
	}
	resultResponse struct {
		AssignmentID    int              `json:"assignment_id"`
		Status          string           `json:"status"`
		Scores          *scoresPayload   `json:"scores,omitempty"`
		RadarScores     *radarPayload    `json:"radar_scores,omitempty"`
		WeakTopics      []string         `json:"weak_topics,omitempty"`
		Recommendations []recommendation `json:"recommendations,omitempty"`
		AIDependency    *float64         `json:"ai_dependency_score,omitempty"`
		CreatedAt       string           `json:"created_at"`
	}
)

func (s *Server) submitAssignmentHandler(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.Text = core.CleanString(req.Text)
	if len(req.Text) < 20 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Assignment text too short")
	}
	if req.Subject == "" {
		req.Subject = "General"
	}

	a := &Assignment{
		StudentID: currentUser(c).ID,
		Text:      req.Text,
		Subject:   req.Subject,
		Questions: append([]Question(nil), followupQuestions...),
		Responses: make(map[string]string),
		Status:    "analyzed",
	}
	score(a)
	a = s.db.createAssignment(*a)
	return c.JSON(http.StatusOK, analysisResponse{AssignmentID: a.ID, Questions: a.Questions})
}

func (s *Server) submitFollowupHandler(c echo.Context) error {
	var req followupRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	a, ok := s.db.assignment(req.AssignmentID)
	if !ok || a.StudentID != currentUser(c).ID {
		return echo.NewHTTPError(http.StatusNotFound, "Assignment not found")
	}
	for id, resp := range req.Responses {
		a.Responses[id] = resp
	}
	rescore(a)
	a.Status = "completed"
	s.db.updateAssignment(a)
	return c.JSON(http.StatusOK, echo.Map{"assignment_id": a.ID, "status": a.Status})
}

func (s *Server) resultsHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid assignment id")
	}
	a, ok := s.db.assignment(id)
	if !ok || a.StudentID != currentUser(c).ID {
		return echo.NewHTTPError(http.StatusNotFound, "Assignment not found")
	}
	return c.JSON(http.StatusOK, toResultResponse(a))
}

func toResultResponse(a *Assignment) resultResponse {
	dep := a.AIDependency
	return resultResponse{
		AssignmentID: a.ID,
		Status:       a.Status,
		Scores: &scoresPayload{
			ConceptClarity:     a.ConceptClarity,
			Application:        a.Application,
			LogicalConsistency: a.LogicalConsistency,
			Depth:              a.Depth,
			FinalScore:         a.FinalScore,
		},
		RadarScores: &radarPayload{
			Clarity:          a.RadarClarity,
			Application:      a.RadarApplication,
			Logic:            a.RadarLogic,
			CriticalThinking: a.RadarCriticalThinking,
			Retention:        a.RadarRetention,
		},
		WeakTopics:      a.WeakTopics,
		Recommendations: a.Recommendations,
		AIDependency:    &dep,
		CreatedAt:       a.CreatedAt.Format("2006-01-02"),
	}
}

func (s *Server) dashboardHandler(c echo.Context) error {
	assignments := s.db.assignmentsOf(currentUser(c).ID)
	resp := echo.Map{
		"overall_score":       0.0,
		"growth_trend":        0.0,
		"total_assignments":   len(assignments),
		"ai_dependency_score": 0.0,
		"score_history":       scoreHistory(assignments),
		"weak_topic_summary":  weakTopicSummary(assignments),
	}
	if len(assignments) > 0 {
		var sum, dep float64
		for _, a := range assignments {
			sum += a.FinalScore
			dep += a.AIDependency
		}
		resp["overall_score"] = round1(sum / float64(len(assignments)))
		resp["ai_dependency_score"] = round1(dep / float64(len(assignments)))
		first, last := assignments[0], assignments[len(assignments)-1]
		resp["growth_trend"] = round1(last.FinalScore - first.FinalScore)
	}
	return c.JSON(http.StatusOK, resp)
}

func scoreHistory(assignments []*Assignment) []echo.Map {
	history := make([]echo.Map, 0, len(assignments))
	for _, a := range assignments {
		history = append(history, echo.Map{
			"date":  a.CreatedAt.Format("2006-01-02"),
			"score": a.FinalScore,
		})
	}
	return history
}

func weakTopicSummary(assignments []*Assignment) []echo.Map {
	counts := make(map[string]int)
	var order []string
	for _, a := range assignments {
		for _, topic := range a.WeakTopics {
			if counts[topic] == 0 {
				order = append(order, topic)
			}
			counts[topic]++
		}
	}
	summary := make([]echo.Map, 0, len(order))
	for _, topic := range order {
		summary = append(summary, echo.Map{"topic": topic, "count": counts[topic]})
	}
	return summary
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
