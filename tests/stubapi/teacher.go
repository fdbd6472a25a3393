package stubapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (s *Server) classAnalyticsHandler(c echo.Context) error {
	students := s.db.students()
	resp := echo.Map{
		"class_average":   0.0,
		"total_students":  len(students),
		"most_weak_topic": "",
		"strongest_topic": "",
		"performance_distribution": echo.Map{
			"high": 0, "medium": 0, "low": 0,
		},
		"score_trend":      []echo.Map{},
		"topic_averages":   []echo.Map{},
		"ai_risk_students": 0,
	}

	var (
		sum, n       float64
		high, mid    int
		low, atRisk  int
		topicCounts  = make(map[string]int)
		subjectSums  = make(map[string]float64)
		subjectSizes = make(map[string]int)
		subjectOrder []string
	)
	for _, stud := range students {
		assignments := s.db.assignmentsOf(stud.ID)
		if len(assignments) == 0 {
			continue
		}
		latest := assignments[len(assignments)-1]
		sum += latest.FinalScore
		n++
		switch {
		case latest.FinalScore >= 80:
			high++
		case latest.FinalScore >= 60:
			mid++
		default:
			low++
		}
		if latest.AIDependency > 50 {
			atRisk++
		}
		for _, a := range assignments {
			for _, topic := range a.WeakTopics {
				topicCounts[topic]++
			}
			if subjectSizes[a.Subject] == 0 {
				subjectOrder = append(subjectOrder, a.Subject)
			}
			subjectSums[a.Subject] += a.FinalScore
			subjectSizes[a.Subject]++
		}
	}
	if n > 0 {
		resp["class_average"] = round1(sum / n)
	}
	resp["performance_distribution"] = echo.Map{"high": high, "medium": mid, "low": low}
	resp["ai_risk_students"] = atRisk

	var weakest string
	for topic, count := range topicCounts {
		if weakest == "" || count > topicCounts[weakest] {
			weakest = topic
		}
	}
	resp["most_weak_topic"] = weakest

	averages := make([]echo.Map, 0, len(subjectOrder))
	var strongest string
	var best float64
	for _, subject := range subjectOrder {
		avg := round1(subjectSums[subject] / float64(subjectSizes[subject]))
		averages = append(averages, echo.Map{"topic": subject, "avg": avg})
		if strongest == "" || avg > best {
			strongest, best = subject, avg
		}
	}
	resp["topic_averages"] = averages
	resp["strongest_topic"] = strongest
	resp["score_trend"] = s.classTrend(students)
	return c.JSON(http.StatusOK, resp)
}

// classTrend averages the class score per assignment round.
func (s *Server) classTrend(students []*User) []echo.Map {
	var rounds []echo.Map
	for i := 0; ; i++ {
		var sum float64
		var n int
		var date string
		for _, stud := range students {
			assignments := s.db.assignmentsOf(stud.ID)
			if i < len(assignments) {
				sum += assignments[i].FinalScore
				n++
				date = assignments[i].CreatedAt.Format("2006-01-02")
			}
		}
		if n == 0 {
			break
		}
		rounds = append(rounds, echo.Map{"date": date, "avg": round1(sum / float64(n))})
	}
	if rounds == nil {
		rounds = []echo.Map{}
	}
	return rounds
}

func (s *Server) studentsHandler(c echo.Context) error {
	students := s.db.students()
	rows := make([]echo.Map, 0, len(students))
	for _, stud := range students {
		row := echo.Map{
			"id":            stud.ID,
			"name":          stud.Name,
			"score":         0.0,
			"weak_topic":    "",
			"trend":         "flat",
			"status":        "",
			"ai_dependency": 0.0,
		}
		if assignments := s.db.assignmentsOf(stud.ID); len(assignments) > 0 {
			latest := assignments[len(assignments)-1]
			row["score"] = latest.FinalScore
			row["ai_dependency"] = latest.AIDependency
			if len(latest.WeakTopics) > 0 {
				row["weak_topic"] = latest.WeakTopics[0]
			}
			if len(assignments) > 1 {
				prev := assignments[len(assignments)-2]
				switch {
				case latest.FinalScore > prev.FinalScore:
					row["trend"] = "up"
				case latest.FinalScore < prev.FinalScore:
					row["trend"] = "down"
				}
			}
		}
		rows = append(rows, row)
	}
	return c.JSON(http.StatusOK, rows)
}

func (s *Server) studentAnalyticsHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid student id")
	}
	stud, ok := s.db.userByID(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Student not found")
	}
	assignments := s.db.assignmentsOf(stud.ID)

	resp := echo.Map{
		"student_id":               stud.ID,
		"student_name":             stud.Name,
		"overall_score":            0.0,
		"growth_trend":             0.0,
		"ai_dependency_score":      0.0,
		"score_history":            scoreHistory(assignments),
		"radar_scores":             nil,
		"weak_topics":              []string{},
		"topic_timeline":           []echo.Map{},
		"intervention_suggestions": suggestions(assignments),
	}
	if len(assignments) == 0 {
		return c.JSON(http.StatusOK, resp)
	}

	var sum, dep float64
	topics := make(map[string]bool)
	var topicList []string
	timeline := make([]echo.Map, 0, len(assignments))
	for i, a := range assignments {
		sum += a.FinalScore
		dep += a.AIDependency
		for _, topic := range a.WeakTopics {
			if !topics[topic] {
				topics[topic] = true
				topicList = append(topicList, topic)
			}
		}
		timeline = append(timeline, echo.Map{
			"week":   fmt.Sprintf("Week %d", i+1),
			"topics": a.Subject,
			"detail": fmt.Sprintf("Scored %.1f on a %s assignment", a.FinalScore, a.Subject),
		})
	}
	latest := assignments[len(assignments)-1]
	resp["overall_score"] = round1(sum / float64(len(assignments)))
	resp["ai_dependency_score"] = round1(dep / float64(len(assignments)))
	resp["growth_trend"] = round1(latest.FinalScore - assignments[0].FinalScore)
	resp["radar_scores"] = echo.Map{
		"clarity":           latest.RadarClarity,
		"application":       latest.RadarApplication,
		"logic":             latest.RadarLogic,
		"critical_thinking": latest.RadarCriticalThinking,
		"retention":         latest.RadarRetention,
	}
	resp["weak_topics"] = topicList
	resp["topic_timeline"] = timeline
	return c.JSON(http.StatusOK, resp)
}

func suggestions(assignments []*Assignment) []echo.Map {
	if len(assignments) == 0 {
		return []echo.Map{{
			"title":       "Assign First Work",
			"description": "No submissions yet; assign an initial exercise to establish a baseline.",
		}}
	}
	latest := assignments[len(assignments)-1]
	out := []echo.Map{}
	if latest.FinalScore < 60 {
		out = append(out, echo.Map{
			"title":       "Schedule One-on-One Review",
			"description": "Latest score is below passing; walk through the weak topics together.",
		})
	}
	if latest.AIDependency > 50 {
		out = append(out, echo.Map{
			"title":       "Discuss AI Usage",
			"description": "AI dependency is high; encourage independent problem solving.",
		})
	}
	if len(out) == 0 {
		out = append(out, echo.Map{
			"title":       "Maintain Current Pace",
			"description": "Performance is steady; keep the current assignment cadence.",
		})
	}
	return out
}
