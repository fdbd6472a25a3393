package results

// Scores is the weighted score breakdown of one assignment.
type Scores struct {
	ConceptClarity     float64 `json:"concept_clarity"`
	Application        float64 `json:"application"`
	LogicalConsistency float64 `json:"logical_consistency"`
	Depth              float64 `json:"depth"`
	FinalScore         float64 `json:"final_score"`
}

// Radar holds the five understanding dimensions, each in [0,100].
type Radar struct {
	Clarity          float64 `json:"clarity"`
	Application      float64 `json:"application"`
	Logic            float64 `json:"logic"`
	CriticalThinking float64 `json:"critical_thinking"`
	Retention        float64 `json:"retention"`
}

// WeakTopic is one recurring weak area with its occurrence count.
type WeakTopic struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// Recommendation is one suggested study resource.
type Recommendation struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Topic  string  `json:"topic"`
	Match  float64 `json:"match"`
}

// View is the reconciled, presentation-ready result. Every field group is
// fully populated: absent or partial backend groups are substituted from the
// default dataset. Built fresh on every fetch, never persisted.
type View struct {
	Scores          Scores
	Radar           Radar
	WeakTopics      []WeakTopic
	Recommendations []Recommendation
	AIDependency    float64
}

// Raw is the possibly-partial payload of GET /student/results/{id}.
// Pointer-typed groups distinguish absent from zero.
type Raw struct {
	AssignmentID    int              `json:"assignment_id"`
	Status          string           `json:"status"`
	Scores          *Scores          `json:"scores"`
	RadarScores     *RawRadar        `json:"radar_scores"`
	WeakTopics      []string         `json:"weak_topics"`
	Recommendations []Recommendation `json:"recommendations"`
	AIDependency    *float64         `json:"ai_dependency_score"`
	CreatedAt       string           `json:"created_at"`
}

// RawRadar is the wire radar object. All five dimensions must be present for
// the group to count; a partial radar is treated as absent wholesale.
type RawRadar struct {
	Clarity          *float64 `json:"clarity"`
	Application      *float64 `json:"application"`
	Logic            *float64 `json:"logic"`
	CriticalThinking *float64 `json:"critical_thinking"`
	Retention        *float64 `json:"retention"`
}

func (r *RawRadar) complete() bool {
	return r != nil &&
		r.Clarity != nil &&
		r.Application != nil &&
		r.Logic != nil &&
		r.CriticalThinking != nil &&
		r.Retention != nil
}
