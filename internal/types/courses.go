package types

// CourseRecommendation is a single AI-suggested course for a talent's
// career development.
type CourseRecommendation struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Provider string `json:"provider"`
	URL      string `json:"url"`
	Skill    string `json:"skill,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// CareerTips bundles course recommendations with a short free-text tip.
type CareerTips struct {
	Role    string                 `json:"role"`
	Tip     string                 `json:"tip,omitempty"`
	Courses []CourseRecommendation `json:"courses"`
}
