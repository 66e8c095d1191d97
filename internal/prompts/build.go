package prompts

import (
	"strconv"
	"strings"
)

// MaxResumeChars bounds the resume text sent to the model. Longer
// resumes are cut with a visible marker so the model knows the text
// is incomplete.
const MaxResumeChars = 3000

// DefaultTipsLimit is how many course suggestions the tips prompt
// asks for.
const DefaultTipsLimit = 6

// ResumePrompt returns the system and user messages for parsing
// resume text into structured candidate data.
func ResumePrompt(resumeText string) (system, user string) {
	system = MustGet("resume.json", "system")
	user = Format(MustGet("resume.json", "user"), map[string]string{
		"ResumeText": Truncate(resumeText, MaxResumeChars),
	})
	return system, user
}

// TipsPrompt returns the system and user messages for course
// recommendations for a role and skill list.
func TipsPrompt(role string, skills []string) (system, user string) {
	skillList := strings.Join(skills, ", ")
	if skillList == "" {
		skillList = "general professional growth"
	}
	system = MustGet("tips.json", "system")
	user = Format(MustGet("tips.json", "user"), map[string]string{
		"Role":   role,
		"Skills": skillList,
		"Limit":  strconv.Itoa(DefaultTipsLimit),
	})
	return system, user
}

// Truncate cuts s to at most max characters, appending "..." when it
// was cut.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
