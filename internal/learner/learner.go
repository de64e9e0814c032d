package learner

// LearningStyle categorizes how a student prefers to take in material.
// It is used to adapt phrasing and supplementary hints, never to gate content.
type LearningStyle string

const (
	StyleVisual         LearningStyle = "visual"
	StyleAuditory       LearningStyle = "auditory"
	StyleKinesthetic    LearningStyle = "kinesthetic"
	StyleReadingWriting LearningStyle = "reading-writing"
)

// SkillLevel is the student's self-or-teacher-reported overall level.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
)

// Profile describes a student for adaptation purposes.
// All fields are optional hints; a zero Profile is usable.
type Profile struct {
	StudentID      string
	Grade          int
	LearningStyle  LearningStyle
	CurrentLevel   SkillLevel
	StrongAreas    []string
	ChallengeAreas []string
}

// Understanding is the inferred comprehension of a concept, a 5-point
// ordinal from no understanding to excellent.
type Understanding string

const (
	UnderstandingNone      Understanding = "no_understanding"
	UnderstandingMinimal   Understanding = "minimal_understanding"
	UnderstandingPartial   Understanding = "partial"
	UnderstandingGood      Understanding = "good_understanding"
	UnderstandingExcellent Understanding = "excellent_understanding"
)

// ValidUnderstanding reports whether s is one of the five known levels.
func ValidUnderstanding(s Understanding) bool {
	switch s {
	case UnderstandingNone, UnderstandingMinimal, UnderstandingPartial,
		UnderstandingGood, UnderstandingExcellent:
		return true
	}
	return false
}
