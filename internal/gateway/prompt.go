package gateway

import (
	"fmt"
	"strings"
)

const tutorSystemPrompt = `You are a patient one-on-one tutor. Keep replies short and conversational: explain one idea at a time, check in with the student, and never lecture. Always answer in the language named in the session context.`

func languageName(code string) string {
	switch code {
	case "es":
		return "Spanish"
	default:
		return "English"
	}
}

func describeContext(tc Context) string {
	var b strings.Builder
	b.WriteString("Session context:\n")
	fmt.Fprintf(&b, "- Subject: %s\n", tc.Subject)
	if tc.Concept != "" {
		fmt.Fprintf(&b, "- Current concept: %s\n", tc.Concept)
	}
	if tc.Grade > 0 {
		fmt.Fprintf(&b, "- Grade: %d\n", tc.Grade)
	}
	if tc.QueryType != "" {
		fmt.Fprintf(&b, "- Question type: %s\n", tc.QueryType)
	}
	if tc.Understanding != "" {
		fmt.Fprintf(&b, "- Current understanding: %s\n", tc.Understanding)
	}
	if tc.LearningStyle != "" {
		fmt.Fprintf(&b, "- Learning style: %s\n", tc.LearningStyle)
	}
	fmt.Fprintf(&b, "- Language: %s\n", languageName(tc.Language))
	return b.String()
}

func buildReplyPrompt(tc Context) string {
	var b strings.Builder
	b.WriteString(describeContext(tc))
	b.WriteString(`
Instructions:
Reply to the student's most recent message. Match the question type and the
student's current understanding. Keep the reply under 150 words.`)
	return b.String()
}

func buildUnderstandingPrompt(text, concept string, tc Context) string {
	var b strings.Builder
	b.WriteString(describeContext(tc))
	fmt.Fprintf(&b, "\nConcept being assessed: %s\n", concept)
	fmt.Fprintf(&b, "Student's latest message:\n%s\n", text)
	b.WriteString(`
Instructions:
Judge how well the student currently understands the concept from their
wording alone. Do not grade politeness or spelling.`)
	return b.String()
}

func buildFollowUpPrompt(concept string, tc Context) string {
	var b strings.Builder
	b.WriteString(describeContext(tc))
	fmt.Fprintf(&b, "\nConcept: %s\n", concept)
	b.WriteString(`
Instructions:
Suggest up to three short follow-up questions that would deepen the
student's grasp of the concept at their current level. Each question
must stand alone.`)
	return b.String()
}
