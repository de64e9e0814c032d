package classify

import "strings"

// QueryType categorizes what kind of help a student's question is asking for.
type QueryType string

const (
	QueryExplanation   QueryType = "explanation_request"
	QueryProblem       QueryType = "problem_solving"
	QueryClarification QueryType = "concept_clarification"
	QueryExample       QueryType = "example_request"
	QueryHomework      QueryType = "homework_help"
	QueryStudyGuidance QueryType = "study_guidance"
	QueryGeneral       QueryType = "general_question"
)

// querySet is one category with its trigger phrases across locales.
// Evaluation order matters: earlier sets win when a question matches
// several, so the more specific intents come first.
type querySet struct {
	qtype    QueryType
	keywords []string
}

// queryKeywords holds the ordered keyword tables (English and Spanish).
// All phrases are lower-case; Classify lower-cases the input before matching.
var queryKeywords = []querySet{
	{QueryExplanation, []string{
		"explain", "what is", "what are", "how does", "why does", "why is",
		"i don't understand", "i dont understand", "don't get", "dont get",
		"help me understand", "confused about",
		"explica", "explícame", "explicame", "qué es", "que es",
		"cómo funciona", "como funciona", "por qué", "por que",
		"no entiendo", "no comprendo",
	}},
	{QueryProblem, []string{
		"solve", "calculate", "compute", "find the answer", "work out",
		"how do i solve", "answer to",
		"resuelve", "resolver", "calcula", "calcular", "encuentra la respuesta",
	}},
	{QueryClarification, []string{
		"difference between", "is it the same", "clarify", "what's the difference",
		"whats the difference", "versus", " vs ",
		"diferencia entre", "es lo mismo", "aclara", "aclárame", "aclarame",
	}},
	{QueryExample, []string{
		"example", "for instance", "show me", "give me an", "such as",
		"ejemplo", "ejemplos", "muéstrame", "muestrame", "dame un",
	}},
	{QueryHomework, []string{
		"homework", "assignment", "worksheet", "due tomorrow", "my teacher",
		"tarea", "deberes", "mi maestra", "mi maestro", "mi profesor",
	}},
	{QueryStudyGuidance, []string{
		"how to study", "how should i study", "prepare for", "study for",
		"exam", "test coming", "review for",
		"cómo estudiar", "como estudiar", "prepararme para", "examen", "repasar",
	}},
}

// Classify maps raw student text to a QueryType.
// It is a pure, total function: any text yields a category, with
// QueryGeneral as the default when no keyword set matches.
func Classify(text string) QueryType {
	lowered := strings.ToLower(text)
	for _, set := range queryKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lowered, kw) {
				return set.qtype
			}
		}
	}
	return QueryGeneral
}
