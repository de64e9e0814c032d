package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/anayd/sensei/internal/gateway"
	"github.com/anayd/sensei/internal/learner"
	"github.com/anayd/sensei/internal/llm"
	"github.com/anayd/sensei/internal/store"
	"github.com/anayd/sensei/internal/tutor"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive tutoring session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

func init() {
	chatCmd.Flags().String("student", "default", "Student identifier")
	chatCmd.Flags().String("subject", "math", "Subject for the session")
	chatCmd.Flags().String("lang", "en", "Session language (en, es)")
	chatCmd.Flags().Bool("offline", false, "Use the canned offline gateway instead of an LLM provider")
}

// runChat opens the store, builds the gateway and engine, and drives
// the terminal read-eval loop until the student quits.
func runChat(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	studentID, _ := cmd.Flags().GetString("student")
	subject, _ := cmd.Flags().GetString("subject")
	lang, _ := cmd.Flags().GetString("lang")
	offline, _ := cmd.Flags().GetBool("offline")
	if studentID == "" {
		studentID = "default"
	}
	if subject == "" {
		subject = "math"
	}
	if lang == "" {
		lang = "en"
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	gw := buildGateway(ctx, st, offline)
	engine := tutor.NewEngine(gw, tutor.WithProfiles(st.Profiles()))

	session, err := engine.Open(ctx, studentID, subject, tutor.OpenOptions{Language: lang})
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	fmt.Printf("tutor> %s\n", session.Messages[0].Text)
	fmt.Println("(commands: /steps, /example, /check, /concept <name>, /quit)")

	scanner := bufio.NewScanner(os.Stdin)
	concept := ""
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}
		if rest, ok := strings.CutPrefix(line, "/concept "); ok {
			concept = strings.TrimSpace(rest)
			fmt.Printf("(now working on %q)\n", concept)
			continue
		}
		if rest, ok := strings.CutPrefix(line, "/check "); ok {
			level, err := engine.RequestCheckUnderstanding(ctx, session.ID, rest)
			if err != nil {
				return err
			}
			fmt.Printf("(understanding: %s)\n", level)
			continue
		}

		var res *tutor.TurnResult
		switch {
		case strings.HasPrefix(line, "/steps "):
			res, err = engine.RequestStepByStep(ctx, session.ID, strings.TrimPrefix(line, "/steps "), concept)
		case strings.HasPrefix(line, "/example "):
			res, err = engine.RequestExamples(ctx, session.ID, strings.TrimPrefix(line, "/example "), concept)
		default:
			res, err = engine.ProcessTurn(ctx, session.ID, line, concept)
		}
		if err != nil {
			return err
		}

		fmt.Printf("\ntutor> %s\n", res.Response.Text)
		if len(res.Response.FollowUps) > 0 {
			fmt.Println("\nyou could ask next:")
			for _, q := range res.Response.FollowUps {
				fmt.Printf("  • %s\n", q)
			}
		}
		fmt.Println()

		recordAttempt(ctx, st, studentID, concept, res.Understanding)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	analytics, err := engine.Close(session.ID)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	printAnalytics(analytics)
	return nil
}

// buildGateway prefers a live LLM-backed gateway and degrades to the
// canned one when no provider is configured.
func buildGateway(ctx context.Context, st *store.Store, offline bool) gateway.Gateway {
	if offline {
		return gateway.NewCanned()
	}

	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Fprintln(os.Stderr, "No LLM provider configured; using canned responses.")
			fmt.Fprintln(os.Stderr, "Set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY for live tutoring.")
			return gateway.NewCanned()
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(ctx, cfg, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider failed to initialize:", err)
		fmt.Fprintln(os.Stderr, "Falling back to canned responses.")
		return gateway.NewCanned()
	}
	return gateway.NewLive(provider)
}

// recordAttempt logs one activity attempt per turn so streaks and
// stats reflect real usage. Failures only warn; they never interrupt
// the conversation.
func recordAttempt(ctx context.Context, st *store.Store, studentID, concept string, level learner.Understanding) {
	correct := level == learner.UnderstandingGood || level == learner.UnderstandingExcellent
	err := st.Attempts().Append(ctx, learner.Attempt{
		StudentID: studentID,
		ContentID: concept,
		Correct:   correct,
		At:        time.Now().UTC(),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: record attempt:", err)
	}
}

func printAnalytics(a *tutor.LearningAnalytics) {
	fmt.Println("\nsession summary")
	fmt.Printf("  questions asked:  %d\n", a.QuestionsAsked)
	fmt.Printf("  concepts covered: %s\n", joinOrDash(a.ConceptsCovered))
	fmt.Printf("  time spent:       %ds\n", a.TimeSpentSeconds)
	fmt.Printf("  strategies used:  %s\n", joinOrDash(a.StrategiesUsed))
	if len(a.ConfusionPoints) > 0 {
		fmt.Println("  confusion points:")
		for _, c := range a.ConfusionPoints {
			fmt.Printf("    - %s (%s): %s\n", c.Category, c.Severity, c.Description)
		}
	}
	for _, insight := range a.Insights {
		fmt.Printf("  insight: %s\n", insight)
	}
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, ", ")
}
