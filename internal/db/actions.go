// Package db implements the db verb: inspect the papers, runs, and
// questions recorded by past parse sessions.
package db

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/paperbank/exam-parser/pkg/db"
)

func PapersAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	papers, err := database.ListPapers()
	if err != nil {
		return fmt.Errorf("failed to list papers: %w", err)
	}

	if len(papers) == 0 {
		fmt.Println("No papers found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-6s %-12s %-40s\n",
		"ID", "Created", "Year", "Subject", "Source")
	fmt.Println(strings.Repeat("-", 100))

	for _, p := range papers {
		fmt.Printf("%-6d %-20s %-6s %-12s %-40s\n",
			p.PaperID,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
			p.Year,
			p.Subject,
			p.Source,
		)
	}

	fmt.Printf("\nTotal: %d papers\n", len(papers))
	fmt.Printf("\nTip: Use 'exam-parser db runs --source <source>' to see parse history\n")

	return nil
}

func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.String("source"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-10s %-10s %-8s %-30s\n",
		"ID", "Created", "Dialect", "Questions", "Review", "Session")
	fmt.Println(strings.Repeat("-", 90))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-10s %-10d %-8d %-30s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Dialect,
			r.QuestionCount,
			r.NeedsReviewCount,
			r.SessionID,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'exam-parser db show <run-id>' to see the extracted questions\n")

	return nil
}

// ShowAction prints the stored question records for one run.
func ShowAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runID, err := GetRunIDOrLatest(c, database)
	if err != nil {
		return err
	}

	questions, err := database.RunQuestions(runID)
	if err != nil {
		return fmt.Errorf("failed to load questions: %w", err)
	}
	if len(questions) == 0 {
		fmt.Printf("Run %d has no stored questions\n", runID)
		return nil
	}

	fmt.Printf("Run %d\n", runID)
	fmt.Println(strings.Repeat("=", 60))
	for _, q := range questions {
		fmt.Printf("\n[%s] %s (%s, %s marks)\n", q.QuestionIndex, q.QuestionID, q.Subject, q.Marks)
		fmt.Printf("  %s\n", truncate(q.Text, 120))
		if len(q.PossibleAnswers) > 0 {
			fmt.Printf("  Answer: %s", q.CorrectAnswer)
			if q.CorrectAnswerText != "" {
				fmt.Printf(" (%s)", truncate(q.CorrectAnswerText, 60))
			}
			fmt.Println()
		}
	}

	fmt.Printf("\nTotal: %d questions\n", len(questions))

	return nil
}

// ReviewAction lists how many stored questions still need a human look.
func ReviewAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	counts, err := database.ReviewCounts()
	if err != nil {
		return fmt.Errorf("failed to count review questions: %w", err)
	}

	if len(counts) == 0 {
		fmt.Println("No questions need review")
		return nil
	}

	total := 0
	fmt.Printf("%-15s %s\n", "Subject", "Needs Review")
	fmt.Println(strings.Repeat("-", 30))
	for subject, n := range counts {
		fmt.Printf("%-15s %d\n", subject, n)
		total += n
	}
	fmt.Printf("\nTotal: %d questions with defaulted answers\n", total)
	fmt.Printf("Tip: Merge an answer key with 'exam-parser merge-key' to clear them\n")

	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
