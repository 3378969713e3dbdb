package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/your-org/remember/internal/config"
	"github.com/your-org/remember/internal/review"
	"github.com/your-org/remember/internal/storage"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Print how many people are due for review",
	RunE:  runDue,
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run a review session in the terminal",
	Long:  "Run a review session in the terminal. Each card shows what you noted about a person; reveal the name, then say whether you got it.",
	RunE:  runQuiz,
}

var (
	quizPerson string
	quizLimit  int
)

func init() {
	quizCmd.Flags().StringVar(&quizPerson, "person", "", "quiz one person by ID regardless of due status")
	quizCmd.Flags().IntVar(&quizLimit, "limit", 0, "maximum cards in the session (default review.queue_limit)")

	rootCmd.AddCommand(dueCmd, quizCmd)
}

func runDue(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.CountDue(cmd.Context(), time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d due\n", n)
	return nil
}

func runQuiz(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := sessionOptions(cfg.Review, quizLimit, quizPerson)
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sess := review.NewSession(storage.NewReviewSource(db), opts...)
	return quiz(cmd.Context(), sess, cmd.InOrStdin(), cmd.OutOrStdout())
}

// sessionOptions applies the review config. A positive limit overrides
// the configured queue limit.
func sessionOptions(cfg config.ReviewConfig, limit int, person string) ([]review.SessionOption, error) {
	if limit <= 0 {
		limit = cfg.QueueLimit
	}
	opts := []review.SessionOption{
		review.WithLimit(limit),
		review.WithNearDueDays(cfg.NearDueDays),
	}
	if person != "" {
		id, err := uuid.Parse(person)
		if err != nil {
			return nil, fmt.Errorf("invalid person id: %w", err)
		}
		opts = append(opts, review.ForPerson(id))
	}
	return opts, nil
}

// quiz drives the session from line input. Any answer starting with y
// counts as recalled.
func quiz(ctx context.Context, sess *review.Session, in io.Reader, out io.Writer) error {
	if err := sess.Load(ctx); err != nil {
		return err
	}
	if sess.State() == review.StateComplete {
		fmt.Fprintln(out, "Nobody to review right now.")
		return nil
	}

	lines := bufio.NewScanner(in)
	for {
		card, ok := sess.Current()
		if !ok {
			break
		}
		pos, total := sess.Progress()

		fmt.Fprintf(out, "\n[%d/%d] ", pos+1, total)
		if card.Context != "" {
			fmt.Fprintf(out, "met at %s. ", card.Context)
		}
		if len(card.Keywords) > 0 {
			fmt.Fprintf(out, "Looks: %s.", strings.Join(card.Keywords, ", "))
		}
		fmt.Fprint(out, "\nPress enter to reveal the name.")
		if !lines.Scan() {
			return lines.Err()
		}
		if err := sess.Reveal(); err != nil {
			return err
		}

		fmt.Fprintf(out, "It's %s. Did you get it? [y/n] ", card.Name)
		if !lines.Scan() {
			return lines.Err()
		}
		answer := strings.ToLower(strings.TrimSpace(lines.Text()))

		mark := sess.MarkMissed
		if strings.HasPrefix(answer, "y") {
			mark = sess.MarkGotIt
		}
		if err := mark(ctx); err != nil {
			return err
		}
	}

	gotIt, missed := sess.Results()
	fmt.Fprintf(out, "\nDone: %d got it, %d missed.\n", gotIt, missed)
	return nil
}
