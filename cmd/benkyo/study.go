package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/benkyo-app/benkyo/internal/cli"
	"github.com/benkyo-app/benkyo/internal/flashcard"
	"github.com/benkyo-app/benkyo/internal/srs"
	"github.com/benkyo-app/benkyo/internal/studyset"
)

func newStudyCommand() *cobra.Command {
	studyCommand := &cobra.Command{
		Use:   "study",
		Short: "Study commands for reviewing flashcards",
	}

	studyCommand.AddCommand(newStudySessionCommand())
	studyCommand.AddCommand(newStudyDueCommand())
	studyCommand.AddCommand(newStudyAddCommand())
	studyCommand.AddCommand(newStudyReviewCommand())
	studyCommand.AddCommand(newStudyStatsCommand())

	return studyCommand
}

// withService loads the config, opens the database and hands a ready service
// to the command body.
func withService(ctx context.Context, fn func(service *flashcard.Service) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	return fn(newFlashcardService(db, cfg))
}

func parseContentTypeFlag(raw string) (srs.ContentType, error) {
	if raw == "" {
		return "", nil
	}
	return srs.ParseContentType(raw)
}

func newStudySessionCommand() *cobra.Command {
	var user, contentTypeFlag string

	command := &cobra.Command{
		Use:   "session",
		Short: "Interactive review session over your due cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			contentType, err := parseContentTypeFlag(contentTypeFlag)
			if err != nil {
				return err
			}

			return withService(cmd.Context(), func(service *flashcard.Service) error {
				sessionCLI := cli.NewStudySessionCLI(service, user, contentType)
				fmt.Println("Interactive study session started!")
				fmt.Println("Grade each card with again / hard / good / easy. Type 'quit' to exit.")
				fmt.Println()
				return sessionCLI.Run(cmd.Context(), sessionCLI)
			})
		},
	}

	command.Flags().StringVar(&user, "user", "", "User to study as")
	command.Flags().StringVar(&contentTypeFlag, "type", "", "Limit the session to one content type")
	_ = command.MarkFlagRequired("user")

	return command
}

func newStudyDueCommand() *cobra.Command {
	var user, contentTypeFlag string
	var limit int

	command := &cobra.Command{
		Use:   "due",
		Short: "List cards that are due for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			contentType, err := parseContentTypeFlag(contentTypeFlag)
			if err != nil {
				return err
			}

			return withService(cmd.Context(), func(service *flashcard.Service) error {
				cards, err := service.GetDueCards(cmd.Context(), user, contentType, limit)
				if err != nil {
					return err
				}
				if len(cards) == 0 {
					fmt.Println("No cards due for review.")
					return nil
				}

				bold := color.New(color.Bold)
				for _, card := range cards {
					_, _ = bold.Printf("%s #%d", card.ContentType, card.ContentID)
					fmt.Printf("  due %s (interval %d, ease %.2f)\n",
						card.NextReviewAt.Format("2006-01-02"), card.IntervalDays, card.EaseFactor)
				}
				return nil
			})
		},
	}

	command.Flags().StringVar(&user, "user", "", "User to list due cards for")
	command.Flags().StringVar(&contentTypeFlag, "type", "", "Limit to one content type")
	command.Flags().IntVar(&limit, "limit", 0, "Maximum number of cards to list")
	_ = command.MarkFlagRequired("user")

	return command
}

func newStudyAddCommand() *cobra.Command {
	var user, file string

	command := &cobra.Command{
		Use:   "add",
		Short: "Add content items to the study set from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			batches, err := studyset.ReadFile(file)
			if err != nil {
				return fmt.Errorf("studyset.ReadFile(%s) > %w", file, err)
			}

			return withService(cmd.Context(), func(service *flashcard.Service) error {
				var total int64
				for _, batch := range batches {
					added, err := service.AddToStudySet(cmd.Context(), user, batch.ContentType, batch.ContentIDs)
					if err != nil {
						return err
					}
					total += added
				}
				color.Green("Added %d new cards to the study set", total)
				return nil
			})
		},
	}

	command.Flags().StringVar(&user, "user", "", "User to add cards for")
	command.Flags().StringVar(&file, "file", "", "YAML file listing content to study")
	_ = command.MarkFlagRequired("user")
	_ = command.MarkFlagRequired("file")

	return command
}

func newStudyReviewCommand() *cobra.Command {
	var user, contentTypeFlag, result string
	var contentID int64

	command := &cobra.Command{
		Use:   "review",
		Short: "Record a single review outcome for a card",
		RunE: func(cmd *cobra.Command, args []string) error {
			contentType, err := srs.ParseContentType(contentTypeFlag)
			if err != nil {
				return err
			}
			outcome, err := srs.ParseOutcome(result)
			if err != nil {
				return err
			}

			return withService(cmd.Context(), func(service *flashcard.Service) error {
				card, err := service.RecordReview(cmd.Context(), user, contentType, contentID, outcome)
				if err != nil {
					return err
				}
				color.Green("Recorded %s for %s #%d: next review in %d days (ease %.2f)",
					outcome, card.ContentType, card.ContentID, card.IntervalDays, card.EaseFactor)
				return nil
			})
		},
	}

	command.Flags().StringVar(&user, "user", "", "User the review belongs to")
	command.Flags().StringVar(&contentTypeFlag, "type", "", "Content type of the card")
	command.Flags().Int64Var(&contentID, "id", 0, "Content ID of the card")
	command.Flags().StringVar(&result, "result", "", "Review outcome: again, hard, good or easy")
	_ = command.MarkFlagRequired("user")
	_ = command.MarkFlagRequired("type")
	_ = command.MarkFlagRequired("id")
	_ = command.MarkFlagRequired("result")

	return command
}

func newStudyStatsCommand() *cobra.Command {
	var user string

	command := &cobra.Command{
		Use:   "stats",
		Short: "Show the current review workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), func(service *flashcard.Service) error {
				stats, err := service.GetStats(cmd.Context(), user)
				if err != nil {
					return err
				}

				fmt.Printf("Due now:     %d\n", stats.DueNow)
				fmt.Printf("Due in 24h:  %d\n", stats.DueSoon)
				fmt.Printf("Total cards: %d\n", stats.TotalCards)
				return nil
			})
		},
	}

	command.Flags().StringVar(&user, "user", "", "User to show stats for")
	_ = command.MarkFlagRequired("user")

	return command
}
