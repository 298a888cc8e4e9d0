package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spigell/career-mentor/internal/careers"
	"github.com/spigell/career-mentor/internal/mentor"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Recommend the top 3 careers for the given scores and interests",
	Run: func(cmd *cobra.Command, _ []string) {
		predict(cmd)
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)

	for _, name := range careers.ScoreNames {
		predictCmd.Flags().Float64(strings.ToLower(name), 50, fmt.Sprintf("%s score from 0 to 100", name))
	}
	predictCmd.Flags().StringP("interests", "i", "", "free text describing your interests")
	predictCmd.Flags().Bool("no-save", false, "do not store the assessment in history")
	predictCmd.Flags().Bool("interactive", false, "ask for every score in the terminal")
}

func predict(cmd *cobra.Command) {
	ctx := context.Background()
	a := setup()
	defer a.close()

	flags := cmd.Flags()
	interests, _ := flags.GetString("interests")
	interactive, _ := flags.GetBool("interactive")
	noSave, _ := flags.GetBool("no-save")

	values := make([]float64, len(careers.ScoreNames))
	for i, name := range careers.ScoreNames {
		values[i], _ = flags.GetFloat64(strings.ToLower(name))
	}

	if interactive {
		var err error
		values, interests, err = askScores(values, interests)
		if err != nil {
			a.logger.Fatal("reading scores", zap.Error(err))
		}
	}

	scores, err := careers.ScoresFromSlice(values)
	if err != nil {
		a.logger.Fatal("parsing scores", zap.Error(err))
	}

	deps := mentor.Deps{
		Ranker:   a.engine,
		Catalog:  a.catalog,
		Insights: a.insights,
		Logger:   a.logger,
	}
	if !noSave {
		deps.Recorder = a.history(ctx)
	}

	report, err := mentor.New(deps).Assess(ctx, a.config.User, scores, interests)
	if err != nil {
		a.logger.Fatal("assessing careers", zap.Error(err))
	}

	printReport(cmd.OutOrStdout(), report)
}

// askScores prompts for every score, offering the current values as defaults.
func askScores(defaults []float64, interests string) ([]float64, string, error) {
	validate := func(input string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil {
			return errors.New("enter a number")
		}
		if v < careers.MinScore || v > careers.MaxScore {
			return errors.New("enter a number from 0 to 100")
		}
		return nil
	}

	values := make([]float64, len(defaults))
	for i, name := range careers.ScoreNames {
		prompt := promptui.Prompt{
			Label:    name,
			Default:  strconv.FormatFloat(defaults[i], 'f', -1, 64),
			Validate: validate,
		}
		input, err := prompt.Run()
		if err != nil {
			return nil, "", err
		}
		// validated above
		values[i], _ = strconv.ParseFloat(strings.TrimSpace(input), 64)
	}

	prompt := promptui.Prompt{
		Label:   "Interests",
		Default: interests,
	}
	text, err := prompt.Run()
	if err != nil {
		return nil, "", err
	}

	return values, text, nil
}

func printReport(w io.Writer, report *mentor.Report) {
	for i, card := range report.Cards() {
		fmt.Fprintf(w, "%d. %s (%.1f%%)\n", i+1, card.Career, card.Percent)
		fmt.Fprintf(w, "   Salary: %s\n", card.Info.Salary)
		fmt.Fprintf(w, "   Demand: %s\n", card.Info.Demand)
		fmt.Fprintln(w, "   Roadmap:")
		for _, step := range card.Roadmap {
			fmt.Fprintf(w, "     - %s\n", step)
		}
		for _, course := range card.Info.Courses {
			fmt.Fprintf(w, "   Course: %s (%s) %s\n", course.Title, course.Provider, course.URL)
		}
	}
	if report.AssessmentID != "" {
		fmt.Fprintf(w, "\nSaved as %s\n", report.AssessmentID)
	}
}
