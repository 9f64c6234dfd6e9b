package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bft-labs/wqsuite/internal/cliconfig"
	"github.com/bft-labs/wqsuite/internal/domain"
	"github.com/bft-labs/wqsuite/internal/editor"
	"github.com/bft-labs/wqsuite/pkg/log"
	"github.com/bft-labs/wqsuite/pkg/wqsuite"
)

// consoleLogger logs to stderr for the non-interactive commands.
func consoleLogger(cfg cliconfig.Config) (log.Logger, error) {
	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewZerologAdapter(os.Stderr, lvl), nil
}

// newSuite builds a suite for a one-shot command. Background workers are not
// started.
func newSuite(cfg cliconfig.Config) (*wqsuite.Suite, error) {
	logger, err := consoleLogger(cfg)
	if err != nil {
		return nil, err
	}
	suite, err := wqsuite.New(suiteConfig(cfg), wqsuite.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("create suite: %w", err)
	}
	return suite, nil
}

func newAnalyzeCmd(cfg *cliconfig.Config) *cobra.Command {
	var (
		params []string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a batch of lab values and write the PDF report",
		Example: strings.TrimSpace(`
  wqsuite analyze --param pH=7.2 --param Turbidity=4
  wqsuite analyze -p "Total Dissolved Solids=640" -p Nitrate=12`),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := newSuite(*cfg)
			if err != nil {
				return err
			}
			session, err := suite.OpenSession()
			if err != nil {
				return err
			}
			defer suite.CloseSession(session.ID())

			out := cmd.OutOrStdout()
			for _, p := range params {
				entry, err := parseParam(p)
				if err != nil {
					return err
				}
				if _, _, err := session.Dispatch(editor.SelectParam(entry.Name)); err != nil {
					return err
				}
				if _, _, err := session.Dispatch(editor.SetValue(entry.Value)); err != nil {
					return err
				}
				_, notice, err := session.Dispatch(editor.Add())
				if err != nil {
					return err
				}
				if notice.Kind == editor.NoticeWarning {
					if strict {
						return fmt.Errorf("%w: %s", domain.ErrDuplicateEntry, entry.Name)
					}
					fmt.Fprintln(out, "warning:", notice.Text)
				}
			}

			res, notice, err := session.RunAnalysis(cmd.Context())
			if err != nil {
				return err
			}
			if notice.Kind == editor.NoticeWarning && len(res.Findings) == 0 {
				return errors.New(notice.Text)
			}
			printFindings(out, res.Findings)
			if res.ReportPath != "" {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Report:", res.ReportPath)
			} else {
				fmt.Fprintln(out)
				fmt.Fprintln(out, notice.Text)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "parameter=value; repeat for each measurement")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on a repeated parameter instead of keeping the first value")
	return cmd
}

func newProposeCmd(cfg *cliconfig.Config) *cobra.Command {
	var (
		name       string
		community  string
		population int
		growth     float64
		source     string
		years      int
	)
	cmd := &cobra.Command{
		Use:   "propose",
		Short: "Generate a water supply proposal PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := parseCommunity(community)
			if err != nil {
				return err
			}
			src, err := parseSource(source)
			if err != nil {
				return err
			}

			suite, err := newSuite(*cfg)
			if err != nil {
				return err
			}
			session, err := suite.OpenSession()
			if err != nil {
				return err
			}
			defer suite.CloseSession(session.ID())

			path, notice, err := session.GenerateProposal(cmd.Context(), domain.ProposalInputs{
				Name:              name,
				Community:         model,
				CurrentPopulation: population,
				GrowthRatePercent: growth,
				Source:            src,
				DesignPeriodYears: years,
			})
			if err != nil {
				return err
			}
			if notice.Kind == editor.NoticeError {
				return errors.New(notice.Text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), notice.Text)
			fmt.Fprintln(cmd.OutOrStdout(), "Proposal:", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&community, "community", "city", "community type: city (geometric) or village (arithmetic)")
	cmd.Flags().IntVar(&population, "population", 0, "current population")
	cmd.Flags().Float64Var(&growth, "growth", 0, "annual growth rate in percent")
	cmd.Flags().StringVar(&source, "source", "river", "water source: river, groundwater or rainwater")
	cmd.Flags().IntVar(&years, "years", 1, "design period in years")
	return cmd
}

func newParamsCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List the parameters and their permissible limits",
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := newSuite(*cfg)
			if err != nil {
				return err
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("Parameter", "Category", "Limit", "Unit")
			for _, s := range suite.Standards() {
				t.Row(s.Name.String(), s.Category, s.LimitText(), s.Unit)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
}

// parseParam reads "name=value". The name may contain spaces.
func parseParam(s string) (domain.Entry, error) {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return domain.Entry{}, fmt.Errorf("invalid --param %q: want name=value", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("invalid --param %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.Entry{}, fmt.Errorf("invalid --param %q: value must be a finite number", s)
	}
	return domain.Entry{Name: domain.ParameterID(name), Value: v}, nil
}

func parseCommunity(s string) (domain.CommunityModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "city", "geometric":
		return domain.CommunityGeometric, nil
	case "village", "arithmetic":
		return domain.CommunityArithmetic, nil
	default:
		return "", fmt.Errorf("unknown community type %q", s)
	}
}

func parseSource(s string) (domain.WaterSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "river", "stream":
		return domain.SourceRiver, nil
	case "groundwater", "borehole":
		return domain.SourceGroundwater, nil
	case "rainwater", "rain":
		return domain.SourceRainwater, nil
	default:
		return "", fmt.Errorf("unknown water source %q", s)
	}
}

var findingMarks = map[domain.Severity]string{
	domain.SeverityPass: "[PASS] ",
	domain.SeverityFail: "[FAIL] ",
	domain.SeverityInfo: "       ",
}

func printFindings(w io.Writer, findings domain.Findings) {
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityTitle:
			fmt.Fprintf(w, "%s\n%s\n", f.Text, strings.Repeat("=", len(f.Text)))
		case domain.SeveritySection:
			fmt.Fprintf(w, "\n%s\n", f.Text)
		default:
			fmt.Fprintln(w, findingMarks[f.Severity]+f.Text)
		}
	}
}
