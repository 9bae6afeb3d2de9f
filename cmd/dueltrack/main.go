package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	appcfg "github.com/afuste/dueltrack/internal/config"
	"github.com/afuste/dueltrack/internal/domain"
	"github.com/afuste/dueltrack/internal/duel"
	"github.com/afuste/dueltrack/internal/extract"
	"github.com/afuste/dueltrack/internal/importer"
	"github.com/afuste/dueltrack/internal/msgcat"
	"github.com/afuste/dueltrack/internal/obslog"
	"github.com/afuste/dueltrack/internal/report"
	"github.com/afuste/dueltrack/internal/session"
	"github.com/afuste/dueltrack/internal/token"
)

type app struct {
	cfg       *appcfg.AppConfig
	cat       *msgcat.Catalog
	extractor *extract.Extractor
	formatter *report.Formatter
}

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := appcfg.Load()
	if err != nil {
		return err
	}
	if err := obslog.InitFromEnv(); err != nil {
		return err
	}
	defer obslog.L().Sync() //nolint:errcheck

	cat, err := msgcat.Load(cfg.MessagesDir)
	if err != nil {
		return err
	}
	a := &app{
		cfg:       cfg,
		cat:       cat,
		extractor: extract.New(token.New(cfg.Games)),
		formatter: report.NewFormatter(cat),
	}

	cliApp := &cli.App{
		Name:  "dueltrack",
		Usage: "head-to-head LinkedIn mini-game scores from message exports and pasted chats",
		Commands: []*cli.Command{
			a.scoreCommand(),
			a.extractCommand(),
			a.speakersCommand(),
			a.whoamiCommand(),
		},
	}
	return cliApp.Run(args)
}

func (a *app) scoreCommand() *cli.Command {
	return &cli.Command{
		Name:  "score",
		Usage: "compute the head-to-head score report between two participants",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "export", Usage: "messages export (.csv or .xlsx)"},
			&cli.StringSliceFlag{Name: "transcript", Usage: "pasted-conversation text file (repeatable)"},
			&cli.StringFlag{Name: "me", Usage: "your exact full name (detected from the export when omitted)"},
			&cli.StringFlag{Name: "contact", Usage: "the contact's exact full name", Required: true},
			&cli.StringFlag{Name: "chart", Usage: "also write a PNG wins chart to this path"},
		},
		Action: a.runScore,
	}
}

func (a *app) runScore(c *cli.Context) error {
	tableResults, rows, err := a.loadExport(c.String("export"))
	if err != nil {
		return err
	}

	me := strings.TrimSpace(c.String("me"))
	if me == "" {
		if me = importer.DetectIdentity(rows); me == "" {
			return errors.New(a.cat.Text("errors.missing_names"))
		}
		obslog.L().Info("identity detected from export", zap.String("me", me))
	}
	contact := strings.TrimSpace(c.String("contact"))

	manual, err := a.collectTranscripts(c.StringSlice("transcript"), me, contact)
	if err != nil {
		return err
	}
	if len(tableResults) == 0 && manual.Len() == 0 {
		return errors.New(a.cat.Text("errors.no_input"))
	}

	merged := duel.Merge(tableResults, manual.Combined())
	rep := duel.Score(merged, me, contact, a.cfg.Games)
	fmt.Print(a.formatter.ScoreReport(rep, me, contact))

	if out := strings.TrimSpace(c.String("chart")); out != "" {
		png, err := report.RenderWinsChart(rep, me, contact)
		if err != nil {
			return err
		}
		if err := os.WriteFile(out, png, 0o644); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		obslog.L().Info("chart written", zap.String("path", out))
	}
	return nil
}

func (a *app) extractCommand() *cli.Command {
	return &cli.Command{
		Name:  "extract",
		Usage: "dump the merged result records from all inputs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "export", Usage: "messages export (.csv or .xlsx)"},
			&cli.StringSliceFlag{Name: "transcript", Usage: "pasted-conversation text file (repeatable)"},
			&cli.StringFlag{Name: "me", Usage: "your exact full name"},
			&cli.StringFlag{Name: "contact", Usage: "the contact's exact full name"},
		},
		Action: func(c *cli.Context) error {
			tableResults, rows, err := a.loadExport(c.String("export"))
			if err != nil {
				return err
			}
			me := strings.TrimSpace(c.String("me"))
			if me == "" {
				me = importer.DetectIdentity(rows)
			}
			manual, err := a.collectTranscripts(c.StringSlice("transcript"), me, strings.TrimSpace(c.String("contact")))
			if err != nil {
				return err
			}
			merged := duel.Merge(tableResults, manual.Combined())
			fmt.Print(a.formatter.Records(merged))
			return nil
		},
	}
}

func (a *app) speakersCommand() *cli.Command {
	return &cli.Command{
		Name:      "speakers",
		Usage:     "list speaker names detected in a pasted conversation",
		ArgsUsage: "<transcript.txt>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one transcript file")
			}
			text, err := importer.ReadTranscriptFile(c.Args().First(), a.cfg.TranscriptLimitBytes())
			if err != nil {
				return err
			}
			names := extract.DetectSpeakers(text)
			if len(names) == 0 {
				fmt.Println("no speakers detected")
				return nil
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}
}

func (a *app) whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:      "whoami",
		Usage:     "detect the export owner's name from a messages export",
		ArgsUsage: "<messages.csv|xlsx>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one export file")
			}
			rows, err := importer.ReadExportFile(c.Args().First(), a.cfg.ExportLimitBytes())
			if err != nil {
				return err
			}
			name := importer.DetectIdentity(rows)
			if name == "" {
				return errors.New("could not detect an identity (missing CONVERSATION ID column?)")
			}
			fmt.Println(name)
			return nil
		},
	}
}

// loadExport reads the optional export file and runs the tabular extractor.
// Rows are returned too so identity detection can reuse them.
func (a *app) loadExport(path string) (domain.ResultSet, []extract.Row, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil, nil
	}
	rows, err := importer.ReadExportFile(path, a.cfg.ExportLimitBytes())
	if err != nil {
		return nil, nil, err
	}
	results := a.extractor.FromTable(rows)
	obslog.L().Info("export parsed",
		zap.Int("rows", len(rows)), zap.Int("results", len(results)))
	return results, rows, nil
}

// collectTranscripts parses each transcript file into the accumulator,
// warning when a file shows no trace of either participant name.
func (a *app) collectTranscripts(paths []string, me, contact string) (*session.Accumulator, error) {
	acc := session.NewAccumulator()
	for _, path := range paths {
		text, err := importer.ReadTranscriptFile(path, a.cfg.TranscriptLimitBytes())
		if err != nil {
			return nil, err
		}
		records, namesDetected := a.extractor.FromTranscript(text, me, contact)
		if !namesDetected {
			msg, rerr := a.cat.Render("transcript.names_not_found", map[string]any{"Me": me, "Contact": contact})
			if rerr != nil {
				msg = "no message headers found for either participant"
			}
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, msg)
		}
		id := acc.Add(records)
		obslog.L().Info("transcript parsed",
			zap.String("file", path),
			zap.String("batch", id.String()),
			zap.Int("results", len(records)),
			zap.Bool("names_detected", namesDetected))
	}
	return acc, nil
}
