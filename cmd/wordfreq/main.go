package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"wordfreq/internal/config"
	"wordfreq/internal/domain"
	"wordfreq/internal/linestore/memory"
	"wordfreq/internal/logging"
	"wordfreq/internal/service"
	"wordfreq/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath string
		topN    int
		alpha   bool
		useTUI  bool
		noStop  bool
		saveTo  string
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ./wordfreq.yaml if present)")
	flag.IntVar(&topN, "top", -1, "Number of most frequent words to report (overrides config)")
	flag.BoolVar(&alpha, "alpha", false, "Also list the top words alphabetically")
	flag.BoolVar(&useTUI, "tui", false, "Open the interactive report")
	flag.BoolVar(&noStop, "skip-stopwords", false, "Leave common function words out of the ranking")
	flag.StringVar(&saveTo, "write-config", "", "Write the effective configuration to this path and exit")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if topN >= 0 {
		cfg.Report.TopN = topN
	}
	if alpha {
		cfg.Report.Alphabetical = true
	}
	if noStop {
		cfg.Report.SkipStopwords = true
	}

	if saveTo != "" {
		if err := writeConfig(os.Stdout, saveTo, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	path := flag.Arg(0)
	if path == "" {
		path, err = promptPath(os.Stdin, os.Stdout)
		if err != nil {
			logger.Error("read input file name", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	svc := service.NewAnalysisService(memory.NewStorage(), service.Options{
		TopN:          cfg.Report.TopN,
		Alphabetical:  cfg.Report.Alphabetical,
		SkipStopwords: cfg.Report.SkipStopwords,
	}, logger)
	report, err := svc.Analyze(path)
	if err != nil {
		msg := "analysis failed"
		if errors.Is(err, domain.ErrInputUnavailable) {
			msg = "input could not be read completely"
		}
		logger.Error(msg, slog.String("path", path), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if !useTUI {
		writeReport(os.Stdout, report)
		return
	}
	if _, err := tea.NewProgram(tui.New(svc, report)).Run(); err != nil {
		logger.Error("tui failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func writeConfig(out io.Writer, path string, cfg *config.AppConfig) error {
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "Configuration written to %s\n", path)
	return nil
}

func promptPath(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, "Enter name of input file: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no input file given")
	}
	return path, nil
}

func writeReport(w io.Writer, r domain.Report) {
	fmt.Fprintf(w, "%d most frequent words:\n", len(r.Top))
	for _, e := range r.Top {
		fmt.Fprintf(w, "Count: %d\t%s\n", e.Count, e.Word)
	}
	if len(r.Alphabetical) > 0 {
		fmt.Fprintln(w, "\nSorted alphabetically:")
		for _, e := range r.Alphabetical {
			fmt.Fprintf(w, " %s\n", e.Word)
		}
	}
	fmt.Fprintf(w, "\nTotal words: %d\n", r.TotalWords)
	if r.TopWord == "" {
		return
	}
	fmt.Fprintf(w, "\nThe last sentence containing %q: %s\n", r.TopWord, r.LastSentence)
}
