package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/quadrantlab/algoquad/internal/dataset"
	"github.com/quadrantlab/algoquad/pkg/analysis"
	"github.com/quadrantlab/algoquad/pkg/config"
	"github.com/quadrantlab/algoquad/pkg/debug"
	"github.com/quadrantlab/algoquad/pkg/export"
	"github.com/quadrantlab/algoquad/pkg/model"
	"github.com/quadrantlab/algoquad/pkg/ui"
	"github.com/quadrantlab/algoquad/pkg/version"
	"github.com/quadrantlab/algoquad/pkg/watcher"
)

func main() {
	dataPath := flag.String("data", "", "YAML dataset override (default: embedded table)")
	contextName := flag.String("context", "", "Task context: general, safety, schedule or cost")
	exportPath := flag.String("export", "", "Render a chart snapshot to this path and exit")
	format := flag.String("format", "", "Export format: svg or png (default: inferred from path)")
	batchDir := flag.String("batch", "", "Render one snapshot per context into this directory and exit")
	robotJSON := flag.Bool("robot-json", false, "Print the machine-readable report and exit")
	cpuProfile := flag.String("cpu-profile", "", "Write CPU profile to file")
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *help {
		fmt.Println("Usage: aq [options]")
		fmt.Println("\nAn interactive quadrant chart of machine learning algorithm families.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("aq %s\n", version.Version)
		os.Exit(0)
	}

	appCfg, cfgErr := config.Load()
	if cfgErr != nil {
		// Non-fatal: continue with defaults
		appCfg = config.DefaultConfig()
	}
	if *format != "" {
		appCfg.Export.Format = *format
	}

	path := *dataPath
	if path == "" {
		path = appCfg.DataPath
	}
	ds, source, err := dataset.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}
	debug.Log("dataset source: %s", source)

	st := analysis.DefaultState()
	if appCfg.UI.FadeOpacity > 0 && appCfg.UI.FadeOpacity <= 1 {
		st.Fade = appCfg.UI.FadeOpacity
	}
	ctxName := *contextName
	if ctxName == "" {
		ctxName = appCfg.UI.DefaultContext
	}
	if ctxName != "" {
		ctx, err := model.ParseTaskContext(ctxName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		st.Context = ctx
	}

	if *robotJSON {
		if err := export.WriteRobotReport(os.Stdout, ds, st); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *exportPath != "" {
		err := export.SaveChartSnapshot(export.ChartSnapshotOptions{
			Path:    *exportPath,
			Format:  *format,
			Dataset: ds,
			State:   st,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported %s\n", *exportPath)
		os.Exit(0)
	}

	if *batchDir != "" {
		paths, err := export.SaveBatch(export.BatchOptions{
			Dir:     *batchDir,
			Format:  appCfg.Export.Format,
			Dataset: ds,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Batch export failed: %v\n", err)
			os.Exit(1)
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		os.Exit(0)
	}

	// Piped or redirected output cannot host the TUI; degrade to the robot
	// report so scripted callers still get something useful.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal, printing robot report (see --help)")
		if err := export.WriteRobotReport(os.Stdout, ds, st); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Interactive sessions resume the last-used context unless --context was
	// given. Scripted paths above stay on the flag/config value.
	if *contextName == "" {
		if last, lerr := config.LoadState(); lerr == nil && last.LastContext != "" {
			if ctx, perr := model.ParseTaskContext(last.LastContext); perr == nil {
				st.Context = ctx
			}
		}
	}

	appCfg.UI.DefaultContext = st.Context.String()
	m := ui.NewModel(ds, source, appCfg)

	// Live reload only applies to file-backed datasets.
	if source.Type == dataset.SourceFile {
		w, werr := watcher.New(source.Path)
		if werr == nil && w.Start() == nil {
			defer w.Stop()
			m = m.WithWatcher(w)
		} else {
			debug.Log("watcher unavailable for %s: %v", source.Path, werr)
		}
	}

	if err := runTUIProgram(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}

func runTUIProgram(m ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set AQ_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("AQ_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()
			}()
		}
	}

	_, err := p.Run()
	return err
}
