package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jh3/class-schedule/internal/clipboard"
	"github.com/jh3/class-schedule/internal/config"
	"github.com/jh3/class-schedule/internal/logging"
	"github.com/jh3/class-schedule/internal/schedule"
	"github.com/jh3/class-schedule/internal/session"
	"github.com/jh3/class-schedule/internal/state"
	"github.com/jh3/class-schedule/internal/tmux"
	"github.com/jh3/class-schedule/internal/ui"
)

const envPrefix = "CLASS_SCHEDULE"

// app is what every command needs once flags and config are resolved.
type app struct {
	cfg      *config.Config
	store    *session.Store
	pipeline *schedule.Pipeline
	logs     io.Closer
}

type options struct {
	v       *viper.Viper
	cfgFile string
	app     *app
}

func newRootCmd() *cobra.Command {
	o := &options{v: viper.New()}

	root := &cobra.Command{
		Use:   "class-schedule",
		Short: "Weekly class schedule dashboard",
		Long: `class-schedule shows a weekly class schedule grouped by day.

Search by course title or teacher, filter days, change the sort order and
color theme, and open a teacher's contact card to copy their phone number or
email address.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			o.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runDashboard()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", fmt.Sprintf("config file (default %s)", config.Path()))
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.String("log-file", "", "Log file (default "+config.StatePath("class-schedule.log")+")")
	pf.String("schedule", "", "Schedule file or directory of YAML files (default: built-in schedule)")
	pf.String("theme", "", "Color theme (see 'class-schedule themes')")
	pf.String("sort", "", "Sort order: time, title or teacher")
	pf.String("days", "", "Days to show, e.g. Sun,Mon,Wed ('all' or 'none')")
	pf.String("search", "", "Initial search text")
	root.Flags().Bool("tmux", false, "Open the dashboard in its own tmux window")

	bindFlags(o.v, pf, "verbose", "log-file", "schedule", "theme", "sort", "days", "search")
	bindFlags(o.v, root.Flags(), "tmux")

	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	o.v.AutomaticEnv()

	root.AddCommand(newListCmd(o), newPickCmd(o), newThemesCmd(o))
	return root
}

// bindFlags registers flags with viper under snake_case keys.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		_ = v.BindPFlag(strings.ReplaceAll(name, "-", "_"), fs.Lookup(name))
	}
}

// setup loads .env, config, logging and the schedule.
func (o *options) setup() error {
	// A missing .env is fine
	_ = godotenv.Load()

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}

	logFile := cfg.LogFile
	if logFile == "" {
		logFile = config.StatePath("class-schedule.log")
	}
	logs, err := logging.Init(o.v.GetBool("verbose"), logFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	store, err := session.Load(cfg.ScheduleFile)
	if err != nil {
		logs.Close()
		return fmt.Errorf("load schedule: %w", err)
	}

	lang, _ := cfg.Language()
	o.app = &app{
		cfg:      cfg,
		store:    store,
		pipeline: schedule.NewPipeline(lang),
		logs:     logs,
	}
	slog.Info("schedule loaded", "sessions", store.Len(), "source", cfg.ScheduleFile, "theme", cfg.Theme)
	return nil
}

func (o *options) teardown() {
	if o.app != nil && o.app.logs != nil {
		o.app.logs.Close()
	}
}

// loadConfig reads the config file and lays flag and environment values
// over it.
func (o *options) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if o.cfgFile != "" {
		var err error
		cfg, err = config.LoadFile(o.cfgFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.Load()
	}

	if err := o.applyOverrides(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (o *options) applyOverrides(cfg *config.Config) error {
	if v := o.v.GetString("theme"); v != "" {
		cfg.Theme = v
	}
	if v := o.v.GetString("sort"); v != "" {
		cfg.Sort = v
	}
	if v := o.v.GetString("schedule"); v != "" {
		cfg.ScheduleFile = v
	}
	if v := o.v.GetString("log_file"); v != "" {
		cfg.LogFile = v
	}
	if v := o.v.GetString("days"); v != "" {
		days, err := session.ParseDays(v)
		if err != nil {
			return fmt.Errorf("days: %w", err)
		}
		cfg.Days = []string{}
		for _, d := range days.Days() {
			cfg.Days = append(cfg.Days, d.String())
		}
	}
	return nil
}

// controller builds the UI state from the resolved configuration.
func (o *options) controller() *state.Controller {
	cfg := o.app.cfg
	theme, _ := cfg.ThemeValue()
	sortOpt, _ := cfg.SortValue()
	days, _ := cfg.DaySet()
	return state.New(
		state.WithTheme(theme),
		state.WithSort(sortOpt),
		state.WithDays(days),
		state.WithSearch(o.v.GetString("search")),
	)
}

func (o *options) clipboard() clipboard.Writer {
	clip, err := clipboard.New(o.app.cfg.Clipboard)
	if err != nil {
		slog.Warn("clipboard unavailable", "backend", o.app.cfg.Clipboard, "error", err)
		return nil
	}
	return clip
}

func (o *options) runDashboard() error {
	if o.v.GetBool("tmux") {
		if tmux.IsInsideTmux() {
			return o.openInTmux()
		}
		slog.Info("not inside tmux, starting in place")
	}

	return ui.Run(o.app.store.All(), ui.Options{
		Pipeline:   o.app.pipeline,
		Controller: o.controller(),
		Clipboard:  o.clipboard(),
	})
}

// openInTmux re-runs this command, minus --tmux, in a dedicated window.
func (o *options) openInTmux() error {
	mgr, err := tmux.New()
	if err != nil {
		return err
	}

	exe, err := os.Executable()
	if err != nil {
		return err
	}
	argv := []string{exe}
	for _, arg := range os.Args[1:] {
		if arg == "--tmux" || strings.HasPrefix(arg, "--tmux=") {
			continue
		}
		argv = append(argv, arg)
	}

	dir, _ := os.Getwd()
	window := tmux.WindowName(o.app.cfg.Tmux.Window)
	slog.Info("opening tmux window", "window", window)
	return mgr.OpenWindow(window, dir, shellquote.Join(argv...))
}
