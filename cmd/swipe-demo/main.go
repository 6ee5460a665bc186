package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/swipeactions/internal/config"
	"github.com/ytget/swipeactions/internal/logging"
	"github.com/ytget/swipeactions/internal/platform"
	"github.com/ytget/swipeactions/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID    = "com.ytget.swipeactions"
	AppName  = "Swipe Actions"
	WindowID = "main"
)

// options holds the command line flags
type options struct {
	transition  string
	orientation string
	expansion   string
	configPath  string
	verbose     bool
}

func main() {
	if err := newRootCmd(run).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(runFn func(cmd *cobra.Command, opts *options) error) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "swipe-demo",
		Short:        "Swipe Actions demo",
		Long:         `An inbox whose rows reveal action buttons when dragged sideways.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := logging.New(os.Stderr, logging.LevelFor(opts.verbose))
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFn(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.transition, "transition", "", "transition style: drag, reveal or border")
	flags.StringVar(&opts.orientation, "orientation", "", "edge of the primary actions: right or left")
	flags.StringVar(&opts.expansion, "expansion", "", "expansion style: none, selection, destructive or fill")
	flags.StringVarP(&opts.configPath, "config", "c", "", "TOML or YAML layout options file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	logger := logging.FromContext(cmd.Context())
	logger.Info("starting", "app", AppName, "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme(ui.DefaultPalette()))

	settings := config.NewSettings(myApp)
	if err := applyOverrides(cmd, opts, settings); err != nil {
		return err
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	registry := platform.NewWindowRegistry()
	registry.Register(WindowID, myWindow)
	defer registry.Unregister(WindowID)
	safeArea := platform.WindowSafeArea{Registry: registry, WindowID: WindowID}

	// Create and setup UI
	ui.NewDemoUI(myWindow, settings, logger, safeArea, platform.NewLogFeedback(logger))

	// Show and run
	myWindow.ShowAndRun()
	return nil
}

// applyOverrides layers the options file over the stored preferences, then
// the flags that were set over both
func applyOverrides(cmd *cobra.Command, opts *options, settings *config.Settings) error {
	logger := logging.FromContext(cmd.Context())

	if opts.configPath != "" {
		layout, err := config.LoadOptionsFile(opts.configPath)
		if err != nil {
			return err
		}
		settings.Apply(layout)
		logger.Info("options file applied", "path", opts.configPath)
	}

	flags := cmd.Flags()
	override := config.OptionsFile{}
	if flags.Changed("transition") {
		override.Transition = opts.transition
	}
	if flags.Changed("orientation") {
		override.Orientation = opts.orientation
	}
	if flags.Changed("expansion") {
		override.Expansion = opts.expansion
	}
	layout, err := override.Layout()
	if err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	if override.Transition != "" {
		settings.SetTransitionStyle(layout.Options.TransitionStyle)
	}
	if override.Orientation != "" {
		settings.SetOrientation(layout.Orientation)
	}
	if override.Expansion != "" {
		name := config.ExpansionNone
		if style := layout.Options.ExpansionStyle; style != nil {
			name = style.Name
		}
		settings.SetExpansionStyleName(name)
	}
	return nil
}
