package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tamrielworks/buildrand/internal/builds"
	"github.com/tamrielworks/buildrand/internal/catalog"
	"github.com/tamrielworks/buildrand/internal/config"
	"github.com/tamrielworks/buildrand/internal/controller"
	"github.com/tamrielworks/buildrand/internal/ui"
)

var (
	flagNumber      int
	flagClass       string
	flagLines       int
	flagInteractive bool
	flagPlain       bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buildrand",
		Short: "ESO build randomizer",
		Long: "Generates random skill line combinations following the " +
			"subclassing system rules: keep at least one original line, trade " +
			"out one or two lines, each replacement from a different class.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().IntVarP(&flagNumber, "number", "n", 3, "number of builds to generate")
	cmd.Flags().StringVarP(&flagClass, "class", "c", "", "generate builds for a specific class only")
	cmd.Flags().IntVarP(&flagLines, "lines", "l", 0, "number of skill lines to replace, 1 or 2 (default random)")
	cmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "run in interactive mode")
	cmd.Flags().BoolVar(&flagPlain, "plain", false, "force plain text output")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var baseClass catalog.ClassName
	if flagClass != "" {
		baseClass, err = catalog.ParseClassName(flagClass)
		if err != nil {
			return err
		}
	}

	presenter := newPresenter(cfg)
	service := builds.NewService(nil)

	if flagInteractive {
		return runInteractive(service, presenter)
	}
	return runBatch(service, presenter, baseClass)
}

func runInteractive(service builds.Service, presenter ui.Presenter) error {
	terminal := ui.NewIOTerminal()

	// Ctrl-C in cooked mode never reaches the key reader, so an immediate
	// signal-driven exit covers the line-buffered fallback. Raw-mode reads
	// see the 0x03 byte themselves and surface ui.ErrInterrupt instead.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Println()
		fmt.Println("Goodbye!")
		os.Exit(0)
	}()

	ctrl, err := controller.New(&controller.Config{
		Service:   service,
		Presenter: presenter,
		Terminal:  terminal,
	})
	if err != nil {
		return err
	}

	switch err := ctrl.Run(); {
	case errors.Is(err, ui.ErrInterrupt):
		fmt.Println()
		fmt.Println("Goodbye!")
	case errors.Is(err, ui.ErrQuit):
		terminal.Clear()
	case err != nil:
		return err
	}
	return nil
}

func runBatch(service builds.Service, presenter ui.Presenter, baseClass catalog.ClassName) error {
	fmt.Println("ESO Build Randomizer")
	if baseClass != "" {
		fmt.Printf("Generating builds for %s...\n\n", baseClass)
	} else {
		fmt.Println("Generating random builds...")
		fmt.Println()
	}

	if flagLines != 0 && (flagLines < 1 || flagLines > builds.MaxReplacedLines) {
		fmt.Println("Number of lines to replace should be 1 or 2.")
		return nil
	}

	batch, err := service.GenerateBatch(flagNumber, &builds.GenerateInput{
		BaseClass: baseClass,
		NumLines:  flagLines,
	})
	if err != nil {
		return err
	}

	presenter.RenderBatch(batch, fmt.Sprintf("%d Random ESO Builds", len(batch)))

	fmt.Println()
	fmt.Println("Tip: Use --help to see all options, or -i for interactive mode!")
	return nil
}

func newPresenter(cfg *config.Config) ui.Presenter {
	plain := flagPlain ||
		cfg.UI.NoColor ||
		cfg.UI.Style == config.StylePlain ||
		!term.IsTerminal(int(os.Stdout.Fd()))

	if plain {
		return ui.NewPlainPresenter(os.Stdout)
	}
	return ui.NewStyledPresenter(os.Stdout)
}

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	// User-facing failures are reported here; the process always exits 0.
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
	}
}
