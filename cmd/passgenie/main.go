package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/passgenie/passgenie-go/internal/config"
	"github.com/passgenie/passgenie-go/internal/crypto"
	"github.com/passgenie/passgenie-go/internal/handler"
	"github.com/passgenie/passgenie-go/internal/platform"
	"github.com/passgenie/passgenie-go/internal/service"
	"github.com/passgenie/passgenie-go/internal/tui"
)

type flags struct {
	length  int
	classes string
	count   int
	print   bool
	html    bool
	seed    string
}

func parseFlags(fs *flag.FlagSet, args []string) (flags, error) {
	var f flags
	fs.IntVar(&f.length, "length", 0, "password length (default from PASSGENIE_LENGTH)")
	fs.StringVar(&f.classes, "classes", "", "comma separated classes: lower,upper,digits,symbols")
	fs.IntVar(&f.count, "count", 1, "number of passwords to print with -print")
	fs.BoolVar(&f.print, "print", false, "print passwords instead of starting the terminal UI")
	fs.BoolVar(&f.html, "html", false, "with -print, output the history as an HTML list")
	fs.StringVar(&f.seed, "seed", "", "hex seed for reproducible output (not secure)")
	err := fs.Parse(args)
	return f, err
}

// apply overrides configuration values with the flags that were set.
func (f flags) apply(cfg *config.Config) error {
	if f.length != 0 {
		cfg.Length = f.length
	}
	if f.classes != "" {
		classes, err := crypto.ParseClasses(f.classes)
		if err != nil {
			return err
		}
		cfg.Classes = classes
	}
	if f.seed != "" {
		cfg.Random = crypto.SourceSeeded
		cfg.Seed = f.seed
	}
	return cfg.Validate()
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	f, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err == nil {
		err = f.apply(&cfg)
	}
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, closer, err := cfg.Logger(!f.print)
	if err != nil {
		slog.Error("logger setup failed", "error", err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, f, os.Stdout); err != nil {
		slog.Error("passgenie failed", "error", err)
		fmt.Fprintln(os.Stderr, "passgenie:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, f flags, out io.Writer) error {
	src, err := crypto.NewSource(cfg.Random, cfg.Seed, cfg.AllowWeak)
	if err != nil {
		return fmt.Errorf("selecting random source: %w", err)
	}
	slog.Info("random source ready", "kind", cfg.Random, "secure", src.Secure())

	svc := service.NewGeneratorService(src)

	if f.print {
		return printPasswords(ctx, svc, cfg, f, out)
	}

	notifier := tui.NewNotifier()
	ctrl := handler.NewController(svc, handler.NewState(cfg.Length, cfg.Classes), platform.NewSystemClipboard(), notifier)
	embedded := platform.Embedded(ctx, platform.NewEnvDetector(cfg.Embedded))

	return tui.Run(ctx, ctrl, notifier, tui.Options{
		Labels:      handler.LabelsFor(embedded),
		GenerateRPS: cfg.GenerateRPS,
	})
}

// printPasswords generates f.count passwords without the terminal UI. The
// configured length is used as is, outside the slider bounds.
func printPasswords(ctx context.Context, svc *service.GeneratorService, cfg config.Config, f flags, out io.Writer) error {
	history := service.NewHistory()

	for i := 0; i < f.count; i++ {
		resp, err := svc.GenerateClasses(cfg.Length, cfg.Classes)
		if err != nil {
			return err
		}
		history.Push(resp.Password)

		if !f.html {
			fmt.Fprintf(out, "%s\t%s\n", resp.Password, resp.Strength)
		}
	}

	if f.html {
		fmt.Fprint(out, handler.RenderHistoryHTML(handler.HistoryItems(history.Entries())))
	}
	slog.DebugContext(ctx, "printed passwords", "count", f.count)
	return nil
}
