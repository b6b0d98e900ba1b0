package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/thiagokokada/powerprompt/internal/buildinfo"
	"github.com/thiagokokada/powerprompt/internal/git"
	"github.com/thiagokokada/powerprompt/internal/prompt"
)

// environment is what the prompt reads from the running process.
type environment struct {
	stdout  io.Writer
	stderr  io.Writer
	getwd   func() (string, error)
	homeDir func() (string, error)
	now     func() time.Time
	resolve func(path string) (git.State, bool)
}

func Run() error {
	return run(os.Args[1:], environment{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		getwd:   os.Getwd,
		homeDir: os.UserHomeDir,
		now:     time.Now,
		resolve: git.Resolve,
	})
}

func run(args []string, env environment) error {
	fs := flag.NewFlagSet("powerprompt", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	verbose := fs.Bool("verbose", false, "log why optional prompt parts were left out")
	showVersion := fs.Bool("version", false, "print version information and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: powerprompt [--verbose] [--version] [exit-code [duration-ms]]")
		fs.PrintDefaults()
	}
	flags, positional := splitArgs(args)
	if err := fs.Parse(flags); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Fprintln(env.stdout, buildinfo.VersionWithRevision())
		return nil
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(env.stderr, &slog.HandlerOptions{Level: level})))

	cwd, err := env.getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	home, err := env.homeDir()
	if err != nil {
		slog.Debug("home directory unavailable", slog.Any("error", err))
		home = ""
	}
	return prompt.Write(env.stdout, prompt.Config{
		Args:    positional,
		WorkDir: cwd,
		HomeDir: home,
		Now:     env.now(),
		Resolve: env.resolve,
	})
}

// splitArgs separates leading "--name" flags from the positional arguments.
// Only the double-dash form is treated as a flag so a negative exit code
// like "-1" stays positional; "--" ends the flags explicitly.
func splitArgs(args []string) (flags, positional []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		if !strings.HasPrefix(arg, "--") {
			return args[:i], args[i:]
		}
	}
	return args, nil
}
