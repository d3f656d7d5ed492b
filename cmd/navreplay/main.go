package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/alexflint/go-arg"
	"github.com/common-nighthawk/go-figure"
	"github.com/jrsteele09/go-webview-auth/internal/config"
	"github.com/jrsteele09/go-webview-auth/internal/logging"
)

type args struct {
	Script   string `arg:"positional,required" help:"YAML navigation script, - for stdin"`
	LogLevel string `arg:"--log-level" help:"overrides LOG_LEVEL"`
	LogFile  string `arg:"--log-file" help:"overrides LOG_FILE"`
	Quiet    bool   `arg:"-q,--quiet" help:"do not print the banner"`
}

func (args) Description() string {
	return "Replays a navigation script through an embedded-browser authorization session and prints the result."
}

func main() {
	var a args
	arg.MustParse(&a)

	if err := run(a); err != nil {
		log.Fatalf("Error running replay: %s\n", err)
	}
}

func run(a args) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c, err := config.New()
	if err != nil {
		return err
	}
	if !a.Quiet {
		displayAppname(c.GetAppName())
	}

	logCfg := config.Log{
		Level:      c.GetLogLevel(),
		Format:     c.GetLogFormat(),
		File:       c.GetLogFile(),
		MaxSizeMB:  c.GetLogMaxSizeMB(),
		MaxBackups: c.GetLogMaxBackups(),
	}
	if a.LogLevel != "" {
		logCfg.Level = a.LogLevel
	}
	if a.LogFile != "" {
		logCfg.File = a.LogFile
	}
	logger, closer, err := logging.New(logCfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	sc, err := readScript(a.Script)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := replay(ctx, sc, c, logger.With().Str("env", c.GetEnv()).Logger())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

func readScript(path string) (script, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return script{}, fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		r = f
	}
	return loadScript(r)
}

func displayAppname(appname string) {
	// stdout carries the result JSON
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	fmt.Fprintln(os.Stderr, myFigure.String())
}
