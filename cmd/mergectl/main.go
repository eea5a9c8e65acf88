// Command mergectl inspects Merge models and calls the Merge API from the
// command line.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"

	merge "github.com/merge-api/merge-go-client"
	"github.com/merge-api/merge-go-client/config"
	"github.com/merge-api/merge-go-client/middleware"
)

type CLI struct {
	Globals

	Version   VersionCmd   `cmd:"" help:"Print version information."`
	Schema    SchemaCmd    `cmd:"" help:"Print model descriptors as JSON."`
	Validate  ValidateCmd  `cmd:"" help:"Validate a JSON document against a model without binding it."`
	Roundtrip RoundtripCmd `cmd:"" help:"Parse a JSON document into a model and serialize it back."`
	List      ListCmd      `cmd:"" help:"List a resource from the Merge API."`
	Get       GetCmd       `cmd:"" help:"Retrieve one object from the Merge API."`
}

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `help:"Path to a YAML configuration file." env:"MERGE_CONFIG" type:"path" short:"c"`
	LogLevel string `help:"Log level, overriding the configuration." name:"log-level"`
	Debug    bool   `help:"Log with the development encoder at debug level." short:"d"`
	Output   string `help:"Output format." enum:"auto,pretty,compact" default:"auto" short:"o"`
}

// env carries the process streams so commands can be run against buffers.
type env struct {
	ctx context.Context
	in  io.Reader
	out io.Writer
	log *slog.Logger
}

func (e *env) printer(g *Globals) printer {
	return newPrinter(e.out, g.Output)
}

// client loads the configuration and builds an API client that logs through
// e.log.
func (e *env) client(g *Globals) (*merge.Client, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	c, err := merge.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return c.WithLogger(e.log).
		WithUserAgent(fmt.Sprintf("mergectl/%s", Version())).
		WithUnaryInterceptor(middleware.LoggingInterceptor(e.log)), nil
}

// newLogger returns a slog logger backed by zap. The returned func flushes
// buffered entries.
func newLogger(w zapcore.WriteSyncer, level slog.Level, development bool) (*slog.Logger, func()) {
	encCfg := zap.NewProductionEncoderConfig()
	enc := zapcore.NewJSONEncoder(encCfg)
	if development {
		encCfg = zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, w, zapLevel(level))
	return slog.New(zapslog.NewHandler(core)), func() { _ = core.Sync() }
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l < slog.LevelInfo:
		return zapcore.DebugLevel
	case l < slog.LevelWarn:
		return zapcore.InfoLevel
	case l < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// logLevel picks the level from the flags, falling back to the configuration
// file and MERGE_LOG_LEVEL.
func logLevel(g *Globals) slog.Level {
	if g.Debug {
		return slog.LevelDebug
	}
	name := g.LogLevel
	if name == "" {
		name = os.Getenv("MERGE_LOG_LEVEL")
	}
	if name == "" && g.Config != "" {
		if f, err := os.Open(g.Config); err == nil {
			cfg, _ := config.Decode(f)
			f.Close()
			name = cfg.LogLevel
		}
	}
	l, err := config.Config{LogLevel: name}.SlogLevel()
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("mergectl"),
		kong.Description("Inspect Merge models and call the Merge unified API."),
		kong.UsageOnError(),
	)

	logger, flush := newLogger(zapcore.Lock(os.Stderr), logLevel(&cli.Globals), cli.Debug)
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := &env{ctx: ctx, in: os.Stdin, out: os.Stdout, log: logger}
	err := kctx.Run(&cli.Globals, e)
	kctx.FatalIfErrorf(err)
}
