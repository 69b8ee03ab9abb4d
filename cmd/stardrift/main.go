package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lumenfall/stardrift/config"
	"github.com/lumenfall/stardrift/content"
	"github.com/lumenfall/stardrift/engine"
	"github.com/lumenfall/stardrift/system"
)

var configFlag = flag.String("config", "stardrift.yaml", "Path to the YAML config file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := buildLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Infow("starting", "seed", seed, "tick_rate", cfg.TickRate)

	world := engine.NewWorld(seed, log)

	sites := content.GenerateSites(cfg.World.Systems, seed)
	scene := &world.Resources.Scene
	scene.Systems = make([]engine.SystemSite, len(sites))
	for i, site := range sites {
		scene.Systems[i] = engine.SystemSite{
			GalaxyX:  site.GalaxyX,
			GalaxyY:  site.GalaxyY,
			StarType: site.StarType,
		}
	}
	scene.SystemIndex = 0
	scene.Systems[0].Discovered = true

	loader := content.NewLoader(cfg.World, seed, sites)
	world.Resources.Loader = loader

	world.AddSystem(system.NewContentSystem(world, loader))
	world.AddSystem(system.NewMotionSystem(world))
	world.AddSystem(system.NewAISystem(world))
	world.AddSystem(system.NewProjectileSystem(world))
	world.AddSystem(system.NewShieldSystem(world))
	world.AddSystem(system.NewExplosionSystem(world))
	world.AddSystem(system.NewSceneSystem(world))
	world.AddSystem(system.NewDeathSystem(world))

	content.SpawnPlayer(world, cfg.World.SectionalShields)
	content.Apply(world, content.GeneratePlan(cfg.World, seed, 0, sites[0].StarType))

	run(world, cfg, log)

	log.Infow("final status", "status", world.Resources.Status.Snapshot())
}

// run drives the fixed-rate tick loop until a signal arrives or the
// configured frame limit is reached
func run(world *engine.World, cfg config.Config, log *zap.SugaredLogger) {
	dt := time.Second / time.Duration(cfg.TickRate)
	ticker := time.NewTicker(dt)
	defer ticker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case s := <-sig:
			log.Infow("shutting down", "signal", s.String())
			return
		case <-ticker.C:
			world.Step(dt)
			if cfg.MaxFrames > 0 && world.Resources.Time.Frame >= cfg.MaxFrames {
				log.Infow("frame limit reached", "frames", cfg.MaxFrames)
				return
			}
		}
	}
}

// buildLogger assembles a zap sugared logger writing to a rolling file,
// optionally teeing to stderr
func buildLogger(cfg config.LogConfig) (*zap.SugaredLogger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   false,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(lj), level),
	}
	if cfg.Console {
		cores = append(cores,
			zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stderr), level))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return logger.Sugar(), nil
}
