package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/easel/audio"
	"github.com/lixenwraith/easel/config"
	"github.com/lixenwraith/easel/display"
	"github.com/lixenwraith/easel/evolve"
	"github.com/lixenwraith/easel/runner"
	"github.com/lixenwraith/easel/state"
)

var (
	imagesFlag     = flag.String("images", "", "Directory of target photographs (required)")
	configFlag     = flag.String("config", "", "Path to easel.toml overrides")
	logFlag        = flag.String("log", "", "Write diagnostics to this file")
	seedFlag       = flag.Uint64("seed", 0, "Random seed (0 = random)")
	muteFlag       = flag.Bool("mute", false, "Disable the image-completion chime")
	windowedFlag   = flag.Bool("windowed", false, "Cap the drawing area instead of using the whole terminal")
	diffFlag       = flag.String("diff", "", "Difference metric: deltae or mse (overrides config)")
	iterationsFlag = flag.Bool("trace", false, "Log every generation (needs -log)")
)

func main() {
	flag.Parse()

	if *imagesFlag == "" {
		fmt.Fprintln(os.Stderr, "easel: -images directory is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "easel: %v\n", err)
			os.Exit(1)
		}
	}
	if *diffFlag != "" {
		cfg.DiffMethod = *diffFlag
	}
	if *windowedFlag {
		cfg.Fullscreen = false
	}
	method, err := cfg.Method()
	if err != nil {
		fmt.Fprintf(os.Stderr, "easel: %v\n", err)
		os.Exit(1)
	}

	// Diagnostics go to a file; stdout belongs to the screen
	log.SetOutput(os.Stderr)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "easel: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	shared := state.New()

	disp, err := display.New(shared, cfg.Fullscreen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "easel: failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the stack so
	// the trace is readable after a crash
	defer func() {
		if r := recover(); r != nil {
			disp.Fini()
			fmt.Fprintf(os.Stderr, "\nEASEL CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	chimer := &audio.Chimer{}
	if !*muteFlag && !cfg.Mute {
		if err := chimer.Init(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without sound)", err)
		}
	}
	defer chimer.Close()

	mutator := evolve.NewMutator(*seedFlag)

	logf := func(string, ...any) {}
	if *logFlag != "" {
		if *iterationsFlag {
			logf = log.Printf
		} else {
			logf = infoOnly(log.Printf)
		}
	}

	run, err := runner.New(runner.Config{
		ImageDir:          *imagesFlag,
		DiffMethod:        method,
		MaxTimePerImage:   cfg.MaxTimePerImage(),
		MinStepTime:       cfg.MinStepTime(),
		WaitBetweenImages: cfg.WaitBetweenImages(),
		Iterate:           mutator.Iterate,
		Finished:          evolve.Finished,
		SetBrush:          mutator.SetBrush,
		WindowSize:        disp.WindowSize,
		OnImageDone:       chimer.Chime,
		Logf:              logf,
		Seed:              *seedFlag,
	}, shared)
	if err != nil {
		disp.Fini()
		fmt.Fprintf(os.Stderr, "easel: %v\n", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		disp.Run()
	}()

	// Drive no state into the presenter until it is up
	<-shared.Ready()

	runErr := run.Run()
	shared.RequestStop()
	wg.Wait()
	disp.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "easel: %v\n", runErr)
		os.Exit(1)
	}
}

// infoOnly drops the per-generation trace lines, keeping image-level
// diagnostics
func infoOnly(printf func(string, ...any)) func(string, ...any) {
	return func(format string, args ...any) {
		if len(format) >= 4 && format[:4] == "gen_" {
			return
		}
		printf(format, args...)
	}
}
