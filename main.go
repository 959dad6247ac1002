package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"searchgrip/internal/backend"
	"searchgrip/internal/config"
	"searchgrip/internal/domain"
	"searchgrip/internal/eventbus"
	"searchgrip/internal/logging"
	"searchgrip/internal/ui"
	"searchgrip/internal/ui/services/search"
)

func main() {
	var (
		configPath string
		apiURL     string
		envFile    string
		logLevel   string
		logPath    string
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&apiURL, "api", "", "Search backend URL (overrides config and env)")
	flag.StringVar(&envFile, "env", ".env", "Optional dotenv file with SEARCHGRIP_* variables")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&logPath, "log", "searchgrip.log", "Log file")
	flag.Parse()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New()
	defer bus.Close()

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, existing := loadOrCreateConfig(configSvc, configPath)
	// env and flag overrides are not written back to the file
	fileCfg := *cfg

	if err := config.ApplyEnv(cfg, envFile); err != nil {
		fmt.Printf("Error reading environment: %v\n", err)
		os.Exit(1)
	}
	if apiURL != "" {
		cfg.Backend.URL = apiURL
	}
	if logLevel == "" {
		logLevel = cfg.UISettings.LogLevel
	}

	logFile, err := logging.SetupFile(logPath, logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	} else {
		defer logFile.Close()
	}
	log := logging.L()
	log.WithField("backend", cfg.Backend.URL).Info("starting searchgrip")

	sources, errs := cfg.SourceFilter()
	for _, err := range errs {
		log.WithError(err).Warn("ignoring configured source")
	}

	// Persist filter changes made from the UI
	var saveMu sync.Mutex
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		saveMu.Lock()
		defer saveMu.Unlock()

		fileCfg.Backend.SearchType = string(event.SearchType)
		fileCfg.Sources = make([]string, len(event.Sources))
		for i, s := range event.Sources {
			fileCfg.Sources[i] = string(s)
		}
		if err := configSvc.Save(&fileCfg); err != nil {
			log.WithError(err).Error("failed to save config")
			bus.Publish(eventbus.ErrorEvent{Message: "Failed to save settings", Err: err})
		}
	})

	searcher := backend.NewHTTPSearcher(
		cfg.Backend.URL,
		cfg.Backend.APIKey,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second,
	)
	searchSvc := search.NewService(bus, searcher, search.Settings{
		Collection: cfg.Backend.Collection,
		Limit:      cfg.Backend.ResultLimit,
	}, domain.ParseSearchType(cfg.Backend.SearchType), sources)

	uiModel := ui.NewModel(ctx, cfg, bus, searchSvc)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Surface failures reported on the bus
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: existing})
	if os.Getenv("SEARCHGRIP_E2E_TEST") == "1" {
		fmt.Println("__READY__")
	}

	log.Info("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.WithError(err).Error("Error running program")
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	// flush pending settings saves while the log file is still open
	bus.Close()
	log.Info("UI exited normally")
}

// loadOrCreateConfig loads the config file, writing defaults on first run.
// The bool reports whether a config already existed.
func loadOrCreateConfig(configSvc config.ConfigService, configPath string) (*config.Config, bool) {
	cfg, err := configSvc.LoadFromPath(configPath)
	if err == nil {
		return cfg, true
	}
	if !errors.Is(err, config.ErrConfigNotFound) {
		fmt.Fprintf(os.Stderr, "Ignoring unreadable config %s: %v\n", configPath, err)
		return config.DefaultConfig(), true
	}

	cfg, err = configSvc.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if err := configSvc.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save config: %v\n", err)
	}
	return cfg, false
}
