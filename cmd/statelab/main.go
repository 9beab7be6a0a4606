package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easeaico/project-texas/internal/config"
	"github.com/easeaico/project-texas/internal/mood"
	"github.com/easeaico/project-texas/internal/prompt"
	"github.com/easeaico/project-texas/internal/repository"
	"github.com/easeaico/project-texas/internal/utils"
)

func main() {
	cfg := config.Load()
	params, err := cfg.MoodParams()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n正在关闭...")
		cancel()
		time.Sleep(500 * time.Millisecond)
		os.Exit(0)
	}()

	var states mood.StateRepo
	var history mood.HistorySink
	var moments *repository.MoodHistoryRepo
	switch {
	case cfg.DatabaseURL != "" && cfg.StateBackend == "kv":
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer pool.Close()
		states = repository.NewKVStateRepo(repository.NewPgxKV(pool), cfg.CharacterKey)
	case cfg.DatabaseURL != "":
		store, err := repository.NewStore(ctx, cfg.DatabaseURL, cfg.CharacterKey)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer store.Close()
		states = store.States
		history = store.History
		moments = store.History
	default:
		log.Println("DATABASE_URL not set, using in-memory state store")
		states = repository.NewKVStateRepo(repository.NewMemoryKV(), cfg.CharacterKey)
	}

	service, err := mood.NewService(params, states, history)
	if err != nil {
		log.Fatalf("failed to create mood service: %v", err)
	}
	tracker, err := mood.NewCycleTracker(params)
	if err != nil {
		log.Fatalf("failed to create cycle tracker: %v", err)
	}

	fmt.Println("statelab — interactive state machine console")
	fmt.Println(`commands:
  [P+1.0 A-0.5 D+0.1 L+5]   apply a turn delta tag
  flirt|comfort|attack <n>  apply an intent with intensity 1-5
  release                   fire a release event
  tick <hours>              simulate time passage
  status                    print the current directive
  recall                    find past moments closest to the current mood
  reset                     restore neutral defaults
  quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return
		case "status":
			printDirective(ctx, service, states, time.Now())
		case "recall":
			printSimilarMoments(ctx, states, moments)
		case "reset":
			if err := service.Reset(ctx, time.Now()); err != nil {
				fmt.Printf("reset failed: %v\n", err)
			}
		case "release":
			if _, err := service.ApplyRelease(ctx, time.Now()); err != nil {
				fmt.Printf("release failed: %v\n", err)
				continue
			}
			printDirective(ctx, service, states, time.Now())
		case "tick":
			hours := 1.0
			if len(fields) > 1 {
				if parsed, err := strconv.ParseFloat(fields[1], 64); err == nil {
					hours = parsed
				}
			}
			now := time.Now().Add(time.Duration(hours * float64(time.Hour)))
			if err := service.Tick(ctx, now); err != nil {
				fmt.Printf("tick failed: %v\n", err)
				continue
			}
			printDirective(ctx, service, states, now)
		case "flirt", "comfort", "attack":
			applyIntent(ctx, service, states, tracker, fields)
		default:
			applyTag(ctx, service, line)
		}
	}
}

func applyTag(ctx context.Context, service *mood.Service, line string) {
	tag, release, _, found := utils.ExtractStateTag(line)
	if !found && !release {
		fmt.Println("unrecognized input, expected a [P.. A.. D.. L..] tag or a command")
		return
	}
	batch := mood.DeltaBatch{Release: release}
	if found {
		batch.Deltas = []mood.Delta{{
			Pleasure:     tag.Pleasure,
			Arousal:      tag.Arousal,
			Dominance:    tag.Dominance,
			HasDominance: tag.HasDominance,
			Lust:         tag.Lust,
		}}
	}
	d, err := service.ApplyTurn(ctx, batch, time.Now())
	if err != nil {
		fmt.Printf("turn failed: %v\n", err)
		return
	}
	fmt.Printf("[%s] %s\n", d.Level, d.Text)
}

func applyIntent(ctx context.Context, service *mood.Service, states mood.StateRepo, tracker *mood.CycleTracker, fields []string) {
	intensity := 1.0
	if len(fields) > 1 {
		if parsed, err := strconv.ParseFloat(fields[1], 64); err == nil {
			intensity = parsed
		}
	}
	rec, err := states.Get(ctx)
	if err != nil {
		fmt.Printf("failed to read state: %v\n", err)
		return
	}
	cycle, err := tracker.Snapshot(rec.Biology, time.Now())
	if err != nil {
		fmt.Printf("failed to derive cycle: %v\n", err)
		return
	}

	intent := mood.Intent(strings.ToUpper(fields[0][:1]) + fields[0][1:])
	batch := mood.IntentImpact(intent, intensity, rec.Biology, cycle)
	d, err := service.ApplyTurn(ctx, batch, time.Now())
	if err != nil {
		fmt.Printf("turn failed: %v\n", err)
		return
	}
	fmt.Printf("[%s] %s\n", d.Level, d.Text)
}

func printSimilarMoments(ctx context.Context, states mood.StateRepo, moments *repository.MoodHistoryRepo) {
	if moments == nil {
		fmt.Println("recall needs the database-backed history store")
		return
	}
	rec, err := states.Get(ctx)
	if err != nil {
		fmt.Printf("failed to read state: %v\n", err)
		return
	}
	results, err := moments.SimilarMoments(ctx, rec.Mood, 3)
	if err != nil {
		fmt.Printf("recall failed: %v\n", err)
		return
	}
	if len(results) == 0 {
		fmt.Println("no recorded moments yet")
		return
	}
	for _, m := range results {
		fmt.Printf("%s  %s/%s  P:%.1f A:%.1f D:%.1f  Lust:%.0f  距离 %.2f\n",
			m.CreatedAt.Format("01-02 15:04"), m.Level, m.Quadrant,
			m.Mood.Pleasure, m.Mood.Arousal, m.Mood.Dominance, m.Lust, m.Distance)
	}
}

func printDirective(ctx context.Context, service *mood.Service, states mood.StateRepo, now time.Time) {
	rec, err := states.Get(ctx)
	if err != nil {
		fmt.Printf("failed to read state: %v\n", err)
		return
	}
	d, err := service.Directive(ctx, now)
	if err != nil {
		fmt.Printf("arbitration failed: %v\n", err)
		return
	}
	fmt.Println(prompt.BuildStatusInjection(rec, d))
}
