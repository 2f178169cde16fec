package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Forgingalex/rei/internal/memory"
	"github.com/Forgingalex/rei/internal/models"
	"github.com/Forgingalex/rei/internal/setup"
)

func main() {
	// Logs stay on stderr at warn level so they never mix into the
	// conversation on stdout.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.WarnLevel)
	logger := log.Logger

	_ = godotenv.Load()

	ctx := context.Background()

	deps, err := setup.Wire(ctx, setup.LoadConfig(), printProgress, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire deliberation stack")
	}

	// Ctrl-C exits immediately, mid-deliberation included.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("\n\nshutdown requested. bye.")
		os.Exit(0)
	}()

	name := userName()
	printBanner(name, deps)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("\n%s@term:~$ ", name)
		if !scanner.Scan() {
			fmt.Println("\nsee ya.")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit", "q", "/quit":
			fmt.Println("\nsee ya.")
			return
		case "clear", "cls":
			fmt.Print("\033[2J\033[H")
			continue
		}

		if strings.HasPrefix(input, "/") {
			runCommand(ctx, deps, input)
			continue
		}

		deliberate(ctx, deps, input)
	}
}

func deliberate(ctx context.Context, deps *setup.Dependencies, prompt string) {
	fmt.Println("\nasking the council...")

	verdict, err := deps.Council.Deliberate(ctx, prompt)
	if err != nil {
		fmt.Printf("\nerror: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println(verdict.Response)

	boundaryCheck := "clean"
	if len(verdict.ViolatedBoundaries) > 0 {
		boundaryCheck = "hit"
	}
	fmt.Printf("\n[trust: %d%% | boundary check: %s]\n", verdict.TrustScore, boundaryCheck)
	for _, flag := range verdict.Audit.Flags {
		fmt.Printf("  flag: %s\n", flag)
	}
}

// printProgress streams per-member completions while a round is in
// flight. Invoked concurrently from the dispatcher.
func printProgress(r models.ProviderResponse) {
	switch {
	case strings.HasPrefix(r.Response, "error:"):
		fmt.Printf("  %s failed\n", r.Provider)
	case strings.HasPrefix(r.Response, "timeout:"):
		fmt.Printf("  %s timed out\n", r.Provider)
	default:
		fmt.Printf("  %s answered in %s\n", r.Provider, r.Latency)
	}
}

func runCommand(ctx context.Context, deps *setup.Dependencies, input string) {
	fields := strings.Fields(input)
	switch fields[0] {
	case "/boundary":
		runBoundaryCommand(ctx, deps.Store, fields[1:])
	case "/strict":
		runStrictCommand(deps, fields[1:])
	case "/help":
		printUsage()
	default:
		fmt.Printf("unknown command: %s\n", fields[0])
		printUsage()
	}
}

func runBoundaryCommand(ctx context.Context, store memory.Store, args []string) {
	if len(args) == 0 {
		printUsage()
		return
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			fmt.Println("usage: /boundary add <text>")
			return
		}
		text := strings.Join(args[1:], " ")
		id, err := store.AddBoundary(ctx, text, "", models.SeverityFirm)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Printf("boundary recorded (%s)\n", id)

	case "list":
		boundaries, err := store.AllBoundaries(ctx)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		if len(boundaries) == 0 {
			fmt.Println("no boundaries recorded.")
			return
		}
		for _, b := range boundaries {
			fmt.Printf("  %s  [%s]  %q  (checked %d times)\n", b.ID, b.Severity, b.Text, b.TimesChecked)
		}

	case "remove":
		if len(args) < 2 {
			fmt.Println("usage: /boundary remove <id>")
			return
		}
		if err := store.RemoveBoundary(ctx, args[1]); err != nil {
			if errors.Is(err, memory.ErrBoundaryNotFound) {
				fmt.Printf("no boundary with id %s\n", args[1])
				return
			}
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Println("boundary removed.")

	case "stats":
		stats, err := store.Stats(ctx)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		fmt.Printf("boundaries held: %d\n", stats.TotalBoundaries)

	default:
		printUsage()
	}
}

func runStrictCommand(deps *setup.Dependencies, args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		fmt.Println("usage: /strict on|off")
		return
	}
	deps.Auditor.SetStrict(args[0] == "on")
	fmt.Printf("strict mode %s.\n", args[0])
}

func printUsage() {
	fmt.Println("commands:")
	fmt.Println("  /boundary add <text>     remember something you've declined")
	fmt.Println("  /boundary list           show recorded boundaries")
	fmt.Println("  /boundary remove <id>    forget a boundary")
	fmt.Println("  /boundary stats          boundary count")
	fmt.Println("  /strict on|off           toggle strict auditing")
	fmt.Println("  /quit                    leave")
}

func userName() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "friend"
	}
	return u.Username
}

func printBanner(name string, deps *setup.Dependencies) {
	members := make([]string, 0, len(deps.Members))
	for _, m := range deps.Members {
		members = append(members, m.Name)
	}

	fmt.Println("\nrei v1.0 connected.")
	fmt.Println(strings.Repeat("-", 30))
	typePrint(greeting(name))
	typePrint(fmt.Sprintf("systems ready. %s standing by.", strings.Join(members, " and ")))
	fmt.Println(strings.Repeat("-", 30))
}

func greeting(name string) string {
	hour := time.Now().Hour()
	switch {
	case hour >= 5 && hour < 12:
		return fmt.Sprintf("good morning %s.", name)
	case hour >= 12 && hour < 17:
		return fmt.Sprintf("hey %s, good afternoon.", name)
	case hour >= 17 && hour < 22:
		return fmt.Sprintf("good evening %s.", name)
	default:
		return fmt.Sprintf("hey %s, you're up late.", name)
	}
}

// typePrint writes one rune at a time for the slow-terminal feel.
func typePrint(text string) {
	for _, r := range text {
		fmt.Print(string(r))
		time.Sleep(10 * time.Millisecond)
	}
	fmt.Println()
}
