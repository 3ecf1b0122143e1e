package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/oasis-voice/oasis/internal/audio"
	"github.com/oasis-voice/oasis/internal/config"
	"github.com/oasis-voice/oasis/internal/controller"
	"github.com/oasis-voice/oasis/internal/conversation"
	"github.com/oasis-voice/oasis/internal/estate"
	"github.com/oasis-voice/oasis/internal/grounding"
	"github.com/oasis-voice/oasis/internal/log"
	"github.com/oasis-voice/oasis/internal/state"
	"github.com/oasis-voice/oasis/internal/tools"
	"github.com/oasis-voice/oasis/internal/transport"
)

var audioOutPath string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive concierge session",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	rootCmd.PersistentFlags().StringVar(&audioOutPath, "audio-out", "",
		"write the model's PCM speech stream to this file")
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger := log.New(log.Config{Level: parseLogLevel(cfg.LogLevel), JSON: cfg.LogJSON})

	systemPrompt, err := cfg.SystemPrompt()
	if err != nil {
		return fmt.Errorf("load system prompt: %w", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("create genai client: %w", err)
	}

	sess, err := buildSession(ctx, cfg, client, logger)
	if err != nil {
		return err
	}
	defer sess.close()

	sess.controller.SetConfig(transport.Config{
		Model:        cfg.LiveModel,
		Voice:        cfg.Voice,
		SystemPrompt: systemPrompt,
		Declarations: tools.Declarations(),
	})

	if err := sess.controller.Connect(ctx); err != nil {
		return err
	}

	return repl(ctx, sess)
}

// session bundles the wired-up components for one chat run.
type session struct {
	controller *controller.Controller
	transport  transport.Transport
	tools      *tools.Context
	audioFile  *os.File
}

func (s *session) close() {
	s.controller.Close()
	if s.audioFile != nil {
		_ = s.audioFile.Close()
	}
}

func buildSession(_ context.Context, cfg *config.Config, client *genai.Client, logger log.Logger) (*session, error) {
	live, err := transport.NewLive(client, logger.With("component", "transport"))
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	search, err := grounding.NewSearch(client, cfg.SearchModel, logger.With("component", "search"))
	if err != nil {
		return nil, fmt.Errorf("create search provider: %w", err)
	}
	maps, err := grounding.NewMaps(cfg.APIKey, cfg.SearchModel, logger.With("component", "maps"))
	if err != nil {
		return nil, fmt.Errorf("create maps provider: %w", err)
	}
	places, err := grounding.NewPlacesClient(cfg.APIKey, logger.With("component", "places"))
	if err != nil {
		return nil, fmt.Errorf("create places client: %w", err)
	}

	favoritesPath, err := state.StatePath("favorites.json")
	if err != nil {
		return nil, fmt.Errorf("resolve state dir: %w", err)
	}
	favorites, err := state.LoadFavorites(favoritesPath)
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}

	tc := &tools.Context{
		Log:        conversation.NewLog(),
		Map:        state.NewMap(),
		Profile:    state.NewProfile(),
		Favorites:  favorites,
		Dataset:    estate.Default(),
		Maps:       maps,
		Search:     search,
		Places:     places,
		MapPadding: cfg.MapPadding,
		Logger:     logger.With("component", "tools"),
	}

	var sink controller.AudioSink = audio.Discard{}
	var audioFile *os.File
	if audioOutPath != "" {
		audioFile, err = os.Create(audioOutPath)
		if err != nil {
			return nil, fmt.Errorf("open audio output: %w", err)
		}
		sink = audio.NewWriter(audioFile, logger.With("component", "audio"))
	}

	ctrl := controller.New(controller.Options{
		Transport:  live,
		Dispatcher: tools.NewDispatcher(tools.DefaultRegistry(), tc),
		Tools:      tc,
		Log:        tc.Log,
		Map:        tc.Map,
		Profile:    tc.Profile,
		Audio:      sink,
		Logger:     logger.With("component", "controller"),
	})

	return &session{controller: ctrl, transport: live, tools: tc, audioFile: audioFile}, nil
}

// repl reads user lines, streams them into the session and prints agent
// and system turns as they finalize.
func repl(ctx context.Context, sess *session) error {
	out := os.Stdout

	sess.tools.Log.OnTurn(func(turn conversation.Turn) {
		switch turn.Role {
		case conversation.RoleAgent:
			fmt.Fprintf(out, "\nOasis: %s\n> ", turn.Text)
		case conversation.RoleSystem:
			fmt.Fprintf(out, "\n[system] %s\n> ", turn.Text)
		}
	})
	sess.tools.Log.OnAwaitingChange(func(awaiting bool) {
		if awaiting {
			fmt.Fprint(out, "\n... \n")
		}
	})

	fmt.Fprintln(out, "Connected. Type a message, or /profile, /favorites, /quit.")
	fmt.Fprint(out, "> ")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case line == "/quit" || line == "/exit":
			sess.controller.Disconnect()
			return nil
		case line == "/profile":
			printProfile(out, sess.tools.Profile)
		case line == "/favorites":
			printFavorites(out, sess.tools.Favorites)
		case line == "/reconnect":
			if err := sess.controller.Connect(ctx); err != nil {
				fmt.Fprintf(out, "reconnect failed: %v\n", err)
			}
		default:
			sess.tools.Log.AddTurn(conversation.Turn{
				Role:    conversation.RoleUser,
				Text:    line,
				IsFinal: true,
			})
			if err := sess.transport.SendRealtimeText(line); err != nil {
				fmt.Fprintf(out, "send failed: %v\n", err)
			}
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func printProfile(out *os.File, profile *state.Profile) {
	all := profile.All()
	if len(all) == 0 {
		fmt.Fprintln(out, "Profile is empty.")
		return
	}
	for _, field := range state.ProfileFields {
		if v, ok := all[field]; ok {
			fmt.Fprintf(out, "  %s: %s\n", field, v)
		}
	}
}

func printFavorites(out *os.File, favorites *state.Favorites) {
	all := favorites.All()
	if len(all) == 0 {
		fmt.Fprintln(out, "No favorites yet.")
		return
	}
	for _, fav := range all {
		fmt.Fprintf(out, "  %s (%s) - %s %d\n", fav.Name, fav.Community, fav.CurrencyCode, fav.StartingPrice)
		if len(fav.Features) > 0 {
			fmt.Fprintf(out, "    features: %s\n", strings.Join(fav.Features, ", "))
		}
		if fav.Notes != "" {
			fmt.Fprintf(out, "    notes: %s\n", fav.Notes)
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
