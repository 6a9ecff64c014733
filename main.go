package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"shells-go/games/deedee"
	"shells-go/games/shells"
	"shells-go/utils"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	router := utils.NewRouter()
	router.Register("shells", shells.New(cfg.Salt, shells.GiftConfig{
		InspirationChance: cfg.GiftInspirationChance,
		ShellsAmount:      cfg.GiftShellsAmount,
		InspirationAmount: cfg.GiftInspirationAmount,
	}))
	router.Register("deedee", deedee.New())

	mux := http.NewServeMux()
	mux.HandleFunc("/interactions", interactionEndpoint(cfg, router))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("/metrics", utils.MetricsHandler())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Listening on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop

	log.Println("Gracefully shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

// interactionEndpoint is the single webhook entry point: verify the
// signature over the raw bytes, dispatch, reply with the callback JSON.
// Authentication failures surface only as HTTP status codes, never as chat
// responses.
func interactionEndpoint(cfg *utils.Config, router *utils.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		rawBody, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
		if err != nil {
			http.Error(w, "failed to read body", http.StatusBadRequest)
			return
		}

		interaction, err := utils.Authenticate(
			rawBody,
			r.Header.Get("X-Signature-Timestamp"),
			r.Header.Get("X-Signature-Ed25519"),
			cfg.PublicKey(),
		)
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrBadSignature):
				utils.AuthRejectsTotal.WithLabelValues("bad_signature").Inc()
				http.Error(w, "invalid request signature", http.StatusUnauthorized)
			case errors.Is(err, utils.ErrBadPayload):
				utils.AuthRejectsTotal.WithLabelValues("bad_payload").Inc()
				http.Error(w, "malformed interaction payload", http.StatusBadRequest)
			default:
				utils.AuthRejectsTotal.WithLabelValues("malformed").Inc()
				http.Error(w, "malformed signature headers", http.StatusBadRequest)
			}
			log.Printf("Rejected request: %v", err)
			return
		}

		utils.InteractionsTotal.WithLabelValues(interactionLabel(interaction.Type)).Inc()
		log.Printf("Handling interaction type=%d", interaction.Type)

		response := router.Dispatch(interaction)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.Printf("Failed to write response: %v", err)
		}
	}
}

func interactionLabel(t discordgo.InteractionType) string {
	switch t {
	case discordgo.InteractionPing:
		return "ping"
	case discordgo.InteractionApplicationCommand:
		return "command"
	case discordgo.InteractionMessageComponent:
		return "component"
	case discordgo.InteractionModalSubmit:
		return "modal"
	default:
		return "unknown"
	}
}
