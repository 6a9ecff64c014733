// Command register overwrites the application's global slash commands.
// Run it once after deploying; Discord takes up to an hour to propagate.
package main

import (
	"log"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	token := os.Getenv("SHELLS_BOT_TOKEN")
	appID := os.Getenv("SHELLS_APPLICATION_ID")
	if token == "" || appID == "" {
		log.Fatal("SHELLS_BOT_TOKEN and SHELLS_APPLICATION_ID must be set")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "shells",
			Description: "Try your luck!",
		},
		{
			Name:        "deedee",
			Description: "mega doo doo",
		},
	}

	created, err := session.ApplicationCommandBulkOverwrite(appID, "", commands)
	if err != nil {
		log.Fatalf("Failed to register commands: %v", err)
	}

	for _, cmd := range created {
		log.Printf("Registered /%s (%s)", cmd.Name, cmd.ID)
	}
}
