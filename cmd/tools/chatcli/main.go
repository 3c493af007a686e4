package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/rhenlumbo/portfolio-backend/pkg/chatclient"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := godotenv.Load(); err != nil {
		log.Printf("[WARN] no .env file loaded, using system environment: %v", err)
	}

	server := flag.String("server", "http://localhost:5000", "backend base URL")
	timeout := flag.Duration("timeout", 90*time.Second, "per-message timeout")
	flag.Parse()

	conversation := chatclient.NewConversation(chatclient.NewClient(*server))

	fmt.Println("assistant:", chatclient.Greeting)
	fmt.Println(`(type "/reset" to clear the chat, "/quit" to exit)`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you: ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit":
			return
		case "/reset":
			conversation.Reset()
			fmt.Println("assistant:", chatclient.Greeting)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), *timeout)
		reply, err := conversation.Send(ctx, line)
		cancel()

		if err != nil {
			log.Printf("[ERROR] %v", err)
			fmt.Println("assistant:", chatclient.Apology)
			continue
		}

		fmt.Println("assistant:", reply)
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("stdin error: %v", err)
	}
}
