package main

import (
	"log"
	"net/http"

	"illuminati/chat-api/config"
	"illuminati/chat-api/handlers"
	"illuminati/chat-api/llm"
	"illuminati/chat-api/middleware"
	"illuminati/chat-api/routes"
)

func main() {

	config.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		config.Logger.Fatal("Invalid configuration:", err)
	}

	completer, err := llm.New(llm.Provider(cfg.LLMProvider), cfg.GeminiAPIKey, cfg.OpenAIAPIKey)
	if err != nil {
		config.Logger.Fatal("Failed to configure completion provider:", err)
	}

	h := handlers.New(cfg, completer)

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux, h)

	server := middleware.Chain(
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)(mux)

	config.Logger.Info("Server is running on port ", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, server))
}
