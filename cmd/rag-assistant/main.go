package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/MockingJ4y/rag-knowledge-assistant/internal/chunker"
	"github.com/MockingJ4y/rag-knowledge-assistant/internal/config"
	"github.com/MockingJ4y/rag-knowledge-assistant/internal/embedding/hash"
	"github.com/MockingJ4y/rag-knowledge-assistant/internal/llm"
	"github.com/MockingJ4y/rag-knowledge-assistant/internal/loader"
	"github.com/MockingJ4y/rag-knowledge-assistant/internal/retriever"
	"github.com/MockingJ4y/rag-knowledge-assistant/internal/service"
	"github.com/MockingJ4y/rag-knowledge-assistant/internal/tui"
	"github.com/MockingJ4y/rag-knowledge-assistant/internal/vectorstore/memory"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/rag-assistant/config.yaml if not provided)")
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Println("Usage: rag-assistant [--config=config.yaml] file1.txt [file2.pdf ...]")
		os.Exit(1)
	}

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Assemble components
	emb := hash.NewEmbedder()
	store := memory.NewStore(emb.Dimension())
	assistant := service.NewAssistant(chunker.NewFixedChunker(), emb, store, retriever.New(emb, store))

	documents, err := loader.Load(inputs)
	if err != nil {
		log.Fatalf("failed to load documents: %v", err)
	}
	for _, doc := range documents {
		if _, err := assistant.Ingest(doc, cfg.Chunking.ChunkSize, cfg.Chunking.ChunkOverlap); err != nil {
			log.Fatalf("ingest %s failed: %v", doc.Name, err)
		}
	}

	// The LLM is optional: without an API key the TUI shows raw chunks.
	var chat tui.Answerer
	client, err := llm.NewClient(llm.Config{
		BaseURL:     cfg.LLM.BaseURL,
		APIKeyEnv:   cfg.LLM.APIKeyEnv,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     time.Duration(cfg.LLM.TimeoutSecs) * time.Second,
		MaxRetries:  cfg.LLM.MaxRetries,
	})
	if err == nil {
		chat = client
	}

	m := tui.New(assistant, chat, cfg.Retrieval.TopK)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
