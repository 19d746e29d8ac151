/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdf-qa-be/config"
	"github.com/tieubaoca/pdf-qa-be/database"
	"github.com/tieubaoca/pdf-qa-be/handler"
	"github.com/tieubaoca/pdf-qa-be/middleware"
	"github.com/tieubaoca/pdf-qa-be/repository"
	"github.com/tieubaoca/pdf-qa-be/service"
	"github.com/tieubaoca/pdf-qa-be/types"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the PDF question-answering server",
	Long:  `Starts the HTTP server that accepts PDF uploads and answers questions about them.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()

		mongoClient, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect(ctx)
		log.Println("Connected to MongoDB successfully.")

		mongoDb := mongoClient.Database(cfg.MongoDBName)

		// init repos
		documentRepo := repository.NewDocumentRepo(mongoDb.Collection("pdf_texts"))
		interactionRepo := repository.NewInteractionRepo(mongoDb.Collection("chat_history"))

		// init services
		pdfService := service.NewPDFService()
		aiService, err := service.NewGeminiService(
			ctx,
			cfg.GeminiAPIKey,
			cfg.Model,
			types.GenerationSettings{
				Temperature:     cfg.Temperature,
				TopK:            cfg.TopK,
				TopP:            cfg.TopP,
				MaxOutputTokens: cfg.MaxOutputTokens,
			},
			time.Duration(cfg.AITimeoutSeconds)*time.Second,
		)
		if err != nil {
			log.Fatalf("Failed to create Gemini service: %v", err)
		}
		defer aiService.Close()

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(pdfService, documentRepo)
		askHandler := handler.NewAskHandler(documentRepo, interactionRepo, aiService)
		interactionHandler := handler.NewInteractionHandler(interactionRepo)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)
		router.Use(middleware.RequestLogger)

		router.POST("/upload-pdf/", uploadHandler.HandleUploadPDF)
		router.POST("/ask/", askHandler.HandleAsk)
		router.GET("/interactions/", interactionHandler.HandleListInteractions)

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
	startCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
