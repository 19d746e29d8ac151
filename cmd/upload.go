/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdf-qa-be/config"
	"github.com/tieubaoca/pdf-qa-be/database"
	"github.com/tieubaoca/pdf-qa-be/repository"
	"github.com/tieubaoca/pdf-qa-be/service"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Extract the text of a local PDF and store it",
	Long: `Reads a PDF from disk, extracts its text and stores it in MongoDB
the same way an HTTP upload would, then prints the new document id.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		filePath, _ := cmd.Flags().GetString("file")
		if filePath == "" {
			log.Fatal("--file is required")
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", filePath, err)
		}

		pdfService := service.NewPDFService()
		text, err := pdfService.ExtractText(data)
		if err != nil {
			log.Fatalf("Failed to extract text: %v", err)
		}

		ctx := context.Background()
		mongoClient, err := database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect(ctx)

		documentRepo := repository.NewDocumentRepo(
			mongoClient.Database(cfg.MongoDBName).Collection("pdf_texts"))

		id, err := documentRepo.SaveDocument(ctx, text)
		if err != nil {
			log.Fatalf("Failed to save document: %v", err)
		}
		fmt.Println("Document stored with id:", id)
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringP("file", "f", "", "Path to the PDF file to upload")
	uploadCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
