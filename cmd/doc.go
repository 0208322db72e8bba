package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentorai/internal/document"
	"github.com/abhisek/mentorai/internal/store"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Manage course documents",
}

// getDocument loads a stored document or wraps store.ErrNotFound.
func getDocument(ctx context.Context, s *store.Store, name string) (*document.Document, error) {
	doc, err := s.DocumentRepo().GetDocument(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("document %q: %w", name, store.ErrNotFound)
	}
	return doc, nil
}

var docAddCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: "Extract and store the text of one or more documents",
	Long:  "Extract and store the text of documents. Supported formats: " + strings.Join(document.NewProcessor().Supported(), ", "),
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		for _, path := range args {
			doc, err := processFile(path)
			if err != nil {
				return err
			}
			if err := s.DocumentRepo().SaveDocument(cmd.Context(), doc); err != nil {
				return fmt.Errorf("save %s: %w", doc.Name, err)
			}
			fmt.Printf("✓ %s  (%d mots, %d caractères, %d pages)\n",
				doc.Name, doc.WordCount, doc.CharCount, doc.PageCount)
		}
		return nil
	},
}

func processFile(path string) (*document.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := document.Process(filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", path, err)
	}
	return doc, nil
}

var docListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		docs, err := s.DocumentRepo().ListDocuments(cmd.Context())
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		if len(docs) == 0 {
			fmt.Println("No documents yet. Add one with `mentorai doc add <file>`.")
			return nil
		}

		fmt.Printf("%-32s  %-5s  %8s  %6s  %s\n", "Name", "Type", "Words", "Pages", "Uploaded")
		fmt.Println(strings.Repeat("─", 76))
		for _, d := range docs {
			fmt.Printf("%-32s  %-5s  %8d  %6d  %s\n",
				truncate(d.Name, 32), d.Type, d.WordCount, d.PageCount,
				d.UploadedAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var docShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a document's metadata and the start of its text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		doc, err := getDocument(cmd.Context(), s, args[0])
		if err != nil {
			return err
		}
		chars, _ := cmd.Flags().GetInt("chars")

		fmt.Printf("Name:      %s\n", doc.Name)
		fmt.Printf("Type:      %s\n", doc.Type)
		fmt.Printf("Words:     %d\n", doc.WordCount)
		fmt.Printf("Chars:     %d\n", doc.CharCount)
		fmt.Printf("Pages:     %d\n", doc.PageCount)
		fmt.Printf("Uploaded:  %s\n", doc.UploadedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(document.Excerpt(doc.Text, chars))
		return nil
	},
}

var docChunksCmd = &cobra.Command{
	Use:   "chunks <name>",
	Short: "Split a document into overlapping word windows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		doc, err := getDocument(cmd.Context(), s, args[0])
		if err != nil {
			return err
		}
		size, _ := cmd.Flags().GetInt("size")
		overlap, _ := cmd.Flags().GetInt("overlap")

		chunks := document.Chunk(doc.Text, size, overlap)
		for i, c := range chunks {
			fmt.Printf("── chunk %d/%d (%d mots)\n", i+1, len(chunks), len(strings.Fields(c)))
			fmt.Println(c)
			fmt.Println()
		}
		return nil
	},
}

var docRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a stored document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ok, err := s.DocumentRepo().DeleteDocument(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("delete document: %w", err)
		}
		if !ok {
			return fmt.Errorf("document %q: %w", args[0], store.ErrNotFound)
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

func init() {
	docShowCmd.Flags().Int("chars", 500, "Number of text characters to show (0 for all)")
	docChunksCmd.Flags().Int("size", document.DefaultChunkSize, "Words per chunk")
	docChunksCmd.Flags().Int("overlap", document.DefaultChunkOverlap, "Words shared by consecutive chunks")

	docCmd.AddCommand(docAddCmd)
	docCmd.AddCommand(docListCmd)
	docCmd.AddCommand(docShowCmd)
	docCmd.AddCommand(docChunksCmd)
	docCmd.AddCommand(docRmCmd)
}
