package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"docsumm/internal/service"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file>",
		Short: "Print the plain text of a PDF or TXT file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline(cmd)
			if err != nil {
				return err
			}
			input, f, err := openUpload(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			result, err := p.documents.ExtractText(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			return nil
		},
	}
}

func newSummarizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <file>",
		Short: "Summarize a PDF or TXT file with the configured AI provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline(cmd)
			if err != nil {
				return err
			}
			input, f, err := openUpload(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			summary, err := p.documents.SummarizeDocument(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <file> <question>",
		Short: "Answer a question about a PDF or TXT file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline(cmd)
			if err != nil {
				return err
			}
			input, f, err := openUpload(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			extracted, err := p.documents.ExtractText(cmd.Context(), input)
			if err != nil {
				return err
			}

			answer, err := p.documents.ChatWithDocument(cmd.Context(), chatInput(args[1:], extracted.Text))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
}

func chatInput(questionWords []string, text string) service.ChatInput {
	return service.ChatInput{
		Question: strings.Join(questionWords, " "),
		Context:  text,
	}
}
