package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"polyconf/polycom"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate [payload.json]",
	Aliases: []string{"gen", "g"},
	Short:   "Write a <ext>.cfg from a configurator payload",
	Long:    `Reads the same JSON payload POST /generate accepts (from a file, or stdin when omitted or "-") and writes the Polycom config into --out.`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		out, _ := cmd.Flags().GetString("out")

		var src io.Reader = cmd.InOrStdin()

		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			src = f
		}

		path, err := generateFile(src, out)
		if err != nil {
			log.Errorf("[GENERATE CONFIG] %v", err)
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)

		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("out", "o", ".", "directory the .cfg file is written to")
	rootCmd.AddCommand(generateCmd)
}

// generateFile - renders the payload read from src into dir, returning the file path
func generateFile(src io.Reader, dir string) (string, error) {

	body, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("cannot read payload. %w", err)
	}

	req, err := polycom.ParseRequest(body)
	if err != nil {
		return "", err
	}

	file, err := polycom.Render(req)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(file.Name))

	if err = os.WriteFile(path, file.Body, 0o644); err != nil {
		return "", fmt.Errorf("cannot write %s. %w", path, err)
	}

	return path, nil
}
