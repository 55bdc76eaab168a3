package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"wordtiles/internal/lexicon"
	"wordtiles/internal/logging"
	"wordtiles/internal/service"
	"wordtiles/internal/source"
)

func init() {
	rootCmd.AddCommand(importCmd, exportCmd, listCmd, deleteCmd, compileCmd)
	exportCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
}

var importCmd = &cobra.Command{
	Use:   "import <name> <source>",
	Short: "store a word list from a file, s3:// object or .dawg graph",
	Args:  cobra.ExactArgs(2),
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "write a stored word list in its original order",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list stored dictionaries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "remove a stored dictionary",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var compileCmd = &cobra.Command{
	Use:   "compile <source> <out.dawg>",
	Short: "compile a word list into a DAWG file",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompile,
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name, uri := args[0], args[1]

	text, err := loadText(ctx, uri)
	if err != nil {
		return err
	}

	db, repo, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	dict, err := service.NewDictionaryService(repo).Import(ctx, name, text)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\t%d words\n", dict.Name, dict.PublicID, dict.WordCount)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, repo, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	text, err := service.NewDictionaryService(repo).Export(ctx, args[0])
	if err != nil {
		return err
	}

	output := mustGetStringFlag(cmd, "output")
	if output == "" {
		_, err = fmt.Print(text)
		return err
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	logging.Info().Str("dictionary", args[0]).Str("output", output).Msg("exported dictionary")
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, repo, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	dicts, err := service.NewDictionaryService(repo).List(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWORDS\tCHECKSUM\tID\tCREATED")
	for _, d := range dicts {
		fmt.Fprintf(w, "%s\t%d\t%.12s\t%s\t%s\n", d.Name, d.WordCount, d.Checksum, d.PublicID, d.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	db, repo, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return service.NewDictionaryService(repo).Delete(ctx, args[0])
}

func runCompile(cmd *cobra.Command, args []string) error {
	text, err := loadText(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	n, err := source.CompileDAWG(lexicon.SplitLines(text), args[1])
	if err != nil {
		return err
	}
	logging.Info().Str("output", args[1]).Int("words", n).Msg("compiled dictionary")
	return nil
}
