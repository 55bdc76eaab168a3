package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	for _, c := range []*cobra.Command{checkCmd, anagramsCmd, candidatesCmd} {
		c.Flags().String("dict", "", "dictionary source (file, s3://bucket/key, db:name or .dawg); default is the stored default dictionary")
		rootCmd.AddCommand(c)
	}
}

var checkCmd = &cobra.Command{
	Use:   "check <word>",
	Short: "report whether a word is in the dictionary",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

var anagramsCmd = &cobra.Command{
	Use:   "anagrams <word>",
	Short: "list dictionary words using exactly these letters",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnagrams,
}

var candidatesCmd = &cobra.Command{
	Use:   "candidates <word>[,<word>...] <tray>",
	Short: "list words formed by adding tray tiles to either end of a board word",
	Args:  cobra.ExactArgs(2),
	RunE:  runCandidates,
}

func runCheck(cmd *cobra.Command, args []string) error {
	play, err := playService(cmd.Context(), mustGetStringFlag(cmd, "dict"))
	if err != nil {
		return err
	}

	valid, err := play.Check("", args[0])
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"word": args[0], "valid": valid})
}

func runAnagrams(cmd *cobra.Command, args []string) error {
	play, err := playService(cmd.Context(), mustGetStringFlag(cmd, "dict"))
	if err != nil {
		return err
	}

	anagrams, err := play.Anagrams("", args[0])
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"word": args[0], "anagrams": anagrams})
}

func runCandidates(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	play, err := playService(ctx, mustGetStringFlag(cmd, "dict"))
	if err != nil {
		return err
	}

	words, tray := strings.Split(args[0], ","), args[1]
	if len(words) == 1 {
		candidates, err := play.Candidates("", words[0], tray)
		if err != nil {
			return err
		}
		return printJSON(map[string]any{"word": words[0], "tray": tray, "candidates": candidates})
	}

	results, err := play.CandidatesMany(ctx, "", words, tray)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"tray": tray, "results": results})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
