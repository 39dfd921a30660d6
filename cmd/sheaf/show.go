package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/pkg/adapters/codec"
	"github.com/aretw0/sheaf/pkg/core"
)

var (
	showIndex int
	showJSON  bool
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the notes of an archive or export file",
	Long:  `Show loads an archive or an export file and prints its notes. Use --index to print a single note.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := openFile(context.Background(), args[0])
		if err != nil {
			fatal("Error loading notes", err)
		}

		notes, err := selectNotes(svc.Store().Notes(), showIndex)
		if err != nil {
			fatal("Error selecting note", err)
		}

		if showJSON {
			data, err := codec.JSON.Encode(notes)
			if err != nil {
				fatal("Error encoding JSON", err)
			}
			fmt.Fprintln(os.Stdout, string(data))
			return
		}

		if len(notes) == 0 {
			fmt.Println("No data to display.")
			return
		}
		for i, n := range notes {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("# %s [%d]\n%s\n", n.Title, n.ID, n.Content)
		}
	},
}

// selectNotes returns the note at index, or every note when index is -1.
func selectNotes(notes core.Collection, index int) (core.Collection, error) {
	if index == -1 {
		return notes, nil
	}
	if index < 0 || index >= len(notes) {
		return nil, fmt.Errorf("index %d out of range (%d notes)", index, len(notes))
	}
	return core.Collection{notes[index]}, nil
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showIndex, "index", -1, "Print only the note at this position")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	showCmd.Flags().StringArrayVar(&ignore, "ignore", nil, "Skip archive entries matching a glob (repeatable)")
}
