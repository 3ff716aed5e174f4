package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gohead/head/validate"
)

func newVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet FILE...",
		Short: "Check script elements for invalid or inconsistent attributes",
		Long: "Vet loads script elements from each FILE (.html, .yaml or .json) and checks " +
			"every attribute against its declared type and value set, plus the defer/src " +
			"and defer/module consistency rules. All violations are reported; the command " +
			"fails if any file has one.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			for _, path := range args {
				n, err := vetFile(cmd, path)
				if err != nil {
					return err
				}
				total += n
			}
			if total > 0 {
				return errors.Errorf("found %d problem(s)", total)
			}
			return nil
		},
	}
}

// vetFile validates one input file and prints its violations. It returns the
// violation count; an error means the file could not be read or decoded at
// all, not that validation failed.
func vetFile(cmd *cobra.Command, path string) (int, error) {
	attrs, err := loadScripts(path)
	if err != nil {
		return 0, err
	}
	logrus.WithFields(logrus.Fields{
		"file":    path,
		"scripts": len(attrs),
	}).Debug("vetting scripts")

	count := 0
	for i, res := range validate.Scripts(attrs) {
		for _, v := range res.Violations {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: script[%d]: %s\n", path, i, v)
			count++
		}
	}
	return count, nil
}
