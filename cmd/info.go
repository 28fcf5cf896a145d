/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/meshtools/keyraw/mesh"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Parse keyfiles and report mesh statistics without writing output",
	Long: `
Parses every given keyfile into one combined mesh database and prints
node/element totals plus a per-part breakdown with bounding boxes.

keyraw info -F model.k`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files, _ := cmd.Flags().GetStringArray("keyFile")
		verbose, _ := cmd.Flags().GetBool("verbose")
		if len(files) == 0 {
			return fmt.Errorf("must supply at least one keyfile (-F, --keyFile)")
		}
		return runInfo(files, verbose)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringArrayP("keyFile", "F", nil, "keyfile to read; repeat to append several files into one mesh")
}

func runInfo(files []string, verbose bool) error {
	db := mesh.NewDatabase()
	if err := parseAll(files, db, verbose); err != nil {
		return err
	}
	fmt.Printf("Nodes    = %d\nElements = %d\n", db.NumNodes(), db.NumElements())
	db.PrintBoundingBox()
	for _, pid := range db.PartIDs() {
		part, err := db.ExtractPart(pid)
		if err != nil {
			return err
		}
		fmt.Printf("Part %8d %-32q %8d elements %8d nodes\n",
			pid, db.PartNames[pid], part.NumElements(), part.NumNodes())
		if verbose {
			part.PrintBoundingBox()
		}
	}
	return nil
}
