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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/meshtools/keyraw/InputParameters"
	"github.com/meshtools/keyraw/keyfile"
	"github.com/meshtools/keyraw/mesh"
	"github.com/meshtools/keyraw/writers"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

// ExtractRun collects the inputs of one extraction run, from flags and
// the optional YAML parameters file.
type ExtractRun struct {
	KeyFiles   []string
	OutputBase string
	ParamsFile string
	Parts      []int
	Verbose    bool
	Force      bool
}

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Parse keyfiles and write one renumbered raw mesh per part",
	Long: `
Parses every given keyfile into one combined mesh database, then writes
each part as <outputBase>-<partName>-nodes.txt and -elements.txt with
node and element ids renumbered densely from 1.

keyraw extract -F chassis.k -F wheels.k -o car`,
	RunE: func(cmd *cobra.Command, args []string) error {
		er := &ExtractRun{}
		er.KeyFiles, _ = cmd.Flags().GetStringArray("keyFile")
		er.OutputBase, _ = cmd.Flags().GetString("outputBase")
		er.ParamsFile, _ = cmd.Flags().GetString("inputParametersFile")
		er.Parts, _ = cmd.Flags().GetIntSlice("part")
		er.Verbose, _ = cmd.Flags().GetBool("verbose")
		er.Force, _ = cmd.Flags().GetBool("force")
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}
		return er.Run(os.Stdin)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringArrayP("keyFile", "F", nil, "keyfile to read; repeat to append several files into one mesh")
	extractCmd.Flags().StringP("outputBase", "o", "", "base name of the output file pairs")
	extractCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for run parameters like:\n\t- OutputBase\n\t- Parts (part ids to extract)\n\t- Force")
	extractCmd.Flags().BoolP("force", "f", false, "overwrite existing output files without asking")
	extractCmd.Flags().IntSlice("part", nil, "extract only this part id; repeatable")
}

// Run executes the whole pipeline: parse, extract, renumber, write.
// stdin supplies answers to overwrite prompts.
func (er *ExtractRun) Run(stdin io.Reader) error {
	ip, err := er.loadParameters()
	if err != nil {
		return err
	}
	if len(er.KeyFiles) == 0 {
		return fmt.Errorf("must supply at least one keyfile (-F, --keyFile)")
	}
	if er.OutputBase == "" {
		return fmt.Errorf("must supply an output base name (-o, --outputBase)")
	}

	db := mesh.NewDatabase()
	if err = parseAll(er.KeyFiles, db, er.Verbose); err != nil {
		return err
	}
	fmt.Printf("Read %d nodes, %d elements, %d parts\n",
		db.NumNodes(), db.NumElements(), len(db.PartIDs()))

	in := bufio.NewScanner(stdin)
	for _, pid := range db.PartIDs() {
		if !ip.WantsPart(pid) {
			continue
		}
		part, err := db.ExtractPart(pid)
		if err != nil {
			return err
		}
		renum, err := part.Renumber()
		if err != nil {
			return err
		}
		base := fmt.Sprintf("%s-%s", er.OutputBase, partBaseName(pid, db.PartNames[pid]))
		if !er.Force && !confirmOverwrite(base, in) {
			fmt.Printf("skipping part %d\n", pid)
			continue
		}
		if err = writers.WriteRawPart(base, renum); err != nil {
			return err
		}
		fmt.Printf("Part %d (%s): wrote %d nodes, %d elements\n",
			pid, partBaseName(pid, db.PartNames[pid]), renum.NumNodes(), renum.NumElements())
		if er.Verbose {
			renum.PrintBoundingBox()
		}
	}
	return nil
}

// loadParameters merges the YAML parameters file under the flags: a
// flag that was given wins over the file value.
func (er *ExtractRun) loadParameters() (*InputParameters.ExtractParameters, error) {
	ip := &InputParameters.ExtractParameters{}
	if er.ParamsFile == "" {
		ip.Parts = er.Parts
		return ip, nil
	}
	path, err := homedir.Expand(er.ParamsFile)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read parameters file: %w", err)
	}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("unable to parse parameters file %s: %w", path, err)
	}
	if er.Verbose {
		ip.Print()
	}
	if er.OutputBase == "" {
		er.OutputBase = ip.OutputBase
	}
	if len(er.Parts) != 0 {
		ip.Parts = er.Parts
	}
	er.Force = er.Force || ip.Force
	er.Verbose = er.Verbose || ip.Verbose
	return ip, nil
}

func parseAll(files []string, db *mesh.Database, verbose bool) error {
	for _, kf := range files {
		path, err := homedir.Expand(kf)
		if err != nil {
			return err
		}
		if err = keyfile.ParseFile(path, db, verbose); err != nil {
			return err
		}
	}
	return nil
}

// partBaseName yields the file base component for a part: its name
// with surrounding whitespace trimmed, or part<pid> for unnamed parts.
func partBaseName(pid int, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Sprintf("part%d", pid)
	}
	return name
}

func confirmOverwrite(base string, in *bufio.Scanner) bool {
	var existing []string
	for _, n := range []string{base + "-nodes.txt", base + "-elements.txt"} {
		if _, err := os.Stat(n); err == nil {
			existing = append(existing, n)
		}
	}
	if len(existing) == 0 {
		return true
	}
	fmt.Printf("%s exists, overwrite? [y/N] ", strings.Join(existing, ", "))
	if !in.Scan() {
		return false
	}
	ans := strings.ToLower(strings.TrimSpace(in.Text()))
	return ans == "y" || ans == "yes"
}
