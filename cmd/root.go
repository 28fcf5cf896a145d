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
	"errors"
	"fmt"
	"os"

	"github.com/meshtools/keyraw/keyfile"
	"github.com/meshtools/keyraw/mesh"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "keyraw",
	Short: "Extract per-part node/element meshes from LS-Dyna keyfiles",
	Long: `
keyraw reads one or more LS-Dyna style keyfiles into a combined mesh
database and extracts each named part as a self-contained, densely
renumbered mesh, written as a pair of tab separated text files.

keyraw extract -F model.k -o mymodel`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree. Each failure kind carries its own
// process exit status so scripts can tell a bad path from a bad file
// from an internal fault.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(exitStatus(err))
	}
}

func exitStatus(err error) int {
	var (
		cardErr *keyfile.CardError
		dupErr  *mesh.DuplicateElementError
		dbErr   *mesh.InconsistentDatabaseError
	)
	switch {
	case errors.Is(err, keyfile.ErrInvalidInputPath):
		return 2
	case errors.Is(err, keyfile.ErrUnreadableFile):
		return 3
	case errors.As(err, &cardErr):
		return 4
	case errors.As(err, &dupErr):
		return 5
	case errors.As(err, &dbErr):
		return 6
	}
	return 1
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.keyraw.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "report progress and per-part statistics while running")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile for the run to the current directory")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".keyraw")
	}
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
