package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "kclcreate",
	Short: "compile OBJ meshes into KCL collision files",
	Long: `kclcreate builds a binary KCL collision file and its PA surface-
attribute sidecar from a triangulated Wavefront OBJ mesh:
	- ingest OBJ geometry and group assignments (usemtl),
	- weld vertices and normals and build an adaptive octree,
	- write the KCL payload and the PA sidecar,
	- tweak build settings via YAML,
	- show info about a generated PA sidecar.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once by
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
