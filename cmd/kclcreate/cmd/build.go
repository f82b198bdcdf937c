package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gayfrogog/kclcreate/buildlog"
	"github.com/gayfrogog/kclcreate/buildsettings"
	"github.com/gayfrogog/kclcreate/collision"
	"github.com/gayfrogog/kclcreate/objmesh"
)

var (
	cfgVal   string
	inputVal string
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build OUTFILE",
	Short: "build a KCL collision file and its PA sidecar from input geometry",
	Long: `Build a KCL collision file from triangulated Wavefront OBJ input
geometry, together with its PA surface-attribute sidecar.

Build process is controlled by the provided build settings (--config).
OUTFILE names the KCL payload; the PA sidecar is written alongside it with
a ".pa" extension.`,
	Args: cobra.ExactArgs(1),
	Run:  doBuild,
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVar(&cfgVal, "config", "kclcreate.yml", "build settings")
	buildCmd.Flags().StringVar(&inputVal, "input", "", "input geometry OBJ file (required)")
}

func doBuild(cmd *cobra.Command, args []string) {
	outPath := args[0]
	if inputVal == "" {
		fmt.Println("error: --input is required")
		os.Exit(1)
	}

	settings := buildsettings.NewSettings()
	if _, err := os.Stat(cfgVal); err == nil {
		settings, err = buildsettings.Load(cfgVal)
		if err != nil {
			fmt.Println("error loading build settings:", err)
			os.Exit(1)
		}
	}

	log := buildlog.New(true)

	log.StartTimer(buildlog.TimerLoadMesh)
	mesh, err := objmesh.Load(inputVal)
	log.StopTimer(buildlog.TimerLoadMesh)
	if err != nil {
		fmt.Println("error loading input geometry:", err)
		os.Exit(1)
	}
	log.Progressf("loaded %d triangles, %d groups", len(mesh.Triangles), len(mesh.GroupNames))
	bb := mesh.AABB()
	log.Progressf("mesh bounds: [%.2f %.2f %.2f] - [%.2f %.2f %.2f]",
		bb.MinX, bb.MinY, bb.MinZ, bb.MaxX, bb.MaxY, bb.MaxZ)

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Println("error creating output file:", err)
		os.Exit(1)
	}
	defer out.Close()

	log.StartTimer(buildlog.TimerTotal)
	err = collision.Pack(out, mesh.Triangles, settings.MaxTriangles, settings.MinWidth)
	log.StopTimer(buildlog.TimerTotal)
	if err != nil {
		fmt.Println("error packing collision data:", err)
		os.Exit(1)
	}

	paPath := strings.TrimSuffix(outPath, ".kcl") + ".pa"
	pa, err := os.Create(paPath)
	if err != nil {
		fmt.Println("error creating PA sidecar:", err)
		os.Exit(1)
	}
	defer pa.Close()

	types := settings.SurfaceTypesFor(mesh.GroupNames)
	if err := collision.PackSurfaceTypes(pa, types); err != nil {
		fmt.Println("error packing surface types:", err)
		os.Exit(1)
	}

	log.Progressf("wrote %s and %s", outPath, paPath)
	log.DumpLog("build log")
}
