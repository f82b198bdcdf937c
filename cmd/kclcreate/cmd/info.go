package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gayfrogog/kclcreate/collision/bcsv"
)

// infoCmd represents the info command.
//
// KCL payloads are write-only by design (no deserialization of KCL is a
// core Non-goal); the PA sidecar has no such restriction, so info reads it
// back with bcsv.Decode and reports its fields and rows.
var infoCmd = &cobra.Command{
	Use:   "info PAFILE",
	Short: "show infos about a PA surface-attribute sidecar",
	Long: `Read a PA sidecar from binary file, decode its field descriptors
and rows, then print a summary on standard output.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
}

func doInfo(cmd *cobra.Command, args []string) {
	f, err := os.Open(args[0])
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
	defer f.Close()

	rows, fields, err := bcsv.Decode(f)
	if err != nil {
		fmt.Println("error decoding PA file:", err)
		os.Exit(1)
	}

	fmt.Printf("fields: %d\n", len(fields))
	for i, fd := range fields {
		fmt.Printf("  [%d] name_hash=0x%08X offset=%d shift=%d type=%d mask=0x%08X\n",
			i, fd.NameHash, fd.Offset, fd.Shift, fd.DataType, fd.Mask)
	}
	fmt.Printf("rows: %d\n", len(rows))
	for i, row := range rows {
		fmt.Printf("  [%d] %v\n", i, row)
	}
}
