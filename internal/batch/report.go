package batch

import (
	"bufio"
	"fmt"
	"io"

	"github.com/capturequest/warpclass/pkg/warp"
)

// directionOrder fixes the report's group ordering.
var directionOrder = []warp.Direction{warp.Up, warp.Down, warp.Left, warp.Right}

// WriteReport writes the human-readable summary followed by the carpet
// warps grouped by required direction. Doors carry no direction and are
// only counted.
func WriteReport(w io.Writer, results []Classification, sum warp.Summary) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Warp classification results:")
	fmt.Fprintf(bw, "Total warps: %d\n", sum.Total)
	fmt.Fprintf(bw, "Door (immediate): %d\n", sum.Doors)
	fmt.Fprintf(bw, "Carpet (directional): %d\n", sum.Carpets)
	fmt.Fprintf(bw, "Direction method: dest_warp=%d, edge=%d\n", sum.DestWarp, sum.Edge)

	for _, dir := range directionOrder {
		var group []Classification
		for _, c := range results {
			if c.Direction == dir {
				group = append(group, c)
			}
		}

		fmt.Fprintf(bw, "\nCarpet warps requiring %s (%d):\n", dir, len(group))
		for _, c := range group {
			fmt.Fprintf(bw, "  %-35s (%2d,%2d) -> %-30s feet=0x%02X [%s]\n",
				c.Map, c.X, c.Y, c.DestMap, c.FeetTile, c.Method)
		}
	}

	return bw.Flush()
}
