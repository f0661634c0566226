package cmd

import (
	"github.com/oceanbound/marlin/pkg/geomap"
	"github.com/oceanbound/marlin/pkg/ifdo"
	"github.com/oceanbound/marlin/pkg/metadata"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// reportFs is patched during test
var reportFs = afero.NewOsFs()

var reportMapCmd = &cobra.Command{
	Use:   "map <ifdo-path> <output-png>",
	Short: "Render a survey coverage map from an iFDO document",
	Long: `Render a static coverage map with one marker per geolocated image of an
iFDO document. Nothing is written when the document carries no geolocations.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ifdoPath, outputPath := args[0], args[1]

		doc, err := metadata.Load(reportFs, ifdoPath)
		if err != nil {
			wrapFatalln("loading "+ifdoPath, err)
			return
		}
		locations := ifdo.Geolocations(doc)
		if len(locations) == 0 {
			infoLogger.Printf("%s holds no geolocations, nothing to render", ifdoPath)
			return
		}

		positions := make([]geomap.Position, 0, len(locations))
		for _, ll := range locations {
			positions = append(positions, geomap.Position{Lat: ll.Lat, Lon: ll.Lon})
		}
		img, err := geomap.Render(positions, marlinFlags.report.Width, marlinFlags.report.Height)
		if err != nil {
			wrapFatalln("rendering map", err)
			return
		}

		out, err := reportFs.Create(outputPath)
		if err != nil {
			wrapFatalln("creating "+outputPath, err)
			return
		}
		defer out.Close()
		if err := geomap.EncodePNG(out, img); err != nil {
			wrapFatalln("encoding "+outputPath, err)
			return
		}
		infoLogger.Printf("Rendered %d geolocations to %s", len(locations), outputPath)
	},
}

func init() {
	addMapSizeFlags(reportMapCmd)
	reportCmd.AddCommand(reportMapCmd)
}
