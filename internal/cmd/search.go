package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/service"
)

var (
	searchRegion   string
	searchDistrict string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Look up regions, districts and cemeteries",
}

var searchRegionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List all regions",
	RunE: func(cmd *cobra.Command, args []string) error {
		searchSvc := service.NewSearchService()
		return searchSvc.Regions()
	},
}

var searchDistrictsCmd = &cobra.Command{
	Use:   "districts",
	Short: "List the districts of a region",
	RunE: func(cmd *cobra.Command, args []string) error {
		searchSvc := service.NewSearchService()
		return searchSvc.Districts(searchRegion)
	},
}

var searchCemeteriesCmd = &cobra.Command{
	Use:   "cemeteries",
	Short: "List cemeteries in a region and district",
	RunE: func(cmd *cobra.Command, args []string) error {
		searchSvc := service.NewSearchService()
		return searchSvc.Cemeteries(searchRegion, searchDistrict)
	},
}

func init() {
	searchDistrictsCmd.Flags().StringVar(&searchRegion, "region", "", "Region name")
	searchCemeteriesCmd.Flags().StringVar(&searchRegion, "region", "", "Region name")
	searchCemeteriesCmd.Flags().StringVar(&searchDistrict, "district", "", "District name")

	searchCmd.AddCommand(searchRegionsCmd)
	searchCmd.AddCommand(searchDistrictsCmd)
	searchCmd.AddCommand(searchCemeteriesCmd)
}
