package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/feed"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/service"
)

var (
	feedRegion   string
	feedDistrict string
	feedPages    int
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Browse the memorial feed",
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List memorial posts",
	Long:  "List memorial posts, optionally narrowed to a region and district",
	RunE: func(cmd *cobra.Command, args []string) error {
		feedSvc := service.NewFeedService()
		return feedSvc.List(feedPages, feed.Query{
			Region:   feedRegion,
			District: feedDistrict,
		})
	},
}

var feedWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the feed for live like and comment activity",
	Long: `Watch loads the feed and subscribes every post on the realtime
broker, printing likes and comments as they arrive. Stop with Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		feedSvc := service.NewFeedService()
		return feedSvc.Watch(context.Background(), feed.Query{
			Region:   feedRegion,
			District: feedDistrict,
		})
	},
}

func init() {
	feedCmd.PersistentFlags().StringVar(&feedRegion, "region", "", "Filter by region")
	feedCmd.PersistentFlags().StringVar(&feedDistrict, "district", "", "Filter by district")
	feedListCmd.Flags().IntVar(&feedPages, "pages", 1, "Number of pages to load")

	feedCmd.AddCommand(feedListCmd)
	feedCmd.AddCommand(feedWatchCmd)
}
