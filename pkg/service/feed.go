package service

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/api"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/auth"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/broker"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/config"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/feed"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/formatter"
	"github.com/Diyorbek-2226/marhumlarniEslap/pkg/logger"
)

// FeedService drives the memorial feed: paged listing and the live
// watch that follows like and comment activity over the broker
type FeedService struct {
	conn *broker.Conn
}

// NewFeedService creates a feed service with its own broker connection
func NewFeedService() *FeedService {
	return &FeedService{
		conn: broker.NewConn(brokerConfig()),
	}
}

// brokerConfig builds the broker connection settings from the config
// file
func brokerConfig() broker.Config {
	return broker.Config{
		Host:                config.GetString("ws.host"),
		Port:                config.GetInt("ws.port"),
		Path:                config.GetString("ws.path"),
		UseTLS:              config.GetBool("ws.use_tls"),
		ConnectTimeoutMs:    config.GetInt("ws.connect_timeout_ms"),
		HeartbeatIntervalMs: config.GetInt("ws.heartbeat_interval_ms"),
	}
}

// newFeedPager builds a pager over the public listing endpoint
func newFeedPager(pageSize int) (*feed.Pager, error) {
	return feed.NewPager(func(page, size int, q feed.Query) (*api.PostPage, error) {
		return api.GetAllPosts(page, size, q.Region, q.District)
	}, pageSize)
}

// List fetches and prints pages of the feed
func (s *FeedService) List(pages int, query feed.Query) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	pageSize := config.GetInt("feed.page_size")
	pager, err := newFeedPager(pageSize)
	if err != nil {
		return err
	}
	pager.Reset(query)

	for i := 0; i < pages && pager.HasMore(); i++ {
		if err := pager.FetchNext(); err != nil {
			formatter.PrintError("Failed to fetch feed: %v", err)
			return err
		}
	}

	posts := pager.Posts()
	if len(posts) == 0 {
		formatter.PrintInfo("No memorial posts found")
		return nil
	}

	printPostTable(posts)
	formatter.PrintInfo("Showing %d of %d posts", len(posts), pager.TotalElements())
	return nil
}

// Watch runs a live feed: pages are loaded on demand and every loaded
// post is subscribed on the broker so like and comment activity shows
// up as it happens. Runs until interrupted.
func (s *FeedService) Watch(ctx context.Context, query feed.Query) error {
	creds, err := requireAuth()
	if err != nil {
		return err
	}

	// A long-running watch should fail fast on a dead token
	if err := auth.NewSessionRecovery().ValidateSession(); err != nil {
		formatter.PrintError("%v", err)
		return err
	}

	pageSize := config.GetInt("feed.page_size")
	pager, err := newFeedPager(pageSize)
	if err != nil {
		return err
	}
	pager.Reset(query)

	if err := s.conn.Connect(creds.Token); err != nil {
		formatter.PrintError("Failed to connect to the realtime broker: %v", err)
		return err
	}
	defer s.conn.Disconnect()

	registry := broker.NewRegistry(s.conn)

	s.conn.OnStateChange(func(state broker.ConnectionState) {
		if state == broker.StateDisconnected {
			formatter.PrintWarning("Realtime connection lost; showing cached data")
		}
	})

	views := make(map[int64]*feed.PostView)

	watchPost := func(post api.Post) {
		if _, ok := views[post.ID]; ok {
			return
		}
		view := feed.NewPostView(post)
		views[post.ID] = view

		postID := post.ID
		name := post.FullName

		if _, err := registry.SubscribeLikes(postID, func(count int) {
			view.ApplyLikeCount(count)
			printEvent("❤", fmt.Sprintf("%s now has %d likes", name, count))
		}); err != nil {
			logger.Warn("Like subscription failed", "post", postID, "error", err)
		}
		if _, err := registry.SubscribeCommentCount(postID, func(count int) {
			view.ApplyCommentCount(count)
		}); err != nil {
			logger.Warn("Comment count subscription failed", "post", postID, "error", err)
		}
		if _, err := registry.SubscribeComments(postID, func(comment api.Comment) {
			if view.ApplyComment(comment) {
				printEvent("💬", fmt.Sprintf("%s on %s: %s", comment.Author.Name, name, truncate(comment.Text, 60)))
			}
		}); err != nil {
			logger.Warn("Comment subscription failed", "post", postID, "error", err)
		}
	}

	loadPage := func() error {
		if !pager.HasMore() {
			return nil
		}
		if err := pager.FetchNext(); err != nil {
			return err
		}
		for _, post := range pager.Posts() {
			watchPost(post)
		}
		return nil
	}

	if err := loadPage(); err != nil {
		formatter.PrintError("Failed to fetch feed: %v", err)
		return err
	}

	posts := pager.Posts()
	printPostTable(posts)

	fmt.Printf("\n")
	formatter.PrintInfo("Watching %d posts for live activity", len(posts))
	fmt.Printf("Press Ctrl+C to stop\n")
	fmt.Printf("%s\n\n", strings.Repeat("─", 60))

	defer func() {
		for id := range views {
			registry.UnsubscribeEntity(id)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	// Periodically pull the next page until the feed is exhausted, so
	// long-running watches cover the whole result set
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-sigChan:
			fmt.Printf("\n")
			formatter.PrintSuccess("Feed watch stopped")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := loadPage(); err != nil {
				logger.Warn("Background page fetch failed", "error", err)
			}
		}
	}
}

func printPostTable(posts []api.Post) {
	headers := []string{"ID", "Full Name", "Born", "Died", "Likes", "Comments"}
	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			p.FullName,
			p.BirthDate,
			p.DeathDate,
			fmt.Sprintf("%d", p.LikeCount),
			fmt.Sprintf("%d", p.CommentsCount),
		})
	}
	formatter.PrintTable(headers, rows)
}

func printEvent(emoji, message string) {
	timestamp := time.Now().Format("15:04:05")
	fmt.Printf("[%s] %s %s\n", timestamp, emoji, message)
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
