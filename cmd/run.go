package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/showrank/internal/app"
	"github.com/abhisek/showrank/internal/session"
	"github.com/abhisek/showrank/internal/share"
	"github.com/abhisek/showrank/internal/store"
)

// runApp opens the round log, builds the session, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := store.Open(store.MemoryDSN)
	if err != nil {
		return fmt.Errorf("open round log: %w", err)
	}
	defer st.Close()

	sess := session.New(rt.quiz, st.RoundRepo(), rt.logger, nil)
	return app.Run(app.Options{
		Session:     sess,
		Sharer:      share.NewClipboard(),
		Logger:      rt.logger,
		NoticeDelay: rt.cfg.NoticeDelay,
	})
}
