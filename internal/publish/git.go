// Package publish decides whether a regenerated map document differs from
// the one already committed and, when it does, hands it to the external
// git client. The Go side owns only the diff and the commit/push sequence;
// repository creation and cron scheduling live in scripts/.
package publish

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/jonboulle/clockwork"
)

// Changed reports whether next differs from the file at prevPath.
// A missing previous file counts as changed.
func Changed(prevPath string, next []byte) (bool, error) {
	prev, err := os.ReadFile(prevPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("read previous document: %w", err)
	}
	return sha256.Sum256(prev) != sha256.Sum256(next), nil
}

// GitPublisher stages, commits, and pushes the map document using the
// system git client.
type GitPublisher struct {
	dir    string // repository working tree
	logger *slog.Logger
	clock  clockwork.Clock
}

// NewGit creates a publisher operating on the git working tree at dir.
func NewGit(dir string, logger *slog.Logger) *GitPublisher {
	return &GitPublisher{
		dir:    dir,
		logger: logger,
		clock:  clockwork.NewRealClock(),
	}
}

// SetClock swaps the time source used for commit messages. Pass nil to
// reset to real time.
func (g *GitPublisher) SetClock(c clockwork.Clock) {
	if c == nil {
		g.clock = clockwork.NewRealClock()
		return
	}
	g.clock = c
}

// Publish commits and pushes the document at path with a timestamped
// message. The caller is responsible for only invoking it when the
// document actually changed.
func (g *GitPublisher) Publish(ctx context.Context, path string) error {
	message := fmt.Sprintf("Update dry counties map %s", g.clock.Now().UTC().Format(time.RFC3339))

	if err := g.git(ctx, "add", path); err != nil {
		return err
	}
	if err := g.git(ctx, "commit", "-m", message); err != nil {
		return err
	}
	if err := g.git(ctx, "push"); err != nil {
		return err
	}

	g.logger.Info("published map document", "path", path, "message", message)
	return nil
}

func (g *GitPublisher) git(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w: %s", args[0], err, bytes.TrimSpace(out.Bytes()))
	}
	return nil
}
