package urlspan

import (
	"context"
	"os/exec"
)

// Command builds the command that opens url with this program.
func (p Program) Command(ctx context.Context, url string) *exec.Cmd {
	args := make([]string, 0, len(p.Args)+1)
	args = append(args, p.Args...)
	args = append(args, url)
	return exec.CommandContext(ctx, p.Program, args...)
}
