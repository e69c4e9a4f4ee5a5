package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/wave-portal-cli/internal/domain"
	"github.com/bnema/wave-portal-cli/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

const missingEntry = "is not in the password store"

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps keystore passphrases in the standard unix password manager.
// Only the first line of an entry is the passphrase, following the pass
// convention, so entries may carry notes below it.
type Store struct {
	run runFunc
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand}
}

// passCall is one pass invocation; op names it in errors.
type passCall struct {
	op    string
	key   string
	input string
	args  []string
}

func (s *Store) call(ctx context.Context, c passCall) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, c.input, append(c.args, c.key)...)
	switch {
	case err == nil:
		return stdout, nil
	case strings.Contains(stderr, missingEntry):
		return "", fmt.Errorf("pass %s %q: %w", c.op, c.key, domain.ErrSecretNotFound)
	case stderr == "":
		return "", fmt.Errorf("pass %s %q: %w", c.op, c.key, err)
	default:
		return "", fmt.Errorf("pass %s %q: %w: %s", c.op, c.key, err, stderr)
	}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	_, err := s.call(ctx, passCall{
		op:    "put",
		key:   key,
		input: value + "\n",
		args:  []string{"insert", "-m", "-f"},
	})
	return err
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	out, err := s.call(ctx, passCall{op: "get", key: key, args: []string{"show"}})
	if err != nil {
		return "", err
	}

	passphrase, _, _ := strings.Cut(out, "\n")
	return strings.TrimSuffix(passphrase, "\r"), nil
}

// Delete removes key. An entry that is already gone is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.call(ctx, passCall{op: "delete", key: key, args: []string{"rm", "-f"}})
	if errors.Is(err, domain.ErrSecretNotFound) {
		return nil
	}
	return err
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	bin, err := exec.LookPath("pass")
	switch {
	case errors.Is(err, exec.ErrNotFound):
		return "", "", ErrUnavailable
	case err != nil:
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}
