package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/crypto/ssh"
)

// SSHRunner invokes the whitelist-update command on a target member over
// SSH. It implements trigger.Runner. The command is expected to discover
// the full current membership on its own and exit zero once the external
// whitelist matches it.
type SSHRunner struct {
	command      string
	port         int
	logger       kitlog.Logger
	clientConfig *ssh.ClientConfig
}

func NewSSHRunner(conf Config) (*SSHRunner, error) {
	if conf.Command == "" {
		return nil, errors.New("config must provide a command")
	}

	keyData, err := os.ReadFile(conf.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	signer, err := ssh.ParsePrivateKey(keyData)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	hostKeyCallback := conf.HostKeyCallback
	if hostKeyCallback == nil {
		hostKeyCallback = ssh.InsecureIgnoreHostKey()
	}

	logger := conf.Logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}

	return &SSHRunner{
		command: conf.Command,
		port:    conf.Port,
		logger:  logger,
		clientConfig: &ssh.ClientConfig{
			User:            conf.User,
			Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
			HostKeyCallback: hostKeyCallback,
		},
	}, nil
}

// Run connects to the target and executes the configured command, blocking
// until it exits or ctx is done. A nonzero exit maps to ErrActionFailed,
// transport problems to ErrConnection, and the deadline to ctx.Err().
func (r *SSHRunner) Run(ctx context.Context, target string) error {
	addr := net.JoinHostPort(target, strconv.Itoa(r.port))

	dialer := net.Dialer{}

	netConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %s", ErrConnection, addr, err)
	}

	// The handshake below is not ctx-aware on its own, so the deadline is
	// pushed down to the socket.
	if deadline, ok := ctx.Deadline(); ok {
		_ = netConn.SetDeadline(deadline)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(netConn, addr, r.clientConfig)
	if err != nil {
		_ = netConn.Close()
		return fmt.Errorf("%w: handshake with %s: %s", ErrConnection, addr, err)
	}

	client := ssh.NewClient(sshConn, chans, reqs)

	defer func() {
		_ = client.Close()
	}()

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("%w: open session on %s: %s", ErrConnection, addr, err)
	}

	defer func() {
		_ = session.Close()
	}()

	var output bytes.Buffer
	session.Stdout = &output
	session.Stderr = &output

	level.Debug(r.logger).Log("msg", "running whitelist action", "addr", addr, "command", r.command)

	done := make(chan error, 1)

	go func() {
		done <- session.Run(r.command)
	}()

	select {
	case <-ctx.Done():
		_ = session.Signal(ssh.SIGKILL)
		return fmt.Errorf("action on %s: %w", addr, ctx.Err())

	case err := <-done:
		if out := strings.TrimSpace(output.String()); out != "" {
			level.Debug(r.logger).Log("msg", "action output", "addr", addr, "output", out)
		}

		if err != nil {
			var exitErr *ssh.ExitError
			if errors.As(err, &exitErr) {
				return fmt.Errorf("%w: exit status %d", ErrActionFailed, exitErr.ExitStatus())
			}

			return fmt.Errorf("%w: run on %s: %s", ErrConnection, addr, err)
		}
	}

	return nil
}
