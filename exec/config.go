package exec

import (
	kitlog "github.com/go-kit/log"
	"golang.org/x/crypto/ssh"
)

type Config struct {
	// User is the login name on the target member.
	User string
	// Port is the SSH port of the target member.
	Port int
	// KeyFile is the path of the private key used to authenticate.
	KeyFile string
	// Command is the whitelist-update command executed on the target.
	Command string
	// HostKeyCallback validates the target's host key. Defaults to
	// accepting any key, since targets are ephemeral and their keys churn
	// with every replacement.
	HostKeyCallback ssh.HostKeyCallback
	// Logger for connection and action output logging.
	Logger kitlog.Logger
}

func DefaultConfig() Config {
	return Config{
		User:   "root",
		Port:   22,
		Logger: kitlog.NewNopLogger(),
	}
}
