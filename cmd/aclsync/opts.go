package main

import (
	"strings"
)

var opts struct {
	State struct {
		File string `long:"file" description:"path of the last-applied fingerprint record" env:"FILE" default:"/var/lib/aclsync/fingerprint"`
	} `group:"state" namespace:"state" env-namespace:"STATE"`

	Action struct {
		Command string `long:"command" description:"whitelist-update command executed on the target member" env:"COMMAND" required:"true"`
		Timeout int    `long:"timeout" description:"action timeout (ms)" env:"TIMEOUT" default:"60000"`
	} `group:"action" namespace:"action" env-namespace:"ACTION"`

	SSH struct {
		User    string `long:"user" description:"login user on the target member" env:"USER" default:"root"`
		Port    int    `long:"port" description:"ssh port on the target member" env:"PORT" default:"22"`
		KeyFile string `long:"key-file" description:"private key used to authenticate" env:"KEY_FILE" required:"true"`
	} `group:"ssh" namespace:"ssh" env-namespace:"SSH"`

	Gossip struct {
		NodeName      string `long:"node-name" description:"name announced to the gossip ring" env:"NODE_NAME" default:"aclsync-observer"`
		BindAddr      string `long:"bind-addr" description:"address to bind the gossip listener" env:"BIND_ADDR" default:"0.0.0.0"`
		BindPort      int    `long:"bind-port" description:"port to bind the gossip listener" env:"BIND_PORT" default:"7947"`
		AdvertiseAddr string `long:"advertise-addr" description:"address advertised to other ring members" env:"ADVERTISE_ADDR"`
		JoinAddrs     string `long:"join-addrs" description:"comma-separated gossip addresses to join" env:"JOIN_ADDRS"`
	} `group:"gossip" namespace:"gossip" env-namespace:"GOSSIP"`

	Members string `long:"members" description:"static inventory as comma-separated id=addr pairs, bypasses gossip" env:"MEMBERS"`
	Watch   bool   `long:"watch" description:"keep running and sync on every membership change" env:"WATCH"`
	Verbose bool   `long:"verbose" description:"verbose mode" env:"VERBOSE"`
}

func parseAddrs(addrs string) []string {
	sl := strings.Split(addrs, ",")
	res := make([]string, 0, len(sl))

	for _, addr := range sl {
		trimmed := strings.TrimSpace(addr)
		if trimmed != "" {
			res = append(res, trimmed)
		}
	}

	return res
}
