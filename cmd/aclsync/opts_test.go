package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stratofleet/aclsync/membership"
)

func TestParseAddrs(t *testing.T) {
	addrs := parseAddrs(" 10.0.0.1:7947, 10.0.0.2:7947 ,,")
	require.Equal(t, []string{"10.0.0.1:7947", "10.0.0.2:7947"}, addrs)
}

func TestParseMembers(t *testing.T) {
	members, err := parseMembers("i-001=10.0.0.1,i-002=")
	require.NoError(t, err)

	require.Equal(t, []membership.Member{
		{ID: "i-001", Addr: "10.0.0.1", Status: membership.StatusHealthy},
		{ID: "i-002", Addr: "", Status: membership.StatusHealthy},
	}, members)
}

func TestParseMembers_Malformed(t *testing.T) {
	_, err := parseMembers("10.0.0.1")
	require.Error(t, err)
}
