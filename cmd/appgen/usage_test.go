package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageCommandRegistered(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "usage")
}

func TestRunUsage_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	usageDatabaseURL = ""

	err := runUsage(usageCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
