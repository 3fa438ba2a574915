package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfcore/internal/db"
)

func TestRootCmdSubcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"ga4", "linkedin", "all"})

	for _, flag := range []string{"days", "rand-seed", "migrate"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
	ga4, _, err := root.Find([]string{"ga4"})
	require.NoError(t, err)
	assert.NotNil(t, ga4.Flags().Lookup("website-type"))
}

func TestSeedRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	for _, sub := range []string{"ga4", "linkedin", "all"} {
		t.Run(sub, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs([]string{sub, "--days", "5"})
			err := root.Execute()
			require.ErrorIs(t, err, db.ErrNoDatabaseURL)
		})
	}
}
