package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Bumping the version must change every page key under the path.
func TestPageKey_VersionedByPath(t *testing.T) {
	before := pageKey("/dashboard/invoices", 0, "q=&page=1")
	after := pageKey("/dashboard/invoices", 1, "q=&page=1")

	require.Equal(t, "page:/dashboard/invoices:v0:q=&page=1", before)
	require.NotEqual(t, before, after)

	other := pageKey("/dashboard/customers", 0, "q=&page=1")
	require.NotEqual(t, before, other)
}

func TestVersionKey(t *testing.T) {
	require.Equal(t, "page-ver:/dashboard/invoices", versionKey("/dashboard/invoices"))
}
