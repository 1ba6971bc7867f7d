package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casper-network/nctl-bootstrap/internal/domain/entities"
)

func TestSelectClientBranch(t *testing.T) {
	t.Parallel()

	t.Run("should pick the stable branch when the marker is present", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("#!/usr/bin/env bash\n# stages assets for casper-mainnet nodes\n")

		// when
		branch := entities.SelectClientBranch(content, "casper-mainnet", "")

		// then
		assert.Equal(t, "dev", branch)
	})

	t.Run("should pick the fast-sync branch when the marker is absent", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("#!/usr/bin/env bash\n# stages assets for testnet nodes\n")

		// when
		branch := entities.SelectClientBranch(content, "casper-mainnet", "")

		// then
		assert.Equal(t, "feat-fast-sync", branch)
	})

	t.Run("should pick the fast-sync branch for empty content", func(t *testing.T) {
		t.Parallel()

		// when
		branch := entities.SelectClientBranch(nil, "casper-mainnet", "")

		// then
		assert.Equal(t, "feat-fast-sync", branch)
	})

	t.Run("should match the marker inside a longer token", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("PROTOCOL=casper-mainnet-1.4.5\n")

		// when
		branch := entities.SelectClientBranch(content, "casper-mainnet", "")

		// then
		assert.Equal(t, "dev", branch)
	})

	t.Run("should ignore the requested branch entirely", func(t *testing.T) {
		t.Parallel()

		// given
		withMarker := []byte("build for casper-mainnet\n")
		withoutMarker := []byte("build for staging\n")

		for _, override := range []string{"", "dev", "feat-fast-sync", "release-1.4.5"} {
			// when
			stable := entities.SelectClientBranch(withMarker, "casper-mainnet", override)
			fastSync := entities.SelectClientBranch(withoutMarker, "casper-mainnet", override)

			// then
			assert.Equal(t, "dev", stable, "override %q changed the marker decision", override)
			assert.Equal(t, "feat-fast-sync", fastSync, "override %q changed the marker decision", override)
		}
	})
}
