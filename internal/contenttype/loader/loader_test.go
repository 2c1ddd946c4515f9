package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/jsondocs/internal/contenttype/domain"
	apperrors "github.com/allisson/jsondocs/internal/errors"
)

func TestParse(t *testing.T) {
	t.Run("partial overrides", func(t *testing.T) {
		o, err := Parse([]byte("rest_base: configs\nmenu_position: 5\nshow_in_menu: false\n"))
		require.NoError(t, err)

		args := o.Filter()(domain.JSONContentType{}.ContentTypeArgs())
		assert.Equal(t, "configs", args.RESTBase)
		assert.Equal(t, 5, args.MenuPosition)
		assert.False(t, args.ShowInMenu)
		// untouched keys keep defaults
		assert.Equal(t, "JSON", args.Label)
		assert.True(t, args.ShowUI)
		assert.Equal(t, []string{"title", "revisions"}, args.Supports)
	})

	t.Run("capability type single value", func(t *testing.T) {
		o, err := Parse([]byte("capability_type: [config]\n"))
		require.NoError(t, err)

		args := o.Filter()(domain.JSONContentType{}.ContentTypeArgs())
		assert.Equal(t, [2]string{"config", "configs"}, args.CapabilityType)
	})

	t.Run("empty document", func(t *testing.T) {
		o, err := Parse([]byte("  \n"))
		require.NoError(t, err)

		defaults := domain.JSONContentType{}.ContentTypeArgs()
		assert.Equal(t, defaults, o.Filter()(defaults))
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Parse([]byte("rest_bse: typo\n"))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("too many capability types", func(t *testing.T) {
		_, err := Parse([]byte("capability_type: [a, b, c]\n"))
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		o, err := LoadFile("")
		require.NoError(t, err)
		assert.Equal(t, &Overrides{}, o)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "types.yaml")
		require.NoError(t, os.WriteFile(path, []byte("label: Configs\nadd_new_item: Add New Config\n"), 0o600))

		o, err := LoadFile(path)
		require.NoError(t, err)

		args := o.Filter()(domain.JSONContentType{}.ContentTypeArgs())
		assert.Equal(t, "Configs", args.Label)
		assert.Equal(t, "Add New Config", args.Labels.AddNewItem)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
