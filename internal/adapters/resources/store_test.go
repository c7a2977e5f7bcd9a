package resources_test

import (
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	addonfs "go.trai.ch/addon/internal/adapters/fs"
	"go.trai.ch/addon/internal/adapters/resources"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newStore() *resources.Store {
	return resources.NewStore(addonfs.NewMapFSAdapter("/addons", fstest.MapFS{
		"Foo/elocal/ui/icon.png":     {Data: []byte("\x89PNG\r\n\x1a\n0000")},
		"Foo/elocal/ui/menu.json":    {Data: []byte(`{"items": [1, 2]}`)},
		"Foo/elocal/ui/broken.json":  {Data: []byte(`{"items": [1, 2`)},
		"Foo/elocal/text/readme.txt": {Data: []byte("hello")},
		"Bar/elocal/ui/icon.png":     {Data: []byte("\x89PNG\r\n\x1a\n1111")},
	}))
}

func TestStore_AddFromFile(t *testing.T) {
	store := newStore()

	h, err := store.AddFromFile("Addons/Foo/ui/icon", "/addons/Foo/elocal/ui/icon.png", 3)
	require.NoError(t, err)

	assert.NotEmpty(t, h.ID)
	assert.Equal(t, "Addons/Foo/ui/icon", h.VirtualPath)
	assert.Equal(t, "/addons/Foo/elocal/ui/icon.png", h.Source)
	assert.Empty(t, h.Entry)
	assert.Equal(t, 3, h.Priority)
	assert.Equal(t, "image/png", h.ContentType)

	got, ok := store.Resolve("Addons/Foo/ui/icon")
	require.True(t, ok)
	assert.Equal(t, h, got)
}

func TestStore_AddFromFile_Failures(t *testing.T) {
	store := newStore()

	_, err := store.AddFromFile("ui/broken", "/addons/Foo/elocal/ui/broken.json", 0)
	require.Error(t, err)
	assert.Equal(t, "ResourceFileLoadFailure", domain.KindOf(err))

	_, err = store.AddFromFile("ui/missing", "/addons/Foo/elocal/ui/missing.png", 0)
	require.Error(t, err)
	assert.Equal(t, "ResourceFileLoadFailure", domain.KindOf(err))

	assert.Empty(t, store.Paths())
	assert.Zero(t, store.Len())
}

func TestStore_Resolve_PriorityThenRegistrationOrder(t *testing.T) {
	store := newStore()

	first, err := store.AddFromFile("ui/icon", "/addons/Foo/elocal/ui/icon.png", 1)
	require.NoError(t, err)
	_, err = store.AddFromFile("ui/icon", "/addons/Bar/elocal/ui/icon.png", 1)
	require.NoError(t, err)

	got, ok := store.Resolve("ui/icon")
	require.True(t, ok)
	assert.Equal(t, first.ID, got.ID, "equal priority keeps the earlier registration")

	higher, err := store.AddFromFile("ui/icon", "/addons/Bar/elocal/ui/icon.png", 2)
	require.NoError(t, err)

	got, _ = store.Resolve("ui/icon")
	assert.Equal(t, higher.ID, got.ID)
	regs := store.Registrations("ui/icon")
	require.Len(t, regs, 3)
	assert.Equal(t, []int{1, 1, 2}, []int{regs[0].Priority, regs[1].Priority, regs[2].Priority})
	assert.Equal(t, 3, store.Len())

	regs[0].Priority = 9
	got, _ = store.Resolve("ui/icon")
	assert.Equal(t, higher.ID, got.ID, "returned registrations are a copy")
	assert.Empty(t, store.Registrations("ui/missing"))
}

func TestStore_Resolve_Unknown(t *testing.T) {
	_, ok := newStore().Resolve("nothing/here")
	assert.False(t, ok)
}

func TestStore_AddFromArchiveEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	archive := mocks.NewMockArchive(ctrl)
	archive.EXPECT().Open("assets/ui/readme.txt").Return(io.NopCloser(strings.NewReader("plain text")), nil)
	archive.EXPECT().Path().Return("/addons/Foo/elocal.assetbundle")

	store := newStore()
	h, err := store.AddFromArchiveEntry("Addons/Foo/readme", "assets/ui/readme.txt", archive, 5)
	require.NoError(t, err)

	assert.Equal(t, "/addons/Foo/elocal.assetbundle", h.Source)
	assert.Equal(t, "assets/ui/readme.txt", h.Entry)
	assert.Equal(t, 5, h.Priority)
	assert.True(t, strings.HasPrefix(h.ContentType, "text/plain"))
	assert.Equal(t, []string{"Addons/Foo/readme"}, store.Paths())
}

func TestStore_AddFromArchiveEntry_OpenFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	archive := mocks.NewMockArchive(ctrl)
	archive.EXPECT().Open("assets/x.png").Return(nil, domain.ErrArchiveEntryNotFound)

	_, err := newStore().AddFromArchiveEntry("x", "assets/x.png", archive, 0)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrResourceStoreFailed.Error())
}
