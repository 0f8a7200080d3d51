package javasrc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	h, err := Scan(context.Background(), filepath.Join("testdata", "src"), filepath.Join("testdata", "plugin"))
	require.NoError(t, err)

	want := map[string]string{
		"net.minecraft.world.level.Level$BlockTicker":            "net.minecraft.world.level.Level$Ticker",
		"net.minecraft.server.level.ServerLevel":                 "net.minecraft.world.level.Level",
		"net.minecraft.server.level.ServerLevel$EntityCallbacks": "net.minecraft.world.level.Level$Ticker",
		"net.minecraft.server.level.ServerLevel$Mode$ModeTicker": "net.minecraft.server.level.ServerTicker",
		"net.minecraft.server.level.ServerTicker":                "java.lang.Thread",
		"net.minecraft.server.level.TickList":                    "java.util.AbstractList",
		"plugin.MyLevel":                                         "net.minecraft.server.level.ServerLevel",
	}

	for class, super := range want {
		got, ok := h.Superclass(class)
		require.True(t, ok, "no superclass recorded for %s", class)
		assert.Equal(t, super, got, class)
	}

	assert.Equal(t, len(want), h.Len())

	_, ok := h.Superclass("net.minecraft.world.level.Level")
	assert.False(t, ok, "classes without extends have no edge")

	assert.Equal(t, []string{
		"net.minecraft.server.level.ServerLevel",
		"net.minecraft.world.level.Level",
	}, h.Ancestors("plugin.MyLevel"))
}

func TestScanSingleFile(t *testing.T) {
	h, err := Scan(context.Background(), filepath.Join("testdata", "plugin", "plugin", "MyLevel.java"))
	require.NoError(t, err)

	got, ok := h.Superclass("plugin.MyLevel")
	require.True(t, ok)
	assert.Equal(t, "plugin.ServerLevel", got, "unresolved names fall back to the same package")
}

func TestScanErrors(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join("testdata", "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Scan(ctx, filepath.Join("testdata", "src"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseFile(t *testing.T) {
	src := []byte(`package a.b;

import java.util.Map;
import c.d.*;
import static e.F.g;

class Outer<K> extends Map.Entry<K, K> {
    interface Shape {}
    record Point(int x) {}
    class Inner extends Base {}
}

class Base {}
`)

	f, err := parseFile("Outer.java", src)
	require.NoError(t, err)

	assert.Equal(t, "a.b", f.pkg)
	assert.Equal(t, map[string]string{"Map": "java.util.Map"}, f.imports)
	assert.Equal(t, []string{"c.d"}, f.wildcards)
	assert.ElementsMatch(t, []string{
		"a.b.Outer",
		"a.b.Outer$Shape",
		"a.b.Outer$Point",
		"a.b.Outer$Inner",
		"a.b.Base",
	}, f.declared)

	require.Len(t, f.classes, 2)
	assert.Equal(t, "a.b.Outer", f.classes[0].binary)
	assert.Equal(t, "Map.Entry", f.classes[0].super)
	assert.Empty(t, f.classes[0].enclosing)
	assert.Equal(t, "a.b.Outer$Inner", f.classes[1].binary)
	assert.Equal(t, "Base", f.classes[1].super)
	assert.Equal(t, []string{"a.b.Outer"}, f.classes[1].enclosing)

	declared := map[string]struct{}{}
	for _, name := range f.declared {
		declared[name] = struct{}{}
	}

	assert.Equal(t, "java.util.Map$Entry", f.superclassOf(f.classes[0], declared))
	assert.Equal(t, "a.b.Base", f.superclassOf(f.classes[1], declared))
}

func TestStripTypeArguments(t *testing.T) {
	assert.Equal(t, "a.Outer.Inner", stripTypeArguments("a.Outer<T>.Inner<List<U>>"))
	assert.Equal(t, "Base", stripTypeArguments("Base"))
	assert.Equal(t, "Map.Entry", stripTypeArguments("Map.Entry<K, V>"))
}

func TestLookupBinary(t *testing.T) {
	declared := map[string]struct{}{
		"a.B":       {},
		"a.B$Inner": {},
	}

	assert.Equal(t, "a.B", lookupBinary("a.B", declared))
	assert.Equal(t, "a.B$Inner", lookupBinary("a.B.Inner", declared))
	assert.Equal(t, "x.Y.Z", lookupBinary("x.Y.Z", declared))
}
